package game

import (
	"errors"
	"fmt"
	"log"

	"zeecraft/internal/save"
)

// LoadSim restores the simulation from path. A missing or corrupt save falls
// back to the starter box; only the corrupt case is logged as a failure.
func LoadSim(path string) *Sim {
	a, g, err := save.Load(path)
	switch {
	case err == nil:
		log.Printf("Loaded world from %s", path)
		return NewSim(g, a)
	case errors.Is(err, save.ErrNotFound):
		log.Printf("No save at %s, starting a new world", path)
	case errors.Is(err, save.ErrCorrupt):
		log.Printf("Ignoring corrupt save: %v", err)
	default:
		log.Printf("Could not read save: %v", err)
	}
	return NewDefaultSim()
}

// Persist backs up the previous save, when backups is non-nil, then writes
// the current state over it. A failed backup is logged and does not stop the
// save.
func (s *Sim) Persist(path string, backups *save.Backups) error {
	if backups != nil {
		if bp, err := backups.Snapshot(path); err != nil {
			if !errors.Is(err, save.ErrNotFound) {
				log.Printf("Backup of %s failed: %v", path, err)
			}
		} else if bp != "" {
			log.Printf("Backed up previous save to %s", bp)
		}
	}

	if err := save.Save(path, s.Avatar, s.Grid); err != nil {
		return fmt.Errorf("persist world: %w", err)
	}
	log.Printf("Saved world to %s", path)
	return nil
}
