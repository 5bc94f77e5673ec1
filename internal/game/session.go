package game

import (
	"log"

	"zeecraft/internal/config"
	"zeecraft/internal/graphics/renderables/blocks"
	"zeecraft/internal/graphics/renderables/crosshair"
	"zeecraft/internal/graphics/renderables/hotbar"
	"zeecraft/internal/graphics/renderables/wireframe"
	"zeecraft/internal/graphics/renderer"
	"zeecraft/internal/profiling"
	"zeecraft/internal/save"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Session ties a Sim to a window and renderer and persists it on shutdown.
type Session struct {
	Window   *glfw.Window
	Renderer *renderer.Renderer
	Sim      *Sim

	savePath string
	backups  *save.Backups
}

func NewSession(window *glfw.Window, cfg config.Config) (*Session, error) {
	width, height := window.GetFramebufferSize()

	r, err := renderer.NewRenderer(width, height,
		blocks.NewBlocks(cfg.ShadersDir),
		wireframe.NewWireframe(cfg.ShadersDir),
		crosshair.NewCrosshair(cfg.ShadersDir),
		hotbar.NewHotbar(cfg.ShadersDir),
	)
	if err != nil {
		return nil, err
	}

	var backups *save.Backups
	if cfg.Backup.Keep > 0 {
		backups = save.NewBackups(cfg.Backup.Dir, cfg.Backup.Keep)
	}

	return &Session{
		Window:   window,
		Renderer: r,
		Sim:      LoadSim(cfg.SavePath),
		savePath: cfg.SavePath,
		backups:  backups,
	}, nil
}

// Render draws the state left by the last step.
func (s *Session) Render() {
	defer profiling.Track("session.Render")()
	s.Renderer.Render(s.Sim.Frame())
}

// Resize updates the viewport after a framebuffer size change.
func (s *Session) Resize(width, height int) {
	s.Renderer.UpdateViewport(width, height)
}

// Shutdown saves the world and releases GL resources. A failed save is
// logged; it never stops the process from exiting.
func (s *Session) Shutdown() {
	if err := s.Sim.Persist(s.savePath, s.backups); err != nil {
		log.Printf("Save failed: %v", err)
	}
	s.Renderer.Dispose()
}
