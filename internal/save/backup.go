package save

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/klauspost/compress/zstd"
)

const (
	backupExt    = ".zst"
	backupLayout = "20060102-150405.000000000"
)

// Backups keeps zstd-compressed copies of a save file in Dir, newest Keep
// retained. Keep <= 0 disables Snapshot.
type Backups struct {
	Dir  string
	Keep int

	now func() time.Time
}

func NewBackups(dir string, keep int) *Backups {
	return &Backups{Dir: dir, Keep: keep, now: time.Now}
}

// BackupInfo describes one backup file.
type BackupInfo struct {
	Path   string
	Source string // base name of the save it was taken from
	Taken  time.Time
	Size   int64
}

// Snapshot compresses the current contents of savePath into a new backup
// and prunes old ones. A missing save returns ErrNotFound.
func (b *Backups) Snapshot(savePath string) (string, error) {
	if b.Keep <= 0 {
		return "", nil
	}

	src, err := os.Open(savePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, savePath)
		}
		return "", err
	}
	defer src.Close()

	if err := os.MkdirAll(b.Dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: %w", ErrWrite, err)
	}

	base := filepath.Base(savePath)
	name := base + "-" + b.now().UTC().Format(backupLayout) + backupExt
	path := filepath.Join(b.Dir, name)

	if err := writeCompressed(path, src); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("%w: %w", ErrWrite, err)
	}

	if err := b.prune(base); err != nil {
		log.Printf("backup prune %s: %v", b.Dir, err)
	}
	return path, nil
}

func writeCompressed(path string, src io.Reader) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedBetterCompression))
	if err != nil {
		return err
	}
	if _, err := io.Copy(enc, bufio.NewReader(src)); err != nil {
		enc.Close()
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	return f.Sync()
}

// List returns every backup in Dir, newest first. A missing directory is
// an empty list.
func (b *Backups) List() ([]BackupInfo, error) {
	entries, err := os.ReadDir(b.Dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var out []BackupInfo
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		info, ok := parseBackupName(e.Name())
		if !ok {
			continue
		}
		info.Path = filepath.Join(b.Dir, e.Name())
		if fi, err := e.Info(); err == nil {
			info.Size = fi.Size()
		}
		out = append(out, info)
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].Taken.Equal(out[j].Taken) {
			return out[i].Taken.After(out[j].Taken)
		}
		return out[i].Path > out[j].Path
	})
	return out, nil
}

func parseBackupName(name string) (BackupInfo, bool) {
	stem, ok := strings.CutSuffix(name, backupExt)
	if !ok || len(stem) <= len(backupLayout)+1 {
		return BackupInfo{}, false
	}
	cut := len(stem) - len(backupLayout)
	if stem[cut-1] != '-' {
		return BackupInfo{}, false
	}
	taken, err := time.Parse(backupLayout, stem[cut:])
	if err != nil {
		return BackupInfo{}, false
	}
	return BackupInfo{Source: stem[:cut-1], Taken: taken}, true
}

func (b *Backups) prune(source string) error {
	all, err := b.List()
	if err != nil {
		return err
	}
	kept := 0
	var errs []error
	for _, info := range all {
		if info.Source != source {
			continue
		}
		kept++
		if kept <= b.Keep {
			continue
		}
		if err := os.Remove(info.Path); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Restore decompresses backupPath over savePath. The backup must decode as a
// valid save; otherwise savePath is left untouched and ErrCorrupt is returned.
func (b *Backups) Restore(backupPath, savePath string) error {
	data, err := readCompressed(backupPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrNotFound, backupPath)
		}
		return fmt.Errorf("%w: %s: %w", ErrCorrupt, backupPath, err)
	}

	a, g, err := Decode(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("%s: %w", backupPath, err)
	}
	return Save(savePath, a, g)
}

func readCompressed(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec, err := zstd.NewReader(f)
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	return io.ReadAll(dec)
}
