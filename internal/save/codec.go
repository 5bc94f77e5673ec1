// Package save reads and writes the raw world dump and keeps compressed
// backups of it.
//
// The file has no header and no version: avatar position, rotation and
// selected block, then every grid cell, all in host byte order. It is not
// portable between machines of different endianness.
package save

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"zeecraft/internal/player"
	"zeecraft/internal/world"
)

// FileSize is the exact length of a save written by Encode.
const FileSize = 3*4 + 3*4 + 4 + world.CellCount*4

var (
	ErrNotFound = errors.New("save: file not found")
	ErrCorrupt  = errors.New("save: corrupt file")
	ErrWrite    = errors.New("save: write failed")
)

var byteOrder = binary.NativeEndian

// header mirrors the leading fields of the file.
type header struct {
	Position [3]float32
	Rotation [3]float32
	Selected int32
}

// Decode reads an avatar and grid. Any short read is ErrCorrupt. Bytes after
// the grid are ignored. Loaded data is trusted: cells and the selected block
// are not validated.
func Decode(r io.Reader) (*player.Avatar, *world.Grid, error) {
	var h header
	if err := binary.Read(r, byteOrder, &h); err != nil {
		return nil, nil, corrupt("avatar", err)
	}

	g := world.New()
	if err := binary.Read(r, byteOrder, g.Raw()); err != nil {
		return nil, nil, corrupt("grid", err)
	}

	a := &player.Avatar{
		Position: h.Position,
		Rotation: h.Rotation,
		Selected: world.BlockID(h.Selected),
	}
	a.RefreshViewDir()
	return a, g, nil
}

func corrupt(part string, err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: short %s", ErrCorrupt, part)
	}
	return fmt.Errorf("%w: %s: %w", ErrCorrupt, part, err)
}

// Encode writes the avatar and grid in file order.
func Encode(w io.Writer, a *player.Avatar, g *world.Grid) error {
	h := header{
		Position: a.Position,
		Rotation: a.Rotation,
		Selected: int32(a.Selected),
	}
	if err := binary.Write(w, byteOrder, &h); err != nil {
		return err
	}
	return binary.Write(w, byteOrder, g.Raw())
}

// Load opens path and decodes it. A missing file is ErrNotFound.
func Load(path string) (*player.Avatar, *world.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, nil, err
	}
	defer f.Close()

	a, g, err := Decode(bufio.NewReaderSize(f, FileSize))
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	return a, g, nil
}

// Save overwrites path with the encoded avatar and grid, creating parent
// directories as needed. Every failure wraps ErrWrite.
func Save(path string, a *player.Avatar, g *world.Grid) (err error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: %w", ErrWrite, err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: %w", ErrWrite, cerr)
		}
	}()

	bw := bufio.NewWriterSize(f, FileSize)
	if err := Encode(bw, a, g); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return nil
}
