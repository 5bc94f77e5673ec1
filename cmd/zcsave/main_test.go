package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"zeecraft/internal/config"
	"zeecraft/internal/player"
	"zeecraft/internal/save"
	"zeecraft/internal/world"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func testConfig(t *testing.T) config.Config {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.SavePath = filepath.Join(dir, "game.sav")
	cfg.Backup.Dir = filepath.Join(dir, "backups")
	return cfg
}

func TestNewAndInfo(t *testing.T) {
	cfg := testConfig(t)
	var out bytes.Buffer

	require.NoError(t, run(&out, cfg, "new", nil))
	assert.Contains(t, out.String(), cfg.SavePath)

	err := run(&out, cfg, "new", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "-force")
	require.NoError(t, run(&out, cfg, "new", []string{"-force"}))

	out.Reset()
	require.NoError(t, run(&out, cfg, "info", nil))

	var r report
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &r))
	assert.Equal(t, cfg.SavePath, r.Path)
	assert.Equal(t, [3]float32{8, 2, 8}, r.Position)
	assert.Equal(t, "stone", r.Selected)
	assert.Equal(t, 16*16*16-14*14*14, r.Solid)
	assert.Equal(t, map[string]int{"stone": r.Solid}, r.Blocks)
	assert.Zero(t, r.Unknown)
}

func TestInfoMissing(t *testing.T) {
	cfg := testConfig(t)
	err := run(&bytes.Buffer{}, cfg, "info", nil)
	require.ErrorIs(t, err, save.ErrNotFound)
}

func TestBackupsAndRestore(t *testing.T) {
	cfg := testConfig(t)
	var out bytes.Buffer

	require.NoError(t, run(&out, cfg, "backups", nil))
	assert.Contains(t, out.String(), "no backups")

	a := player.New()
	a.Selected = world.BlockGlass
	require.NoError(t, save.Save(cfg.SavePath, a, world.NewDefault()))
	bp, err := save.NewBackups(cfg.Backup.Dir, 2).Snapshot(cfg.SavePath)
	require.NoError(t, err)

	require.NoError(t, save.Save(cfg.SavePath, player.New(), world.New()))

	out.Reset()
	require.NoError(t, run(&out, cfg, "backups", nil))
	assert.Equal(t, 1, strings.Count(out.String(), "\n"))
	assert.Contains(t, out.String(), bp)

	require.NoError(t, run(&out, cfg, "restore", []string{bp}))
	la, lg, err := save.Load(cfg.SavePath)
	require.NoError(t, err)
	assert.Equal(t, world.BlockGlass, la.Selected)
	assert.Equal(t, world.NewDefault().Solid(), lg.Solid())

	require.Error(t, run(&out, cfg, "restore", nil))
}

func TestUnknownCommand(t *testing.T) {
	err := run(&bytes.Buffer{}, testConfig(t), "frobnicate", nil)
	require.Error(t, err)
}
