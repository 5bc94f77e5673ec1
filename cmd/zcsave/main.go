// Command zcsave inspects, creates and restores world saves.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"zeecraft/internal/config"
	"zeecraft/internal/player"
	"zeecraft/internal/save"
	"zeecraft/internal/world"

	"gopkg.in/yaml.v3"
)

const usage = `usage: zcsave [-config file] <command> [args]

commands:
  info [save]              print the avatar and block counts as YAML
  new [-force] [save]      write a fresh starter world
  backups [dir]            list backups, newest first
  restore <backup> [save]  decompress a backup over a save
`

func main() {
	log.SetFlags(0)
	log.SetPrefix("zcsave: ")

	configPath := flag.String("config", "zeecraft.yaml", "YAML config file for default paths")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(os.Stdout, cfg, args[0], args[1:]); err != nil {
		log.Fatal(err)
	}
}

func run(out io.Writer, cfg config.Config, cmd string, args []string) error {
	switch cmd {
	case "info":
		return info(out, argOr(args, 0, cfg.SavePath))
	case "new":
		fs := flag.NewFlagSet("new", flag.ContinueOnError)
		force := fs.Bool("force", false, "overwrite an existing save")
		if err := fs.Parse(args); err != nil {
			return err
		}
		return newWorld(out, argOr(fs.Args(), 0, cfg.SavePath), *force)
	case "backups":
		return listBackups(out, save.NewBackups(argOr(args, 0, cfg.Backup.Dir), cfg.Backup.Keep))
	case "restore":
		if len(args) < 1 {
			return errors.New("restore: missing backup path")
		}
		b := save.NewBackups(cfg.Backup.Dir, cfg.Backup.Keep)
		target := argOr(args, 1, cfg.SavePath)
		if err := b.Restore(args[0], target); err != nil {
			return err
		}
		fmt.Fprintf(out, "restored %s to %s\n", args[0], target)
		return nil
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func argOr(args []string, i int, def string) string {
	if i < len(args) {
		return args[i]
	}
	return def
}

type report struct {
	Path     string         `yaml:"path"`
	Position [3]float32     `yaml:"position,flow"`
	Rotation [3]float32     `yaml:"rotation,flow"`
	Selected string         `yaml:"selected"`
	Solid    int            `yaml:"solid"`
	Blocks   map[string]int `yaml:"blocks"`
	Unknown  int            `yaml:"unknown,omitempty"`
}

func newReport(path string, a *player.Avatar, g *world.Grid) report {
	r := report{
		Path:     path,
		Position: a.Position,
		Rotation: a.Rotation,
		Selected: a.Selected.String(),
		Solid:    g.Solid(),
		Blocks:   make(map[string]int),
	}
	g.Each(func(_, _, _ int, b world.BlockID) {
		switch {
		case b.IsEmpty():
		case b.Placeable():
			r.Blocks[b.String()]++
		default:
			r.Unknown++
		}
	})
	return r
}

func info(out io.Writer, path string) error {
	a, g, err := save.Load(path)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(newReport(path, a, g)); err != nil {
		return err
	}
	return enc.Close()
}

func newWorld(out io.Writer, path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s exists; use -force to overwrite", path)
		}
	}
	if err := save.Save(path, player.New(), world.NewDefault()); err != nil {
		return err
	}
	fmt.Fprintf(out, "wrote new world to %s\n", path)
	return nil
}

func listBackups(out io.Writer, b *save.Backups) error {
	list, err := b.List()
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintf(out, "no backups in %s\n", b.Dir)
		return nil
	}
	for _, info := range list {
		fmt.Fprintf(out, "%s\t%s\t%d\t%s\n", info.Taken.Local().Format("2006-01-02 15:04:05"), info.Source, info.Size, info.Path)
	}
	return nil
}
