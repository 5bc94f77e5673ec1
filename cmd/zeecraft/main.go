package main

import (
	"flag"
	"log"
	"runtime"
	"sync"

	"zeecraft/internal/config"
	"zeecraft/internal/game"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/xlab/closer"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "zeecraft.yaml", "YAML config file; missing means defaults")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if err := glfw.Init(); err != nil {
		log.Fatalf("glfw: %v", err)
	}

	window, err := game.SetupWindow(cfg.Window)
	if err != nil {
		glfw.Terminate()
		log.Fatalf("window: %v", err)
	}

	session, err := game.NewSession(window, cfg)
	if err != nil {
		window.Destroy()
		glfw.Terminate()
		log.Fatalf("renderer: %v", err)
	}

	// A signal stops the frame loop; the process exits once the world has
	// been saved on the main thread.
	stop := make(chan struct{})
	saved := make(chan struct{})
	var stopOnce sync.Once
	closer.Bind(func() {
		stopOnce.Do(func() { close(stop) })
		<-saved
	})

	app := game.NewApp(window, session, cfg)
	app.Run(stop)

	session.Shutdown()
	window.Destroy()
	glfw.Terminate()
	close(saved)

	closer.Close()
}
