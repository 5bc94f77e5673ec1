package game

import (
	"log"
	"time"

	"zeecraft/internal/config"
	"zeecraft/internal/input"
	"zeecraft/internal/input/glfwinput"
	"zeecraft/internal/profiling"

	"github.com/go-gl/glfw/v3.3/glfw"
)

type App struct {
	window  *glfw.Window
	sampler *glfwinput.Sampler
	session *Session

	clock      *Clock
	fpsLimiter *FPSLimiter
	slowFrame  time.Duration

	focused bool
}

func NewApp(window *glfw.Window, session *Session, cfg config.Config) *App {
	a := &App{
		window:     window,
		sampler:    glfwinput.NewSampler(),
		session:    session,
		clock:      NewClock(cfg.FixedStepMs, cfg.MaxStepsPerFrame),
		fpsLimiter: NewFPSLimiter(cfg.FPSLimit),
		slowFrame:  time.Duration(cfg.SlowFrameMs * float64(time.Millisecond)),
		focused:    true,
	}
	SetupWindowHandlers(a)
	glfwinput.Center(window)
	return a
}

// Run drives frames until the simulation quits, the window is closed or
// stop is closed. It does not save; call Session.Shutdown afterwards.
func (a *App) Run(stop <-chan struct{}) {
	for !a.session.Sim.Quit() {
		select {
		case <-stop:
			return
		default:
		}
		a.tick()
	}
}

func (a *App) tick() {
	profiling.ResetFrame()
	start := time.Now()

	glfw.PollEvents()
	if a.window.ShouldClose() {
		a.session.Sim.RequestQuit()
		return
	}

	var in input.Snapshot
	if a.focused {
		in = a.sampler.Sample(a.window)
	}

	steps, dt := a.clock.Tick()
	for i := 0; i < steps; i++ {
		a.session.Sim.Step(in, dt)
		if a.session.Sim.Quit() {
			return
		}
		// The cursor delta belongs to the frame, not to each step.
		in.DX, in.DY = 0, 0
	}

	a.session.Render()
	a.window.SwapBuffers()

	if a.slowFrame > 0 {
		if d := time.Since(start); d > a.slowFrame {
			log.Printf("Slow frame: %v, %d sim steps in %v. Top tasks: %s",
				d, profiling.Count(simStepBucket), profiling.SumWithPrefix("sim."), profiling.TopN(5))
		}
	}

	a.fpsLimiter.Wait()
}

func (a *App) setFocused(focused bool) {
	a.focused = focused
	a.sampler.SetRecenter(focused)
	if focused {
		glfwinput.Center(a.window)
	}
}
