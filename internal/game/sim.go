package game

import (
	"zeecraft/internal/graphics/renderer"
	"zeecraft/internal/input"
	"zeecraft/internal/physics"
	"zeecraft/internal/player"
	"zeecraft/internal/profiling"
	"zeecraft/internal/world"
)

// simStepBucket is tracked exactly once per Step.
const simStepBucket = "sim.avatar"

// StepResult reports what one simulation step did.
type StepResult struct {
	Outcome player.Outcome
	Edit    player.EditResult
	Moved   bool
}

// Sim owns the grid and the avatar. Only Step mutates them; renderers read
// the Frame taken after a step.
type Sim struct {
	Grid   *world.Grid
	Avatar *player.Avatar

	target    world.Cell
	hasTarget bool
	quit      bool

	// revision changes whenever the grid contents change.
	revision uint64
}

func NewSim(g *world.Grid, a *player.Avatar) *Sim {
	return &Sim{Grid: g, Avatar: a, revision: 1}
}

// NewDefaultSim returns the starter box with a fresh avatar.
func NewDefaultSim() *Sim {
	return NewSim(world.NewDefault(), player.New())
}

// Step advances the simulation by dtMs milliseconds. The foot cell and the
// edit target come from the pose at the start of the step; the ground test
// sees any edit made in the same step.
func (s *Sim) Step(in input.Snapshot, dtMs float64) StepResult {
	a := s.Avatar

	stop := profiling.Track(simStepBucket)
	outcome := a.Begin(in, dtMs)
	stop()

	res := StepResult{Outcome: outcome}
	switch outcome {
	case player.OutcomeQuit:
		s.quit = true
		return res
	case player.OutcomeAdvance:
	default:
		return res
	}

	foot := physics.FootCell(a.Position)

	if a.EditEnabled() {
		stop := profiling.Track("sim.edit")
		s.target = physics.ResolveTarget(a.Position, a.ViewDir)
		s.hasTarget = true
		res.Edit = player.ApplyEdit(s.Grid, s.target, in.Buttons, a.Selected)
		if res.Edit == player.EditPlaced || res.Edit == player.EditRemoved {
			s.revision++
		}
		stop()
	}

	stop = profiling.Track("sim.move")
	a.Settle(s.Grid, foot, dtMs)
	res.Moved = a.Move(s.Grid, in, dtMs)
	stop()

	return res
}

// Target returns the last resolved edit target. ok is false while editing is
// disabled or before the first targeting step.
func (s *Sim) Target() (world.Cell, bool) {
	return s.target, s.hasTarget && s.Avatar.EditEnabled()
}

// Quit reports whether a step has requested termination.
func (s *Sim) Quit() bool {
	return s.quit
}

// RequestQuit stops the simulation from outside the step, e.g. when the
// window is closed.
func (s *Sim) RequestQuit() {
	s.quit = true
}

// Frame is the read-only view handed to the renderer.
func (s *Sim) Frame() renderer.Frame {
	a := s.Avatar
	target, ok := s.Target()
	return renderer.Frame{
		Grid:        s.Grid,
		Revision:    s.revision,
		Eye:         a.Position,
		View:        a.ViewMatrix(),
		Selected:    a.Selected,
		EditEnabled: a.EditEnabled(),
		Target:      target,
		ShowOutline: ok && !a.Jumping,
	}
}
