package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/circlefun/internal/engine"
	"gonum.org/v1/gonum/spatial/r2"
)

// controls is the slice of raylib's input API the frame loop reads.
type controls interface {
	IsKeyPressed(key int32) bool
	IsMouseButtonDown(button rl.MouseButton) bool
	IsMouseButtonPressed(button rl.MouseButton) bool
	MousePosition() r2.Vec
	CursorOnScreen() bool
}

type raylibControls struct{}

func (raylibControls) IsKeyPressed(key int32) bool { return rl.IsKeyPressed(key) }

func (raylibControls) IsMouseButtonDown(b rl.MouseButton) bool { return rl.IsMouseButtonDown(b) }

func (raylibControls) IsMouseButtonPressed(b rl.MouseButton) bool { return rl.IsMouseButtonPressed(b) }

func (raylibControls) MousePosition() r2.Vec {
	p := rl.GetMousePosition()
	return r2.Vec{X: float64(p.X), Y: float64(p.Y)}
}

func (raylibControls) CursorOnScreen() bool { return rl.IsCursorOnScreen() }

type binding struct {
	key  int32
	kind engine.CommandKind
	// n is the command amount; step means resize_step.
	n    int
	step bool
}

var bindings = []binding{
	{key: rl.KeySpace, kind: engine.TogglePause},
	{key: rl.KeyEnter, kind: engine.Recenter},
	{key: rl.KeyUp, kind: engine.Grow, step: true},
	{key: rl.KeyDown, kind: engine.Shrink, step: true},
	{key: rl.KeyRight, kind: engine.Grow, n: 1},
	{key: rl.KeyLeft, kind: engine.Shrink, n: 1},
	{key: rl.KeyC, kind: engine.CyclePalette},
	{key: rl.KeyP, kind: engine.DumpPositions},
}

// readInput turns this frame's keyboard and mouse state into engine
// input. Left is repel and right is attract; a left click while right is
// held cycles the palette instead of pushing.
func readInput(c controls, resizeStep int) engine.Input {
	var in engine.Input
	for _, b := range bindings {
		if !c.IsKeyPressed(b.key) {
			continue
		}
		n := b.n
		if b.step {
			n = resizeStep
		}
		in.Commands = append(in.Commands, engine.Command{Kind: b.kind, N: n})
	}

	if !c.CursorOnScreen() {
		return in
	}
	pos := c.MousePosition()
	in.Mouse = &pos

	in.Attract = c.IsMouseButtonDown(rl.MouseButtonRight)
	if in.Attract {
		if c.IsMouseButtonPressed(rl.MouseButtonLeft) {
			in.Commands = append(in.Commands, engine.Command{Kind: engine.CyclePalette})
		}
	} else {
		in.Repel = c.IsMouseButtonDown(rl.MouseButtonLeft)
	}
	return in
}
