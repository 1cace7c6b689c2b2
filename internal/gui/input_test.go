package gui

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/circlefun/internal/engine"
	"gonum.org/v1/gonum/spatial/r2"
)

type fakeControls struct {
	keys      map[int32]bool
	down      map[rl.MouseButton]bool
	pressed   map[rl.MouseButton]bool
	pos       r2.Vec
	offscreen bool
}

func (f fakeControls) IsKeyPressed(key int32) bool { return f.keys[key] }
func (f fakeControls) IsMouseButtonDown(b rl.MouseButton) bool { return f.down[b] }
func (f fakeControls) IsMouseButtonPressed(b rl.MouseButton) bool { return f.pressed[b] }
func (f fakeControls) MousePosition() r2.Vec                      { return f.pos }
func (f fakeControls) CursorOnScreen() bool { return !f.offscreen }

func TestReadInput_Keys(t *testing.T) {
	tests := []struct {
		name string
		key  int32
		want engine.Command
	}{
		{"space pauses", rl.KeySpace, engine.Command{Kind: engine.TogglePause}},
		{"enter recenters", rl.KeyEnter, engine.Command{Kind: engine.Recenter}},
		{"up grows by step", rl.KeyUp, engine.Command{Kind: engine.Grow, N: 50}},
		{"down shrinks by step", rl.KeyDown, engine.Command{Kind: engine.Shrink, N: 50}},
		{"right grows by one", rl.KeyRight, engine.Command{Kind: engine.Grow, N: 1}},
		{"left shrinks by one", rl.KeyLeft, engine.Command{Kind: engine.Shrink, N: 1}},
		{"c cycles palette", rl.KeyC, engine.Command{Kind: engine.CyclePalette}},
		{"p dumps positions", rl.KeyP, engine.Command{Kind: engine.DumpPositions}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := readInput(fakeControls{keys: map[int32]bool{tt.key: true}}, 50)
			if len(in.Commands) != 1 || in.Commands[0] != tt.want {
				t.Errorf("expected %v, got %v", tt.want, in.Commands)
			}
		})
	}
}

func TestReadInput_Mouse(t *testing.T) {
	tests := []struct {
		name    string
		c       fakeControls
		mouse   bool
		attract bool
		repel   bool
		cycle   bool
	}{
		{"idle", fakeControls{pos: r2.Vec{X: 5, Y: 6}}, true, false, false, false},
		{"left repels", fakeControls{down: map[rl.MouseButton]bool{rl.MouseButtonLeft: true}}, true, false, true, false},
		{"right attracts", fakeControls{down: map[rl.MouseButton]bool{rl.MouseButtonRight: true}}, true, true, false, false},
		{
			"left click under right cycles",
			fakeControls{
				down:    map[rl.MouseButton]bool{rl.MouseButtonRight: true, rl.MouseButtonLeft: true},
				pressed: map[rl.MouseButton]bool{rl.MouseButtonLeft: true},
			},
			true, true, false, true,
		},
		{"off screen", fakeControls{offscreen: true, down: map[rl.MouseButton]bool{rl.MouseButtonLeft: true}}, false, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := readInput(tt.c, 50)
			if (in.Mouse != nil) != tt.mouse {
				t.Errorf("mouse present = %v, want %v", in.Mouse != nil, tt.mouse)
			}
			if in.Attract != tt.attract || in.Repel != tt.repel {
				t.Errorf("attract/repel = %v/%v, want %v/%v", in.Attract, in.Repel, tt.attract, tt.repel)
			}
			cycled := len(in.Commands) == 1 && in.Commands[0].Kind == engine.CyclePalette
			if cycled != tt.cycle {
				t.Errorf("cycle = %v, want %v", cycled, tt.cycle)
			}
		})
	}
}
