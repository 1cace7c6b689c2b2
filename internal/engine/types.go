package engine

import (
	"errors"
	"fmt"

	"github.com/san-kum/circlefun/internal/palette"
	"gonum.org/v1/gonum/spatial/r2"
)

var ErrUnknownCommand = errors.New("engine: unknown command")

type CommandKind int

const (
	// Resize regenerates the set with exactly N circles.
	Resize CommandKind = iota
	Recenter
	CyclePalette
	TogglePause
	// SetPalette selects table N.
	SetPalette
	// Grow and Shrink change the count by N.
	Grow
	Shrink
	DumpPositions
)

var commandNames = map[CommandKind]string{
	Resize:        "resize",
	Recenter:      "recenter",
	CyclePalette:  "cycle-palette",
	TogglePause:   "toggle-pause",
	SetPalette:    "set-palette",
	Grow:          "grow",
	Shrink:        "shrink",
	DumpPositions: "dump-positions",
}

// ParseCommandKind is the inverse of String.
func ParseCommandKind(name string) (CommandKind, error) {
	for k, s := range commandNames {
		if s == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCommand, name)
}

func (k CommandKind) String() string {
	if s, ok := commandNames[k]; ok {
		return s
	}
	return "unknown"
}

type Command struct {
	Kind CommandKind
	N    int
}

// Input is one frame's worth of host state. Mouse is nil when the
// pointer is outside the surface.
type Input struct {
	Dt       float64
	Time     float64
	Mouse    *r2.Vec
	Attract  bool
	Repel    bool
	Commands []Command
}

// Drawable is one circle to render. Position is the top-left of the
// bounding square; Index is the circle's rank in the set.
type Drawable struct {
	Position r2.Vec
	Radius   float64
	Color    palette.Color
	Index    int
}

func (d Drawable) Center() r2.Vec {
	return r2.Add(d.Position, r2.Vec{X: d.Radius, Y: d.Radius})
}

// Frame is the render hand-off. Circles is reused by the next Tick.
type Frame struct {
	Circles  []Drawable
	Count    int
	Paused   bool
	Palette  string
	Time     float64
	MeanStep float64
}
