package palette

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// NumAnchors is the number of control points in every table.
const NumAnchors = 7

var (
	ErrUnknownPalette = errors.New("palette: unknown palette")
	ErrBadAnchors     = errors.New("palette: anchor table must hold 7 colours")
)

type Color struct {
	R, G, B uint8
}

func RGB(r, g, b uint8) Color { return Color{R: r, G: g, B: b} }

func (c Color) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// Hex returns the colour as #rrggbb.
func (c Color) Hex() string {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hex()
}

type Anchors [NumAnchors]Color

type Palette []Color

type Table struct {
	Name    string
	Anchors Anchors
}

var (
	Heat = Anchors{
		RGB(150, 0, 0), RGB(200, 20, 0),
		RGB(220, 100, 0), RGB(240, 150, 0),
		RGB(255, 200, 20), RGB(255, 225, 60),
		RGB(255, 255, 255),
	}

	// Primary walks red, green, blue, magenta, yellow, cyan, white.
	Primary = Anchors{
		RGB(255, 0, 0), RGB(0, 255, 0),
		RGB(0, 0, 255), RGB(255, 0, 255),
		RGB(255, 255, 0), RGB(0, 255, 255),
		RGB(255, 255, 255),
	}

	Grey = Anchors{
		RGB(25, 25, 25), RGB(40, 40, 40),
		RGB(75, 75, 75), RGB(125, 125, 125),
		RGB(175, 175, 175), RGB(225, 225, 225),
		RGB(255, 255, 255),
	}

	Rainbow = Anchors{
		RGB(255, 0, 0), RGB(255, 127, 0),
		RGB(255, 255, 0), RGB(0, 255, 0),
		RGB(0, 127, 127), RGB(0, 0, 225),
		RGB(180, 0, 255),
	}

	Gabby = Anchors{
		RGB(81, 51, 104), RGB(81, 51, 104),
		RGB(106, 102, 163), RGB(132, 169, 192),
		RGB(179, 203, 185), RGB(234, 229, 196),
		RGB(234, 229, 196),
	}

	// Builtin is the default cycling order.
	Builtin = []Table{
		{Name: "heat", Anchors: Heat},
		{Name: "primary", Anchors: Primary},
		{Name: "grey", Anchors: Grey},
		{Name: "rainbow", Anchors: Rainbow},
		{Name: "gabby", Anchors: Gabby},
	}
)

// Lookup returns the builtin table with the given name.
func Lookup(name string) (Table, error) {
	for _, t := range Builtin {
		if t.Name == name {
			return t, nil
		}
	}
	return Table{}, fmt.Errorf("%w: %q", ErrUnknownPalette, name)
}

// Names lists the builtin table names in cycling order.
func Names() []string {
	names := make([]string, len(Builtin))
	for i, t := range Builtin {
		names[i] = t.Name
	}
	return names
}

// Lerp blends two colours channel by channel, truncating toward zero.
func Lerp(left, right Color, t float64) Color {
	mix := func(a, b uint8) uint8 {
		v := float64(a)*(1-t) + float64(b)*t
		return uint8(math.Max(0, math.Min(255, v)))
	}
	return Color{
		R: mix(left.R, right.R),
		G: mix(left.G, right.G),
		B: mix(left.B, right.B),
	}
}

// Build spreads the seven anchors over n samples. Sample i sits at
// x = i*7/n; it blends anchors[floor(x)] toward the next anchor by the
// fractional part of x, and the last anchor blends toward itself.
func Build(a Anchors, n int) Palette {
	if n <= 0 {
		return Palette{}
	}

	p := make(Palette, n)
	dx := float64(NumAnchors) / float64(n)
	for i := 0; i < n; i++ {
		x := float64(i) * dx
		k := int(math.Floor(x))
		if k > NumAnchors-1 {
			k = NumAnchors - 1
		}
		t := x - float64(k)

		next := a[NumAnchors-1]
		if k < NumAnchors-1 {
			next = a[k+1]
		}
		p[i] = Lerp(a[k], next, t)
	}
	return p
}

// ParseAnchors reads a custom table from seven hex strings.
func ParseAnchors(hex []string) (Anchors, error) {
	var a Anchors
	if len(hex) != NumAnchors {
		return a, fmt.Errorf("%w: got %d", ErrBadAnchors, len(hex))
	}
	for i, h := range hex {
		c, err := colorful.Hex(h)
		if err != nil {
			return a, fmt.Errorf("palette: anchor %d: %w", i, err)
		}
		r, g, b := c.RGB255()
		a[i] = RGB(r, g, b)
	}
	return a, nil
}
