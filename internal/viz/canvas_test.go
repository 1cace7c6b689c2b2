package viz

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/circlefun/internal/config"
	"github.com/san-kum/circlefun/internal/engine"
	"github.com/san-kum/circlefun/internal/palette"
)

func TestCanvasSet(t *testing.T) {
	c := NewCanvas(2, 1)
	red := palette.Color{R: 255}

	c.Set(0, 0, red)
	c.Set(3, 3, red)
	c.Set(-1, 0, red)
	c.Set(4, 0, red)

	if c.Grid[0][0] != 0x2801 {
		t.Errorf("expected dot 1, got %U", c.Grid[0][0])
	}
	if c.Grid[0][1] != 0x2880 {
		t.Errorf("expected dot 8, got %U", c.Grid[0][1])
	}
	if c.Colors[0][1] != red {
		t.Errorf("expected red cell, got %v", c.Colors[0][1])
	}

	c.Clear()
	if c.String() != "\u2800\u2800\n" {
		t.Errorf("expected blank canvas, got %q", c.String())
	}
}

func TestCanvasFillCircle(t *testing.T) {
	tests := []struct {
		name     string
		cx, cy   float64
		r        float64
		wantLit  []int
		wantDark []int
	}{
		{"centred", 10, 10, 3, []int{10*20 + 10, 8*20 + 10}, []int{0, 19*20 + 19}},
		{"clipped at origin", 0, 0, 2, []int{0, 1}, []int{10*20 + 10}},
		{"zero radius", 10, 10, 0, nil, []int{10*20 + 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCanvas(10, 5)
			c.FillCircle(tt.cx, tt.cy, tt.r, palette.Color{G: 255})
			for _, p := range tt.wantLit {
				if !lit(c, p%20, p/20) {
					t.Errorf("expected sub-pixel (%d,%d) lit", p%20, p/20)
				}
			}
			for _, p := range tt.wantDark {
				if lit(c, p%20, p/20) {
					t.Errorf("expected sub-pixel (%d,%d) dark", p%20, p/20)
				}
			}
		})
	}
}

func lit(c *Canvas, x, y int) bool {
	return c.Grid[y/4][x/2]&rune(pixelMap[y%4][x%2]) != 0
}

func TestCanvasRender(t *testing.T) {
	c := NewCanvas(4, 2)
	c.Set(0, 0, palette.Color{R: 255})
	c.Set(2, 0, palette.Color{R: 255})
	c.Set(6, 4, palette.Color{B: 255})

	out := c.Render()
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	for _, r := range []rune{0x2801, 0x2800} {
		if !strings.ContainsRune(lines[0], r) {
			t.Errorf("expected %U in first row", r)
		}
	}
}

func TestSparklineChart(t *testing.T) {
	if got := SparklineChart([]float64{0, 1, 2, 3}, 10); got != "▁▃▅█" {
		t.Errorf("unexpected sparkline %q", got)
	}
	if got := SparklineChart(nil, 3); got != "───" {
		t.Errorf("unexpected empty sparkline %q", got)
	}
	if got := []rune(SparklineChart([]float64{1, 2, 3, 4, 5}, 2)); len(got) != 2 {
		t.Errorf("expected 2 runes, got %d", len(got))
	}
}

func TestNextTheme(t *testing.T) {
	th := GetTheme("nope")
	seen := map[string]bool{}
	for range Themes {
		seen[th.Name] = true
		th = NextTheme(th)
	}
	if len(seen) != len(Themes) || th.Name != ThemeCyberpunk.Name {
		t.Errorf("expected to visit every theme and wrap, saw %v", seen)
	}
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Circles = 5
	m, err := NewModel(Options{Config: cfg})
	if err != nil {
		t.Fatalf("new model: %v", err)
	}
	return m
}

func TestModelKeys(t *testing.T) {
	m := newTestModel(t)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(Model)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'c'}})
	m = next.(Model)
	if len(m.pending) != 2 {
		t.Fatalf("expected 2 queued commands, got %d", len(m.pending))
	}

	m.step(m.last)
	if m.frame.Count != 5+m.cfg.ResizeStep {
		t.Errorf("expected %d circles, got %d", 5+m.cfg.ResizeStep, m.frame.Count)
	}
	if m.frame.Palette != "primary" {
		t.Errorf("expected primary after cycling heat, got %s", m.frame.Palette)
	}
	if len(m.pending) != 0 {
		t.Errorf("expected queue drained, got %d", len(m.pending))
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Error("expected quit command")
	}
}

func TestModelMouse(t *testing.T) {
	m := newTestModel(t)

	m.handleMouse(tea.MouseMsg{X: 3, Y: 2, Action: tea.MouseActionPress, Button: tea.MouseButtonRight})
	if !m.attract || m.repel {
		t.Fatal("expected right button to attract")
	}
	if m.mouse == nil || m.mouse.X != 7 || m.mouse.Y != 10 {
		t.Errorf("unexpected mouse position %v", m.mouse)
	}

	m.handleMouse(tea.MouseMsg{X: 3, Y: 2, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if m.repel {
		t.Error("expected left press under right to cycle, not repel")
	}
	if len(m.pending) != 1 || m.pending[0].Kind != engine.CyclePalette {
		t.Errorf("expected a queued palette cycle, got %v", m.pending)
	}

	m.handleMouse(tea.MouseMsg{X: 3, Y: 2, Action: tea.MouseActionRelease})
	if m.attract || m.repel {
		t.Error("expected release to clear both buttons")
	}

	m.handleMouse(tea.MouseMsg{X: 0, Y: m.rows, Action: tea.MouseActionMotion})
	if m.mouse != nil {
		t.Error("expected pointer on the HUD line to leave the surface")
	}
}

func TestModelResize(t *testing.T) {
	m := newTestModel(t)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 11})
	m = next.(Model)

	if m.canvas.Width != 40 || m.canvas.Height != 10 {
		t.Errorf("expected 40x10 canvas, got %dx%d", m.canvas.Width, m.canvas.Height)
	}
	if d := m.eng.Surface().Dims(); d.X != 80 || d.Y != 40 {
		t.Errorf("expected 80x40 surface, got %v", d)
	}
}
