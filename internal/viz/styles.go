package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/san-kum/circlefun/internal/palette"
)

var (
	StatusRunning = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00ff88"))

	StatusPaused = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffaa00"))

	StatusRecording = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ff4444")).
			Blink(true)
)

// styles are the theme-dependent styles for one render.
type styles struct {
	label lipgloss.Style
	value lipgloss.Style
	title lipgloss.Style
	hint  lipgloss.Style
	key   lipgloss.Style
	spark lipgloss.Style
}

func newStyles(t Theme) styles {
	return styles{
		label: lipgloss.NewStyle().Foreground(t.Muted),
		value: lipgloss.NewStyle().Foreground(t.Text).Bold(true),
		title: lipgloss.NewStyle().Foreground(t.Primary).Bold(true),
		hint:  lipgloss.NewStyle().Foreground(t.Muted).Italic(true),
		key:   lipgloss.NewStyle().Foreground(t.Accent).Bold(true),
		spark: lipgloss.NewStyle().Foreground(t.Accent),
	}
}

// GradientText blends each rune's colour from start to end.
func GradientText(text string, start, end lipgloss.Color) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}
	a, errA := colorful.Hex(string(start))
	b, errB := colorful.Hex(string(end))
	if errA != nil || errB != nil {
		return text
	}

	var result strings.Builder
	for i, c := range runes {
		t := 0.0
		if len(runes) > 1 {
			t = float64(i) / float64(len(runes)-1)
		}
		col := lipgloss.Color(a.BlendRgb(b, t).Clamped().Hex())
		result.WriteString(lipgloss.NewStyle().Foreground(col).Render(string(c)))
	}
	return result.String()
}

// Swatch renders width blocks sampled evenly from p.
func Swatch(p palette.Palette, width int) string {
	if len(p) == 0 || width <= 0 {
		return ""
	}
	var b strings.Builder
	for i := 0; i < width; i++ {
		c := p[i*len(p)/width]
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex())).Render("█"))
	}
	return b.String()
}

// SparklineChart renders the last width values as block characters.
func SparklineChart(values []float64, width int) string {
	if len(values) == 0 || width <= 0 {
		return strings.Repeat("─", max(0, width))
	}
	if len(values) > width {
		values = values[len(values)-width:]
	}

	chars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	lo, hi := values[0], values[0]
	for _, v := range values {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	span := hi - lo
	if span == 0 {
		span = 1
	}

	out := make([]rune, len(values))
	for i, v := range values {
		idx := int((v - lo) / span * float64(len(chars)-1))
		out[i] = chars[max(0, min(len(chars)-1, idx))]
	}
	return string(out)
}
