package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/san-kum/circlefun/internal/engine"
	"gonum.org/v1/gonum/spatial/r2"
)

const background = "#0a0a0a"

// FrameSVG writes every drawable in f, wrap copies included, clipped to a
// dims-sized viewport.
func FrameSVG(w io.Writer, f engine.Frame, dims r2.Vec) error {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
<g>
`, dims.X, dims.Y, dims.X, dims.Y, background))

	for _, d := range f.Circles {
		c := d.Center()
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>
`, c.X, c.Y, d.Radius, d.Color.Hex()))
	}

	sb.WriteString("</g>\n")
	sb.WriteString(fmt.Sprintf(`<text x="8" y="20" fill="#ffffff" font-family="monospace" font-size="14">circles: %d | palette: %s</text>
`, f.Count, f.Palette))
	sb.WriteString("</svg>\n")

	_, err := io.WriteString(w, sb.String())
	return err
}
