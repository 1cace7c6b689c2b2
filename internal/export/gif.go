package export

import (
	"image"
	"image/color"
	"image/gif"
	"io"
	"math"
	"os"

	"github.com/san-kum/circlefun/internal/engine"
	"github.com/san-kum/circlefun/internal/palette"
	"gonum.org/v1/gonum/spatial/r2"
)

const maxGIFColors = 256

// GIFRecorder rasterises frames into an animated GIF.
type GIFRecorder struct {
	dims   r2.Vec
	scale  float64
	delay  int
	frames []*image.Paletted
}

// NewGIFRecorder records a dims-sized surface at scale pixels per unit.
// delay is in hundredths of a second, at least 1; viewers replace a zero
// delay with their own default.
func NewGIFRecorder(dims r2.Vec, scale float64, delay int) *GIFRecorder {
	if scale <= 0 {
		scale = 1
	}
	delay = max(1, delay)
	return &GIFRecorder{dims: dims, scale: scale, delay: delay}
}

func (g *GIFRecorder) Len() int { return len(g.frames) }

// Add rasterises f. Drawables later in the frame paint over earlier ones.
func (g *GIFRecorder) Add(f engine.Frame) {
	w := int(math.Ceil(g.dims.X * g.scale))
	h := int(math.Ceil(g.dims.Y * g.scale))

	pal := color.Palette{color.RGBA{R: 0x0a, G: 0x0a, B: 0x0a, A: 0xff}}
	index := make(map[palette.Color]uint8)
	for _, d := range f.Circles {
		if _, ok := index[d.Color]; ok || len(pal) >= maxGIFColors {
			continue
		}
		index[d.Color] = uint8(len(pal))
		pal = append(pal, d.Color.RGBA())
	}

	img := image.NewPaletted(image.Rect(0, 0, w, h), pal)
	for _, d := range f.Circles {
		idx, ok := index[d.Color]
		if !ok {
			idx = uint8(pal.Index(d.Color.RGBA()))
		}
		g.fill(img, d.Center(), d.Radius, idx)
	}
	g.frames = append(g.frames, img)
}

func (g *GIFRecorder) fill(img *image.Paletted, c r2.Vec, r float64, idx uint8) {
	cx, cy, rs := c.X*g.scale, c.Y*g.scale, r*g.scale
	b := img.Bounds()
	x0 := max(b.Min.X, int(math.Floor(cx-rs)))
	x1 := min(b.Max.X-1, int(math.Ceil(cx+rs)))
	y0 := max(b.Min.Y, int(math.Floor(cy-rs)))
	y1 := min(b.Max.Y-1, int(math.Ceil(cy+rs)))
	r2s := rs * rs
	for y := y0; y <= y1; y++ {
		dy := float64(y) + 0.5 - cy
		for x := x0; x <= x1; x++ {
			dx := float64(x) + 0.5 - cx
			if dx*dx+dy*dy <= r2s {
				img.SetColorIndex(x, y, idx)
			}
		}
	}
}

func (g *GIFRecorder) Encode(w io.Writer) error {
	anim := gif.GIF{LoopCount: 0}
	for _, frame := range g.frames {
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, g.delay)
	}
	return gif.EncodeAll(w, &anim)
}

func (g *GIFRecorder) Save(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return g.Encode(f)
}
