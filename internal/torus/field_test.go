package torus_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/san-kum/circlefun/internal/torus"
	"gonum.org/v1/gonum/spatial/r2"
)

type body struct {
	pos r2.Vec
	r   float64
	vel r2.Vec
}

type bodies struct {
	items []body
	maxR  float64
}

func (b *bodies) Len() int                    { return len(b.items) }
func (b *bodies) Radius(i int) float64        { return b.items[i].r }
func (b *bodies) Position(i int) r2.Vec       { return b.items[i].pos }
func (b *bodies) MaxRadius() float64          { return b.maxR }
func (b *bodies) AddVelocity(i int, v r2.Vec) { b.items[i].vel = r2.Add(b.items[i].vel, v) }

var _ = Describe("Field", func() {
	const (
		dt      = 0.016
		speed   = 160.0
		pullCap = 3000.0
	)
	surface := torus.Surface{W: 800, H: 600}

	field := func(mode torus.Mode, focus r2.Vec) torus.Field {
		strength := 40000.0
		if mode == torus.Attract {
			strength = 100000.0
		}
		return torus.Field{Surface: surface, Focus: focus, Mode: mode, Strength: strength, PullCap: pullCap}
	}

	It("pushes a circle away from the focus when repelling", func() {
		// centre at (110, 100), focus at (100, 100)
		v := field(torus.Repel, r2.Vec{X: 100, Y: 100}).Velocity(r2.Vec{X: 100, Y: 90}, 10, 10, dt, speed)
		Expect(v.X).To(BeNumerically(">", 0))
		Expect(v.Y).To(BeNumerically("~", 0, 1e-12))
	})

	It("pulls a circle toward the focus when attracting", func() {
		v := field(torus.Attract, r2.Vec{X: 100, Y: 100}).Velocity(r2.Vec{X: 190, Y: 90}, 10, 10, dt, speed)
		Expect(v.X).To(BeNumerically("<", 0))
	})

	It("follows the inverse square law", func() {
		f := field(torus.Repel, r2.Vec{})
		near := f.Velocity(r2.Vec{X: 40, Y: -10}, 10, 10, dt, speed)
		far := f.Velocity(r2.Vec{X: 90, Y: -10}, 10, 10, dt, speed)
		Expect(r2.Norm(near) / r2.Norm(far)).To(BeNumerically("~", 4, 1e-9))
	})

	It("moves small circles more than large ones", func() {
		f := field(torus.Repel, r2.Vec{X: 400, Y: 300})
		big := f.Velocity(r2.Vec{X: 500 - 50, Y: 300 - 50}, 50, 50, dt, speed)
		small := f.Velocity(r2.Vec{X: 500 - 25, Y: 300 - 25}, 25, 50, dt, speed)
		Expect(r2.Norm(small) / r2.Norm(big)).To(BeNumerically("~", 4, 1e-9))
	})

	It("reaches across the seam", func() {
		// centre at (790, 300), focus at (10, 300): 20px apart through the seam.
		v := field(torus.Repel, r2.Vec{X: 10, Y: 300}).Velocity(r2.Vec{X: 780, Y: 290}, 10, 10, dt, speed)
		Expect(v.X).To(BeNumerically("<", 0))

		want := speed * dt * 40000.0 / (20 * 20)
		Expect(r2.Norm(v)).To(BeNumerically("~", want, 1e-6))
	})

	DescribeTable("never exceeds the pull cap",
		func(dist float64) {
			f := field(torus.Attract, r2.Vec{X: 400, Y: 300})
			v := f.Velocity(r2.Vec{X: 400 - 5 + dist, Y: 300 - 5}, 5, 50, dt, speed)
			Expect(r2.Norm(v)).To(BeNumerically("<=", pullCap*dt+1e-9))
			Expect(math.IsNaN(v.X) || math.IsNaN(v.Y)).To(BeFalse())
		},
		Entry("far", 200.0),
		Entry("close", 1.0),
		Entry("very close", 1e-3),
		Entry("touching", 1e-4),
		Entry("coincident", 0.0),
	)

	It("contributes nothing at zero distance", func() {
		for _, mode := range []torus.Mode{torus.Repel, torus.Attract} {
			v := field(mode, r2.Vec{X: 15, Y: 15}).Velocity(r2.Vec{X: 10, Y: 10}, 5, 5, dt, speed)
			Expect(v).To(Equal(r2.Vec{}))
		}
	})

	It("ignores degenerate radii", func() {
		f := field(torus.Repel, r2.Vec{})
		Expect(f.Velocity(r2.Vec{X: 50, Y: 50}, 0, 10, dt, speed)).To(Equal(r2.Vec{}))
		Expect(f.Velocity(r2.Vec{X: 50, Y: 50}, 10, 0, dt, speed)).To(Equal(r2.Vec{}))
	})

	It("adds into every body's accumulator", func() {
		b := &bodies{
			maxR: 20,
			items: []body{
				{pos: r2.Vec{X: 100, Y: 100}, r: 20, vel: r2.Vec{X: 1, Y: 1}},
				{pos: r2.Vec{X: 500, Y: 400}, r: 10},
			},
		}
		f := field(torus.Attract, r2.Vec{X: 300, Y: 300})
		first := f.Velocity(b.items[0].pos, 20, 20, dt, speed)

		f.Apply(b, dt, speed)

		Expect(b.items[0].vel).To(Equal(r2.Add(r2.Vec{X: 1, Y: 1}, first)))
		Expect(b.items[1].vel).NotTo(Equal(r2.Vec{}))
	})

	It("names its modes", func() {
		Expect(torus.Attract.String()).To(Equal("attract"))
		Expect(torus.Repel.String()).To(Equal("repel"))
	})
})
