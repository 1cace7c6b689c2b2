package torus_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/san-kum/circlefun/internal/torus"
	"gonum.org/v1/gonum/spatial/r2"
)

var _ = Describe("Surface", func() {
	s := torus.Surface{W: 800, H: 600}

	Describe("Wrap", func() {
		DescribeTable("maps into the surface",
			func(in, want r2.Vec) {
				got := s.Wrap(in)
				Expect(got.X).To(BeNumerically("~", want.X, 1e-9))
				Expect(got.Y).To(BeNumerically("~", want.Y, 1e-9))
			},
			Entry("inside", r2.Vec{X: 10, Y: 20}, r2.Vec{X: 10, Y: 20}),
			Entry("past right", r2.Vec{X: 810, Y: 20}, r2.Vec{X: 10, Y: 20}),
			Entry("left of origin", r2.Vec{X: -10, Y: -20}, r2.Vec{X: 790, Y: 580}),
			Entry("several laps", r2.Vec{X: 3*800 + 5, Y: -4*600 - 5}, r2.Vec{X: 5, Y: 595}),
			Entry("exact edge", r2.Vec{X: 800, Y: 600}, r2.Vec{X: 0, Y: 0}),
		)
	})

	Describe("ShortestDelta", func() {
		It("keeps a displacement that is already shortest", func() {
			Expect(s.ShortestDelta(r2.Vec{X: 100, Y: -50})).To(Equal(r2.Vec{X: 100, Y: -50}))
		})

		It("goes across the seam when that is shorter", func() {
			Expect(s.ShortestDelta(r2.Vec{X: 700, Y: -500})).To(Equal(r2.Vec{X: -100, Y: 100}))
		})

		It("treats each axis independently", func() {
			Expect(s.ShortestDelta(r2.Vec{X: -790, Y: 10})).To(Equal(r2.Vec{X: 10, Y: 10}))
		})
	})

	Describe("Copies", func() {
		It("never wraps a zero radius circle at the origin", func() {
			Expect(s.Copies(r2.Vec{}, 0)).To(Equal([]r2.Vec{{}}))
		})

		It("does not wrap a circle at the origin that fits on screen", func() {
			Expect(s.Copies(r2.Vec{}, 25)).To(HaveLen(1))
		})

		It("adds a left copy when crossing the right edge", func() {
			Expect(s.Copies(r2.Vec{X: 780, Y: 100}, 20)).To(Equal([]r2.Vec{
				{X: 780, Y: 100},
				{X: -20, Y: 100},
			}))
		})

		It("adds a top copy when crossing the bottom edge", func() {
			Expect(s.Copies(r2.Vec{X: 100, Y: 590}, 10)).To(Equal([]r2.Vec{
				{X: 100, Y: 590},
				{X: 100, Y: -10},
			}))
		})

		It("treats a circle hanging off the left edge as crossing the right", func() {
			Expect(s.Copies(r2.Vec{X: -5, Y: 100}, 10)).To(Equal([]r2.Vec{
				{X: 795, Y: 100},
				{X: -5, Y: 100},
			}))
		})

		It("draws four copies in a corner", func() {
			got := s.Copies(r2.Vec{X: -1, Y: -1}, 5)
			Expect(got).To(ConsistOf(
				r2.Vec{X: 799, Y: 599},
				r2.Vec{X: -1, Y: 599},
				r2.Vec{X: 799, Y: -1},
				r2.Vec{X: -1, Y: -1},
			))
		})

		It("leaves the caller's position untouched", func() {
			pos := r2.Vec{X: -3000, Y: 7000}
			_ = s.Copies(pos, 30)
			Expect(pos).To(Equal(r2.Vec{X: -3000, Y: 7000}))
		})

		It("appends without reallocating a roomy slice", func() {
			buf := make([]r2.Vec, 0, 8)
			out := s.AppendCopies(buf, r2.Vec{X: 795, Y: 595}, 10)
			Expect(out).To(HaveLen(4))
			Expect(cap(out)).To(Equal(8))
		})
	})
})
