// Package palette builds the colour ramps that tint the circles.
//
// Each ramp is derived from a fixed table of seven anchor colours:
//
//   - [Build]: interpolates an anchor table into exactly N colours
//   - [Set]: every known table built for the same N, kept in sync
//   - [ParseAnchors]: custom tables written as seven #rrggbb strings
//
// Index 0 of a ramp belongs to the largest circle, so the anchors read
// from "big" to "small".
package palette
