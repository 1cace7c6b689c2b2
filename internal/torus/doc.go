// Package torus treats the drawing surface as a torus: the left edge
// meets the right and the top meets the bottom.
//
//   - [Surface]: wrapping, shortest displacement across seams, and the
//     extra draw positions a circle needs while it straddles an edge
//   - [Field]: the inverse-square mouse force that pushes or pulls
//     circles along the shortest wrapped path
package torus
