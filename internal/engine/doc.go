// Package engine drives the circle simulation one frame at a time.
//
// A host (window, terminal, or headless runner) calls [Engine.Tick] once
// per frame with the frame's delta time, the accumulated time, the mouse
// state and any queued [Command]s. Tick applies the mouse field, the
// periodic drift and the position update, then returns a [Frame]: every
// circle to draw, including the extra copies needed where a circle
// straddles an edge of the wrapped surface.
//
// # Thread Safety
//
// An Engine is NOT safe for concurrent use; hosts tick it from their own
// frame loop.
package engine
