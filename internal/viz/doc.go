// Package viz is the terminal host: a Bubble Tea program that draws the
// circles on a Braille canvas, two by four sub-pixels per cell, with one
// palette colour per cell.
//
// # Key Bindings
//
//	Space      - Pause/Resume periodic motion
//	Enter      - Move every circle to the centre
//	Up/Down    - Add/remove resize_step circles
//	Left/Right - Remove/add one circle
//	C          - Cycle palette
//	P          - Log every circle's position
//	F          - Toggle the HUD
//	T          - Cycle HUD themes
//	G          - Toggle GIF recording
//	Q/Esc      - Quit
//
// # Mouse
//
// The left button pushes circles away from the pointer and the right
// button pulls them in. Clicking left while holding right cycles the
// palette.
package viz
