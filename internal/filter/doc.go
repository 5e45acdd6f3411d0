// Package filter implements the pixel filters backing inkwash's
// post-stroke diffusion. The filters operate on bare 3-channel 8-bit
// buffers so they stay decoupled from the engine's canvas types.
package filter
