package common

// Logical screen size in pixels.
const (
	BaseWidth  = 960
	BaseHeight = 540
)
