package blend

// div65025 divides x by 255*255, rounding to nearest.
// Coverage and tint alpha are both applied before this single rounding
// step, so an opaque tint at full coverage reproduces the tint exactly.
func div65025(x uint32) uint32 {
	return (x + 65025/2) / 65025
}

// clamp255 clamps x to byte range [0, 255].
func clamp255(x uint32) byte {
	if x > 255 {
		return 255
	}
	return byte(x)
}
