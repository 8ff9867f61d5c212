package game

import "math"

// glowPixels renders a soft white disc as premultiplied RGBA, size x size.
// Alpha falls off quadratically from the centre and is zero at the rim.
func glowPixels(size int) []byte {
	pix := make([]byte, size*size*4)
	if size <= 0 {
		return pix
	}

	half := float64(size) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := (float64(x) + 0.5 - half) / half
			dy := (float64(y) + 0.5 - half) / half
			falloff := clamp01(1 - math.Hypot(dx, dy))
			a := uint8(falloff * falloff * 255)

			i := (y*size + x) * 4
			pix[i+0] = a
			pix[i+1] = a
			pix[i+2] = a
			pix[i+3] = a
		}
	}
	return pix
}
