package mono

// Quantize thresholds an RGBA buffer into a width*height array of 0/1
// values, row-major. Luma uses the standard 0.299/0.587/0.114 weights in
// integer math so the result is bit-exact across runs. Alpha is ignored.
// A pixel is on when its luma is >= threshold (inclusive on the high side).
func Quantize(rgba []byte, width, height, threshold int) []byte {
	out := make([]byte, width*height)
	for i := range out {
		r := int(rgba[i*4])
		g := int(rgba[i*4+1])
		b := int(rgba[i*4+2])
		y := (299*r + 587*g + 114*b) / 1000
		if y >= threshold {
			out[i] = 1
		}
	}
	return out
}
