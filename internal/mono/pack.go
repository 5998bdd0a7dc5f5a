package mono

// Pack packs a 0/1 pixel array into row-major bytes: bit x%8 of byte
// y*stride+x/8 holds pixel (x,y), LSB = leftmost pixel of each 8-pixel
// group. Rows are byte-aligned, padding bits in the last byte of a row
// stay zero. This is the XBM bit order that drawXBitmap and drawXBMP
// expect, so packed frames go to the display driver untouched.
func Pack(mono []byte, width, height int) []byte {
	stride := BytesPerRow(width)
	out := make([]byte, stride*height)
	for y := 0; y < height; y++ {
		row := y * stride
		for x := 0; x < width; x++ {
			if mono[y*width+x] != 0 {
				out[row+x/8] |= 1 << uint(x%8)
			}
		}
	}
	return out
}

// Unpack is the inverse of Pack, reading packed bytes back into a 0/1
// pixel array. Used to verify packed frames.
func Unpack(packed []byte, width, height int) []byte {
	stride := BytesPerRow(width)
	out := make([]byte, width*height)
	for y := 0; y < height; y++ {
		row := y * stride
		for x := 0; x < width; x++ {
			out[y*width+x] = (packed[row+x/8] >> uint(x%8)) & 1
		}
	}
	return out
}

func BytesPerRow(width int) int {
	return (width + 7) / 8
}

// BytesPerFrame is the fixed packed size of one width×height frame.
func BytesPerFrame(width, height int) int {
	return BytesPerRow(width) * height
}
