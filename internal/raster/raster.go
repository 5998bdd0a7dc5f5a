package raster

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

// ParseOrientation maps a config string to an orientation.
// Anything but "vertical" is horizontal.
func ParseOrientation(s string) Orientation {
	if s == "vertical" {
		return Vertical
	}
	return Horizontal
}

func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Rasterizer stretches decoded frames into a fixed-size RGBA surface.
// The surface is reused across frames and overwritten in full on every
// draw, so a Rasterizer must not be shared between concurrent runs.
type Rasterizer struct {
	width       int
	height      int
	orientation Orientation
	surface     *image.RGBA
	scratch     *image.RGBA // pre-rotation buffer, vertical only
}

func New(width, height int, orientation Orientation) *Rasterizer {
	r := &Rasterizer{
		width:       width,
		height:      height,
		orientation: orientation,
		surface:     image.NewRGBA(image.Rect(0, 0, width, height)),
	}
	if orientation == Vertical {
		r.scratch = image.NewRGBA(image.Rect(0, 0, height, width))
	}
	return r
}

// Width and Height report the rasterized frame shape. The post-rotation
// buffer shape is authoritative and always matches the requested size.
func (r *Rasterizer) Width() int  { return r.width }
func (r *Rasterizer) Height() int { return r.height }

// Rasterize scales src to fill the whole surface (aspect ratio is not
// preserved) and returns a copy of the raw RGBA pixels, 4 bytes per pixel,
// row-major. Vertical orientation rotates the frame 90 degrees clockwise.
func (r *Rasterizer) Rasterize(src image.Image) []byte {
	if r.orientation == Vertical {
		xdraw.ApproxBiLinear.Scale(r.scratch, r.scratch.Bounds(), src, src.Bounds(), xdraw.Src, nil)
		rotateCW(r.surface, r.scratch)
	} else {
		xdraw.ApproxBiLinear.Scale(r.surface, r.surface.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	}
	out := make([]byte, len(r.surface.Pix))
	copy(out, r.surface.Pix)
	return out
}

// rotateCW writes src rotated 90 degrees clockwise into dst.
// dst is w×h, src must be h×w.
func rotateCW(dst, src *image.RGBA) {
	w := dst.Rect.Dx()
	h := dst.Rect.Dy()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			si := src.PixOffset(y, w-1-x)
			di := dst.PixOffset(x, y)
			copy(dst.Pix[di:di+4], src.Pix[si:si+4])
		}
	}
}
