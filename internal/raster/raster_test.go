package raster

import (
	"image"
	"image/color"
	"image/draw"
	"testing"
)

func solid(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{c}, image.Point{}, draw.Src)
	return img
}

func TestRasterizeFullBleed(t *testing.T) {
	// any source size stretches to fill the surface exactly
	r := New(16, 8, Horizontal)
	src := solid(100, 30, color.RGBA{200, 10, 50, 255})
	got := r.Rasterize(src)

	if len(got) != 16*8*4 {
		t.Fatalf("got %d bytes, want %d", len(got), 16*8*4)
	}
	for i := 0; i < 16*8; i++ {
		if got[i*4] != 200 || got[i*4+1] != 10 || got[i*4+2] != 50 {
			t.Fatalf("pixel %d = %v, want [200 10 50]", i, got[i*4:i*4+4])
		}
	}
}

func TestRasterizeSurfaceReuse(t *testing.T) {
	// the surface is reused, returned buffers must still be independent
	r := New(4, 4, Horizontal)
	white := r.Rasterize(solid(4, 4, color.RGBA{255, 255, 255, 255}))
	black := r.Rasterize(solid(4, 4, color.RGBA{0, 0, 0, 255}))
	if white[0] != 255 {
		t.Errorf("first frame was overwritten by the second draw")
	}
	if black[0] != 0 {
		t.Errorf("second frame did not overwrite the surface")
	}
}

func TestRasterizeVerticalRotation(t *testing.T) {
	// source rows become columns after the 90° clockwise rotation:
	// with a 3x2 surface the scratch is 2x3, row colors map to columns
	// right-to-left (top row ends up as the rightmost column).
	r := New(3, 2, Vertical)

	src := image.NewRGBA(image.Rect(0, 0, 2, 3))
	rows := []color.RGBA{
		{255, 0, 0, 255},
		{0, 255, 0, 255},
		{0, 0, 255, 255},
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 2; x++ {
			src.SetRGBA(x, y, rows[y])
		}
	}

	got := r.Rasterize(src)
	wantCols := []color.RGBA{rows[2], rows[1], rows[0]}
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			i := (y*3 + x) * 4
			want := wantCols[x]
			if got[i] != want.R || got[i+1] != want.G || got[i+2] != want.B {
				t.Errorf("pixel (%d,%d) = %v, want %v", x, y, got[i:i+4], want)
			}
		}
	}
}

func TestParseOrientation(t *testing.T) {
	if ParseOrientation("vertical") != Vertical {
		t.Errorf("vertical not recognized")
	}
	if ParseOrientation("horizontal") != Horizontal {
		t.Errorf("horizontal not recognized")
	}
	if ParseOrientation("sideways") != Horizontal {
		t.Errorf("unknown orientation should fall back to horizontal")
	}
}
