package scanimate

import (
	"image"
)

/*
Interleave partitions one output raster among the given frames: each slit
position along the scan axis (columns of width slitWidth when o is Columns,
rows when o is Rows) is copied whole from frame (p / slitWidth) mod N. The
composite has the same dimensions as one frame, so when the scan-axis
length is not an exact multiple of N*slitWidth the trailing partial period
simply carries the leading frames of the next cycle.

Interleave is pure and deterministic. It fails with DimensionMismatchError
when the frames disagree in size, and with InvalidGridParametersError when
fewer than two frames or a non-positive slit width is given. Pair the
result with MakeGrid called with the same n, orientation, and slit width.
*/
func Interleave(frames []image.Image, o Orientation, opts ...Option) (*image.RGBA, error) {
	s := newSettings(opts...)
	if len(frames) < 2 {
		return nil, &InvalidGridParametersError{Param: "frames", Value: len(frames)}
	}
	if s.slitWidth < 1 {
		return nil, &InvalidGridParametersError{Param: "slit width", Value: s.slitWidth}
	}
	want := frames[0].Bounds().Size()
	for i, f := range frames[1:] {
		if got := f.Bounds().Size(); !got.Eq(want) {
			return nil, &DimensionMismatchError{Frame: i + 1, Got: got, Want: want}
		}
	}

	n := len(frames)
	composite := image.NewRGBA(image.Rect(0, 0, want.X, want.Y))

	// Looping over Y first and X second is more likely to result in better
	// memory access patterns than X first and Y second. A frame's bounds do
	// not necessarily start at (0, 0), so source pixels are read relative to
	// each frame's Min.
	for y := 0; y < want.Y; y++ {
		for x := 0; x < want.X; x++ {
			p := x
			if o == Rows {
				p = y
			}
			src := frames[(p/s.slitWidth)%n]
			min := src.Bounds().Min
			composite.Set(x, y, src.At(min.X+x, min.Y+y))
		}
	}
	return composite, nil
}
