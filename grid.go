package scanimate

import (
	"image"
)

const (
	opaque      = 0xff
	transparent = 0x00
)

/*
MakeGrid builds the occluding mask paired with an Interleave composite:
a single-channel image where alpha 255 occludes and alpha 0 is a slit.
Position p along the scan axis is transparent iff

	(p / slitWidth) mod n == revealIndex

so the mask has n distinct phases. Sliding it by one slit width along the
scan axis reveals the next frame in the sequence; sliding by n slit widths
returns to the start. The n, orientation, and slit width must match the
Interleave call exactly.

MakeGrid fails with InvalidGridParametersError when n < 2, a dimension is
non-positive, the slit width is non-positive, or the reveal index is
outside [0, n).
*/
func MakeGrid(width, height, n int, o Orientation, opts ...Option) (*image.Alpha, error) {
	s := newSettings(opts...)
	if err := validateGrid(width, height, n, s); err != nil {
		return nil, err
	}

	mask := image.NewAlpha(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			p := x
			if o == Rows {
				p = y
			}
			if (p/s.slitWidth)%n != s.reveal {
				mask.Pix[mask.PixOffset(x, y)] = opaque
			}
		}
	}
	return mask, nil
}

func validateGrid(width, height, n int, s settings) error {
	if n < 2 {
		return &InvalidGridParametersError{Param: "n", Value: n}
	}
	if width < 1 {
		return &InvalidGridParametersError{Param: "width", Value: width}
	}
	if height < 1 {
		return &InvalidGridParametersError{Param: "height", Value: height}
	}
	if s.slitWidth < 1 {
		return &InvalidGridParametersError{Param: "slit width", Value: s.slitWidth}
	}
	if s.reveal < 0 || s.reveal >= n {
		return &InvalidGridParametersError{Param: "reveal index", Value: s.reveal}
	}
	return nil
}
