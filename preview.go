package scanimate

import (
	"image"
	"image/color"
	"image/color/palette"
	"image/draw"
	"image/gif"
)

/*
Preview simulates sliding the grid across a composite. It renders one GIF
frame per phase: composite pixels show through the slits, everything under
an opaque grid position is inked black. Played in a loop, the result shows
the same illusion a printed grid produces when dragged across the page.

The n, orientation, and slit width must match the Interleave call that
produced the composite. Frames are quantized with Floyd-Steinberg
diffusion onto the Plan 9 palette.
*/
func Preview(composite image.Image, n int, o Orientation, opts ...Option) (*gif.GIF, error) {
	s := newSettings(opts...)
	bounds := composite.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if err := validateGrid(width, height, n, s); err != nil {
		return nil, err
	}

	anim := &gif.GIF{LoopCount: 0}
	for phase := 0; phase < n; phase++ {
		mask, err := MakeGrid(width, height, n, o,
			WithSlitWidth(s.slitWidth),
			WithRevealIndex((s.reveal+phase)%n))
		if err != nil {
			return nil, err
		}

		frame := image.NewRGBA(image.Rect(0, 0, width, height))
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				if mask.Pix[mask.PixOffset(x, y)] == opaque {
					frame.Set(x, y, color.Black)
				} else {
					frame.Set(x, y, composite.At(bounds.Min.X+x, bounds.Min.Y+y))
				}
			}
		}

		paletted := image.NewPaletted(frame.Bounds(), palette.Plan9)
		draw.FloydSteinberg.Draw(paletted, paletted.Bounds(), frame, image.Point{})
		anim.Image = append(anim.Image, paletted)
		anim.Delay = append(anim.Delay, s.delay)
	}
	return anim, nil
}
