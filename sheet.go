package scanimate

import (
	"image"
	"image/color"

	"github.com/llgcode/draw2d/draw2dimg"
	"github.com/llgcode/draw2d/draw2dkit"
)

/*
PrintSheet renders the grid for physical use: black ink on white, sized for
printing on a transparency and cutting out. WithMargin adds white border
around the pattern; when a margin is present, crop marks are drawn at the
inner corners to guide the blade. The pattern itself follows the same
phase convention as MakeGrid, so a sheet printed from the same n,
orientation, and slit width aligns with the matching composite.
*/
func PrintSheet(width, height, n int, o Orientation, opts ...Option) (*image.RGBA, error) {
	s := newSettings(opts...)
	if err := validateGrid(width, height, n, s); err != nil {
		return nil, err
	}
	if s.margin < 0 {
		return nil, &InvalidGridParametersError{Param: "margin", Value: s.margin}
	}

	sheet := image.NewRGBA(image.Rect(0, 0, width+2*s.margin, height+2*s.margin))
	gc := draw2dimg.NewGraphicContext(sheet)

	gc.SetFillColor(color.White)
	draw2dkit.Rectangle(gc, 0, 0, float64(sheet.Rect.Dx()), float64(sheet.Rect.Dy()))
	gc.Fill()

	span := width
	if o == Rows {
		span = height
	}

	m := float64(s.margin)
	gc.SetFillColor(color.Black)
	for k := 0; k*s.slitWidth < span; k++ {
		if k%n == s.reveal {
			continue
		}
		lo := k * s.slitWidth
		hi := lo + s.slitWidth
		if hi > span {
			hi = span
		}
		if o == Columns {
			draw2dkit.Rectangle(gc, m+float64(lo), m, m+float64(hi), m+float64(height))
		} else {
			draw2dkit.Rectangle(gc, m, m+float64(lo), m+float64(width), m+float64(hi))
		}
		gc.Fill()
	}

	if s.margin > 0 {
		cropMarks(gc, m, float64(width), float64(height))
	}
	return sheet, nil
}

// cropMarks draws a pair of ticks extending outward from each corner of
// the pattern area.
func cropMarks(gc *draw2dimg.GraphicContext, m, w, h float64) {
	tick := m / 2
	gc.SetStrokeColor(color.Black)
	gc.SetLineWidth(1)
	for _, corner := range [4][2]float64{
		{m, m},
		{m + w, m},
		{m, m + h},
		{m + w, m + h},
	} {
		x, y := corner[0], corner[1]
		dx, dy := tick, tick
		if x > m {
			dx = -tick
		}
		if y > m {
			dy = -tick
		}
		gc.MoveTo(x-dx, y)
		gc.LineTo(x, y)
		gc.MoveTo(x, y-dy)
		gc.LineTo(x, y)
	}
	gc.Stroke()
}
