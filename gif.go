package scanimate

import (
	"errors"
	"image"
	"image/gif"
	"io"
)

/*
DecodeFrames decodes an animated GIF into an ordered sequence of full-size
RGBA frames suitable for Interleave. GIF frames often cover only the
sub-rectangle that changed, so each one is composed onto a persistent
screen honoring its disposal method before being captured. Failures are
reported as LoadError.
*/
func DecodeFrames(r io.Reader) ([]image.Image, error) {
	giff, err := gif.DecodeAll(r)
	if err != nil {
		return nil, &LoadError{Err: err}
	}
	if len(giff.Image) == 0 {
		return nil, &LoadError{Err: errors.New("gif has no frames")}
	}

	width, height := giff.Config.Width, giff.Config.Height
	if width == 0 || height == 0 {
		size := giff.Image[0].Bounds().Size()
		width, height = size.X, size.Y
	}

	screen := image.NewRGBA(image.Rect(0, 0, width, height))
	frames := make([]image.Image, 0, len(giff.Image))
	for i, frame := range giff.Image {
		var disposal byte
		if i < len(giff.Disposal) {
			disposal = giff.Disposal[i]
		}
		switch disposal {
		// Dispose previous essentially means draw then undo
		case gif.DisposalPrevious:
			previous := image.NewRGBA(screen.Bounds())
			copy(previous.Pix, screen.Pix)
			drawFrame(screen, frame)
			frames = append(frames, snapshot(screen))
			screen = previous
		// Dispose background clears the just-drawn region afterwards
		case gif.DisposalBackground:
			drawFrame(screen, frame)
			frames = append(frames, snapshot(screen))
			clearRect(screen, frame.Bounds())
		// Dispose none or undefined means we just draw what we got over top
		default:
			drawFrame(screen, frame)
			frames = append(frames, snapshot(screen))
		}
	}
	return frames, nil
}

// Downsample keeps every factor-th frame, starting with the first. A
// factor of one or less is the identity. Thinning a long GIF keeps the
// phase count, and with it the print resolution the illusion needs,
// manageable.
func Downsample(frames []image.Image, factor int) []image.Image {
	if factor <= 1 {
		return frames
	}
	out := make([]image.Image, 0, (len(frames)+factor-1)/factor)
	for i := 0; i < len(frames); i += factor {
		out = append(out, frames[i])
	}
	return out
}

func drawFrame(target *image.RGBA, source image.Image) {
	bounds := source.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := source.At(x, y)
			if _, _, _, a := c.RGBA(); a == 0 {
				continue
			}
			target.Set(x, y, c)
		}
	}
}

func snapshot(screen *image.RGBA) *image.RGBA {
	dup := image.NewRGBA(screen.Bounds())
	copy(dup.Pix, screen.Pix)
	return dup
}

func clearRect(screen *image.RGBA, r image.Rectangle) {
	r = r.Intersect(screen.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		i := screen.PixOffset(r.Min.X, y)
		for x := 0; x < r.Dx()*4; x++ {
			screen.Pix[i+x] = 0
		}
	}
}
