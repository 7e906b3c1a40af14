package scanimate_test

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"strings"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/kevin-cantwell/scanimate"
)

var monochrome = color.Palette{color.Black, color.White}

func paletted(r image.Rectangle, index uint8) *image.Paletted {
	img := image.NewPaletted(r, monochrome)
	for i := range img.Pix {
		img.Pix[i] = index
	}
	return img
}

func encodeGIF(g *gif.GIF) *bytes.Buffer {
	var buf bytes.Buffer
	Expect(gif.EncodeAll(&buf, g)).To(Succeed())
	return &buf
}

var _ = Describe("DecodeFrames", func() {
	It("coalesces sub-rectangle frames onto the full canvas", func() {
		buf := encodeGIF(&gif.GIF{
			Image: []*image.Paletted{
				paletted(image.Rect(0, 0, 4, 4), 0),
				paletted(image.Rect(1, 1, 3, 3), 1),
			},
			Delay:    []int{0, 0},
			Disposal: []byte{gif.DisposalNone, gif.DisposalNone},
			Config:   image.Config{Width: 4, Height: 4},
		})

		frames, err := scanimate.DecodeFrames(buf)
		Expect(err).NotTo(HaveOccurred())
		Expect(frames).To(HaveLen(2))
		for _, frame := range frames {
			Expect(frame.Bounds().Size()).To(Equal(image.Pt(4, 4)))
		}

		// Second frame is the black canvas with the white patch drawn over.
		Expect(color.RGBAModel.Convert(frames[1].At(0, 0))).To(Equal(color.RGBAModel.Convert(color.Black)))
		Expect(color.RGBAModel.Convert(frames[1].At(2, 2))).To(Equal(color.RGBAModel.Convert(color.White)))
	})

	It("clears the drawn region after a background-disposal frame", func() {
		buf := encodeGIF(&gif.GIF{
			Image: []*image.Paletted{
				paletted(image.Rect(0, 0, 3, 3), 1),
				paletted(image.Rect(0, 0, 2, 2), 0),
				paletted(image.Rect(2, 2, 3, 3), 0),
			},
			Delay:    []int{0, 0, 0},
			Disposal: []byte{gif.DisposalNone, gif.DisposalBackground, gif.DisposalNone},
			Config:   image.Config{Width: 3, Height: 3},
		})

		frames, err := scanimate.DecodeFrames(buf)
		Expect(err).NotTo(HaveOccurred())
		Expect(frames).To(HaveLen(3))

		// The second frame's patch is disposed before the third is captured.
		_, _, _, a := frames[2].At(0, 0).RGBA()
		Expect(a).To(Equal(uint32(0)))
		Expect(color.RGBAModel.Convert(frames[2].At(2, 2))).To(Equal(color.RGBAModel.Convert(color.Black)))
	})

	It("restores the prior canvas after a previous-disposal frame", func() {
		buf := encodeGIF(&gif.GIF{
			Image: []*image.Paletted{
				paletted(image.Rect(0, 0, 3, 3), 0),
				paletted(image.Rect(0, 0, 3, 3), 1),
				paletted(image.Rect(0, 0, 1, 1), 1),
			},
			Delay:    []int{0, 0, 0},
			Disposal: []byte{gif.DisposalNone, gif.DisposalPrevious, gif.DisposalNone},
			Config:   image.Config{Width: 3, Height: 3},
		})

		frames, err := scanimate.DecodeFrames(buf)
		Expect(err).NotTo(HaveOccurred())
		Expect(frames).To(HaveLen(3))

		Expect(color.RGBAModel.Convert(frames[1].At(2, 2))).To(Equal(color.RGBAModel.Convert(color.White)))
		// Third frame draws on the restored black canvas, not the white one.
		Expect(color.RGBAModel.Convert(frames[2].At(0, 0))).To(Equal(color.RGBAModel.Convert(color.White)))
		Expect(color.RGBAModel.Convert(frames[2].At(2, 2))).To(Equal(color.RGBAModel.Convert(color.Black)))
	})

	It("reports undecodable input as a LoadError", func() {
		_, err := scanimate.DecodeFrames(strings.NewReader("not a gif"))
		Expect(err).To(BeAssignableToTypeOf(&scanimate.LoadError{}))
	})
})

var _ = Describe("Downsample", func() {
	It("keeps every factor-th frame starting with the first", func() {
		frames := make([]image.Image, 5)
		for i := range frames {
			frames[i] = textured(2, 2, i)
		}
		kept := scanimate.Downsample(frames, 2)
		Expect(kept).To(HaveLen(3))
		Expect(kept[0]).To(BeIdenticalTo(frames[0]))
		Expect(kept[1]).To(BeIdenticalTo(frames[2]))
		Expect(kept[2]).To(BeIdenticalTo(frames[4]))
	})

	It("is the identity for factors of one or less", func() {
		frames := []image.Image{textured(2, 2, 0), textured(2, 2, 1)}
		Expect(scanimate.Downsample(frames, 1)).To(HaveLen(2))
		Expect(scanimate.Downsample(frames, 0)).To(HaveLen(2))
	})

	It("keeps only the first frame for oversized factors", func() {
		frames := []image.Image{textured(2, 2, 0), textured(2, 2, 1)}
		Expect(scanimate.Downsample(frames, 10)).To(HaveLen(1))
	})
})
