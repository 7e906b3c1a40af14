package main

import (
	"fmt"
	"image"
	"image/draw"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/codegangsta/cli"
	"github.com/disintegration/imaging"
	"github.com/kevin-cantwell/scanimate"
	"github.com/nfnt/resize"
)

func main() {
	app := cli.NewApp()
	app.Version = "0.1.0"
	app.Name = "scanimate"
	app.Usage = "A command-line tool for turning a GIF into a scanimation: a composite image plus an occluding grid that animates it."
	app.UsageText = "1) scanimate [options] [file|dir|url]\n" +
		/*      */ "   2) scanimate [options] < [file]"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "orientation,r",
			Usage: "`ORIENTATION` of the slits: 'columns' slides the grid horizontally, 'rows' vertically.",
			Value: "columns",
		},
		cli.IntFlag{
			Name:  "slit-width,s",
			Usage: "`WIDTH` in pixels of each grid slit.",
			Value: 1,
		},
		cli.IntFlag{
			Name:  "downsample,d",
			Usage: "`FACTOR` = 2 keeps every other input frame. Fewer frames means wider visible slits.",
			Value: 1,
		},
		cli.StringFlag{
			Name:  "fit,f",
			Usage: "`FIT` = 800,600 scales down the frames to fit 800x600 pixels.",
		},
		cli.Float64Flag{
			Name:  "gamma,g",
			Usage: "`GAMMA` = 1.0 gives the original image. GAMMA less than 1.0 darkens the image and GAMMA greater than 1.0 lightens it.",
			Value: 1.0,
		},
		cli.Float64Flag{
			Name:  "brightness,b",
			Usage: "`BRIGHTNESS` = 0 gives the original image. BRIGHTNESS = -100 gives solid black image. BRIGHTNESS = 100 gives solid white image.",
			Value: 0.0,
		},
		cli.Float64Flag{
			Name:  "contrast,c",
			Usage: "`CONTRAST` = 0 gives the original image. CONTRAST = -100 gives solid grey image. CONTRAST = 100 gives maximum contrast.",
			Value: 0.0,
		},
		cli.Float64Flag{
			Name:  "sharpen",
			Usage: "`SHARPEN` = 0 gives the original image. SHARPEN greater than 0 sharpens the image.",
			Value: 0.0,
		},
		cli.BoolFlag{
			Name:  "invert,i",
			Usage: "Inverts the frames.",
		},
		cli.StringFlag{
			Name:  "dest,o",
			Usage: "`DIR` to write scanimation.png and pattern.png into.",
			Value: ".",
		},
		cli.BoolFlag{
			Name:  "preview,p",
			Usage: "Also write preview.gif, an animation of the grid sliding over the composite.",
		},
		cli.BoolFlag{
			Name:  "print",
			Usage: "Also write pattern_print.png, a print-ready grid with margin and crop marks.",
		},
		cli.IntFlag{
			Name:  "margin,m",
			Usage: "`MARGIN` in pixels around the print-ready grid.",
			Value: 48,
		},
		cli.IntFlag{
			Name:  "delay",
			Usage: "`DELAY` between preview phases, in 100ths of a second.",
			Value: 10,
		},
	}
	app.Action = func(c *cli.Context) {
		frames := loadInput(c)

		if factor := c.Int("downsample"); factor > 1 {
			frames = scanimate.Downsample(frames, factor)
		}
		if len(frames) < 2 {
			exit(fmt.Sprintf("need at least 2 frames after downsampling, got %d", len(frames)), 1)
		}

		scale := fitScale(c, frames[0])
		for i, frame := range frames {
			frames[i] = preprocess(c, frame, scale)
		}

		orientation, err := scanimate.ParseOrientation(c.String("orientation"))
		if err != nil {
			exit(err.Error(), 1)
		}
		slit := scanimate.WithSlitWidth(c.Int("slit-width"))

		composite, err := scanimate.Interleave(frames, orientation, slit)
		if err != nil {
			exit(err.Error(), 1)
		}
		bounds := composite.Bounds()
		mask, err := scanimate.MakeGrid(bounds.Dx(), bounds.Dy(), len(frames), orientation, slit)
		if err != nil {
			exit(err.Error(), 1)
		}

		dest := c.String("dest")
		if err := os.MkdirAll(dest, 0755); err != nil {
			exit(err.Error(), 1)
		}
		if err := scanimate.WriteRaster(filepath.Join(dest, "scanimation.png"), composite); err != nil {
			exit(err.Error(), 1)
		}
		if err := scanimate.WriteRaster(filepath.Join(dest, "pattern.png"), inked(mask)); err != nil {
			exit(err.Error(), 1)
		}

		if c.Bool("preview") {
			anim, err := scanimate.Preview(composite, len(frames), orientation, slit,
				scanimate.WithDelay(c.Int("delay")))
			if err != nil {
				exit(err.Error(), 1)
			}
			if err := scanimate.WriteGIF(filepath.Join(dest, "preview.gif"), anim); err != nil {
				exit(err.Error(), 1)
			}
		}

		if c.Bool("print") {
			sheet, err := scanimate.PrintSheet(bounds.Dx(), bounds.Dy(), len(frames), orientation, slit,
				scanimate.WithMargin(c.Int("margin")))
			if err != nil {
				exit(err.Error(), 1)
			}
			if err := scanimate.WriteRaster(filepath.Join(dest, "pattern_print.png"), sheet); err != nil {
				exit(err.Error(), 1)
			}
		}

		fmt.Println("Finished processing your scanimation!")
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// loadInput resolves the positional arg as a file or directory, then a
// url, falling back to stdin.
func loadInput(c *cli.Context) []image.Image {
	input := c.Args().First()
	if input == "" {
		frames, err := scanimate.DecodeFrames(os.Stdin)
		if err != nil {
			exit(err.Error(), 1)
		}
		return frames
	}

	if _, err := os.Stat(input); err == nil {
		frames, err := scanimate.LoadFrames(input)
		if err != nil {
			exit(err.Error(), 1)
		}
		return frames
	}

	resp, err := http.Get(input)
	if err != nil {
		exit(err.Error(), 1)
	}
	defer resp.Body.Close()
	frames, err := scanimate.DecodeFrames(resp.Body)
	if err != nil {
		exit(err.Error(), 1)
	}
	return frames
}

func fitScale(c *cli.Context, img image.Image) float64 {
	if !c.IsSet("fit") {
		return 1.0
	}
	parts := strings.Split(c.String("fit"), ",")
	if len(parts) != 2 {
		exit("fit option must be comma separated", 1)
	}
	maxW, _ := strconv.Atoi(strings.TrimSpace(parts[0]))
	maxH, _ := strconv.Atoi(strings.TrimSpace(parts[1]))
	if maxW <= 0 || maxH <= 0 {
		exit("fit option must be two positive sizes", 1)
	}

	scaleX := float64(maxW) / float64(img.Bounds().Dx())
	scaleY := float64(maxH) / float64(img.Bounds().Dy())
	scale := scaleX
	if scaleY < scale {
		scale = scaleY
	}
	if scale > 1.0 {
		return 1.0
	}
	return scale
}

func preprocess(c *cli.Context, img image.Image, scale float64) image.Image {
	if scale < 1.0 {
		width := uint(float64(img.Bounds().Dx()) * scale)
		height := uint(float64(img.Bounds().Dy()) * scale)
		img = resize.Thumbnail(width, height, img, resize.Lanczos3)
	}
	if c.IsSet("gamma") {
		img = imaging.AdjustGamma(img, c.Float64("gamma"))
	}
	if c.IsSet("brightness") {
		img = imaging.AdjustBrightness(img, c.Float64("brightness"))
	}
	if c.IsSet("sharpen") {
		img = imaging.Sharpen(img, c.Float64("sharpen"))
	}
	if c.IsSet("contrast") {
		img = imaging.AdjustContrast(img, c.Float64("contrast"))
	}
	if c.Bool("invert") {
		img = imaging.Invert(img)
	}
	return img
}

// inked turns the opacity mask into black ink over transparency, which is
// what you want for layering the pattern over the composite in an editor.
func inked(mask *image.Alpha) image.Image {
	rgba := image.NewRGBA(mask.Bounds())
	draw.DrawMask(rgba, rgba.Bounds(), image.Black, image.Point{}, mask, image.Point{}, draw.Src)
	return rgba
}

func exit(msg string, code int) {
	fmt.Println(msg)
	os.Exit(code)
}
