package scanimate

import (
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
)

// WriteRaster persists a composite or grid at path, picking the encoder
// from the file extension (.png, .gif, .bmp, .jpg). The image is written
// to a temporary file and renamed into place, so a failure never leaves a
// partial file behind. Failures are reported as WriteError.
func WriteRaster(path string, img image.Image) error {
	var encode func(*os.File) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		encode = func(f *os.File) error { return png.Encode(f, img) }
	case ".gif":
		encode = func(f *os.File) error { return gif.Encode(f, img, nil) }
	case ".bmp":
		encode = func(f *os.File) error { return bmp.Encode(f, img) }
	case ".jpg", ".jpeg":
		encode = func(f *os.File) error { return jpeg.Encode(f, img, nil) }
	default:
		return &WriteError{Path: path, Err: fmt.Errorf("unsupported extension %q", filepath.Ext(path))}
	}
	return writeAtomic(path, encode)
}

// WriteGIF persists an animated GIF, such as a Preview, the same way
// WriteRaster does.
func WriteGIF(path string, g *gif.GIF) error {
	return writeAtomic(path, func(f *os.File) error {
		return gif.EncodeAll(f, g)
	})
}

func writeAtomic(path string, encode func(*os.File) error) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".scanimate-*")
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}
	if err := encode(tmp); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return &WriteError{Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return &WriteError{Path: path, Err: err}
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return &WriteError{Path: path, Err: err}
	}
	return nil
}
