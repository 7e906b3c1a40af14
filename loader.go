package scanimate

import (
	"errors"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"
)

// LoadFrames reads a frame sequence from disk: either an animated GIF file
// or a directory of equally-sized still images, ordered by filename.
// Dimensions are validated at load so the sequence is safe to hand to
// Interleave. Failures are reported as LoadError.
func LoadFrames(path string) ([]image.Image, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	if info.IsDir() {
		return loadStills(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	frames, err := DecodeFrames(f)
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			le.Path = path
			return nil, le
		}
		return nil, &LoadError{Path: path, Err: err}
	}
	return frames, nil
}

var stillExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".bmp":  true,
}

// loadStills reads every recognized image in dir, in lexical filename
// order. os.ReadDir keeps directory listings stable across runs, which is
// what gives the sequence its playback order.
func loadStills(dir string) ([]image.Image, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &LoadError{Path: dir, Err: err}
	}

	var frames []image.Image
	var want image.Point
	for _, entry := range entries {
		if entry.IsDir() || !stillExts[strings.ToLower(filepath.Ext(entry.Name()))] {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		img, err := decodeStill(path)
		if err != nil {
			return nil, err
		}
		got := img.Bounds().Size()
		if len(frames) == 0 {
			want = got
		} else if !got.Eq(want) {
			return nil, &LoadError{Path: path, Err: &DimensionMismatchError{
				Frame: len(frames),
				Got:   got,
				Want:  want,
			}}
		}
		frames = append(frames, img)
	}
	if len(frames) == 0 {
		return nil, &LoadError{Path: dir, Err: errors.New("no image files in directory")}
	}
	return frames, nil
}

func decodeStill(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return img, nil
}
