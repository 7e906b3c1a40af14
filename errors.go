package scanimate

import (
	"fmt"
	"image"
)

// DimensionMismatchError reports a frame whose size disagrees with the
// first frame of its sequence.
type DimensionMismatchError struct {
	Frame int // index of the offending frame
	Got   image.Point
	Want  image.Point
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("scanimate: frame %d is %dx%d, want %dx%d",
		e.Frame, e.Got.X, e.Got.Y, e.Want.X, e.Want.Y)
}

// InvalidGridParametersError reports a slit-geometry parameter that can't
// describe a grid: a frame count below two, a non-positive slit width or
// dimension, or an out-of-range reveal index.
type InvalidGridParametersError struct {
	Param string
	Value interface{}
}

func (e *InvalidGridParametersError) Error() string {
	return fmt.Sprintf("scanimate: invalid grid parameter %s=%v", e.Param, e.Value)
}

// LoadError reports a failure to produce a frame sequence from an external
// source.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("scanimate: load: %v", e.Err)
	}
	return fmt.Sprintf("scanimate: load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// WriteError reports a failure to persist a composite or grid. No partial
// file is left behind when one is returned.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("scanimate: write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
