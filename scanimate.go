/*
Package scanimate turns a short sequence of equally-sized image frames into
a single composite "scanimation" image plus a matching occluding grid. The
composite interleaves the frames as thin slits along one axis; sliding the
grid across it by one slit width reveals the next frame, producing a
false-motion illusion via the Moiré effect.

The two transforms, Interleave and MakeGrid, are pure functions. They must
be called with the same n, Orientation, and slit width, or the revealed
image is incoherent.
*/
package scanimate

// Orientation selects the scan axis shared by a composite and its grid.
type Orientation int

const (
	// Columns produces vertical slits; the grid slides horizontally.
	Columns Orientation = iota
	// Rows produces horizontal slits; the grid slides vertically.
	Rows
)

func (o Orientation) String() string {
	if o == Rows {
		return "rows"
	}
	return "columns"
}

// ParseOrientation reads the CLI spelling of an orientation.
func ParseOrientation(s string) (Orientation, error) {
	switch s {
	case "columns", "cols", "hgrid":
		return Columns, nil
	case "rows", "vgrid":
		return Rows, nil
	}
	return Columns, &InvalidGridParametersError{Param: "orientation", Value: s}
}

type settings struct {
	slitWidth int // pixels per slit along the scan axis
	reveal    int // grid phase: which frame index the slits expose
	delay     int // preview frame delay in 100ths of a second
	margin    int // print sheet margin in pixels
}

func newSettings(opts ...Option) settings {
	s := settings{
		slitWidth: 1,
		reveal:    0,
		delay:     10,
		margin:    0,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// Option adjusts the slit geometry or output rendering. The geometry
// options (WithSlitWidth above all) must be passed identically to
// Interleave and MakeGrid for the same scanimation.
type Option func(*settings)

// WithSlitWidth sets the width in pixels of each slit along the scan axis.
func WithSlitWidth(px int) Option {
	return func(s *settings) {
		s.slitWidth = px
	}
}

// WithRevealIndex sets the grid phase: which frame's slits are left
// transparent. Advancing it by one is equivalent to sliding the grid by
// one slit width.
func WithRevealIndex(i int) Option {
	return func(s *settings) {
		s.reveal = i
	}
}

// WithDelay sets the per-phase delay of a preview GIF, in 100ths of a
// second.
func WithDelay(hundredths int) Option {
	return func(s *settings) {
		s.delay = hundredths
	}
}

// WithMargin sets the white margin around a print sheet, in pixels.
func WithMargin(px int) Option {
	return func(s *settings) {
		s.margin = px
	}
}
