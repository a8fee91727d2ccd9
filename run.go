package walltex

// Side selects the top or bottom edge of a wall.
type Side uint8

const (
	// Top is the edge at the wall's Y coordinate.
	Top Side = iota
	// Bottom is the edge at Y+H.
	Bottom
)

// String returns "top" or "bottom".
func (s Side) String() string {
	switch s {
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	default:
		return "unknown"
	}
}

// Run is an exposed horizontal interval [Start, End) along one edge of a
// wall. The corner flags report whether an end cap may be drawn at that end
// without overhanging a neighboring wall.
type Run struct {
	Start, End     float64
	HasLeftCorner  bool
	HasRightCorner bool
}

// Width returns End - Start.
func (r Run) Width() float64 {
	return r.End - r.Start
}

// Sides holds the runs computed for both edges of one wall. Runs on a side
// are sorted by Start, never overlap and never touch.
type Sides struct {
	Top    []Run
	Bottom []Run
}

// Get returns the runs for side s.
func (s Sides) Get(side Side) []Run {
	if side == Bottom {
		return s.Bottom
	}
	return s.Top
}

// Set replaces the runs for side s.
func (s *Sides) Set(side Side, runs []Run) {
	if side == Bottom {
		s.Bottom = runs
		return
	}
	s.Top = runs
}

// Empty reports whether neither side has a run.
func (s Sides) Empty() bool {
	return len(s.Top) == 0 && len(s.Bottom) == 0
}
