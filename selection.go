package paintcore

// Point is an integer pixel coordinate.
type Point struct {
	X, Y int
}

// Selection is an ordered sequence of points describing a region of
// interest on the canvas. An empty Selection means "no selection".
//
// Selection is advisory metadata only — it does not gate pixel writes.
// Brush, eraser, and filter operations ignore it entirely; it exists for
// higher-level tools (marching-ants UI, copy/paste, fill-within-bounds)
// to consult on their own.
type Selection struct {
	points []Point
}

// NewSelection constructs a Selection from the given ordered points. The
// slice is copied; callers may reuse or mutate their own slice afterward.
func NewSelection(points []Point) *Selection {
	s := &Selection{points: make([]Point, len(points))}
	copy(s.points, points)
	return s
}

// Points returns the selection's ordered points. The returned slice is
// shared with the Selection; callers must not mutate it.
func (s *Selection) Points() []Point {
	if s == nil {
		return nil
	}
	return s.points
}

// IsEmpty reports whether the selection has no points, including the
// nil Selection.
func (s *Selection) IsEmpty() bool {
	return s == nil || len(s.points) == 0
}
