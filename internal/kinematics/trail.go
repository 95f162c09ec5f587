package kinematics

// Trail is a fixed-capacity history of end-effector positions.
// Pushing onto a full trail evicts the oldest point.
type Trail struct {
	buf   []Point
	pos   int
	count int
}

// Segment is one piece of a rendered trail.
type Segment struct {
	From, To Point
	Alpha    float64 // opacity in (0, 1), newer segments are brighter
}

// NewTrail creates an empty trail holding at most capacity points.
// Capacities below 1 are raised to 1.
func NewTrail(capacity int) *Trail {
	if capacity < 1 {
		capacity = 1
	}
	return &Trail{
		buf: make([]Point, capacity),
	}
}

// Push appends p as the newest point.
func (t *Trail) Push(p Point) {
	t.buf[t.pos] = p
	t.pos = (t.pos + 1) % len(t.buf)
	if t.count < len(t.buf) {
		t.count++
	}
}

// Points returns the stored points oldest first.
func (t *Trail) Points() []Point {
	if t.count == 0 {
		return nil
	}
	result := make([]Point, t.count)
	if t.count < len(t.buf) {
		copy(result, t.buf[:t.count])
	} else {
		n := copy(result, t.buf[t.pos:])
		copy(result[n:], t.buf[:t.pos])
	}
	return result
}

// Len returns the number of stored points.
func (t *Trail) Len() int {
	return t.count
}

// Cap returns the capacity.
func (t *Trail) Cap() int {
	return len(t.buf)
}

// Reset drops all points.
func (t *Trail) Reset() {
	t.pos = 0
	t.count = 0
}

// Segments joins consecutive points of pts. Segment i ends at pts[i] and has
// opacity i/len(pts), so the ramp grows linearly toward the newest point.
func Segments(pts []Point) []Segment {
	if len(pts) < 2 {
		return nil
	}
	segs := make([]Segment, 0, len(pts)-1)
	n := float64(len(pts))
	for i := 1; i < len(pts); i++ {
		segs = append(segs, Segment{
			From:  pts[i-1],
			To:    pts[i],
			Alpha: float64(i) / n,
		})
	}
	return segs
}
