package app

// SampleRing is a circular buffer for telemetry samples.
type SampleRing struct {
	buf   []float64
	pos   int
	count int
}

// NewSampleRing creates a new circular buffer with the given capacity.
func NewSampleRing(capacity int) *SampleRing {
	if capacity < 1 {
		capacity = 1
	}
	return &SampleRing{
		buf: make([]float64, capacity),
	}
}

// Push adds a value to the ring buffer.
func (r *SampleRing) Push(val float64) {
	r.buf[r.pos] = val
	r.pos = (r.pos + 1) % len(r.buf)
	if r.count < len(r.buf) {
		r.count++
	}
}

// Values returns all stored values in chronological order.
func (r *SampleRing) Values() []float64 {
	if r.count == 0 {
		return nil
	}
	result := make([]float64, r.count)
	if r.count < len(r.buf) {
		copy(result, r.buf[:r.count])
	} else {
		n := copy(result, r.buf[r.pos:])
		copy(result[n:], r.buf[:r.pos])
	}
	return result
}

// Len returns the number of stored values.
func (r *SampleRing) Len() int {
	return r.count
}

// Reset drops all values.
func (r *SampleRing) Reset() {
	r.pos = 0
	r.count = 0
}
