package carousel

import "time"

type rotationSample struct {
	at       time.Time
	rotation float64
}

// sampleRing is a circular buffer of recent drag positions used to
// estimate the angular velocity at release.
type sampleRing struct {
	buf   []rotationSample
	pos   int
	count int
}

func newSampleRing(capacity int) *sampleRing {
	if capacity < 2 {
		capacity = 2
	}
	return &sampleRing{buf: make([]rotationSample, capacity)}
}

func (r *sampleRing) push(at time.Time, rotation float64) {
	r.buf[r.pos] = rotationSample{at: at, rotation: rotation}
	r.pos = (r.pos + 1) % len(r.buf)
	if r.count < len(r.buf) {
		r.count++
	}
}

func (r *sampleRing) reset() {
	r.pos = 0
	r.count = 0
}

// values returns the stored samples in chronological order.
func (r *sampleRing) values() []rotationSample {
	if r.count == 0 {
		return nil
	}
	result := make([]rotationSample, r.count)
	if r.count < len(r.buf) {
		copy(result, r.buf[:r.count])
	} else {
		n := copy(result, r.buf[r.pos:])
		copy(result[n:], r.buf[:r.pos])
	}
	return result
}

// velocity returns degrees per second across the samples no older than
// window. Fewer than two samples, or no elapsed time, yields 0.
func (r *sampleRing) velocity(now time.Time, window time.Duration) float64 {
	var first, last rotationSample
	n := 0
	for _, s := range r.values() {
		if now.Sub(s.at) > window {
			continue
		}
		if n == 0 {
			first = s
		}
		last = s
		n++
	}
	if n < 2 {
		return 0
	}
	dt := last.at.Sub(first.at).Seconds()
	if dt <= 0 {
		return 0
	}
	return (last.rotation - first.rotation) / dt
}
