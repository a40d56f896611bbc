package util

// trailDepth bounds how far back a Trail remembers.
const trailDepth = 16

// Trail records the screens a user came from so they can step back through them.
// Repeated visits to the same screen are stored once and the oldest entries
// fall off when the trail is full.
type Trail[T comparable] struct {
	steps []T
}

// Visit remembers from as the screen being left.
func (t *Trail[T]) Visit(from T) {
	if n := len(t.steps); n > 0 && t.steps[n-1] == from {
		return
	}
	if len(t.steps) == trailDepth {
		t.steps = t.steps[1:]
	}
	t.steps = append(t.steps, from)
}

// Back drops and returns the most recent screen. ok is false on an empty trail.
func (t *Trail[T]) Back() (step T, ok bool) {
	n := len(t.steps)
	if n == 0 {
		return step, false
	}
	step = t.steps[n-1]
	t.steps = t.steps[:n-1]
	return step, true
}

func (t *Trail[T]) Len() int {
	return len(t.steps)
}

// Reset forgets every step, e.g. after the screen being returned to was removed.
func (t *Trail[T]) Reset() {
	t.steps = t.steps[:0]
}
