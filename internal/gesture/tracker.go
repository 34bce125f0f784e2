package gesture

// Tracker follows a single pointer gesture from start to release. A release
// that was never started, or a second release, cancels.
type Tracker struct {
	active bool
	last   Offset
}

func (t *Tracker) Start() {
	t.active = true
	t.last = Offset{}
}

func (t *Tracker) Active() bool {
	return t.active
}

// Move returns the feedback offset for the drag so far. Once an axis has
// dominated, a non-dominant sample keeps the previous offset instead of
// snapping the card back.
func (t *Tracker) Move(dx, dy float64) Offset {
	if !t.active {
		return Offset{}
	}
	off := Feedback(dx, dy)
	if off == (Offset{}) {
		return t.last
	}
	t.last = off
	return off
}

func (t *Tracker) Release(dx, dy float64) Intent {
	if !t.active {
		return Intent{Kind: Cancel}
	}
	t.active = false
	t.last = Offset{}
	return Classify(dx, dy)
}
