package browse

// DefaultSwipeThreshold is the minimum horizontal displacement, in device
// pixels, for a drag to register as a swipe.
const DefaultSwipeThreshold = 50

// SwipeTracker recognizes horizontal swipes from pointer press/release
// coordinates. A drag counts as a swipe when its horizontal displacement
// magnitude exceeds the threshold and dominates the vertical displacement
// (anything else is a scroll, not a navigation gesture).
type SwipeTracker struct {
	Threshold int

	startX, startY int
	active         bool
}

// NewSwipeTracker creates a tracker with [DefaultSwipeThreshold].
func NewSwipeTracker() *SwipeTracker {
	return &SwipeTracker{Threshold: DefaultSwipeThreshold}
}

// Begin records the press position.
func (t *SwipeTracker) Begin(x, y int) {
	t.startX = x
	t.startY = y
	t.active = true
}

// End consumes the release position and returns the navigation delta:
// +1 for a left swipe (next), -1 for a right swipe (previous), 0 when the
// drag does not qualify. The tracker resets either way.
func (t *SwipeTracker) End(x, y int) int {
	if !t.active {
		return 0
	}
	t.active = false

	dx := x - t.startX
	dy := y - t.startY

	if abs(dx) > t.Threshold && abs(dx) > abs(dy) {
		if dx < 0 {
			return 1
		}
		return -1
	}

	return 0
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
