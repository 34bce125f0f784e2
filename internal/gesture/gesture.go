// Package gesture turns a pointer drag into a single discrete intent.
//
// Classification is pure: the same release deltas always produce the same
// intent. The presentation layer animates the intent and then hands it back
// to the engine, which is the only place queue state changes.
package gesture

import (
	"math"
	"time"
)

const (
	// TapThreshold is the largest movement, in logical pixels, still counted as a tap.
	TapThreshold = 10
	// SwipeThreshold is the distance a release must travel along its dominant axis.
	SwipeThreshold = 100
	// DominanceRatio decides which axis receives live feedback during a drag.
	DominanceRatio = 1.5

	ImageSlideDuration = 250 * time.Millisecond
	CardSlideDuration  = 300 * time.Millisecond
)

type Kind int

const (
	Cancel Kind = iota
	Tap
	CycleImage
	Decide
)

func (k Kind) String() string {
	switch k {
	case Tap:
		return "tap"
	case CycleImage:
		return "cycle_image"
	case Decide:
		return "decide"
	default:
		return "cancel"
	}
}

type Direction int

const (
	None Direction = iota
	Left
	Right
	Up
	Down
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "none"
	}
}

// Intent is the terminal action of one gesture.
type Intent struct {
	Kind      Kind
	Direction Direction
	// Step is +1 to show the next image, -1 for the previous one. Only set for CycleImage.
	Step int
	// Liked is only meaningful for Decide.
	Liked bool
}

// Classify maps the release deltas of a gesture to its intent.
func Classify(dx, dy float64) Intent {
	ax, ay := math.Abs(dx), math.Abs(dy)

	switch {
	case ax < TapThreshold && ay < TapThreshold:
		return Intent{Kind: Tap}
	case ax > ay && ax > SwipeThreshold:
		// Dragging left reveals the next image.
		if dx < 0 {
			return Intent{Kind: CycleImage, Direction: Left, Step: 1}
		}
		return Intent{Kind: CycleImage, Direction: Right, Step: -1}
	case ay > ax && ay > SwipeThreshold:
		if dy < 0 {
			return Intent{Kind: Decide, Direction: Up, Liked: true}
		}
		return Intent{Kind: Decide, Direction: Down, Liked: false}
	default:
		return Intent{Kind: Cancel}
	}
}

// Offset is the live translation applied to the card while dragging.
type Offset struct {
	X float64
	Y float64
}

// Feedback returns the drag offset for the axis that clearly dominates, so the
// horizontal and vertical animations never move together.
func Feedback(dx, dy float64) Offset {
	ax, ay := math.Abs(dx), math.Abs(dy)
	switch {
	case ax > ay*DominanceRatio:
		return Offset{X: dx}
	case ay > ax*DominanceRatio:
		return Offset{Y: dy}
	default:
		return Offset{}
	}
}

type TransitionKind int

const (
	NoTransition TransitionKind = iota
	SlideOut
	SpringBack
)

func (k TransitionKind) String() string {
	switch k {
	case SlideOut:
		return "slide_out"
	case SpringBack:
		return "spring_back"
	default:
		return "none"
	}
}

// Transition describes the animation the presentation layer runs before
// applying an intent.
type Transition struct {
	Kind      TransitionKind
	Direction Direction
	Duration  time.Duration
}

func (i Intent) Transition() Transition {
	switch i.Kind {
	case CycleImage:
		return Transition{Kind: SlideOut, Direction: i.Direction, Duration: ImageSlideDuration}
	case Decide:
		return Transition{Kind: SlideOut, Direction: i.Direction, Duration: CardSlideDuration}
	case Cancel:
		return Transition{Kind: SpringBack}
	default:
		return Transition{Kind: NoTransition}
	}
}

// Mutates reports whether applying the intent changes queue state.
func (i Intent) Mutates() bool {
	return i.Kind == CycleImage || i.Kind == Decide
}
