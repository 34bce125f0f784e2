package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

type ActivityID int64

type UserID int64

var ErrInvalidActivity = errors.New("invalid activity")

// Activity is a candidate item owned by the remote feed. The client never edits it.
type Activity struct {
	ID           ActivityID
	Name         string
	Description  string
	Location     string
	Cost         *float64 // nil when the activity is free
	Availability Weekdays
	URL          *string
	Images       []string
}

func (a Activity) IsFree() bool {
	return a.Cost == nil || *a.Cost == 0
}

func (a Activity) Validate() error {
	if len(a.Images) == 0 {
		return fmt.Errorf("%w: activity %d has no images", ErrInvalidActivity, a.ID)
	}
	if a.Cost != nil && *a.Cost < 0 {
		return fmt.Errorf("%w: activity %d has negative cost", ErrInvalidActivity, a.ID)
	}
	return nil
}

// Weekdays is a Sunday-first availability bitset.
type Weekdays [7]bool

func (w Weekdays) On(day time.Weekday) bool {
	return w[day]
}

func (w Weekdays) String() string {
	const letters = "SMTWTFS"
	var sb strings.Builder
	for i, on := range w {
		if on {
			sb.WriteByte(letters[i])
		} else {
			sb.WriteByte('-')
		}
	}
	return sb.String()
}
