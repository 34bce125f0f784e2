package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNoIdentity = errors.New("no signed-in user")

// Decision is a like/dislike produced by a vertical swipe. It is submitted once
// and never read back by the client.
type Decision struct {
	ID         uuid.UUID
	UserID     UserID
	ActivityID ActivityID
	Liked      bool
	DecidedAt  time.Time
}

func NewDecision(userID UserID, activityID ActivityID, liked bool) Decision {
	return Decision{
		ID:         uuid.New(),
		UserID:     userID,
		ActivityID: activityID,
		Liked:      liked,
		DecidedAt:  time.Now().UTC(),
	}
}
