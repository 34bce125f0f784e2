package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"activity_discovery/internal/domain"
)

// FeedSource returns the activities near a location that the user has not
// decided on yet.
type FeedSource interface {
	FetchActivities(ctx context.Context, userID domain.UserID, loc domain.Location, radiusKm int) ([]domain.Activity, error)
}

// DeclinedResetter clears the user's dislikes on the server.
type DeclinedResetter interface {
	ResetDeclined(ctx context.Context, userID domain.UserID) error
}

// DecisionSink persists a single decision. It is the only method a transport
// needs to implement to receive decisions.
type DecisionSink interface {
	Submit(ctx context.Context, decision domain.Decision) error
}

// Decisions accepts decisions without blocking the caller.
type Decisions interface {
	Dispatch(decision domain.Decision)
}

type RadiusStore interface {
	Radius(ctx context.Context, userID domain.UserID) (int, error)
	SetRadius(ctx context.Context, userID domain.UserID, km int) error
}

// Navigator opens the detail view for an activity.
type Navigator interface {
	ShowDetail(activity domain.Activity, image string)
}
