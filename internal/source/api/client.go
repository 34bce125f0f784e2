package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"activity_discovery/internal/domain"
)

const userAgent = "ActivityDiscovery/1.0"

// Config holds activity API client configuration.
type Config struct {
	BaseURL        string
	Timeout        time.Duration
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// StatusError is returned for non-2xx responses.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %d", e.Method, e.Path, e.StatusCode)
}

// Client talks to the activity server. It is the feed source, the decision
// sink and the declined resetter for the HTTP backend.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	maxAttempts    int
	initialBackoff time.Duration
	maxBackoff     time.Duration
	logger         *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Client {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:        strings.TrimRight(cfg.BaseURL, "/"),
		maxAttempts:    cfg.MaxAttempts,
		initialBackoff: cfg.InitialBackoff,
		maxBackoff:     cfg.MaxBackoff,
		logger:         logger.With("component", "api"),
	}
}

// FetchActivities returns the activities within radiusKm of loc that the user
// has not swiped yet.
func (c *Client) FetchActivities(ctx context.Context, userID domain.UserID, loc domain.Location, radiusKm int) ([]domain.Activity, error) {
	params := url.Values{}
	params.Set("user_id", strconv.FormatInt(int64(userID), 10))
	params.Set("lat", strconv.FormatFloat(loc.Latitude, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(loc.Longitude, 'f', -1, 64))
	if radiusKm > 0 {
		params.Set("radius", strconv.Itoa(radiusKm))
	}
	endpoint := c.baseURL + "/activities?" + params.Encode()

	var resp []Activity
	var err error

	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		resp, err = c.getActivities(ctx, endpoint)
		if err == nil {
			break
		}

		if attempt == c.maxAttempts {
			return nil, fmt.Errorf("after %d attempts: %w", c.maxAttempts, err)
		}

		backoff := c.calculateBackoff(attempt)
		c.logger.Warn("request failed, retrying",
			"attempt", attempt,
			"backoff", backoff,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}

	activities := c.transform(resp)
	c.logger.Debug("fetched activities",
		"user_id", userID,
		"radius_km", radiusKm,
		"received", len(resp),
		"valid", len(activities),
	)
	return activities, nil
}

// Submit records a swipe. It is attempted once.
func (c *Client) Submit(ctx context.Context, decision domain.Decision) error {
	body := SwipeRequest{
		UserID:     int64(decision.UserID),
		ActivityID: int64(decision.ActivityID),
		Liked:      decision.Liked,
	}
	if err := c.post(ctx, "/activities/swipe", body); err != nil {
		return fmt.Errorf("record swipe: %w", err)
	}
	return nil
}

// ResetDeclined clears the user's dislikes on the server.
func (c *Client) ResetDeclined(ctx context.Context, userID domain.UserID) error {
	if err := c.post(ctx, "/activities/reset-swipes", ResetRequest{UserID: int64(userID)}); err != nil {
		return fmt.Errorf("reset swipes: %w", err)
	}
	return nil
}

func (c *Client) getActivities(ctx context.Context, endpoint string) ([]Activity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{Method: http.MethodGet, Path: "/activities", StatusCode: resp.StatusCode}
	}

	var activities []Activity
	if err := json.NewDecoder(resp.Body).Decode(&activities); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return activities, nil
}

func (c *Client) post(ctx context.Context, path string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &StatusError{Method: http.MethodPost, Path: path, StatusCode: resp.StatusCode}
	}
	return nil
}

func (c *Client) calculateBackoff(attempt int) time.Duration {
	backoff := c.initialBackoff
	for i := 1; i < attempt; i++ {
		backoff *= 2
	}
	if backoff > c.maxBackoff {
		backoff = c.maxBackoff
	}
	return backoff
}

func (c *Client) transform(items []Activity) []domain.Activity {
	activities := make([]domain.Activity, 0, len(items))

	for _, item := range items {
		activity := domain.Activity{
			ID:          domain.ActivityID(item.ID),
			Name:        item.Name,
			Description: item.Description,
			Location:    item.Location,
			Availability: domain.Weekdays{
				item.AvailableSun,
				item.AvailableMon,
				item.AvailableTue,
				item.AvailableWed,
				item.AvailableThu,
				item.AvailableFri,
				item.AvailableSat,
			},
			Images: item.Images,
		}

		if item.HasCost && item.Cost != nil {
			cost := *item.Cost
			activity.Cost = &cost
		}
		if item.URL != "" {
			u := item.URL
			activity.URL = &u
		}

		if err := activity.Validate(); err != nil {
			c.logger.Warn("skipping activity", "activity_id", item.ID, "error", err)
			continue
		}

		activities = append(activities, activity)
	}

	return activities
}
