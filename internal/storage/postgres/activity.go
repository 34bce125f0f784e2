package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"activity_discovery/internal/domain"
)

type ActivityStore struct {
	db *sqlx.DB
}

func NewActivityStore(db *sqlx.DB) *ActivityStore {
	return &ActivityStore{db: db}
}

type activityRow struct {
	ID           int64           `db:"id"`
	Name         string          `db:"name"`
	Description  string          `db:"description"`
	Location     string          `db:"location"`
	Cost         sql.NullFloat64 `db:"cost"`
	AvailableSun bool            `db:"available_sun"`
	AvailableMon bool            `db:"available_mon"`
	AvailableTue bool            `db:"available_tue"`
	AvailableWed bool            `db:"available_wed"`
	AvailableThu bool            `db:"available_thu"`
	AvailableFri bool            `db:"available_fri"`
	AvailableSat bool            `db:"available_sat"`
	URL          sql.NullString  `db:"url"`
	Images       pq.StringArray  `db:"images"`
}

func (r activityRow) toDomain() domain.Activity {
	a := domain.Activity{
		ID:          domain.ActivityID(r.ID),
		Name:        r.Name,
		Description: r.Description,
		Location:    r.Location,
		Availability: domain.Weekdays{
			r.AvailableSun, r.AvailableMon, r.AvailableTue, r.AvailableWed,
			r.AvailableThu, r.AvailableFri, r.AvailableSat,
		},
		Images: []string(r.Images),
	}
	if r.Cost.Valid {
		cost := r.Cost.Float64
		a.Cost = &cost
	}
	if r.URL.Valid {
		u := r.URL.String
		a.URL = &u
	}
	return a
}

// FetchActivities returns activities within radiusKm of loc that the user has
// not swiped, ordered by id. Activities without images are not returned.
func (s *ActivityStore) FetchActivities(ctx context.Context, userID domain.UserID, loc domain.Location, radiusKm int) ([]domain.Activity, error) {
	query := `
		SELECT a.id, a.name, a.description, a.location, a.cost,
			a.available_sun, a.available_mon, a.available_tue, a.available_wed,
			a.available_thu, a.available_fri, a.available_sat,
			a.url, img.images
		FROM activities a
		JOIN LATERAL (
			SELECT array_agg(i.url ORDER BY i.position) AS images
			FROM activity_images i
			WHERE i.activity_id = a.id
		) img ON img.images IS NOT NULL
		WHERE NOT EXISTS (
			SELECT 1 FROM swipes sw
			WHERE sw.user_id = $1 AND sw.activity_id = a.id
		)
		AND 6371 * 2 * asin(least(1, sqrt(
			power(sin(radians(a.latitude - $2) / 2), 2) +
			cos(radians($2)) * cos(radians(a.latitude)) *
			power(sin(radians(a.longitude - $3) / 2), 2)
		))) <= $4
		ORDER BY a.id`

	var rows []activityRow
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &rows, query,
		int64(userID), loc.Latitude, loc.Longitude, radiusKm,
	)
	if err != nil {
		return nil, fmt.Errorf("select activities: %w", err)
	}

	activities := make([]domain.Activity, 0, len(rows))
	for _, r := range rows {
		activities = append(activities, r.toDomain())
	}
	return activities, nil
}

// Insert stores an activity with its images and location.
func (s *ActivityStore) Insert(ctx context.Context, a domain.Activity, loc domain.Location) error {
	exec := GetExecutor(ctx, s.db)

	var cost sql.NullFloat64
	if a.Cost != nil {
		cost = sql.NullFloat64{Float64: *a.Cost, Valid: true}
	}
	var u sql.NullString
	if a.URL != nil {
		u = sql.NullString{String: *a.URL, Valid: true}
	}

	_, err := exec.ExecContext(ctx, `
		INSERT INTO activities (
			id, name, description, location, latitude, longitude, cost,
			available_sun, available_mon, available_tue, available_wed,
			available_thu, available_fri, available_sat, url
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		int64(a.ID), a.Name, a.Description, a.Location, loc.Latitude, loc.Longitude, cost,
		a.Availability[0], a.Availability[1], a.Availability[2], a.Availability[3],
		a.Availability[4], a.Availability[5], a.Availability[6], u,
	)
	if err != nil {
		return fmt.Errorf("insert activity %d: %w", a.ID, err)
	}

	if len(a.Images) == 0 {
		return nil
	}
	_, err = exec.ExecContext(ctx, `
		INSERT INTO activity_images (activity_id, position, url)
		SELECT $1, t.ord - 1, t.url
		FROM unnest($2::text[]) WITH ORDINALITY AS t(url, ord)`,
		int64(a.ID), pq.Array(a.Images),
	)
	if err != nil {
		return fmt.Errorf("insert images for activity %d: %w", a.ID, err)
	}
	return nil
}
