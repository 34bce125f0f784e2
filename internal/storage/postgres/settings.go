package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"activity_discovery/internal/domain"
)

type SettingsStore struct {
	db *sqlx.DB
}

func NewSettingsStore(db *sqlx.DB) *SettingsStore {
	return &SettingsStore{db: db}
}

// Radius returns the user's search radius, or the default for users who never
// set one.
func (s *SettingsStore) Radius(ctx context.Context, userID domain.UserID) (int, error) {
	var km sql.NullInt64
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &km,
		"SELECT radius_km FROM user_settings WHERE user_id = $1",
		int64(userID),
	)
	if errors.Is(err, sql.ErrNoRows) || (err == nil && !km.Valid) {
		return domain.DefaultRadiusKm, nil
	}
	if err != nil {
		return 0, fmt.Errorf("select radius: %w", err)
	}
	return domain.ClampRadius(int(km.Int64)), nil
}

func (s *SettingsStore) SetRadius(ctx context.Context, userID domain.UserID, km int) error {
	if !domain.ValidRadius(km) {
		return fmt.Errorf("%w: %d", domain.ErrRadiusOutOfRange, km)
	}

	query := `
		INSERT INTO user_settings (user_id, radius_km)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET radius_km = EXCLUDED.radius_km`

	if _, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, int64(userID), km); err != nil {
		return fmt.Errorf("upsert radius: %w", err)
	}
	return nil
}
