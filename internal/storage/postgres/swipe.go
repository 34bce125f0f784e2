package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"activity_discovery/internal/domain"
)

type SwipeStore struct {
	db *sqlx.DB
	tm *TransactionManager
}

func NewSwipeStore(db *sqlx.DB, tm *TransactionManager) *SwipeStore {
	return &SwipeStore{db: db, tm: tm}
}

// Submit records a decision. A later decision on the same activity replaces
// the earlier one.
func (s *SwipeStore) Submit(ctx context.Context, decision domain.Decision) error {
	query := `
		INSERT INTO swipes (decision_id, user_id, activity_id, liked, decided_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, activity_id) DO UPDATE SET
			decision_id = EXCLUDED.decision_id,
			liked = EXCLUDED.liked,
			decided_at = EXCLUDED.decided_at`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		decision.ID,
		int64(decision.UserID),
		int64(decision.ActivityID),
		decision.Liked,
		decision.DecidedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert swipe: %w", err)
	}
	return nil
}

// ResetDeclined deletes the user's dislikes and records the reset.
func (s *SwipeStore) ResetDeclined(ctx context.Context, userID domain.UserID) error {
	return s.tm.WithTransaction(ctx, func(ctx context.Context) error {
		exec := GetExecutor(ctx, s.db)

		res, err := exec.ExecContext(ctx,
			"DELETE FROM swipes WHERE user_id = $1 AND liked = false",
			int64(userID),
		)
		if err != nil {
			return fmt.Errorf("delete declined swipes: %w", err)
		}
		cleared, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("count declined swipes: %w", err)
		}

		_, err = exec.ExecContext(ctx, `
			INSERT INTO user_settings (user_id, last_reset_at, declined_cleared)
			VALUES ($1, NOW(), $2)
			ON CONFLICT (user_id) DO UPDATE SET
				last_reset_at = EXCLUDED.last_reset_at,
				declined_cleared = user_settings.declined_cleared + EXCLUDED.declined_cleared`,
			int64(userID), cleared,
		)
		if err != nil {
			return fmt.Errorf("record reset: %w", err)
		}
		return nil
	})
}

// Liked returns the ids the user has liked, newest first.
func (s *SwipeStore) Liked(ctx context.Context, userID domain.UserID) ([]domain.ActivityID, error) {
	var ids []int64
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &ids,
		"SELECT activity_id FROM swipes WHERE user_id = $1 AND liked = true ORDER BY decided_at DESC, activity_id",
		int64(userID),
	)
	if err != nil {
		return nil, fmt.Errorf("select liked: %w", err)
	}

	out := make([]domain.ActivityID, len(ids))
	for i, id := range ids {
		out[i] = domain.ActivityID(id)
	}
	return out, nil
}
