package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/maslima80/listingshow/internal/domain/quota"
	"github.com/maslima80/listingshow/pkg/apperror"
	"github.com/maslima80/listingshow/pkg/logger"
)

type postgresQuotaRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresQuotaRepo(db *pgxpool.Pool, logger logger.Logger) quota.Ledger {
	return &postgresQuotaRepo{db: db, logger: logger}
}

func (r *postgresQuotaRepo) Get(ctx context.Context, teamID uuid.UUID) (*quota.VideoQuota, error) {
	q := &quota.VideoQuota{}
	query := `SELECT team_id, minutes_used, updated_at FROM video_quotas WHERE team_id = $1`
	err := r.db.QueryRow(ctx, query, teamID).Scan(&q.TeamID, &q.MinutesUsed, &q.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// No row yet means nothing consumed.
			return &quota.VideoQuota{TeamID: teamID, MinutesUsed: 0}, nil
		}
		return nil, apperror.NewInternal("failed to query video quota", err)
	}
	return q, nil
}

// Add increments in SQL so concurrent charges against one team never lose
// an update. A zero amount is a no-op, negative amounts are rejected.
func (r *postgresQuotaRepo) Add(ctx context.Context, teamID uuid.UUID, minutes int) error {
	if minutes < 0 {
		return apperror.NewInvalidInput("quota add amount must be >= 0", nil)
	}
	if minutes == 0 {
		return nil
	}
	query := `
		INSERT INTO video_quotas (team_id, minutes_used, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (team_id)
		DO UPDATE SET minutes_used = video_quotas.minutes_used + EXCLUDED.minutes_used, updated_at = NOW()
	`
	if _, err := r.db.Exec(ctx, query, teamID, minutes); err != nil {
		return apperror.NewInternal("failed to add video quota minutes", err)
	}
	return nil
}

// Subtract floors at zero. Refunding more than was ever charged is a safety
// clamp, not data loss.
func (r *postgresQuotaRepo) Subtract(ctx context.Context, teamID uuid.UUID, minutes int) error {
	if minutes < 0 {
		return apperror.NewInvalidInput("quota subtract amount must be >= 0", nil)
	}
	if minutes == 0 {
		return nil
	}
	query := `
		UPDATE video_quotas
		SET minutes_used = GREATEST(0, minutes_used - $2), updated_at = NOW()
		WHERE team_id = $1
	`
	if _, err := r.db.Exec(ctx, query, teamID, minutes); err != nil {
		return apperror.NewInternal("failed to subtract video quota minutes", err)
	}
	return nil
}
