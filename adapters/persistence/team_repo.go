package persistence

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/maslima80/listingshow/internal/domain/quota"
	"github.com/maslima80/listingshow/internal/domain/team"
	"github.com/maslima80/listingshow/pkg/apperror"
	"github.com/maslima80/listingshow/pkg/logger"
)

type postgresTeamRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresTeamRepo(db *pgxpool.Pool, logger logger.Logger) team.Repository {
	return &postgresTeamRepo{db: db, logger: logger}
}

// NewPostgresPlanResolver exposes the same table through the quota.PlanResolver
// contract for the ledger's cap checks.
func NewPostgresPlanResolver(db *pgxpool.Pool, logger logger.Logger) quota.PlanResolver {
	return &postgresTeamRepo{db: db, logger: logger}
}

func (r *postgresTeamRepo) FindByID(ctx context.Context, id uuid.UUID) (*team.Team, error) {
	t := &team.Team{}
	var themeBytes []byte

	query := `
		SELECT id, name, slug, video_minutes_cap, theme_settings, created_at, updated_at
		FROM teams WHERE id = $1
	`
	err := r.db.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.Name, &t.Slug, &t.VideoMinutesCap, &themeBytes, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("team", id.String())
		}
		return nil, apperror.NewInternal("failed to query team", err)
	}

	if err := json.Unmarshal(themeBytes, &t.ThemeSettings); err != nil {
		t.ThemeSettings = map[string]any{}
	}
	return t, nil
}

func (r *postgresTeamRepo) UpdateTheme(ctx context.Context, id uuid.UUID, settings map[string]any) error {
	themeBytes, err := json.Marshal(settings)
	if err != nil {
		return apperror.NewInternal("failed to marshal theme settings", err)
	}

	query := `UPDATE teams SET theme_settings = $2, updated_at = NOW() WHERE id = $1`
	cmdTag, err := r.db.Exec(ctx, query, id, themeBytes)
	if err != nil {
		return apperror.NewInternal("failed to update theme settings", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("team", id.String())
	}
	return nil
}

// VideoMinutesCap satisfies quota.PlanResolver off the team row.
func (r *postgresTeamRepo) VideoMinutesCap(ctx context.Context, teamID uuid.UUID) (int, error) {
	var cap int
	err := r.db.QueryRow(ctx, `SELECT video_minutes_cap FROM teams WHERE id = $1`, teamID).Scan(&cap)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperror.NewNotFound("team", teamID.String())
		}
		return 0, apperror.NewInternal("failed to query team minutes cap", err)
	}
	return cap, nil
}
