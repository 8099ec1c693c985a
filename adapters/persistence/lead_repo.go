package persistence

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/maslima80/listingshow/internal/domain/lead"
	"github.com/maslima80/listingshow/pkg/apperror"
	"github.com/maslima80/listingshow/pkg/logger"
)

type postgresLeadRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresLeadRepo(db *pgxpool.Pool, logger logger.Logger) lead.Repository {
	return &postgresLeadRepo{db: db, logger: logger}
}

var psqlLead = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func scanLead(row pgx.Row) (*lead.Lead, error) {
	l := &lead.Lead{}
	err := row.Scan(
		&l.ID, &l.TeamID, &l.PropertyID, &l.Name, &l.Email,
		&l.Phone, &l.Message, &l.Status, &l.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("lead", "")
		}
		return nil, apperror.NewInternal("failed to scan lead row", err)
	}
	return l, nil
}

func (r *postgresLeadRepo) Save(ctx context.Context, l *lead.Lead) error {
	query := `
		INSERT INTO leads (id, team_id, property_id, name, email, phone, message, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.db.Exec(ctx, query,
		l.ID, l.TeamID, l.PropertyID, l.Name, l.Email, l.Phone, l.Message, l.Status, l.CreatedAt,
	)
	if err != nil {
		return apperror.NewInternal("failed to insert lead", err)
	}
	return nil
}

func (r *postgresLeadRepo) FindByID(ctx context.Context, id uuid.UUID, teamID uuid.UUID) (*lead.Lead, error) {
	query := `
		SELECT id, team_id, property_id, name, email, phone, message, status, created_at
		FROM leads WHERE id = $1 AND team_id = $2
	`
	row := r.db.QueryRow(ctx, query, id, teamID)
	return scanLead(row)
}

func (r *postgresLeadRepo) ListByTeam(ctx context.Context, teamID uuid.UUID, limit, offset int) ([]*lead.Lead, error) {
	builder := psqlLead.Select("id, team_id, property_id, name, email, phone, message, status, created_at").
		From("leads").
		Where(sq.Eq{"team_id": teamID}).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset))

	sqlStr, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list leads query", err)
	}
	rows, err := r.db.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query leads by team", err)
	}
	defer rows.Close()

	leads := make([]*lead.Lead, 0)
	for rows.Next() {
		l, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		leads = append(leads, l)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating lead rows", err)
	}
	return leads, nil
}

func (r *postgresLeadRepo) UpdateStatus(ctx context.Context, id uuid.UUID, teamID uuid.UUID, status lead.LeadStatus) error {
	query := `UPDATE leads SET status = $3 WHERE id = $1 AND team_id = $2`
	cmdTag, err := r.db.Exec(ctx, query, id, teamID, status)
	if err != nil {
		return apperror.NewInternal("failed to update lead status", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("lead", id.String())
	}
	return nil
}
