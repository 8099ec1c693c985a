package persistence

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/maslima80/listingshow/internal/domain/property"
	"github.com/maslima80/listingshow/pkg/apperror"
	"github.com/maslima80/listingshow/pkg/logger"
)

type postgresPropertyRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresPropertyRepo(db *pgxpool.Pool, logger logger.Logger) property.Repository {
	return &postgresPropertyRepo{db: db, logger: logger}
}

var psqlProperty = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const propertyColumns = `id, team_id, slug, title, address, city, description, status, cover_asset_id, created_at, updated_at`

func scanProperty(row pgx.Row) (*property.Property, error) {
	p := &property.Property{}
	err := row.Scan(
		&p.ID, &p.TeamID, &p.Slug, &p.Title, &p.Address, &p.City,
		&p.Description, &p.Status, &p.CoverAssetID, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("property", "")
		}
		return nil, apperror.NewInternal("failed to scan property row", err)
	}
	return p, nil
}

func (r *postgresPropertyRepo) Save(ctx context.Context, p *property.Property) error {
	query := `
		INSERT INTO properties (id, team_id, slug, title, address, city, description, status, cover_asset_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := r.db.Exec(ctx, query,
		p.ID, p.TeamID, p.Slug, p.Title, p.Address, p.City,
		p.Description, p.Status, p.CoverAssetID, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return apperror.NewInternal("failed to insert property", err)
	}
	return nil
}

func (r *postgresPropertyRepo) Update(ctx context.Context, p *property.Property) error {
	query := `
		UPDATE properties SET
			slug = $2, title = $3, address = $4, city = $5, description = $6,
			status = $7, cover_asset_id = $8, updated_at = NOW()
		WHERE id = $1 AND team_id = $9
	`
	cmdTag, err := r.db.Exec(ctx, query,
		p.ID, p.Slug, p.Title, p.Address, p.City, p.Description,
		p.Status, p.CoverAssetID, p.TeamID,
	)
	if err != nil {
		return apperror.NewInternal("failed to update property", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("property", p.ID.String())
	}
	return nil
}

func (r *postgresPropertyRepo) Delete(ctx context.Context, id uuid.UUID, teamID uuid.UUID) error {
	query := `DELETE FROM properties WHERE id = $1 AND team_id = $2`
	cmdTag, err := r.db.Exec(ctx, query, id, teamID)
	if err != nil {
		return apperror.NewInternal("failed to delete property", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("property", id.String())
	}
	return nil
}

func (r *postgresPropertyRepo) FindByID(ctx context.Context, id uuid.UUID, teamID uuid.UUID) (*property.Property, error) {
	query := `SELECT ` + propertyColumns + ` FROM properties WHERE id = $1 AND team_id = $2`
	row := r.db.QueryRow(ctx, query, id, teamID)
	return scanProperty(row)
}

func (r *postgresPropertyRepo) TeamOf(ctx context.Context, propertyID uuid.UUID) (uuid.UUID, error) {
	var teamID uuid.UUID
	err := r.db.QueryRow(ctx, `SELECT team_id FROM properties WHERE id = $1`, propertyID).Scan(&teamID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return uuid.Nil, apperror.NewNotFound("property", propertyID.String())
		}
		return uuid.Nil, apperror.NewInternal("failed to query property team", err)
	}
	return teamID, nil
}

func (r *postgresPropertyRepo) ListByTeam(ctx context.Context, teamID uuid.UUID, limit, offset int) ([]*property.Property, error) {
	builder := psqlProperty.Select(propertyColumns).
		From("properties").
		Where(sq.Eq{"team_id": teamID}).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset))

	sqlStr, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list properties query", err)
	}
	rows, err := r.db.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query properties by team", err)
	}
	defer rows.Close()

	properties := make([]*property.Property, 0)
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, err
		}
		properties = append(properties, p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating property rows", err)
	}
	return properties, nil
}
