package persistence

import (
	"context"
	"database/sql"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/maslima80/listingshow/internal/domain/asset"
	"github.com/maslima80/listingshow/pkg/apperror"
	"github.com/maslima80/listingshow/pkg/logger"
)

type postgresAssetRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresAssetRepo(db *pgxpool.Pool, logger logger.Logger) asset.Repository {
	return &postgresAssetRepo{db: db, logger: logger}
}

var psqlAsset = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const assetColumns = `id, property_id, kind, provider, provider_id, url, thumbnail_url, label, position, duration_sec, processing, created_at`

func scanAsset(row pgx.Row) (*asset.MediaAsset, error) {
	a := &asset.MediaAsset{}
	var thumbURL sql.NullString
	var durationSec sql.NullInt32

	err := row.Scan(
		&a.ID, &a.PropertyID, &a.Kind, &a.Provider, &a.ProviderID,
		&a.URL, &thumbURL, &a.Label, &a.Position,
		&durationSec, &a.Processing, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("media asset", "")
		}
		return nil, apperror.NewInternal("failed to scan media asset row", err)
	}

	if thumbURL.Valid {
		a.ThumbnailURL = &thumbURL.String
	}
	if durationSec.Valid {
		d := int(durationSec.Int32)
		a.DurationSec = &d
	}
	return a, nil
}

func scanAssets(rows pgx.Rows) ([]*asset.MediaAsset, error) {
	defer rows.Close()
	assets := make([]*asset.MediaAsset, 0)
	for rows.Next() {
		a, err := scanAsset(rows)
		if err != nil {
			return nil, err
		}
		assets = append(assets, a)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating media asset rows", err)
	}
	return assets, nil
}

func (r *postgresAssetRepo) Save(ctx context.Context, a *asset.MediaAsset) error {
	query := `
		INSERT INTO media_assets (id, property_id, kind, provider, provider_id, url, thumbnail_url, label, position, duration_sec, processing, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := r.db.Exec(ctx, query,
		a.ID, a.PropertyID, a.Kind, a.Provider, a.ProviderID,
		a.URL, a.ThumbnailURL, a.Label, a.Position,
		a.DurationSec, a.Processing, a.CreatedAt,
	)
	if err != nil {
		return apperror.NewInternal("failed to insert media asset", err)
	}
	return nil
}

func (r *postgresAssetRepo) FindByID(ctx context.Context, id uuid.UUID) (*asset.MediaAsset, error) {
	query := `SELECT ` + assetColumns + ` FROM media_assets WHERE id = $1`
	row := r.db.QueryRow(ctx, query, id)
	return scanAsset(row)
}

func (r *postgresAssetRepo) ListByProperty(ctx context.Context, propertyID uuid.UUID) ([]*asset.MediaAsset, error) {
	builder := psqlAsset.Select(assetColumns).
		From("media_assets").
		Where(sq.Eq{"property_id": propertyID}).
		OrderBy("position ASC", "created_at ASC")

	sqlStr, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list assets query", err)
	}
	rows, err := r.db.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query assets by property", err)
	}
	return scanAssets(rows)
}

func (r *postgresAssetRepo) FindPendingDurationVideos(ctx context.Context, provider string) ([]*asset.MediaAsset, error) {
	builder := psqlAsset.Select(assetColumns).
		From("media_assets").
		Where(sq.Eq{"kind": asset.KindVideo, "provider": provider}).
		Where("duration_sec IS NULL").
		OrderBy("created_at ASC")

	sqlStr, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build pending videos query", err)
	}
	rows, err := r.db.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query pending videos", err)
	}
	return scanAssets(rows)
}

func (r *postgresAssetRepo) FindVideosByProvider(ctx context.Context, provider string) ([]*asset.MediaAsset, error) {
	builder := psqlAsset.Select(assetColumns).
		From("media_assets").
		Where(sq.Eq{"kind": asset.KindVideo, "provider": provider}).
		OrderBy("created_at ASC")

	sqlStr, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build videos by provider query", err)
	}
	rows, err := r.db.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query videos by provider", err)
	}
	return scanAssets(rows)
}

// SetDurationIfUnset is the idempotency guard for the charge transition:
// the WHERE clause makes sure only one caller ever flips duration_sec from
// NULL, no matter how many reconciliation attempts race.
func (r *postgresAssetRepo) SetDurationIfUnset(ctx context.Context, id uuid.UUID, durationSec int) (bool, error) {
	query := `
		UPDATE media_assets
		SET duration_sec = $2, processing = FALSE
		WHERE id = $1 AND duration_sec IS NULL
	`
	cmdTag, err := r.db.Exec(ctx, query, id, durationSec)
	if err != nil {
		return false, apperror.NewInternal("failed to update asset duration", err)
	}
	return cmdTag.RowsAffected() > 0, nil
}

func (r *postgresAssetRepo) UpdateThumbnail(ctx context.Context, id uuid.UUID, url string) error {
	query := `UPDATE media_assets SET thumbnail_url = $2 WHERE id = $1`
	cmdTag, err := r.db.Exec(ctx, query, id, url)
	if err != nil {
		return apperror.NewInternal("failed to update asset thumbnail", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("media asset", id.String())
	}
	return nil
}

func (r *postgresAssetRepo) UpdateURL(ctx context.Context, id uuid.UUID, url string) error {
	query := `UPDATE media_assets SET url = $2 WHERE id = $1`
	cmdTag, err := r.db.Exec(ctx, query, id, url)
	if err != nil {
		return apperror.NewInternal("failed to update asset url", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("media asset", id.String())
	}
	return nil
}

// Delete also clears any cover pointer on the owning property so the
// property never references a removed asset.
func (r *postgresAssetRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return apperror.NewInternal("failed to begin delete transaction", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `UPDATE properties SET cover_asset_id = NULL WHERE cover_asset_id = $1`, id)
	if err != nil {
		return apperror.NewInternal("failed to clear property cover pointer", err)
	}

	cmdTag, err := tx.Exec(ctx, `DELETE FROM media_assets WHERE id = $1`, id)
	if err != nil {
		return apperror.NewInternal("failed to delete media asset", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("media asset", id.String())
	}

	if err := tx.Commit(ctx); err != nil {
		return apperror.NewInternal("failed to commit delete transaction", err)
	}
	return nil
}
