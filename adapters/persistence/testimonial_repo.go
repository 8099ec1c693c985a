package persistence

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/maslima80/listingshow/internal/domain/testimonial"
	"github.com/maslima80/listingshow/pkg/apperror"
	"github.com/maslima80/listingshow/pkg/logger"
)

type postgresTestimonialRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresTestimonialRepo(db *pgxpool.Pool, logger logger.Logger) testimonial.Repository {
	return &postgresTestimonialRepo{db: db, logger: logger}
}

var psqlTestimonial = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func (r *postgresTestimonialRepo) Save(ctx context.Context, t *testimonial.Testimonial) error {
	query := `
		INSERT INTO testimonials (id, team_id, author_name, quote, rating, approved, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.Exec(ctx, query,
		t.ID, t.TeamID, t.AuthorName, t.Quote, t.Rating, t.Approved, t.CreatedAt,
	)
	if err != nil {
		return apperror.NewInternal("failed to insert testimonial", err)
	}
	return nil
}

func (r *postgresTestimonialRepo) ListByTeam(ctx context.Context, teamID uuid.UUID, approvedOnly bool) ([]*testimonial.Testimonial, error) {
	builder := psqlTestimonial.Select("id, team_id, author_name, quote, rating, approved, created_at").
		From("testimonials").
		Where(sq.Eq{"team_id": teamID}).
		OrderBy("created_at DESC")
	if approvedOnly {
		builder = builder.Where(sq.Eq{"approved": true})
	}

	sqlStr, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list testimonials query", err)
	}
	rows, err := r.db.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query testimonials by team", err)
	}
	defer rows.Close()

	testimonials := make([]*testimonial.Testimonial, 0)
	for rows.Next() {
		t := &testimonial.Testimonial{}
		err := rows.Scan(&t.ID, &t.TeamID, &t.AuthorName, &t.Quote, &t.Rating, &t.Approved, &t.CreatedAt)
		if err != nil {
			return nil, apperror.NewInternal("failed to scan testimonial row", err)
		}
		testimonials = append(testimonials, t)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating testimonial rows", err)
	}
	return testimonials, nil
}

func (r *postgresTestimonialRepo) SetApproved(ctx context.Context, id uuid.UUID, teamID uuid.UUID, approved bool) error {
	query := `UPDATE testimonials SET approved = $3 WHERE id = $1 AND team_id = $2`
	cmdTag, err := r.db.Exec(ctx, query, id, teamID, approved)
	if err != nil {
		return apperror.NewInternal("failed to update testimonial approval", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("testimonial", id.String())
	}
	return nil
}

func (r *postgresTestimonialRepo) Delete(ctx context.Context, id uuid.UUID, teamID uuid.UUID) error {
	query := `DELETE FROM testimonials WHERE id = $1 AND team_id = $2`
	cmdTag, err := r.db.Exec(ctx, query, id, teamID)
	if err != nil {
		return apperror.NewInternal("failed to delete testimonial", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("testimonial", id.String())
	}
	return nil
}
