package testimonial

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Testimonial struct {
	ID         uuid.UUID `json:"id"`
	TeamID     uuid.UUID `json:"team_id"`
	AuthorName string    `json:"author_name"`
	Quote      string    `json:"quote"`
	Rating     int       `json:"rating"`
	Approved   bool      `json:"approved"`
	CreatedAt  time.Time `json:"created_at"`
}

type Repository interface {
	Save(ctx context.Context, t *Testimonial) error
	ListByTeam(ctx context.Context, teamID uuid.UUID, approvedOnly bool) ([]*Testimonial, error)
	SetApproved(ctx context.Context, id uuid.UUID, teamID uuid.UUID, approved bool) error
	Delete(ctx context.Context, id uuid.UUID, teamID uuid.UUID) error
}
