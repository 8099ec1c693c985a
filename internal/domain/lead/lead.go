package lead

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type LeadStatus string

const (
	StatusNew       LeadStatus = "new"
	StatusContacted LeadStatus = "contacted"
	StatusClosed    LeadStatus = "closed"
)

type Lead struct {
	ID         uuid.UUID  `json:"id"`
	TeamID     uuid.UUID  `json:"team_id"`
	PropertyID *uuid.UUID `json:"property_id"`
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	Phone      string     `json:"phone"`
	Message    string     `json:"message"`
	Status     LeadStatus `json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
}

type Repository interface {
	Save(ctx context.Context, l *Lead) error
	FindByID(ctx context.Context, id uuid.UUID, teamID uuid.UUID) (*Lead, error)
	ListByTeam(ctx context.Context, teamID uuid.UUID, limit, offset int) ([]*Lead, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, teamID uuid.UUID, status LeadStatus) error
}
