package property

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type PropertyStatus string

const (
	StatusDraft     PropertyStatus = "draft"
	StatusPublished PropertyStatus = "published"
	StatusArchived  PropertyStatus = "archived"
)

type Property struct {
	ID           uuid.UUID      `json:"id"`
	TeamID       uuid.UUID      `json:"team_id"`
	Slug         string         `json:"slug"`
	Title        string         `json:"title"`
	Address      string         `json:"address"`
	City         string         `json:"city"`
	Description  string         `json:"description"`
	Status       PropertyStatus `json:"status"`
	CoverAssetID *uuid.UUID     `json:"cover_asset_id"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

type Repository interface {
	Save(ctx context.Context, p *Property) error
	Update(ctx context.Context, p *Property) error
	Delete(ctx context.Context, id uuid.UUID, teamID uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID, teamID uuid.UUID) (*Property, error)
	ListByTeam(ctx context.Context, teamID uuid.UUID, limit, offset int) ([]*Property, error)
	// TeamOf resolves the owning team of a property. The reconciliation sweep
	// has no caller-supplied team, so ownership is looked up from the row.
	TeamOf(ctx context.Context, propertyID uuid.UUID) (uuid.UUID, error)
}
