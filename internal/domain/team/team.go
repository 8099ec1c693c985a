package team

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Team struct {
	ID              uuid.UUID      `json:"id"`
	Name            string         `json:"name"`
	Slug            string         `json:"slug"`
	VideoMinutesCap int            `json:"video_minutes_cap"`
	ThemeSettings   map[string]any `json:"theme_settings"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Team, error)
	UpdateTheme(ctx context.Context, id uuid.UUID, settings map[string]any) error
}
