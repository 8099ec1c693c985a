package team

import (
	"context"

	"github.com/google/uuid"
	"github.com/maslima80/listingshow/internal/domain/team"
	"github.com/maslima80/listingshow/pkg/apperror"
)

// Keys a team is allowed to set on its public pages. Anything else is
// rejected so the stored JSON never grows arbitrary fields.
var allowedThemeKeys = map[string]bool{
	"primary_color":   true,
	"secondary_color": true,
	"logo_url":        true,
	"font_family":     true,
	"layout":          true,
}

type ThemeSettingsUseCase struct {
	teamRepo team.Repository
}

func NewThemeSettingsUseCase(repo team.Repository) *ThemeSettingsUseCase {
	return &ThemeSettingsUseCase{teamRepo: repo}
}

func (uc *ThemeSettingsUseCase) Get(ctx context.Context, teamID uuid.UUID) (*team.Team, error) {
	return uc.teamRepo.FindByID(ctx, teamID)
}

func (uc *ThemeSettingsUseCase) Update(ctx context.Context, teamID uuid.UUID, settings map[string]any) error {
	for key := range settings {
		if !allowedThemeKeys[key] {
			return apperror.NewInvalidInput("unknown theme setting: "+key, nil)
		}
	}

	current, err := uc.teamRepo.FindByID(ctx, teamID)
	if err != nil {
		return err
	}

	merged := make(map[string]any, len(current.ThemeSettings)+len(settings))
	for k, v := range current.ThemeSettings {
		merged[k] = v
	}
	for k, v := range settings {
		if v == nil {
			delete(merged, k)
			continue
		}
		merged[k] = v
	}

	return uc.teamRepo.UpdateTheme(ctx, teamID, merged)
}
