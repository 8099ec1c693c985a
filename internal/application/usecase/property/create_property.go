package property

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/maslima80/listingshow/internal/domain/property"
	"github.com/maslima80/listingshow/pkg/apperror"
	"github.com/maslima80/listingshow/pkg/logger"
)

type CreatePropertyUseCase struct {
	propertyRepo property.Repository
	logger       logger.Logger
}

func NewCreatePropertyUseCase(r property.Repository, log logger.Logger) *CreatePropertyUseCase {
	return &CreatePropertyUseCase{propertyRepo: r, logger: log}
}

type CreatePropertyInput struct {
	TeamID      uuid.UUID
	Title       string
	Address     string
	City        string
	Description string
	Slug        string
}

type CreatePropertyOutput struct {
	PropertyID uuid.UUID
	Slug       string
}

func (uc *CreatePropertyUseCase) Execute(ctx context.Context, input CreatePropertyInput) (*CreatePropertyOutput, error) {
	if input.Title == "" {
		return nil, apperror.NewInvalidInput("'title' is required", nil)
	}

	slug := input.Slug
	if slug == "" {
		slug = slugify(input.Title)
	}

	newProperty := &property.Property{
		ID:          uuid.New(),
		TeamID:      input.TeamID,
		Slug:        slug,
		Title:       input.Title,
		Address:     input.Address,
		City:        input.City,
		Description: input.Description,
		Status:      property.StatusDraft,
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}

	if err := uc.propertyRepo.Save(ctx, newProperty); err != nil {
		return nil, err
	}

	return &CreatePropertyOutput{PropertyID: newProperty.ID, Slug: slug}, nil
}

func slugify(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	var b strings.Builder
	lastDash := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash && b.Len() > 0 {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
