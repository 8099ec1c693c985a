package property

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/maslima80/listingshow/internal/domain/property"
)

type ListPropertiesUseCase struct {
	propertyRepo property.Repository
}

func NewListPropertiesUseCase(r property.Repository) *ListPropertiesUseCase {
	return &ListPropertiesUseCase{propertyRepo: r}
}

type ListPropertiesInput struct {
	TeamID uuid.UUID
	Limit  int
	Offset int
}

type ListPropertiesOutput struct {
	Properties []*property.Property
}

func (uc *ListPropertiesUseCase) Execute(ctx context.Context, in ListPropertiesInput) (*ListPropertiesOutput, error) {
	if in.Limit <= 0 {
		in.Limit = 30
	}
	if in.Offset < 0 {
		in.Offset = 0
	}
	properties, err := uc.propertyRepo.ListByTeam(ctx, in.TeamID, in.Limit, in.Offset)
	if err != nil {
		return nil, fmt.Errorf("list properties failed: %w", err)
	}
	return &ListPropertiesOutput{Properties: properties}, nil
}
