package property

import (
	"context"

	"github.com/google/uuid"
	"github.com/maslima80/listingshow/internal/domain/asset"
	"github.com/maslima80/listingshow/internal/domain/property"
)

type GetPropertyUseCase struct {
	propertyRepo property.Repository
	assetRepo    asset.Repository
}

func NewGetPropertyUseCase(r property.Repository, a asset.Repository) *GetPropertyUseCase {
	return &GetPropertyUseCase{propertyRepo: r, assetRepo: a}
}

type GetPropertyOutput struct {
	Property *property.Property
	Assets   []*asset.MediaAsset
}

func (uc *GetPropertyUseCase) Execute(ctx context.Context, id, teamID uuid.UUID) (*GetPropertyOutput, error) {
	p, err := uc.propertyRepo.FindByID(ctx, id, teamID)
	if err != nil {
		return nil, err
	}
	assets, err := uc.assetRepo.ListByProperty(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	return &GetPropertyOutput{Property: p, Assets: assets}, nil
}
