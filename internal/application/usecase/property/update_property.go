package property

import (
	"context"

	"github.com/google/uuid"
	"github.com/maslima80/listingshow/internal/domain/asset"
	"github.com/maslima80/listingshow/internal/domain/property"
	"github.com/maslima80/listingshow/pkg/apperror"
)

type UpdatePropertyUseCase struct {
	propertyRepo property.Repository
	assetRepo    asset.Repository
}

func NewUpdatePropertyUseCase(r property.Repository, a asset.Repository) *UpdatePropertyUseCase {
	return &UpdatePropertyUseCase{propertyRepo: r, assetRepo: a}
}

type UpdatePropertyInput struct {
	TeamID       uuid.UUID
	PropertyID   uuid.UUID
	Title        string
	Address      string
	City         string
	Description  string
	Status       property.PropertyStatus
	CoverAssetID *uuid.UUID
}

func (uc *UpdatePropertyUseCase) Execute(ctx context.Context, in UpdatePropertyInput) error {
	p, err := uc.propertyRepo.FindByID(ctx, in.PropertyID, in.TeamID)
	if err != nil {
		return err
	}

	if in.CoverAssetID != nil {
		cover, err := uc.assetRepo.FindByID(ctx, *in.CoverAssetID)
		if err != nil {
			return err
		}
		if cover.PropertyID != p.ID {
			return apperror.NewInvalidInput("cover asset does not belong to this property", nil)
		}
	}

	p.Title = in.Title
	p.Address = in.Address
	p.City = in.City
	p.Description = in.Description
	p.Status = in.Status
	p.CoverAssetID = in.CoverAssetID

	return uc.propertyRepo.Update(ctx, p)
}
