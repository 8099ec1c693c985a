package media

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/maslima80/listingshow/internal/application/service"
	"github.com/maslima80/listingshow/internal/domain/asset"
	"github.com/maslima80/listingshow/internal/domain/property"
	"github.com/maslima80/listingshow/pkg/apperror"
	"github.com/maslima80/listingshow/pkg/logger"
)

const (
	mainTransformation  = "c_limit,w_1600"
	thumbTransformation = "c_fill,g_auto,w_400,h_300"
)

type UploadImageUseCase struct {
	assetRepo    asset.Repository
	propertyRepo property.Repository
	images       service.ImageStorage
	logger       logger.Logger
}

func NewUploadImageUseCase(
	assetRepo asset.Repository,
	propertyRepo property.Repository,
	images service.ImageStorage,
	log logger.Logger,
) *UploadImageUseCase {
	return &UploadImageUseCase{
		assetRepo:    assetRepo,
		propertyRepo: propertyRepo,
		images:       images,
		logger:       log,
	}
}

type UploadImageInput struct {
	TeamID     uuid.UUID
	PropertyID uuid.UUID
	File       io.Reader
	Label      string
}

type UploadImageOutput struct {
	AssetID      uuid.UUID
	URL          string
	ThumbnailURL string
}

func (uc *UploadImageUseCase) Execute(ctx context.Context, input UploadImageInput) (*UploadImageOutput, error) {
	if input.File == nil {
		return nil, apperror.NewInvalidInput("'file' is required", nil)
	}
	if _, err := uc.propertyRepo.FindByID(ctx, input.PropertyID, input.TeamID); err != nil {
		return nil, err
	}

	assetID := uuid.New()
	folder := fmt.Sprintf("teams/%s/properties/%s", input.TeamID.String(), input.PropertyID.String())
	publicID := assetID.String()

	if _, err := uc.images.Upload(ctx, input.File, folder, publicID); err != nil {
		return nil, apperror.NewInternal("failed to upload image file", err)
	}

	fullPublicID := folder + "/" + publicID
	mainURL, err := uc.images.DeliveryURL(fullPublicID, mainTransformation)
	if err != nil {
		return nil, apperror.NewInternal("failed to build main image URL", err)
	}
	thumbURL, err := uc.images.DeliveryURL(fullPublicID, thumbTransformation)
	if err != nil {
		return nil, apperror.NewInternal("failed to build thumbnail URL", err)
	}

	siblings, err := uc.assetRepo.ListByProperty(ctx, input.PropertyID)
	if err != nil {
		return nil, err
	}

	newAsset := &asset.MediaAsset{
		ID:           assetID,
		PropertyID:   input.PropertyID,
		Kind:         asset.KindImage,
		Provider:     asset.ProviderCloudinary,
		ProviderID:   fullPublicID,
		URL:          mainURL,
		ThumbnailURL: &thumbURL,
		Label:        input.Label,
		Position:     len(siblings),
		Processing:   false,
		CreatedAt:    time.Now().UTC(),
	}

	if err := uc.assetRepo.Save(ctx, newAsset); err != nil {
		go uc.images.Delete(context.Background(), fullPublicID)
		return nil, err
	}

	return &UploadImageOutput{AssetID: assetID, URL: mainURL, ThumbnailURL: thumbURL}, nil
}
