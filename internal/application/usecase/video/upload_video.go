package video

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/maslima80/listingshow/adapters/event"
	"github.com/maslima80/listingshow/internal/application/service"
	"github.com/maslima80/listingshow/internal/domain/asset"
	"github.com/maslima80/listingshow/internal/domain/property"
	"github.com/maslima80/listingshow/pkg/apperror"
	"github.com/maslima80/listingshow/pkg/logger"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("video_usecase")

// EventPublisher is the slice of the Kafka producer the video flows need.
type EventPublisher interface {
	PublishVideoEvent(ctx context.Context, payload event.VideoEventPayload) error
}

type UploadVideoUseCase struct {
	assetRepo    asset.Repository
	propertyRepo property.Repository
	videoHost    service.VideoHost
	kafkaClient  EventPublisher
	logger       logger.Logger
}

func NewUploadVideoUseCase(
	assetRepo asset.Repository,
	propertyRepo property.Repository,
	videoHost service.VideoHost,
	kafkaClient EventPublisher,
	log logger.Logger,
) *UploadVideoUseCase {
	return &UploadVideoUseCase{
		assetRepo:    assetRepo,
		propertyRepo: propertyRepo,
		videoHost:    videoHost,
		kafkaClient:  kafkaClient,
		logger:       log,
	}
}

type UploadVideoInput struct {
	TeamID     uuid.UUID
	PropertyID uuid.UUID
	File       io.Reader
	Title      string
}

type UploadVideoOutput struct {
	AssetID    uuid.UUID
	ProviderID string
	URL        string
}

// Execute uploads the raw file to the video host and persists the asset with
// an unknown duration. The provider transcodes asynchronously, so the asset
// sits in the awaiting-duration state until a later metadata fetch charges it.
// If the upload itself fails nothing is persisted and the caller gets the
// upstream error.
func (uc *UploadVideoUseCase) Execute(ctx context.Context, input UploadVideoInput) (*UploadVideoOutput, error) {
	ctx, span := tracer.Start(ctx, "UploadVideo")
	defer span.End()

	if input.File == nil {
		return nil, apperror.NewInvalidInput("'file' is required", nil)
	}
	if input.Title == "" {
		return nil, apperror.NewInvalidInput("'title' is required", nil)
	}

	// Ownership check: the property must belong to the caller's team.
	if _, err := uc.propertyRepo.FindByID(ctx, input.PropertyID, input.TeamID); err != nil {
		return nil, err
	}

	desc, err := uc.videoHost.Upload(ctx, input.File, input.Title)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	siblings, err := uc.assetRepo.ListByProperty(ctx, input.PropertyID)
	if err != nil {
		return nil, err
	}

	embedURL := uc.videoHost.EmbedURL(desc.ProviderID, service.EmbedOptions{Autoplay: false, Preload: true})
	newAsset := &asset.MediaAsset{
		ID:           uuid.New(),
		PropertyID:   input.PropertyID,
		Kind:         asset.KindVideo,
		Provider:     asset.ProviderBunny,
		ProviderID:   desc.ProviderID,
		URL:          embedURL,
		ThumbnailURL: &desc.ThumbnailURL,
		Label:        input.Title,
		Position:     len(siblings),
		DurationSec:  nil,
		Processing:   true,
		CreatedAt:    time.Now().UTC(),
	}

	if err := uc.assetRepo.Save(ctx, newAsset); err != nil {
		// The remote upload already happened; clean it up best effort so the
		// provider does not keep billing for an orphan.
		go uc.videoHost.Delete(context.Background(), desc.ProviderID)
		return nil, err
	}

	go func() {
		payload := event.VideoEventPayload{
			EventType:  event.VideoEventTypeUploaded,
			AssetID:    newAsset.ID,
			TeamID:     input.TeamID,
			ProviderID: desc.ProviderID,
		}
		if err := uc.kafkaClient.PublishVideoEvent(context.Background(), payload); err != nil {
			uc.logger.Error("Failed to publish Kafka 'video.uploaded' event", err, zap.String("asset_id", newAsset.ID.String()))
		}
	}()

	return &UploadVideoOutput{
		AssetID:    newAsset.ID,
		ProviderID: desc.ProviderID,
		URL:        embedURL,
	}, nil
}
