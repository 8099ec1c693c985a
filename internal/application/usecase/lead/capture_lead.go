package lead

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/maslima80/listingshow/adapters/event"
	"github.com/maslima80/listingshow/internal/domain/lead"
	"github.com/maslima80/listingshow/pkg/apperror"
	"github.com/maslima80/listingshow/pkg/logger"
	"go.uber.org/zap"
)

// EventPublisher is the slice of the Kafka producer this flow needs.
type EventPublisher interface {
	PublishLeadEvent(ctx context.Context, payload event.LeadEventPayload) error
}

type CaptureLeadUseCase struct {
	leadRepo    lead.Repository
	kafkaClient EventPublisher
	logger      logger.Logger
}

func NewCaptureLeadUseCase(repo lead.Repository, kafkaClient EventPublisher, log logger.Logger) *CaptureLeadUseCase {
	return &CaptureLeadUseCase{leadRepo: repo, kafkaClient: kafkaClient, logger: log}
}

type CaptureLeadInput struct {
	TeamID     uuid.UUID
	PropertyID *uuid.UUID
	Name       string
	Email      string
	Phone      string
	Message    string
}

type CaptureLeadOutput struct {
	LeadID uuid.UUID
}

// Execute takes a contact form submission from a public listing page. There is
// no authenticated caller here; the team comes from the page being viewed.
func (uc *CaptureLeadUseCase) Execute(ctx context.Context, input CaptureLeadInput) (*CaptureLeadOutput, error) {
	if input.Name == "" {
		return nil, apperror.NewInvalidInput("'name' is required", nil)
	}
	email := strings.TrimSpace(strings.ToLower(input.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, apperror.NewInvalidInput("a valid 'email' is required", nil)
	}

	newLead := &lead.Lead{
		ID:         uuid.New(),
		TeamID:     input.TeamID,
		PropertyID: input.PropertyID,
		Name:       input.Name,
		Email:      email,
		Phone:      input.Phone,
		Message:    input.Message,
		Status:     lead.StatusNew,
		CreatedAt:  time.Now().UTC(),
	}

	if err := uc.leadRepo.Save(ctx, newLead); err != nil {
		return nil, err
	}

	go func() {
		payload := event.LeadEventPayload{
			LeadID:     newLead.ID,
			TeamID:     newLead.TeamID,
			PropertyID: newLead.PropertyID,
			Email:      newLead.Email,
		}
		if err := uc.kafkaClient.PublishLeadEvent(context.Background(), payload); err != nil {
			uc.logger.Error("Failed to publish Kafka lead event", err, zap.String("lead_id", newLead.ID.String()))
		}
	}()

	return &CaptureLeadOutput{LeadID: newLead.ID}, nil
}
