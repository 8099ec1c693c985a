package lead

import (
	"context"

	"github.com/google/uuid"
	"github.com/maslima80/listingshow/internal/domain/lead"
	"github.com/maslima80/listingshow/pkg/apperror"
)

type UpdateLeadStatusUseCase struct {
	leadRepo lead.Repository
}

func NewUpdateLeadStatusUseCase(repo lead.Repository) *UpdateLeadStatusUseCase {
	return &UpdateLeadStatusUseCase{leadRepo: repo}
}

func (uc *UpdateLeadStatusUseCase) Execute(ctx context.Context, id, teamID uuid.UUID, status lead.LeadStatus) error {
	switch status {
	case lead.StatusNew, lead.StatusContacted, lead.StatusClosed:
	default:
		return apperror.NewInvalidInput("unknown lead status: "+string(status), nil)
	}

	if _, err := uc.leadRepo.FindByID(ctx, id, teamID); err != nil {
		return err
	}
	return uc.leadRepo.UpdateStatus(ctx, id, teamID, status)
}
