package lead

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/maslima80/listingshow/internal/domain/lead"
)

type ListLeadsUseCase struct {
	leadRepo lead.Repository
}

func NewListLeadsUseCase(repo lead.Repository) *ListLeadsUseCase {
	return &ListLeadsUseCase{leadRepo: repo}
}

type ListLeadsInput struct {
	TeamID uuid.UUID
	Limit  int
	Offset int
}

type ListLeadsOutput struct {
	Leads []*lead.Lead
}

func (uc *ListLeadsUseCase) Execute(ctx context.Context, in ListLeadsInput) (*ListLeadsOutput, error) {
	if in.Limit <= 0 {
		in.Limit = 50
	}
	if in.Offset < 0 {
		in.Offset = 0
	}
	leads, err := uc.leadRepo.ListByTeam(ctx, in.TeamID, in.Limit, in.Offset)
	if err != nil {
		return nil, fmt.Errorf("list leads failed: %w", err)
	}
	return &ListLeadsOutput{Leads: leads}, nil
}
