package quota

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/maslima80/listingshow/internal/domain/quota"
)

type QuotaUseCase struct {
	ledger quota.Ledger
	plans  quota.PlanResolver
}

func NewQuotaUseCase(ledger quota.Ledger, plans quota.PlanResolver) *QuotaUseCase {
	return &QuotaUseCase{ledger: ledger, plans: plans}
}

type UsageOutput struct {
	MinutesUsed      int `json:"minutes_used"`
	MinutesCap       int `json:"minutes_cap"`
	MinutesRemaining int `json:"minutes_remaining"`
}

// CanConsume reports whether the team can take on minutesRequested more
// minutes without going over its plan cap. Never mutates state.
func (uc *QuotaUseCase) CanConsume(ctx context.Context, teamID uuid.UUID, minutesRequested int) (bool, string, error) {
	cap, err := uc.plans.VideoMinutesCap(ctx, teamID)
	if err != nil {
		return false, "", err
	}
	current, err := uc.ledger.Get(ctx, teamID)
	if err != nil {
		return false, "", err
	}
	if current.MinutesUsed+minutesRequested > cap {
		reason := fmt.Sprintf("team has used %d of %d video minutes, %d more would exceed the plan",
			current.MinutesUsed, cap, minutesRequested)
		return false, reason, nil
	}
	return true, "", nil
}

func (uc *QuotaUseCase) GetUsage(ctx context.Context, teamID uuid.UUID) (*UsageOutput, error) {
	cap, err := uc.plans.VideoMinutesCap(ctx, teamID)
	if err != nil {
		return nil, err
	}
	current, err := uc.ledger.Get(ctx, teamID)
	if err != nil {
		return nil, err
	}
	remaining := cap - current.MinutesUsed
	if remaining < 0 {
		remaining = 0
	}
	return &UsageOutput{
		MinutesUsed:      current.MinutesUsed,
		MinutesCap:       cap,
		MinutesRemaining: remaining,
	}, nil
}
