package testimonial

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/maslima80/listingshow/internal/application/service"
)

// Invite links stay valid for a week; the token dies on first use.
const inviteTokenTTL = 7 * 24 * time.Hour

type RequestLinkUseCase struct {
	tokens service.TokenStore
}

func NewRequestLinkUseCase(tokens service.TokenStore) *RequestLinkUseCase {
	return &RequestLinkUseCase{tokens: tokens}
}

type RequestLinkOutput struct {
	Token     string
	ExpiresAt time.Time
}

// Execute mints a one-shot token an agent can send to a past client. The token
// value carries the team so the later anonymous submission lands in the right
// account.
func (uc *RequestLinkUseCase) Execute(ctx context.Context, teamID uuid.UUID) (*RequestLinkOutput, error) {
	token := uuid.NewString()
	if err := uc.tokens.Issue(ctx, token, teamID.String(), inviteTokenTTL); err != nil {
		return nil, err
	}
	return &RequestLinkOutput{
		Token:     token,
		ExpiresAt: time.Now().UTC().Add(inviteTokenTTL),
	}, nil
}
