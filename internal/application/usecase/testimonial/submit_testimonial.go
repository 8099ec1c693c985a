package testimonial

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/maslima80/listingshow/internal/application/service"
	"github.com/maslima80/listingshow/internal/domain/testimonial"
	"github.com/maslima80/listingshow/pkg/apperror"
)

type SubmitTestimonialUseCase struct {
	testimonialRepo testimonial.Repository
	tokens          service.TokenStore
}

func NewSubmitTestimonialUseCase(repo testimonial.Repository, tokens service.TokenStore) *SubmitTestimonialUseCase {
	return &SubmitTestimonialUseCase{testimonialRepo: repo, tokens: tokens}
}

type SubmitTestimonialInput struct {
	Token      string
	AuthorName string
	Quote      string
	Rating     int
}

type SubmitTestimonialOutput struct {
	TestimonialID uuid.UUID
}

// Execute redeems an invite token and stores the testimonial unapproved.
// Consuming the token first means a valid submission can never be replayed,
// even if it later fails validation the client has to ask for a new link.
func (uc *SubmitTestimonialUseCase) Execute(ctx context.Context, input SubmitTestimonialInput) (*SubmitTestimonialOutput, error) {
	if input.Token == "" {
		return nil, apperror.NewInvalidInput("'token' is required", nil)
	}

	teamValue, err := uc.tokens.Consume(ctx, input.Token)
	if err != nil {
		return nil, err
	}
	teamID, err := uuid.Parse(teamValue)
	if err != nil {
		return nil, apperror.NewInternal("invite token carries a malformed team id", err)
	}

	if input.AuthorName == "" {
		return nil, apperror.NewInvalidInput("'author_name' is required", nil)
	}
	if input.Quote == "" {
		return nil, apperror.NewInvalidInput("'quote' is required", nil)
	}
	if input.Rating < 1 || input.Rating > 5 {
		return nil, apperror.NewInvalidInput("'rating' must be between 1 and 5", nil)
	}

	t := &testimonial.Testimonial{
		ID:         uuid.New(),
		TeamID:     teamID,
		AuthorName: input.AuthorName,
		Quote:      input.Quote,
		Rating:     input.Rating,
		Approved:   false,
		CreatedAt:  time.Now().UTC(),
	}
	if err := uc.testimonialRepo.Save(ctx, t); err != nil {
		return nil, err
	}
	return &SubmitTestimonialOutput{TestimonialID: t.ID}, nil
}
