package testimonial

import (
	"context"

	"github.com/google/uuid"
	"github.com/maslima80/listingshow/internal/domain/testimonial"
)

type ModerateTestimonialUseCase struct {
	testimonialRepo testimonial.Repository
}

func NewModerateTestimonialUseCase(repo testimonial.Repository) *ModerateTestimonialUseCase {
	return &ModerateTestimonialUseCase{testimonialRepo: repo}
}

func (uc *ModerateTestimonialUseCase) SetApproved(ctx context.Context, id, teamID uuid.UUID, approved bool) error {
	return uc.testimonialRepo.SetApproved(ctx, id, teamID, approved)
}

func (uc *ModerateTestimonialUseCase) Delete(ctx context.Context, id, teamID uuid.UUID) error {
	return uc.testimonialRepo.Delete(ctx, id, teamID)
}
