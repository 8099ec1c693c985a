package testimonial

import (
	"context"

	"github.com/google/uuid"
	"github.com/maslima80/listingshow/internal/domain/testimonial"
)

type ListTestimonialsUseCase struct {
	testimonialRepo testimonial.Repository
}

func NewListTestimonialsUseCase(repo testimonial.Repository) *ListTestimonialsUseCase {
	return &ListTestimonialsUseCase{testimonialRepo: repo}
}

// Execute lists a team's testimonials. Public pages pass approvedOnly=true;
// the moderation dashboard passes false and sees everything.
func (uc *ListTestimonialsUseCase) Execute(ctx context.Context, teamID uuid.UUID, approvedOnly bool) ([]*testimonial.Testimonial, error) {
	return uc.testimonialRepo.ListByTeam(ctx, teamID, approvedOnly)
}
