package testimonial

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maslima80/listingshow/internal/domain/testimonial"
	"github.com/maslima80/listingshow/pkg/apperror"
)

type fakeTestimonialRepo struct {
	saved []*testimonial.Testimonial
}

func (r *fakeTestimonialRepo) Save(ctx context.Context, t *testimonial.Testimonial) error {
	r.saved = append(r.saved, t)
	return nil
}

func (r *fakeTestimonialRepo) ListByTeam(ctx context.Context, teamID uuid.UUID, approvedOnly bool) ([]*testimonial.Testimonial, error) {
	out := make([]*testimonial.Testimonial, 0)
	for _, t := range r.saved {
		if t.TeamID != teamID {
			continue
		}
		if approvedOnly && !t.Approved {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (r *fakeTestimonialRepo) SetApproved(ctx context.Context, id uuid.UUID, teamID uuid.UUID, approved bool) error {
	for _, t := range r.saved {
		if t.ID == id && t.TeamID == teamID {
			t.Approved = approved
			return nil
		}
	}
	return apperror.NewNotFound("testimonial", id.String())
}

func (r *fakeTestimonialRepo) Delete(ctx context.Context, id uuid.UUID, teamID uuid.UUID) error {
	for i, t := range r.saved {
		if t.ID == id && t.TeamID == teamID {
			r.saved = append(r.saved[:i], r.saved[i+1:]...)
			return nil
		}
	}
	return apperror.NewNotFound("testimonial", id.String())
}

type fakeTokenStore struct {
	tokens map[string]string
}

func newFakeTokenStore() *fakeTokenStore {
	return &fakeTokenStore{tokens: make(map[string]string)}
}

func (s *fakeTokenStore) Issue(ctx context.Context, token, value string, ttl time.Duration) error {
	s.tokens[token] = value
	return nil
}

func (s *fakeTokenStore) Consume(ctx context.Context, token string) (string, error) {
	value, ok := s.tokens[token]
	if !ok {
		return "", apperror.NewNotFound("token", token)
	}
	delete(s.tokens, token)
	return value, nil
}

func TestSubmitTestimonial_TokenFlow(t *testing.T) {
	teamID := uuid.New()
	tokens := newFakeTokenStore()
	repo := &fakeTestimonialRepo{}

	link, err := NewRequestLinkUseCase(tokens).Execute(context.Background(), teamID)
	require.NoError(t, err)
	require.NotEmpty(t, link.Token)

	uc := NewSubmitTestimonialUseCase(repo, tokens)
	out, err := uc.Execute(context.Background(), SubmitTestimonialInput{
		Token:      link.Token,
		AuthorName: "Maria Santos",
		Quote:      "Sold our place in two weeks.",
		Rating:     5,
	})
	require.NoError(t, err)

	require.Len(t, repo.saved, 1)
	saved := repo.saved[0]
	assert.Equal(t, out.TestimonialID, saved.ID)
	assert.Equal(t, teamID, saved.TeamID)
	assert.False(t, saved.Approved)

	// The token is one-shot.
	_, err = uc.Execute(context.Background(), SubmitTestimonialInput{
		Token:      link.Token,
		AuthorName: "Maria Santos",
		Quote:      "Replay attempt.",
		Rating:     5,
	})
	assert.Error(t, err)
	assert.Len(t, repo.saved, 1)
}

func TestSubmitTestimonial_Validation(t *testing.T) {
	teamID := uuid.New()
	tokens := newFakeTokenStore()
	repo := &fakeTestimonialRepo{}
	uc := NewSubmitTestimonialUseCase(repo, tokens)

	_, err := uc.Execute(context.Background(), SubmitTestimonialInput{
		AuthorName: "No Token", Quote: "x", Rating: 5,
	})
	assert.Error(t, err)

	link, err := NewRequestLinkUseCase(tokens).Execute(context.Background(), teamID)
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), SubmitTestimonialInput{
		Token: link.Token, AuthorName: "Bad Rating", Quote: "x", Rating: 9,
	})
	assert.Error(t, err)
	assert.Empty(t, repo.saved)
}

func TestModerateTestimonial_ApproveAndList(t *testing.T) {
	teamID := uuid.New()
	repo := &fakeTestimonialRepo{}
	tokens := newFakeTokenStore()

	link, err := NewRequestLinkUseCase(tokens).Execute(context.Background(), teamID)
	require.NoError(t, err)
	out, err := NewSubmitTestimonialUseCase(repo, tokens).Execute(context.Background(), SubmitTestimonialInput{
		Token: link.Token, AuthorName: "Maria", Quote: "Great agent.", Rating: 4,
	})
	require.NoError(t, err)

	list := NewListTestimonialsUseCase(repo)

	public, err := list.Execute(context.Background(), teamID, true)
	require.NoError(t, err)
	assert.Empty(t, public)

	require.NoError(t, NewModerateTestimonialUseCase(repo).SetApproved(context.Background(), out.TestimonialID, teamID, true))

	public, err = list.Execute(context.Background(), teamID, true)
	require.NoError(t, err)
	assert.Len(t, public, 1)
}
