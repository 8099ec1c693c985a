package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	testimonialUC "github.com/maslima80/listingshow/internal/application/usecase/testimonial"
)

type TestimonialHandler struct {
	requestLinkUseCase *testimonialUC.RequestLinkUseCase
	submitUseCase      *testimonialUC.SubmitTestimonialUseCase
	listUseCase        *testimonialUC.ListTestimonialsUseCase
	moderateUseCase    *testimonialUC.ModerateTestimonialUseCase
}

func NewTestimonialHandler(
	requestLinkUC *testimonialUC.RequestLinkUseCase,
	submitUC *testimonialUC.SubmitTestimonialUseCase,
	listUC *testimonialUC.ListTestimonialsUseCase,
	moderateUC *testimonialUC.ModerateTestimonialUseCase,
) *TestimonialHandler {
	return &TestimonialHandler{
		requestLinkUseCase: requestLinkUC,
		submitUseCase:      submitUC,
		listUseCase:        listUC,
		moderateUseCase:    moderateUC,
	}
}

func (h *TestimonialHandler) RequestLink(c *gin.Context) {

	teamID, ok := GetTeamIDFromGinContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "team information not found"})
		return
	}

	output, err := h.requestLinkUseCase.Execute(c.Request.Context(), teamID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"token":      output.Token,
		"expires_at": output.ExpiresAt,
	})
}

// SubmitTestimonial is public; the invite token is the only credential.
func (h *TestimonialHandler) SubmitTestimonial(c *gin.Context) {

	var req SubmitTestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request data", "details": err.Error()})
		return
	}

	input := testimonialUC.SubmitTestimonialInput{
		Token:      req.Token,
		AuthorName: req.AuthorName,
		Quote:      req.Quote,
		Rating:     req.Rating,
	}

	output, err := h.submitUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"testimonial_id": output.TestimonialID})
}

func (h *TestimonialHandler) ListTestimonials(c *gin.Context) {

	teamID, ok := GetTeamIDFromGinContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "team information not found"})
		return
	}

	approvedOnly := c.Query("approved") == "true"

	testimonials, err := h.listUseCase.Execute(c.Request.Context(), teamID, approvedOnly)
	if err != nil {
		respondError(c, err)
		return
	}

	dtos := make([]TestimonialDTO, len(testimonials))
	for i, t := range testimonials {
		dtos[i] = ToTestimonialDTO(t)
	}
	c.JSON(http.StatusOK, dtos)
}

func (h *TestimonialHandler) ModerateTestimonial(c *gin.Context) {

	teamID, ok := GetTeamIDFromGinContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "team information not found"})
		return
	}

	testimonialID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid testimonial ID"})
		return
	}

	var req ModerateTestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request data", "details": err.Error()})
		return
	}

	if err := h.moderateUseCase.SetApproved(c.Request.Context(), testimonialID, teamID, req.Approved); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *TestimonialHandler) DeleteTestimonial(c *gin.Context) {

	teamID, ok := GetTeamIDFromGinContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "team information not found"})
		return
	}

	testimonialID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid testimonial ID"})
		return
	}

	if err := h.moderateUseCase.Delete(c.Request.Context(), testimonialID, teamID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
