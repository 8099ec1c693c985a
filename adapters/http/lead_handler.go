package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	leadUC "github.com/maslima80/listingshow/internal/application/usecase/lead"
	"github.com/maslima80/listingshow/internal/domain/lead"
)

type LeadHandler struct {
	captureLeadUseCase      *leadUC.CaptureLeadUseCase
	listLeadsUseCase        *leadUC.ListLeadsUseCase
	updateLeadStatusUseCase *leadUC.UpdateLeadStatusUseCase
}

func NewLeadHandler(
	captureUC *leadUC.CaptureLeadUseCase,
	listUC *leadUC.ListLeadsUseCase,
	updateStatusUC *leadUC.UpdateLeadStatusUseCase,
) *LeadHandler {
	return &LeadHandler{
		captureLeadUseCase:      captureUC,
		listLeadsUseCase:        listUC,
		updateLeadStatusUseCase: updateStatusUC,
	}
}

// CaptureLead is public: it backs the contact form on listing pages.
func (h *LeadHandler) CaptureLead(c *gin.Context) {

	var req CaptureLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request data", "details": err.Error()})
		return
	}

	teamID, err := uuid.Parse(req.TeamID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid team ID"})
		return
	}

	propertyID, err := parseOptionalUUID(req.PropertyID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid property ID"})
		return
	}

	input := leadUC.CaptureLeadInput{
		TeamID:     teamID,
		PropertyID: propertyID,
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Message:    req.Message,
	}

	output, err := h.captureLeadUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"lead_id": output.LeadID})
}

func (h *LeadHandler) ListLeads(c *gin.Context) {

	teamID, ok := GetTeamIDFromGinContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "team information not found"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	output, err := h.listLeadsUseCase.Execute(c.Request.Context(), leadUC.ListLeadsInput{
		TeamID: teamID,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	dtos := make([]LeadDTO, len(output.Leads))
	for i, l := range output.Leads {
		dtos[i] = ToLeadDTO(l)
	}
	c.JSON(http.StatusOK, dtos)
}

func (h *LeadHandler) UpdateLeadStatus(c *gin.Context) {

	teamID, ok := GetTeamIDFromGinContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "team information not found"})
		return
	}

	leadID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid lead ID"})
		return
	}

	var req UpdateLeadStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request data", "details": err.Error()})
		return
	}

	if err := h.updateLeadStatusUseCase.Execute(c.Request.Context(), leadID, teamID, lead.LeadStatus(req.Status)); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
