package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	quotaUC "github.com/maslima80/listingshow/internal/application/usecase/quota"
)

type QuotaHandler struct {
	quotaUseCase *quotaUC.QuotaUseCase
}

func NewQuotaHandler(uc *quotaUC.QuotaUseCase) *QuotaHandler {
	return &QuotaHandler{quotaUseCase: uc}
}

func (h *QuotaHandler) GetUsage(c *gin.Context) {

	teamID, ok := GetTeamIDFromGinContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "team information not found"})
		return
	}

	usage, err := h.quotaUseCase.GetUsage(c.Request.Context(), teamID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, usage)
}
