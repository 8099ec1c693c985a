package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	teamUC "github.com/maslima80/listingshow/internal/application/usecase/team"
)

type TeamHandler struct {
	themeSettingsUseCase *teamUC.ThemeSettingsUseCase
}

func NewTeamHandler(themeUC *teamUC.ThemeSettingsUseCase) *TeamHandler {
	return &TeamHandler{themeSettingsUseCase: themeUC}
}

func (h *TeamHandler) GetTeam(c *gin.Context) {

	teamID, ok := GetTeamIDFromGinContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "team information not found"})
		return
	}

	t, err := h.themeSettingsUseCase.Get(c.Request.Context(), teamID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, t)
}

func (h *TeamHandler) UpdateTheme(c *gin.Context) {

	teamID, ok := GetTeamIDFromGinContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "team information not found"})
		return
	}

	var req UpdateThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request data", "details": err.Error()})
		return
	}

	if err := h.themeSettingsUseCase.Update(c.Request.Context(), teamID, req.ThemeSettings); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
