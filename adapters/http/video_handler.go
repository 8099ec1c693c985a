package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	videoUC "github.com/maslima80/listingshow/internal/application/usecase/video"
)

type VideoHandler struct {
	uploadVideoUseCase      *videoUC.UploadVideoUseCase
	updateDurationUseCase   *videoUC.UpdateDurationUseCase
	deleteVideoUseCase      *videoUC.DeleteVideoUseCase
	thumbnailOptionsUseCase *videoUC.ThumbnailOptionsUseCase
	setThumbnailUseCase     *videoUC.SetThumbnailUseCase
}

func NewVideoHandler(
	uploadUC *videoUC.UploadVideoUseCase,
	updateDurationUC *videoUC.UpdateDurationUseCase,
	deleteUC *videoUC.DeleteVideoUseCase,
	thumbOptionsUC *videoUC.ThumbnailOptionsUseCase,
	setThumbUC *videoUC.SetThumbnailUseCase,
) *VideoHandler {
	return &VideoHandler{
		uploadVideoUseCase:      uploadUC,
		updateDurationUseCase:   updateDurationUC,
		deleteVideoUseCase:      deleteUC,
		thumbnailOptionsUseCase: thumbOptionsUC,
		setThumbnailUseCase:     setThumbUC,
	}
}

func (h *VideoHandler) UploadVideo(c *gin.Context) {

	teamID, ok := GetTeamIDFromGinContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "team information not found"})
		return
	}

	propertyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid property ID"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "'file' is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "file cannot open"})
		return
	}
	defer file.Close()

	title := c.PostForm("title")
	if title == "" {
		title = fileHeader.Filename
	}

	input := videoUC.UploadVideoInput{
		TeamID:     teamID,
		PropertyID: propertyID,
		File:       file,
		Title:      title,
	}

	output, err := h.uploadVideoUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "video uploaded, processing ...",
		"asset_id":    output.AssetID,
		"provider_id": output.ProviderID,
		"url":         output.URL,
	})
}

// RefreshDuration asks the provider for metadata right now instead of waiting
// for the background poller. Useful when the dashboard shows a video stuck in
// processing.
func (h *VideoHandler) RefreshDuration(c *gin.Context) {

	if _, ok := GetTeamIDFromGinContext(c); !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "team information not found"})
		return
	}

	assetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid asset ID"})
		return
	}

	output, err := h.updateDurationUseCase.Execute(c.Request.Context(), assetID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"charged":         output.Charged,
		"already_charged": output.AlreadyCharged,
		"duration_sec":    output.DurationSec,
		"minutes":         output.Minutes,
	})
}

func (h *VideoHandler) DeleteVideo(c *gin.Context) {

	teamID, ok := GetTeamIDFromGinContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "team information not found"})
		return
	}

	assetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid asset ID"})
		return
	}

	input := videoUC.DeleteVideoInput{
		TeamID:  teamID,
		AssetID: assetID,
	}

	if err := h.deleteVideoUseCase.Execute(c.Request.Context(), input); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *VideoHandler) ListThumbnails(c *gin.Context) {

	teamID, ok := GetTeamIDFromGinContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "team information not found"})
		return
	}

	assetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid asset ID"})
		return
	}

	variants, err := h.thumbnailOptionsUseCase.Execute(c.Request.Context(), teamID, assetID)
	if err != nil {
		respondError(c, err)
		return
	}

	dtos := make([]ThumbnailVariantDTO, len(variants))
	for i, v := range variants {
		dtos[i] = ToThumbnailVariantDTO(v)
	}
	c.JSON(http.StatusOK, dtos)
}

func (h *VideoHandler) SetThumbnail(c *gin.Context) {

	teamID, ok := GetTeamIDFromGinContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "team information not found"})
		return
	}

	assetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid asset ID"})
		return
	}

	var req SetThumbnailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request data", "details": err.Error()})
		return
	}

	if err := h.setThumbnailUseCase.Execute(c.Request.Context(), teamID, assetID, req.URL); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
