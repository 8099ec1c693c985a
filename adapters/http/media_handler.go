package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	mediaUC "github.com/maslima80/listingshow/internal/application/usecase/media"
)

type MediaHandler struct {
	uploadImageUseCase *mediaUC.UploadImageUseCase
	deleteImageUseCase *mediaUC.DeleteImageUseCase
}

func NewMediaHandler(uploadUC *mediaUC.UploadImageUseCase, deleteUC *mediaUC.DeleteImageUseCase) *MediaHandler {
	return &MediaHandler{
		uploadImageUseCase: uploadUC,
		deleteImageUseCase: deleteUC,
	}
}

func (h *MediaHandler) UploadImage(c *gin.Context) {

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

	input := mediaUC.UploadImageInput{
		TeamID:     teamID,
		PropertyID: propertyID,
		File:       file,
		Label:      c.PostForm("label"),
	}

	output, err := h.uploadImageUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"asset_id":      output.AssetID,
		"url":           output.URL,
		"thumbnail_url": output.ThumbnailURL,
	})
}

func (h *MediaHandler) DeleteImage(c *gin.Context) {

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

	input := mediaUC.DeleteImageInput{
		TeamID:  teamID,
		AssetID: assetID,
	}

	if err := h.deleteImageUseCase.Execute(c.Request.Context(), input); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
