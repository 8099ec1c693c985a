package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	propertyUC "github.com/maslima80/listingshow/internal/application/usecase/property"
)

type PropertyHandler struct {
	createPropertyUseCase *propertyUC.CreatePropertyUseCase
	listPropertiesUseCase *propertyUC.ListPropertiesUseCase
	getPropertyUseCase    *propertyUC.GetPropertyUseCase
	updatePropertyUseCase *propertyUC.UpdatePropertyUseCase
	deletePropertyUseCase *propertyUC.DeletePropertyUseCase
}

func NewPropertyHandler(
	createUC *propertyUC.CreatePropertyUseCase,
	listUC *propertyUC.ListPropertiesUseCase,
	getUC *propertyUC.GetPropertyUseCase,
	updateUC *propertyUC.UpdatePropertyUseCase,
	deleteUC *propertyUC.DeletePropertyUseCase,
) *PropertyHandler {
	return &PropertyHandler{
		createPropertyUseCase: createUC,
		listPropertiesUseCase: listUC,
		getPropertyUseCase:    getUC,
		updatePropertyUseCase: updateUC,
		deletePropertyUseCase: deleteUC,
	}
}

func (h *PropertyHandler) CreateProperty(c *gin.Context) {

	teamID, ok := GetTeamIDFromGinContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "team information not found"})
		return
	}

	var req CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request data", "details": err.Error()})
		return
	}

	input := propertyUC.CreatePropertyInput{
		TeamID:      teamID,
		Title:       req.Title,
		Address:     req.Address,
		City:        req.City,
		Description: req.Description,
		Slug:        req.Slug,
	}

	output, err := h.createPropertyUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"property_id": output.PropertyID,
		"slug":        output.Slug,
	})
}

func (h *PropertyHandler) ListProperties(c *gin.Context) {

	teamID, ok := GetTeamIDFromGinContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "team information not found"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "30"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	output, err := h.listPropertiesUseCase.Execute(c.Request.Context(), propertyUC.ListPropertiesInput{
		TeamID: teamID,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	dtos := make([]PropertySummaryDTO, len(output.Properties))
	for i, p := range output.Properties {
		dtos[i] = ToPropertySummaryDTO(p)
	}
	c.JSON(http.StatusOK, dtos)
}

func (h *PropertyHandler) GetProperty(c *gin.Context) {

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

	output, err := h.getPropertyUseCase.Execute(c.Request.Context(), propertyID, teamID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ToPropertyDTO(output.Property, output.Assets))
}

func (h *PropertyHandler) UpdateProperty(c *gin.Context) {

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

	var req UpdatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request data", "details": err.Error()})
		return
	}

	coverAssetID, err := parseOptionalUUID(req.CoverAssetID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid cover asset ID"})
		return
	}

	input := propertyUC.UpdatePropertyInput{
		TeamID:       teamID,
		PropertyID:   propertyID,
		Title:        req.Title,
		Address:      req.Address,
		City:         req.City,
		Description:  req.Description,
		Status:       req.ToDomainStatus(),
		CoverAssetID: coverAssetID,
	}

	if err := h.updatePropertyUseCase.Execute(c.Request.Context(), input); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *PropertyHandler) DeleteProperty(c *gin.Context) {

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

	input := propertyUC.DeletePropertyInput{
		TeamID:     teamID,
		PropertyID: propertyID,
	}

	if err := h.deletePropertyUseCase.Execute(c.Request.Context(), input); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
