package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pcell/backend/internal/app/models/dto"
	"github.com/pcell/backend/internal/app/services"
	"github.com/pcell/backend/internal/middleware"
)

// OpeningController serves the job opening endpoints.
type OpeningController struct {
	openingService *services.OpeningService
}

func NewOpeningController(openingService *services.OpeningService) *OpeningController {
	return &OpeningController{openingService: openingService}
}

// CreateOpening godoc
// @Summary Create a job opening
// @Tags openings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateOpeningRequest true "Opening details"
// @Success 201 {object} dto.APIResponse{data=dto.OpeningResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /openings [post]
func (ctrl *OpeningController) CreateOpening(c *gin.Context) {
	var req dto.CreateOpeningRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	resp, err := ctrl.openingService.Create(c.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(resp))
}

// ListOpenings godoc
// @Summary List job openings
// @Tags openings
// @Produce json
// @Security BearerAuth
// @Param batch query string false "Graduation batch"
// @Param offerType query string false "Offer type" Enums(intern,fte,intern+fte)
// @Param company query string false "Company name substring"
// @Param page query int false "Page number"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse}
// @Router /openings [get]
func (ctrl *OpeningController) ListOpenings(c *gin.Context) {
	var filter dto.OpeningFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	resp, err := ctrl.openingService.List(c.Request.Context(), filter)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// GetOpening godoc
// @Summary Get a job opening
// @Tags openings
// @Produce json
// @Security BearerAuth
// @Param id path int true "Opening ID"
// @Success 200 {object} dto.APIResponse{data=dto.OpeningResponse}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /openings/{id} [get]
func (ctrl *OpeningController) GetOpening(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	resp, err := ctrl.openingService.GetByID(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// UpdateOpening godoc
// @Summary Update a job opening
// @Tags openings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Opening ID"
// @Param request body dto.UpdateOpeningRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=dto.OpeningResponse}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /openings/{id} [put]
func (ctrl *OpeningController) UpdateOpening(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateOpeningRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	resp, err := ctrl.openingService.Update(c.Request.Context(), id, req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// DeleteOpening godoc
// @Summary Delete a job opening
// @Tags openings
// @Produce json
// @Security BearerAuth
// @Param id path int true "Opening ID"
// @Success 200 {object} dto.APIResponse{data=dto.MessageResponse}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /openings/{id} [delete]
func (ctrl *OpeningController) DeleteOpening(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := ctrl.openingService.Delete(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(dto.MessageResponse{Message: "Opening deleted"}))
}
