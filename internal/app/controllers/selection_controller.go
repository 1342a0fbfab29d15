package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pcell/backend/internal/app/models/dto"
	"github.com/pcell/backend/internal/app/services"
	"github.com/pcell/backend/internal/middleware"
)

// SelectionController serves placement result endpoints.
type SelectionController struct {
	selectionService *services.SelectionService
}

func NewSelectionController(selectionService *services.SelectionService) *SelectionController {
	return &SelectionController{selectionService: selectionService}
}

// AddSelections godoc
// @Summary Publish placement results
// @Description Records selections by enrolment number; any unknown number rejects the whole batch, already placed students are reported as skipped
// @Tags selections
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AddSelectionsRequest true "Opening and enrolment numbers"
// @Success 201 {object} dto.APIResponse{data=dto.AddSelectionsResponse}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /selections [post]
func (ctrl *SelectionController) AddSelections(c *gin.Context) {
	var req dto.AddSelectionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	resp, err := ctrl.selectionService.AddSelections(c.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(resp))
}

// ListSelections godoc
// @Summary List placement results
// @Tags selections
// @Produce json
// @Security BearerAuth
// @Param openingId query int false "Restrict to one opening"
// @Success 200 {object} dto.APIResponse{data=[]dto.SelectionResponse}
// @Router /selections [get]
func (ctrl *SelectionController) ListSelections(c *gin.Context) {
	var openingID int64
	if raw := c.Query("openingId"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
				dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid openingId parameter")))
			return
		}
		openingID = parsed
	}

	resp, err := ctrl.selectionService.List(c.Request.Context(), openingID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// GetMySelection godoc
// @Summary Get own placement
// @Tags selections
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.SelectionResponse}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /selections/me [get]
func (ctrl *SelectionController) GetMySelection(c *gin.Context) {
	resp, err := ctrl.selectionService.GetForStudent(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// CheckStudentStatus godoc
// @Summary Check a student's placement status
// @Description Looks a student up by enrolment number; with an openingId also reports whether they applied to that opening
// @Tags selections
// @Produce json
// @Security BearerAuth
// @Param enrolmentNo query string true "Enrolment number"
// @Param openingId query int false "Opening to check applications against"
// @Success 200 {object} dto.APIResponse{data=dto.StudentStatusResponse}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /selections/status [get]
func (ctrl *SelectionController) CheckStudentStatus(c *gin.Context) {
	var req dto.StudentStatusRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	resp, err := ctrl.selectionService.CheckStudentStatus(c.Request.Context(), req.EnrolmentNo, req.OpeningID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// GetAppliedAndShortlisted godoc
// @Summary List applicants and selected students for an opening
// @Tags selections
// @Produce json
// @Security BearerAuth
// @Param id path int true "Opening ID"
// @Success 200 {object} dto.APIResponse{data=dto.AppliedShortlistedResponse}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /openings/{id}/applicants [get]
func (ctrl *SelectionController) GetAppliedAndShortlisted(c *gin.Context) {
	openingID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	resp, err := ctrl.selectionService.AppliedAndShortlisted(c.Request.Context(), openingID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// DeleteSelection godoc
// @Summary Remove a placement result
// @Tags selections
// @Produce json
// @Security BearerAuth
// @Param id path int true "Selection ID"
// @Success 200 {object} dto.APIResponse{data=dto.MessageResponse}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /selections/{id} [delete]
func (ctrl *SelectionController) DeleteSelection(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := ctrl.selectionService.Delete(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(dto.MessageResponse{Message: "Selection removed"}))
}
