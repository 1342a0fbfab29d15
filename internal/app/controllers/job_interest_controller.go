package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pcell/backend/internal/app/models/dto"
	"github.com/pcell/backend/internal/app/services"
	"github.com/pcell/backend/internal/middleware"
)

// JobInterestController serves interest and eligibility endpoints scoped to
// one opening.
type JobInterestController struct {
	interestService *services.JobInterestService
}

func NewJobInterestController(interestService *services.JobInterestService) *JobInterestController {
	return &JobInterestController{interestService: interestService}
}

// ExpressInterest godoc
// @Summary Express interest in an opening
// @Description Records the caller's choice; a later call overwrites it. Placed students are rejected.
// @Tags interests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Opening ID"
// @Param request body dto.ExpressInterestRequest true "Interest choice"
// @Success 200 {object} dto.APIResponse{data=dto.ExpressInterestResponse}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 409 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /openings/{id}/interest [post]
func (ctrl *JobInterestController) ExpressInterest(c *gin.Context) {
	openingID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.ExpressInterestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	resp, err := ctrl.interestService.ExpressInterest(c.Request.Context(), middleware.UserID(c), openingID, *req.IsInterested, req.Reason)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// GetInterestStatus godoc
// @Summary Get own eligibility and interest status for an opening
// @Tags interests
// @Produce json
// @Security BearerAuth
// @Param id path int true "Opening ID"
// @Success 200 {object} dto.APIResponse{data=dto.InterestStatusResponse}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /openings/{id}/interest [get]
func (ctrl *JobInterestController) GetInterestStatus(c *gin.Context) {
	openingID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	resp, err := ctrl.interestService.GetInterestStatus(c.Request.Context(), middleware.UserID(c), openingID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// GetOpeningStatistics godoc
// @Summary Get interest statistics for an opening
// @Description Admin view of interest counts and the interested-student roster
// @Tags interests
// @Produce json
// @Security BearerAuth
// @Param id path int true "Opening ID"
// @Success 200 {object} dto.APIResponse{data=dto.OpeningStatisticsResponse}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /openings/{id}/statistics [get]
func (ctrl *JobInterestController) GetOpeningStatistics(c *gin.Context) {
	openingID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	resp, err := ctrl.interestService.GetOpeningStatistics(c.Request.Context(), openingID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}
