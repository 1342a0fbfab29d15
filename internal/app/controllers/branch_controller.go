package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pcell/backend/internal/app/models/dto"
	"github.com/pcell/backend/internal/app/services"
	"github.com/pcell/backend/internal/middleware"
)

// BranchController serves the branch catalogue endpoints.
type BranchController struct {
	branchService *services.BranchService
}

func NewBranchController(branchService *services.BranchService) *BranchController {
	return &BranchController{branchService: branchService}
}

// CreateBranch godoc
// @Summary Register a branch
// @Tags branches
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateBranchRequest true "Branch"
// @Success 201 {object} dto.APIResponse{data=dto.BranchResponse}
// @Failure 409 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /branches [post]
func (ctrl *BranchController) CreateBranch(c *gin.Context) {
	var req dto.CreateBranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	resp, err := ctrl.branchService.Create(c.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(resp))
}

// ListBranches godoc
// @Summary List branches
// @Tags branches
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.BranchResponse}
// @Router /branches [get]
func (ctrl *BranchController) ListBranches(c *gin.Context) {
	resp, err := ctrl.branchService.List(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// DeleteBranch godoc
// @Summary Delete a branch
// @Tags branches
// @Produce json
// @Security BearerAuth
// @Param id path int true "Branch ID"
// @Success 200 {object} dto.APIResponse{data=dto.MessageResponse}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /branches/{id} [delete]
func (ctrl *BranchController) DeleteBranch(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := ctrl.branchService.Delete(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(dto.MessageResponse{Message: "Branch deleted"}))
}
