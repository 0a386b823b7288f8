package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripwise/internal/models/request_models"
	"tripwise/internal/services"
	"tripwise/pkg/utils"
)

// FeasibilityController scores plans that are not stored.
type FeasibilityController struct {
	feasibilityService services.FeasibilityServiceInterface
}

func NewFeasibilityController(feasibilityService services.FeasibilityServiceInterface) *FeasibilityController {
	return &FeasibilityController{
		feasibilityService: feasibilityService,
	}
}

// Evaluate godoc
// @Summary Score a trip plan
// @Tags Feasibility
// @Accept json
// @Produce json
// @Param request body request_models.PlanRequest true "Plan to score"
// @Success 200 {object} utils.APIResponse{data=feasibility.ScoreResult}
// @Failure 422 {object} utils.APIResponse
// @Router /feasibility/evaluate [post]
func (f *FeasibilityController) Evaluate(c *gin.Context) {
	var req request_models.PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := f.feasibilityService.Evaluate(c.Request.Context(), req.Plan)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Plan evaluated successfully")
}

// Optimize godoc
// @Summary Score a trip plan and propose optimized versions
// @Tags Feasibility
// @Accept json
// @Produce json
// @Param request body request_models.PlanRequest true "Plan to optimize"
// @Success 200 {object} utils.APIResponse{data=response_models.OptimizationResponse}
// @Failure 422 {object} utils.APIResponse
// @Router /feasibility/optimize [post]
func (f *FeasibilityController) Optimize(c *gin.Context) {
	var req request_models.PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	out, err := f.feasibilityService.Optimize(c.Request.Context(), req.Plan)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, out, "Plan optimized successfully")
}
