package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripwise/internal/models/request_models"
	"tripwise/internal/services"
	"tripwise/pkg/utils"
)

type EstimateController struct {
	estimateService services.EstimateServiceInterface
}

func NewEstimateController(estimateService services.EstimateServiceInterface) *EstimateController {
	return &EstimateController{
		estimateService: estimateService,
	}
}

// Estimate godoc
// @Summary Suggest a budget and duration for a destination
// @Description Asks the configured AI provider. Answers are cached per destination, days, travelers and currency.
// @Tags Estimates
// @Accept json
// @Produce json
// @Param request body request_models.EstimateRequest true "Destination"
// @Success 200 {object} utils.APIResponse{data=response_models.EstimateResponse}
// @Failure 502 {object} utils.APIResponse
// @Failure 503 {object} utils.APIResponse
// @Security BearerAuth
// @Router /estimates [post]
func (e *EstimateController) Estimate(c *gin.Context) {
	var req request_models.EstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	out, err := e.estimateService.Estimate(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, out, "Estimate generated successfully")
}
