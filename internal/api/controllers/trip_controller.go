package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tripwise/internal/models/request_models"
	"tripwise/internal/services"
	"tripwise/pkg/utils"
)

type TripController struct {
	tripService services.TripServiceInterface
}

func NewTripController(tripService services.TripServiceInterface) *TripController {
	return &TripController{
		tripService: tripService,
	}
}

// parsePaging reads page and pageSize query params. It writes the error
// response itself and reports false when they are invalid.
func parsePaging(c *gin.Context) (int, int, bool) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return 0, 0, false
	}

	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", "10"))
	if err != nil || pageSize < 1 || pageSize > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size (must be 1-100)")
		return 0, 0, false
	}
	return page, pageSize, true
}

func parseDayIndex(c *gin.Context) (int, bool) {
	dayIndex, err := strconv.Atoi(c.Param("dayIndex"))
	if err != nil || dayIndex < 0 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid day index")
		return 0, false
	}
	return dayIndex, true
}

// CreateTrip godoc
// @Summary Create a trip
// @Description Create a trip with its budget, length and cities. With start_date, empty days are created up front.
// @Tags Trips
// @Accept json
// @Produce json
// @Param request body request_models.CreateTripRequest true "Trip payload"
// @Success 201 {object} utils.APIResponse{data=response_models.TripResponse}
// @Failure 400 {object} utils.APIResponse
// @Failure 422 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips [post]
func (t *TripController) CreateTrip(c *gin.Context) {
	var req request_models.CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	trip, err := t.tripService.CreateTrip(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, trip, "Trip created successfully")
}

// ListTrips godoc
// @Summary List my trips
// @Tags Trips
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(10) minimum(1) maximum(100)
// @Success 200 {object} utils.APIResponse{data=response_models.TripListResponse}
// @Security BearerAuth
// @Router /trips [get]
func (t *TripController) ListTrips(c *gin.Context) {
	page, pageSize, ok := parsePaging(c)
	if !ok {
		return
	}

	trips, err := t.tripService.ListTrips(c.Request.Context(), c.GetString("user_id"), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trips, "Trips fetched successfully")
}

// GetTrip godoc
// @Summary Get trip details
// @Tags Trips
// @Produce json
// @Param tripId path string true "Trip ID"
// @Success 200 {object} utils.APIResponse{data=response_models.TripResponse}
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{tripId} [get]
func (t *TripController) GetTrip(c *gin.Context) {
	trip, err := t.tripService.GetTrip(c.Request.Context(), c.GetString("user_id"), c.Param("tripId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Trip fetched successfully")
}

// UpdateTrip godoc
// @Summary Replace the itinerary of a trip
// @Description Day totals are recomputed from the activities. The stored feasibility score is cleared.
// @Tags Trips
// @Accept json
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param request body request_models.UpdateTripRequest true "New plan"
// @Success 200 {object} utils.APIResponse{data=response_models.TripResponse}
// @Failure 422 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{tripId} [put]
func (t *TripController) UpdateTrip(c *gin.Context) {
	var req request_models.UpdateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	trip, err := t.tripService.UpdateTrip(c.Request.Context(), c.GetString("user_id"), c.Param("tripId"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Trip updated successfully")
}

// DeleteTrip godoc
// @Summary Delete a trip
// @Tags Trips
// @Param tripId path string true "Trip ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{tripId} [delete]
func (t *TripController) DeleteTrip(c *gin.Context) {
	if err := t.tripService.DeleteTrip(c.Request.Context(), c.GetString("user_id"), c.Param("tripId")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Trip deleted successfully")
}

// AddDay godoc
// @Summary Append a day to the itinerary
// @Description Date and city default to the day after, and the city of, the last day.
// @Tags Trips
// @Accept json
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param request body request_models.AddDayRequest false "Day payload"
// @Success 200 {object} utils.APIResponse{data=response_models.TripResponse}
// @Security BearerAuth
// @Router /trips/{tripId}/days [post]
func (t *TripController) AddDay(c *gin.Context) {
	var req request_models.AddDayRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
			return
		}
	}

	trip, err := t.tripService.AddDay(c.Request.Context(), c.GetString("user_id"), c.Param("tripId"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Day added successfully")
}

// AddActivity godoc
// @Summary Add an activity to a day
// @Tags Trips
// @Accept json
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param dayIndex path int true "Zero-based day index"
// @Param request body request_models.AddActivityRequest true "Activity payload"
// @Success 200 {object} utils.APIResponse{data=response_models.TripResponse}
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{tripId}/days/{dayIndex}/activities [post]
func (t *TripController) AddActivity(c *gin.Context) {
	dayIndex, ok := parseDayIndex(c)
	if !ok {
		return
	}

	var req request_models.AddActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	trip, err := t.tripService.AddActivity(c.Request.Context(), c.GetString("user_id"), c.Param("tripId"), dayIndex, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Activity added successfully")
}

// RemoveActivity godoc
// @Summary Remove an activity from a day
// @Tags Trips
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param dayIndex path int true "Zero-based day index"
// @Param activityId path string true "Activity ID"
// @Success 200 {object} utils.APIResponse{data=response_models.TripResponse}
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{tripId}/days/{dayIndex}/activities/{activityId} [delete]
func (t *TripController) RemoveActivity(c *gin.Context) {
	dayIndex, ok := parseDayIndex(c)
	if !ok {
		return
	}

	trip, err := t.tripService.RemoveActivity(c.Request.Context(), c.GetString("user_id"), c.Param("tripId"), dayIndex, c.Param("activityId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Activity removed successfully")
}

// EvaluateTrip godoc
// @Summary Score the feasibility of a trip
// @Description Scores the stored plan and keeps the percentage and status on the trip.
// @Tags Trips
// @Produce json
// @Param tripId path string true "Trip ID"
// @Success 200 {object} utils.APIResponse{data=feasibility.ScoreResult}
// @Failure 422 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{tripId}/evaluate [post]
func (t *TripController) EvaluateTrip(c *gin.Context) {
	result, err := t.tripService.EvaluateTrip(c.Request.Context(), c.GetString("user_id"), c.Param("tripId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Trip evaluated successfully")
}

// OptimizeTrip godoc
// @Summary Propose optimized versions of a trip
// @Description Returns up to three candidates (balanced, relaxed, budget). Feasible trips get none.
// @Tags Trips
// @Produce json
// @Param tripId path string true "Trip ID"
// @Success 200 {object} utils.APIResponse{data=response_models.OptimizationResponse}
// @Security BearerAuth
// @Router /trips/{tripId}/optimize [post]
func (t *TripController) OptimizeTrip(c *gin.Context) {
	out, err := t.tripService.OptimizeTrip(c.Request.Context(), c.GetString("user_id"), c.Param("tripId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, out, "Trip optimized successfully")
}

// ApplyOptimization godoc
// @Summary Replace a trip's plan with an optimization candidate
// @Tags Trips
// @Accept json
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param request body request_models.ApplyOptimizationRequest true "Candidate to apply"
// @Success 200 {object} utils.APIResponse{data=response_models.ApplyOptimizationResponse}
// @Failure 404 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{tripId}/apply [post]
func (t *TripController) ApplyOptimization(c *gin.Context) {
	var req request_models.ApplyOptimizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	out, err := t.tripService.ApplyOptimization(c.Request.Context(), c.GetString("user_id"), c.Param("tripId"), req.CandidateID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, out, "Optimization applied successfully")
}
