package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"tripwise/internal/api/controllers"
	"tripwise/internal/config"
	"tripwise/internal/models/db_models"
	"tripwise/pkg/middleware"
	"tripwise/pkg/utils"
)

// Controllers groups every HTTP handler set so fx can inject them at once.
type Controllers struct {
	fx.In

	Account     *controllers.AccountController
	Trip        *controllers.TripController
	Feasibility *controllers.FeasibilityController
	Estimate    *controllers.EstimateController
	Dashboard   *controllers.DashboardController
}

func NewRouter(cfg *config.Config, log *zap.Logger, jwt *utils.JWTManager, h Controllers) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins))

	RegisterRoutes(r, jwt, h)
	return r
}

func RegisterRoutes(r *gin.Engine, jwt *utils.JWTManager, h Controllers) {
	auth := middleware.JWTAuthMiddleware(jwt)

	r.GET("/healthz", func(c *gin.Context) {
		utils.RespondSuccess(c, nil, "ok")
	})

	accountGroup := r.Group("/accounts")
	accountGroup.POST("/register", h.Account.Register)
	accountGroup.POST("/login", h.Account.Login)
	accountGroup.GET("/me", auth, h.Account.Me)

	feasibilityGroup := r.Group("/feasibility")
	feasibilityGroup.POST("/evaluate", h.Feasibility.Evaluate)
	feasibilityGroup.POST("/optimize", h.Feasibility.Optimize)

	tripGroup := r.Group("/trips", auth)
	tripGroup.POST("", h.Trip.CreateTrip)
	tripGroup.GET("", h.Trip.ListTrips)
	tripGroup.GET("/:tripId", h.Trip.GetTrip)
	tripGroup.PUT("/:tripId", h.Trip.UpdateTrip)
	tripGroup.DELETE("/:tripId", h.Trip.DeleteTrip)
	tripGroup.POST("/:tripId/days", h.Trip.AddDay)
	tripGroup.POST("/:tripId/days/:dayIndex/activities", h.Trip.AddActivity)
	tripGroup.DELETE("/:tripId/days/:dayIndex/activities/:activityId", h.Trip.RemoveActivity)
	tripGroup.POST("/:tripId/evaluate", h.Trip.EvaluateTrip)
	tripGroup.POST("/:tripId/optimize", h.Trip.OptimizeTrip)
	tripGroup.POST("/:tripId/apply", h.Trip.ApplyOptimization)

	r.POST("/estimates", auth, h.Estimate.Estimate)

	adminGroup := r.Group("/admin", auth, middleware.RoleMiddleware(db_models.RoleAdmin))
	adminGroup.GET("/dashboard", h.Dashboard.GetDashboard)
	adminGroup.GET("/trips", h.Dashboard.ListAllTrips)
}
