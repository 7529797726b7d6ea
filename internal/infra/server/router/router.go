// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/liq-planung/backend/internal/integration/entrypoint/controller"
	"github.com/liq-planung/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                 *gin.Engine
	healthController       *controller.HealthController
	fixedCostController    *controller.FixedCostController
	transactionController  *controller.TransactionController
	simulationController   *controller.SimulationController
	categoryRuleController *controller.CategoryRuleController
	balanceController      *controller.BalanceController
	forecastController     *controller.ForecastController
	rateLimiter            *middleware.RateLimiter
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	fixedCostController *controller.FixedCostController,
	transactionController *controller.TransactionController,
	simulationController *controller.SimulationController,
	categoryRuleController *controller.CategoryRuleController,
	balanceController *controller.BalanceController,
	forecastController *controller.ForecastController,
	rateLimiter *middleware.RateLimiter,
) *Router {
	return &Router{
		healthController:       healthController,
		fixedCostController:    fixedCostController,
		transactionController:  transactionController,
		simulationController:   simulationController,
		categoryRuleController: categoryRuleController,
		balanceController:      balanceController,
		forecastController:     forecastController,
		rateLimiter:            rateLimiter,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes. Every route below requires
// a caller identity.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	v1.Use(middleware.Identify())
	if r.rateLimiter != nil {
		v1.Use(r.rateLimiter.Middleware())
	}

	fixedCosts := v1.Group("/fixed-costs")
	{
		fixedCosts.GET("", r.fixedCostController.List)
		fixedCosts.POST("", r.fixedCostController.Create)
		fixedCosts.PATCH("/:id", r.fixedCostController.Update)
		fixedCosts.DELETE("/:id", r.fixedCostController.Delete)
		fixedCosts.GET("/:id/occurrences", r.fixedCostController.Occurrences)

		overrides := fixedCosts.Group("/:id/overrides")
		{
			overrides.GET("", r.fixedCostController.ListOverrides)
			overrides.PUT("", r.fixedCostController.UpsertOverride)
			overrides.DELETE("/:date", r.fixedCostController.DeleteOverride)
		}
	}

	transactions := v1.Group("/transactions")
	{
		transactions.GET("", r.transactionController.List)
		transactions.POST("", r.transactionController.Create)
		transactions.POST("/import", r.transactionController.Import)
		transactions.POST("/:id/settle", r.transactionController.Settle)
		transactions.DELETE("/:id", r.transactionController.Delete)
	}

	simulations := v1.Group("/simulations")
	{
		simulations.GET("", r.simulationController.List)
		simulations.POST("", r.simulationController.Create)
		simulations.PATCH("/:id", r.simulationController.Update)
		simulations.DELETE("/:id", r.simulationController.Delete)
	}

	categoryRules := v1.Group("/category-rules")
	{
		categoryRules.GET("", r.categoryRuleController.List)
		categoryRules.POST("", r.categoryRuleController.Create)
		categoryRules.POST("/test", r.categoryRuleController.TestPattern)
		categoryRules.DELETE("/:id", r.categoryRuleController.Delete)
	}

	v1.GET("/balance", r.balanceController.Get)
	v1.PUT("/balance", r.balanceController.Set)

	v1.GET("/forecast", r.forecastController.Forecast)
	v1.GET("/kpis", r.forecastController.KPIs)
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
