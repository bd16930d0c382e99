// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/finance-dashboard/backend/internal/integration/entrypoint/controller"
	"github.com/finance-dashboard/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	cardController        *controller.CardController
	invoiceController     *controller.InvoiceController
	transactionController *controller.TransactionController
	categoryController    *controller.CategoryController
	dashboardController   *controller.DashboardController
	payRateLimiter        *middleware.RateLimiter
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	cardController *controller.CardController,
	invoiceController *controller.InvoiceController,
	transactionController *controller.TransactionController,
	categoryController *controller.CategoryController,
	dashboardController *controller.DashboardController,
	payRateLimiter *middleware.RateLimiter,
) *Router {
	return &Router{
		healthController:      healthController,
		cardController:        cardController,
		invoiceController:     invoiceController,
		transactionController: transactionController,
		categoryController:    categoryController,
		dashboardController:   dashboardController,
		payRateLimiter:        payRateLimiter,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Default middleware: logger and recovery
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes. Every route under /api/v1
// requires the caller's user reference header.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	v1.Use(middleware.UserIdentity())
	{
		if r.cardController != nil {
			cards := v1.Group("/cards")
			{
				cards.GET("", r.cardController.List)
				cards.POST("", r.cardController.Create)
				cards.GET("/overview", r.cardController.Overview)
				cards.DELETE("/:id", r.cardController.Delete)

				// Invoice routes (nested under cards)
				if r.invoiceController != nil {
					cards.GET("/:id/invoice", r.invoiceController.GetInvoice)
					cards.GET("/:id/invoice/stats", r.invoiceController.GetStats)
					if r.payRateLimiter != nil {
						cards.POST("/:id/invoice/pay", r.payRateLimiter.Middleware(), r.invoiceController.Pay)
					} else {
						cards.POST("/:id/invoice/pay", r.invoiceController.Pay)
					}
				}
			}
		}

		if r.transactionController != nil {
			transactions := v1.Group("/transactions")
			{
				transactions.GET("", r.transactionController.List)
				transactions.POST("", r.transactionController.Create)
				transactions.PATCH("/:id", r.transactionController.Update)
				transactions.DELETE("/:id", r.transactionController.Delete)
			}
		}

		if r.categoryController != nil {
			categories := v1.Group("/categories")
			{
				categories.GET("", r.categoryController.List)
				categories.POST("", r.categoryController.Create)
				categories.DELETE("/:id", r.categoryController.Delete)
			}
		}

		if r.dashboardController != nil {
			dashboard := v1.Group("/dashboard")
			{
				dashboard.GET("/summary", r.dashboardController.Summary)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
