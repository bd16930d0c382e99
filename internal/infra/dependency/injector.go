// Package dependency provides dependency injection for the application.
package dependency

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/finance-dashboard/backend/config"
	"github.com/finance-dashboard/backend/internal/application/adapter"
	"github.com/finance-dashboard/backend/internal/application/usecase/card"
	"github.com/finance-dashboard/backend/internal/application/usecase/category"
	"github.com/finance-dashboard/backend/internal/application/usecase/dashboard"
	"github.com/finance-dashboard/backend/internal/application/usecase/invoice"
	"github.com/finance-dashboard/backend/internal/application/usecase/transaction"
	"github.com/finance-dashboard/backend/internal/infra/server/router"
	"github.com/finance-dashboard/backend/internal/integration/cache"
	"github.com/finance-dashboard/backend/internal/integration/entrypoint/controller"
	"github.com/finance-dashboard/backend/internal/integration/entrypoint/middleware"
	"github.com/finance-dashboard/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
// redisClient may be nil; the invoice stats cache then degrades to direct
// aggregation queries.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Injector {
	// Create repositories
	cardRepo := persistence.NewCardRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)

	// Create cache
	var invoiceCache adapter.InvoiceStatsCache
	if redisClient != nil {
		invoiceCache = cache.NewInvoiceStatsCache(redisClient)
	}

	// Create invoice use cases
	periodResolver := invoice.NewCurrentPeriodResolver(transactionRepo, invoiceCache)
	getStatsUseCase := invoice.NewGetStatsUseCase(cardRepo, transactionRepo, invoiceCache)
	getInvoiceUseCase := invoice.NewGetInvoiceUseCase(cardRepo, transactionRepo, invoiceCache)
	payInvoiceUseCase := invoice.NewPayInvoiceUseCase(cardRepo, transactionRepo, invoiceCache)

	// Create card use cases
	createCardUseCase := card.NewCreateCardUseCase(cardRepo)
	listCardsUseCase := card.NewListCardsUseCase(cardRepo)
	deleteCardUseCase := card.NewDeleteCardUseCase(cardRepo, transactionRepo)
	overviewUseCase := card.NewGetOverviewUseCase(cardRepo, transactionRepo, periodResolver)

	// Create transaction use cases
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, cardRepo, invoiceCache)
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo, invoiceCache)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo, invoiceCache)

	// Create category use cases
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo)

	// Create dashboard use case
	summaryUseCase := dashboard.NewGetSummaryUseCase(transactionRepo)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	cardController := controller.NewCardController(
		createCardUseCase,
		listCardsUseCase,
		deleteCardUseCase,
		overviewUseCase,
	)

	invoiceController := controller.NewInvoiceController(
		getStatsUseCase,
		getInvoiceUseCase,
		payInvoiceUseCase,
	)

	transactionController := controller.NewTransactionController(
		createTransactionUseCase,
		listTransactionsUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
	)

	categoryController := controller.NewCategoryController(
		createCategoryUseCase,
		listCategoriesUseCase,
		deleteCategoryUseCase,
	)

	dashboardController := controller.NewDashboardController(summaryUseCase)

	// Use higher rate limits for test environments to prevent flaky tests
	var payRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "test" {
		payRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		payRateLimiter = middleware.NewRateLimiter()
	}

	r := router.NewRouter(
		healthController,
		cardController,
		invoiceController,
		transactionController,
		categoryController,
		dashboardController,
		payRateLimiter,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}
}
