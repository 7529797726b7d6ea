// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/liq-planung/backend/config"
	"github.com/liq-planung/backend/internal/application/adapter"
	"github.com/liq-planung/backend/internal/application/usecase/balance"
	categoryrule "github.com/liq-planung/backend/internal/application/usecase/category_rule"
	"github.com/liq-planung/backend/internal/application/usecase/fixedcost"
	"github.com/liq-planung/backend/internal/application/usecase/forecast"
	"github.com/liq-planung/backend/internal/application/usecase/simulation"
	"github.com/liq-planung/backend/internal/application/usecase/transaction"
	"github.com/liq-planung/backend/internal/infra/server/router"
	"github.com/liq-planung/backend/internal/integration/cache"
	"github.com/liq-planung/backend/internal/integration/entrypoint/controller"
	"github.com/liq-planung/backend/internal/integration/entrypoint/middleware"
	"github.com/liq-planung/backend/internal/integration/persistence"
)

const healthCheckTimeout = 2 * time.Second

// Injector holds all application dependencies.
type Injector struct {
	Config      *config.Config
	DB          *gorm.DB
	Cache       adapter.ProjectionCache
	RateLimiter *middleware.RateLimiter
	Router      *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
// A nil redisClient, or a disabled forecast cache, runs forecasts uncached.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, clock adapter.Clock) *Injector {
	// Create repositories
	transactionRepo := persistence.NewTransactionRepository(db)
	fixedCostRepo := persistence.NewFixedCostRepository(db)
	overrideRepo := persistence.NewOverrideRepository(db)
	simulationRepo := persistence.NewSimulationRepository(db)
	categoryRuleRepo := persistence.NewCategoryRuleRepository(db)
	balanceRepo := persistence.NewBalanceRepository(db)

	projectionCache := cache.NewNoopProjectionCache()
	cacheEnabled := redisClient != nil && cfg.Forecast.CacheEnabled
	if cacheEnabled {
		projectionCache = cache.NewRedisProjectionCache(redisClient, cfg.Forecast.CacheTTL)
	}

	// Create fixed cost use cases
	listFixedCostsUseCase := fixedcost.NewListFixedCostsUseCase(fixedCostRepo)
	createFixedCostUseCase := fixedcost.NewCreateFixedCostUseCase(fixedCostRepo)
	updateFixedCostUseCase := fixedcost.NewUpdateFixedCostUseCase(fixedCostRepo)
	deleteFixedCostUseCase := fixedcost.NewDeleteFixedCostUseCase(fixedCostRepo)
	previewOccurrencesUseCase := fixedcost.NewPreviewOccurrencesUseCase(fixedCostRepo, overrideRepo)
	listOverridesUseCase := fixedcost.NewListOverridesUseCase(fixedCostRepo, overrideRepo)
	upsertOverrideUseCase := fixedcost.NewUpsertOverrideUseCase(fixedCostRepo, overrideRepo)
	deleteOverrideUseCase := fixedcost.NewDeleteOverrideUseCase(fixedCostRepo, overrideRepo)

	// Create transaction use cases
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, fixedCostRepo)
	importTransactionsUseCase := transaction.NewImportTransactionsUseCase(transactionRepo, clock)
	settleTransactionUseCase := transaction.NewSettleTransactionUseCase(transactionRepo)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo)

	// Create simulation use cases
	listSimulationsUseCase := simulation.NewListSimulationsUseCase(simulationRepo)
	createSimulationUseCase := simulation.NewCreateSimulationUseCase(simulationRepo)
	updateSimulationUseCase := simulation.NewUpdateSimulationUseCase(simulationRepo)
	deleteSimulationUseCase := simulation.NewDeleteSimulationUseCase(simulationRepo)

	// Create category rule use cases
	listCategoryRulesUseCase := categoryrule.NewListCategoryRulesUseCase(categoryRuleRepo)
	createCategoryRuleUseCase := categoryrule.NewCreateCategoryRuleUseCase(categoryRuleRepo)
	deleteCategoryRuleUseCase := categoryrule.NewDeleteCategoryRuleUseCase(categoryRuleRepo)
	testPatternUseCase := categoryrule.NewTestPatternUseCase(transactionRepo)

	// Create balance use cases
	getBalanceUseCase := balance.NewGetBalanceUseCase(balanceRepo)
	setBalanceUseCase := balance.NewSetBalanceUseCase(balanceRepo, clock)

	// Create forecast use cases
	repos := forecast.Repositories{
		Transactions:  transactionRepo,
		FixedCosts:    fixedCostRepo,
		Overrides:     overrideRepo,
		Simulations:   simulationRepo,
		CategoryRules: categoryRuleRepo,
		Balances:      balanceRepo,
	}
	settings := forecast.Settings{
		HorizonMonths:      cfg.Forecast.HorizonMonths,
		IncludeSimulations: cfg.Forecast.IncludeSimulations,
		ShiftPastDue:       cfg.Forecast.ShiftPastDue,
	}
	getForecastUseCase := forecast.NewGetForecastUseCase(repos, projectionCache, clock, settings)
	getKPIsUseCase := forecast.NewGetKPIsUseCase(repos, clock, settings)

	// Create controllers
	dbHealthChecker := func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		ctx, cancel := context.WithTimeout(context.Background(), healthCheckTimeout)
		defer cancel()
		return sqlDB.PingContext(ctx) == nil
	}
	var cacheHealthChecker func() bool
	if cacheEnabled {
		cacheHealthChecker = func() bool {
			ctx, cancel := context.WithTimeout(context.Background(), healthCheckTimeout)
			defer cancel()
			return projectionCache.Ping(ctx) == nil
		}
	}
	healthController := controller.NewHealthController(dbHealthChecker, cacheHealthChecker)

	fixedCostController := controller.NewFixedCostController(
		listFixedCostsUseCase,
		createFixedCostUseCase,
		updateFixedCostUseCase,
		deleteFixedCostUseCase,
		previewOccurrencesUseCase,
		listOverridesUseCase,
		upsertOverrideUseCase,
		deleteOverrideUseCase,
		clock,
	)

	transactionController := controller.NewTransactionController(
		listTransactionsUseCase,
		createTransactionUseCase,
		importTransactionsUseCase,
		settleTransactionUseCase,
		deleteTransactionUseCase,
		clock,
	)

	simulationController := controller.NewSimulationController(
		listSimulationsUseCase,
		createSimulationUseCase,
		updateSimulationUseCase,
		deleteSimulationUseCase,
		clock,
	)

	categoryRuleController := controller.NewCategoryRuleController(
		listCategoryRulesUseCase,
		createCategoryRuleUseCase,
		deleteCategoryRuleUseCase,
		testPatternUseCase,
	)

	balanceController := controller.NewBalanceController(getBalanceUseCase, setBalanceUseCase, clock)
	forecastController := controller.NewForecastController(getForecastUseCase, getKPIsUseCase, clock)

	// Create middleware
	rateLimiter := middleware.NewRateLimiterWithConfig(cfg.RateLimit.MaxRequests, cfg.RateLimit.Window)

	r := router.NewRouter(
		healthController,
		fixedCostController,
		transactionController,
		simulationController,
		categoryRuleController,
		balanceController,
		forecastController,
		rateLimiter,
	)

	return &Injector{
		Config:      cfg,
		DB:          db,
		Cache:       projectionCache,
		RateLimiter: rateLimiter,
		Router:      r,
	}
}
