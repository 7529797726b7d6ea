package controller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/liq-planung/backend/internal/application/adapter"
	"github.com/liq-planung/backend/internal/application/usecase/forecast"
	"github.com/liq-planung/backend/internal/application/usecase/projection"
	domainerror "github.com/liq-planung/backend/internal/domain/error"
	"github.com/liq-planung/backend/internal/integration/entrypoint/dto"
)

// ForecastController handles the forecast and KPI endpoints.
type ForecastController struct {
	forecastUseCase *forecast.GetForecastUseCase
	kpisUseCase     *forecast.GetKPIsUseCase
	dates           dateParser
}

// NewForecastController creates a new forecast controller instance.
func NewForecastController(
	forecastUseCase *forecast.GetForecastUseCase,
	kpisUseCase *forecast.GetKPIsUseCase,
	clock adapter.Clock,
) *ForecastController {
	return &ForecastController{
		forecastUseCase: forecastUseCase,
		kpisUseCase:     kpisUseCase,
		dates:           dateParser{clock: clock},
	}
}

// Forecast handles GET /forecast requests.
func (c *ForecastController) Forecast(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	input := forecast.GetForecastInput{
		UserID:      userID,
		Granularity: projection.Granularity(strings.ToLower(ctx.Query("granularity"))),
	}

	if input.StartDate, ok = c.dates.queryDate(ctx, "start_date"); !ok {
		return
	}
	if input.EndDate, ok = c.dates.queryDate(ctx, "end_date"); !ok {
		return
	}
	if input.IncludeSimulations, ok = queryBool(ctx, "include_simulations"); !ok {
		return
	}

	if raw := ctx.Query("starting_balance"); raw != "" {
		startingBalance, err := decimal.NewFromString(raw)
		if err != nil {
			writeError(ctx, http.StatusBadRequest, "starting_balance must be a number", string(domainerror.ErrCodeInvalidBalance))
			return
		}
		input.StartingBalance = &startingBalance
	}

	output, err := c.forecastUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToForecastResponse(output))
}

// KPIs handles GET /kpis requests.
func (c *ForecastController) KPIs(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	input := forecast.GetKPIsInput{UserID: userID}
	if input.AsOf, ok = c.dates.queryDate(ctx, "as_of"); !ok {
		return
	}
	if input.IncludeSimulations, ok = queryBool(ctx, "include_simulations"); !ok {
		return
	}

	output, err := c.kpisUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToKPIResponse(output))
}
