package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerror "github.com/liq-planung/backend/internal/domain/error"
	"github.com/liq-planung/backend/internal/integration/entrypoint/dto"
)

// handleError writes the response for a use case error. Coded domain errors
// map to their status; anything else is logged and reported as 500.
func handleError(ctx *gin.Context, err error) {
	var (
		fixedCostErr   *domainerror.FixedCostError
		transactionErr *domainerror.TransactionError
		simulationErr  *domainerror.SimulationError
		ruleErr        *domainerror.CategoryRuleError
		forecastErr    *domainerror.ForecastError
	)

	switch {
	case errors.As(err, &fixedCostErr):
		writeError(ctx, statusForFixedCostError(fixedCostErr.Code), fixedCostErr.Message, string(fixedCostErr.Code))
	case errors.As(err, &transactionErr):
		writeError(ctx, statusForTransactionError(transactionErr.Code), transactionErr.Message, string(transactionErr.Code))
	case errors.As(err, &simulationErr):
		writeError(ctx, statusForSimulationError(simulationErr.Code), simulationErr.Message, string(simulationErr.Code))
	case errors.As(err, &ruleErr):
		writeError(ctx, statusForCategoryRuleError(ruleErr.Code), ruleErr.Message, string(ruleErr.Code))
	case errors.As(err, &forecastErr):
		writeError(ctx, statusForForecastError(forecastErr.Code), forecastErr.Message, string(forecastErr.Code))
	default:
		slog.Error("Request failed",
			"method", ctx.Request.Method,
			"path", ctx.FullPath(),
			"error", err,
		)
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
	}
}

func writeError(ctx *gin.Context, status int, message, code string) {
	ctx.JSON(status, dto.ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// statusForFixedCostError maps fixed cost error codes to HTTP status codes.
func statusForFixedCostError(code domainerror.FixedCostErrorCode) int {
	switch code {
	case domainerror.ErrCodeFixedCostNotFound,
		domainerror.ErrCodeOverrideNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNotAuthorizedFixedCost:
		return http.StatusForbidden
	case domainerror.ErrCodeInvalidRhythm,
		domainerror.ErrCodeInvalidFixedCostAmount,
		domainerror.ErrCodeInvalidFixedCostDates,
		domainerror.ErrCodeFixedCostNameRequired,
		domainerror.ErrCodeInvalidFixedCostDate,
		domainerror.ErrCodeNoSuchOccurrence:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// statusForTransactionError maps transaction error codes to HTTP status codes.
func statusForTransactionError(code domainerror.TransactionErrorCode) int {
	switch code {
	case domainerror.ErrCodeTransactionNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNotAuthorizedTransaction:
		return http.StatusForbidden
	case domainerror.ErrCodeInvalidDirection,
		domainerror.ErrCodeInvalidTransactionDate,
		domainerror.ErrCodeInvalidTransactionAmount,
		domainerror.ErrCodeDetailsTooLong,
		domainerror.ErrCodeMissingTransactionFields,
		domainerror.ErrCodeEmptyImport:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func statusForSimulationError(code domainerror.SimulationErrorCode) int {
	switch code {
	case domainerror.ErrCodeSimulationNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidSimulation,
		domainerror.ErrCodeSimulationIntervalRequired:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func statusForCategoryRuleError(code domainerror.CategoryRuleErrorCode) int {
	switch code {
	case domainerror.ErrCodeCategoryRuleNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidPattern,
		domainerror.ErrCodeMissingRuleFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// statusForForecastError maps forecast and balance error codes to HTTP status codes.
func statusForForecastError(code domainerror.ForecastErrorCode) int {
	switch code {
	case domainerror.ErrCodeBalanceNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeMissingStartDate,
		domainerror.ErrCodeMissingEndDate,
		domainerror.ErrCodeInvalidDateRange,
		domainerror.ErrCodeInvalidDateFormat,
		domainerror.ErrCodeInvalidGranularity,
		domainerror.ErrCodeInvalidBalance:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
