package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerror "github.com/liq-planung/backend/internal/domain/error"
	"github.com/liq-planung/backend/internal/integration/entrypoint/dto"
)

type fixedClock time.Time

func (c fixedClock) Now() time.Time { return time.Time(c) }

func TestHandleError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{
			name:   "fixed cost not found",
			err:    domainerror.NewFixedCostError(domainerror.ErrCodeFixedCostNotFound, "fixed cost not found", domainerror.ErrFixedCostNotFound),
			status: http.StatusNotFound,
			code:   "FXC-020001",
		},
		{
			name:   "wrapped invalid rhythm",
			err:    fmt.Errorf("update: %w", domainerror.NewFixedCostError(domainerror.ErrCodeInvalidRhythm, "invalid rhythm", domainerror.ErrInvalidRhythm)),
			status: http.StatusBadRequest,
			code:   "FXC-010001",
		},
		{
			name:   "foreign transaction",
			err:    domainerror.NewTransactionError(domainerror.ErrCodeNotAuthorizedTransaction, "not authorized", domainerror.ErrNotAuthorizedToModifyTransaction),
			status: http.StatusForbidden,
			code:   "TXN-010005",
		},
		{
			name:   "simulation interval",
			err:    domainerror.NewSimulationError(domainerror.ErrCodeSimulationIntervalRequired, "interval required", nil),
			status: http.StatusBadRequest,
			code:   "SIM-010002",
		},
		{
			name:   "rule not found",
			err:    domainerror.NewCategoryRuleError(domainerror.ErrCodeCategoryRuleNotFound, "rule not found", nil),
			status: http.StatusNotFound,
			code:   "RUL-020001",
		},
		{
			name:   "balance not found",
			err:    domainerror.NewForecastError(domainerror.ErrCodeBalanceNotFound, "no balance recorded", domainerror.ErrBalanceNotFound),
			status: http.StatusNotFound,
			code:   "FCS-020001",
		},
		{
			name:   "forecast internal",
			err:    domainerror.NewForecastError(domainerror.ErrCodeForecastInternalError, "failed", errors.New("boom")),
			status: http.StatusInternalServerError,
			code:   "FCS-990001",
		},
		{
			name:   "infrastructure error",
			err:    errors.New("connection refused"),
			status: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			ctx, _ := gin.CreateTestContext(rec)
			ctx.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			handleError(ctx, tt.err)

			assert.Equal(t, tt.status, rec.Code)
			var body dto.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Code)
			assert.NotEmpty(t, body.Error)
		})
	}
}

func TestDateParser(t *testing.T) {
	parser := dateParser{clock: fixedClock(time.Date(2025, time.June, 16, 8, 0, 0, 0, time.UTC))}

	date, ok := parser.parse("2025-07-01")
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC), date)

	date, ok = parser.parse("28.02.2025")
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, time.February, 28, 0, 0, 0, 0, time.UTC), date)

	_, ok = parser.parse("next friday")
	assert.False(t, ok)

	blank := "  "
	optional, ok := parser.parseOptional(&blank)
	assert.True(t, ok)
	assert.Nil(t, optional)

	optional, ok = parser.parseOptional(nil)
	assert.True(t, ok)
	assert.Nil(t, optional)
}
