package controller

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/liq-planung/backend/internal/application/adapter"
	"github.com/liq-planung/backend/internal/domain/calendar"
	domainerror "github.com/liq-planung/backend/internal/domain/error"
	"github.com/liq-planung/backend/internal/integration/entrypoint/middleware"
)

// requireUser returns the caller's id. The identity middleware guarantees it
// on every /api/v1 route; the check only guards against misrouting.
func requireUser(ctx *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		writeError(ctx, http.StatusUnauthorized, "X-User-ID header is required", string(domainerror.ErrCodeMissingUser))
		return uuid.Nil, false
	}
	return userID, true
}

// pathID parses a UUID path parameter, writing a 400 response on failure.
func pathID(ctx *gin.Context, name, label string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param(name))
	if err != nil {
		writeError(ctx, http.StatusBadRequest, "Invalid "+label+" ID format", "")
		return uuid.Nil, false
	}
	return id, true
}

// dateParser reads ISO and Swiss date input relative to the clock's today.
type dateParser struct {
	clock adapter.Clock
}

func (p dateParser) parse(text string) (time.Time, bool) {
	return calendar.ParseLocalizedDate(text, p.clock.Now())
}

// parseOptional parses an optional date. Nil and blank input yield nil.
func (p dateParser) parseOptional(text *string) (*time.Time, bool) {
	if text == nil || strings.TrimSpace(*text) == "" {
		return nil, true
	}
	date, ok := p.parse(*text)
	if !ok {
		return nil, false
	}
	return &date, true
}

// queryDate parses an optional date query parameter. Invalid input is
// reported with FCS-010004.
func (p dateParser) queryDate(ctx *gin.Context, name string) (*time.Time, bool) {
	raw := ctx.Query(name)
	date, ok := p.parseOptional(&raw)
	if !ok {
		writeError(ctx, http.StatusBadRequest, "Invalid "+name+": use YYYY-MM-DD or DD.MM.YYYY", string(domainerror.ErrCodeInvalidDateFormat))
		return nil, false
	}
	return date, true
}

// queryBool parses an optional boolean query parameter.
func queryBool(ctx *gin.Context, name string) (*bool, bool) {
	raw := ctx.Query(name)
	if raw == "" {
		return nil, true
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		writeError(ctx, http.StatusBadRequest, "Invalid "+name+": expected true or false", "")
		return nil, false
	}
	return &value, true
}

// decimalPtr converts an optional JSON number.
func decimalPtr(value *float64) *decimal.Decimal {
	if value == nil {
		return nil
	}
	d := decimal.NewFromFloat(*value)
	return &d
}
