package persistence

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/liq-planung/backend/internal/domain/calendar"
	"github.com/liq-planung/backend/internal/integration/persistence/testdb"
)

func newTestDB(t *testing.T) *gorm.DB {
	return testdb.Open(t)
}

func day(year int, month time.Month, d int) time.Time {
	return calendar.Date(year, month, d)
}

func money(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}
