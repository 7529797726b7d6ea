package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, 12, cfg.Forecast.HorizonMonths)
	assert.Equal(t, "Europe/Zurich", cfg.Forecast.Timezone)
	assert.False(t, cfg.Forecast.IncludeSimulations)
	assert.True(t, cfg.Forecast.ShiftPastDue)
	assert.Equal(t, 10*time.Minute, cfg.Forecast.CacheTTL)
	assert.Equal(t, 120, cfg.RateLimit.MaxRequests)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "sqlite")
	t.Setenv("FORECAST_HORIZON_MONTHS", "18")
	t.Setenv("FORECAST_INCLUDE_SIMULATIONS", "true")
	t.Setenv("FORECAST_CACHE_TTL", "30s")
	t.Setenv("RATE_LIMIT_MAX_REQUESTS", "not-a-number")

	cfg := Load()

	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, 18, cfg.Forecast.HorizonMonths)
	assert.True(t, cfg.Forecast.IncludeSimulations)
	assert.Equal(t, 30*time.Second, cfg.Forecast.CacheTTL)
	assert.Equal(t, 120, cfg.RateLimit.MaxRequests)
}

func TestForecastConfig_Location(t *testing.T) {
	assert.Equal(t, time.UTC, ForecastConfig{Timezone: "Not/AZone"}.Location())
	assert.Equal(t, "UTC", ForecastConfig{Timezone: "UTC"}.Location().String())
}
