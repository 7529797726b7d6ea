package projection

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liq-planung/backend/internal/domain/entity"
)

func TestGeneratePeriodLabel(t *testing.T) {
	assert.Equal(t, "Mai 2025", GeneratePeriodLabel(date(2025, time.May, 14), GranularityMonthly))
	assert.Equal(t, "Mär 2026", GeneratePeriodLabel(date(2026, time.March, 1), GranularityMonthly))
	assert.Equal(t, "Q2 2025", GeneratePeriodLabel(date(2025, time.May, 14), GranularityQuarterly))
	assert.Equal(t, "Q4 2025", GeneratePeriodLabel(date(2025, time.December, 31), GranularityQuarterly))
	assert.Equal(t, "14.05.2025", GeneratePeriodLabel(date(2025, time.May, 14), Granularity("weekly")))
}

func TestGeneratePeriodSeries(t *testing.T) {
	t.Run("monthly", func(t *testing.T) {
		periods := GeneratePeriodSeries(date(2025, time.November, 20), date(2026, time.February, 3), GranularityMonthly)

		require.Len(t, periods, 4)
		assert.Equal(t, date(2025, time.November, 1), periods[0].PeriodStart)
		assert.Equal(t, date(2025, time.November, 30), periods[0].PeriodEnd)
		assert.Equal(t, date(2026, time.February, 1), periods[3].PeriodStart)
		assert.Equal(t, date(2026, time.February, 28), periods[3].PeriodEnd)
		assert.Equal(t, "Feb 2026", periods[3].PeriodLabel)
	})

	t.Run("quarterly", func(t *testing.T) {
		periods := GeneratePeriodSeries(date(2025, time.May, 5), date(2025, time.December, 31), GranularityQuarterly)

		require.Len(t, periods, 3)
		assert.Equal(t, date(2025, time.April, 1), periods[0].PeriodStart)
		assert.Equal(t, date(2025, time.June, 30), periods[0].PeriodEnd)
		assert.Equal(t, "Q4 2025", periods[2].PeriodLabel)
		assert.Equal(t, date(2025, time.December, 31), periods[2].PeriodEnd)
	})

	t.Run("end before start", func(t *testing.T) {
		assert.Empty(t, GeneratePeriodSeries(date(2025, time.May, 5), date(2025, time.March, 1), GranularityMonthly))
	})
}

func TestAggregateByPeriod(t *testing.T) {
	ledger := []entity.LedgerEntry{
		entry(date(2025, time.April, 28), "-100", "900"),
		entry(date(2025, time.May, 2), "500", "1400"),
		entry(date(2025, time.May, 30), "-200", "1200"),
		entry(date(2025, time.July, 1), "-50.25", "1149.75"),
	}

	summaries := AggregateByPeriod(ledger, amount("1000"), date(2025, time.May, 1), date(2025, time.July, 31), GranularityMonthly)

	require.Len(t, summaries, 3)

	may := summaries[0]
	assert.Equal(t, "Mai 2025", may.PeriodLabel)
	assert.Equal(t, 2, may.EntryCount)
	assert.True(t, amount("500").Equal(may.Inflow))
	assert.True(t, amount("200").Equal(may.Outflow))
	assert.True(t, amount("300").Equal(may.Net))
	assert.True(t, amount("1200").Equal(may.ClosingBalance))

	june := summaries[1]
	assert.Zero(t, june.EntryCount)
	assert.True(t, june.Net.IsZero())
	assert.True(t, amount("1200").Equal(june.ClosingBalance), "empty period carries the balance forward")

	july := summaries[2]
	assert.Equal(t, 1, july.EntryCount)
	assert.True(t, amount("50.25").Equal(july.Outflow))
	assert.True(t, amount("1149.75").Equal(july.ClosingBalance))
}

func TestAggregateByPeriod_EmptyLedger(t *testing.T) {
	summaries := AggregateByPeriod(nil, amount("750"), date(2025, time.January, 1), date(2025, time.June, 30), GranularityQuarterly)

	require.Len(t, summaries, 2)
	for _, s := range summaries {
		assert.True(t, amount("750").Equal(s.ClosingBalance))
		assert.Zero(t, s.EntryCount)
	}
}
