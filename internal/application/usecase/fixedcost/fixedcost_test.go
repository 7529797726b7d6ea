package fixedcost

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liq-planung/backend/internal/application/adapter"
	"github.com/liq-planung/backend/internal/domain/calendar"
	"github.com/liq-planung/backend/internal/domain/entity"
	domainerror "github.com/liq-planung/backend/internal/domain/error"
	"github.com/liq-planung/backend/internal/integration/persistence"
	"github.com/liq-planung/backend/internal/integration/persistence/testdb"
)

type fixture struct {
	fixedCosts adapter.FixedCostRepository
	overrides  adapter.OverrideRepository
	userID     uuid.UUID
}

func newFixture(t *testing.T) fixture {
	db := testdb.Open(t)
	return fixture{
		fixedCosts: persistence.NewFixedCostRepository(db),
		overrides:  persistence.NewOverrideRepository(db),
		userID:     uuid.New(),
	}
}

// createRent stores a monthly rent of 2000 starting 2025-01-31.
func (f fixture) createRent(t *testing.T) *entity.FixedCost {
	t.Helper()
	output, err := NewCreateFixedCostUseCase(f.fixedCosts).Execute(context.Background(), CreateFixedCostInput{
		UserID:    f.userID,
		Name:      "Miete Büro",
		Amount:    decimal.NewFromInt(2000),
		Rhythm:    "monthly",
		StartDate: calendar.Date(2025, time.January, 31),
	})
	require.NoError(t, err)
	return output.FixedCost
}

func fixedCostCode(t *testing.T, err error) domainerror.FixedCostErrorCode {
	t.Helper()
	var fcErr *domainerror.FixedCostError
	require.True(t, errors.As(err, &fcErr), "expected FixedCostError, got %v", err)
	return fcErr.Code
}

func TestCreateFixedCost(t *testing.T) {
	f := newFixture(t)
	rent := f.createRent(t)

	assert.Equal(t, entity.RhythmMonthly, rent.Rhythm)

	list, err := NewListFixedCostsUseCase(f.fixedCosts).Execute(context.Background(), ListFixedCostsInput{UserID: f.userID})
	require.NoError(t, err)
	require.Len(t, list.FixedCosts, 1)
	assert.Equal(t, "Miete Büro", list.FixedCosts[0].Name)
}

func TestCreateFixedCost_Validation(t *testing.T) {
	f := newFixture(t)
	uc := NewCreateFixedCostUseCase(f.fixedCosts)
	before := calendar.Date(2024, time.December, 31)

	valid := CreateFixedCostInput{
		UserID:    f.userID,
		Name:      "Leasing",
		Amount:    decimal.NewFromInt(350),
		Rhythm:    "quartalsweise",
		StartDate: calendar.Date(2025, time.January, 1),
	}

	tests := []struct {
		name   string
		modify func(in *CreateFixedCostInput)
		code   domainerror.FixedCostErrorCode
	}{
		{"unknown rhythm", func(in *CreateFixedCostInput) { in.Rhythm = "wöchentlich" }, domainerror.ErrCodeInvalidRhythm},
		{"negative amount", func(in *CreateFixedCostInput) { in.Amount = decimal.NewFromInt(-1) }, domainerror.ErrCodeInvalidFixedCostAmount},
		{"blank name", func(in *CreateFixedCostInput) { in.Name = "  " }, domainerror.ErrCodeFixedCostNameRequired},
		{"missing start date", func(in *CreateFixedCostInput) { in.StartDate = time.Time{} }, domainerror.ErrCodeInvalidFixedCostDate},
		{"end before start", func(in *CreateFixedCostInput) { in.EndDate = &before }, domainerror.ErrCodeInvalidFixedCostDates},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := valid
			tt.modify(&input)
			_, err := uc.Execute(context.Background(), input)
			assert.Equal(t, tt.code, fixedCostCode(t, err))
		})
	}
}

func TestUpdateFixedCost(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	rent := f.createRent(t)
	uc := NewUpdateFixedCostUseCase(f.fixedCosts)

	rhythm := "jährlich"
	end := calendar.Date(2027, time.January, 31)
	output, err := uc.Execute(ctx, UpdateFixedCostInput{FixedCostID: rent.ID, UserID: f.userID, Rhythm: &rhythm, EndDate: &end})
	require.NoError(t, err)
	assert.Equal(t, entity.RhythmAnnual, output.FixedCost.Rhythm)
	require.NotNil(t, output.FixedCost.EndDate)

	output, err = uc.Execute(ctx, UpdateFixedCostInput{FixedCostID: rent.ID, UserID: f.userID, ClearEndDate: true})
	require.NoError(t, err)
	assert.Nil(t, output.FixedCost.EndDate)

	_, err = uc.Execute(ctx, UpdateFixedCostInput{FixedCostID: rent.ID, UserID: uuid.New(), Rhythm: &rhythm})
	assert.Equal(t, domainerror.ErrCodeNotAuthorizedFixedCost, fixedCostCode(t, err))
}

func TestPreviewOccurrences_WithOverrides(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	rent := f.createRent(t)

	upsert := NewUpsertOverrideUseCase(f.fixedCosts, f.overrides)
	reduced := decimal.NewFromInt(1800)
	_, err := upsert.Execute(ctx, UpsertOverrideInput{
		FixedCostID:  rent.ID,
		UserID:       f.userID,
		OriginalDate: calendar.Date(2025, time.June, 28),
		NewAmount:    &reduced,
	})
	require.NoError(t, err)
	_, err = upsert.Execute(ctx, UpsertOverrideInput{
		FixedCostID:  rent.ID,
		UserID:       f.userID,
		OriginalDate: calendar.Date(2025, time.July, 28),
		Skipped:      true,
	})
	require.NoError(t, err)

	output, err := NewPreviewOccurrencesUseCase(f.fixedCosts, f.overrides).Execute(ctx, PreviewOccurrencesInput{
		FixedCostID: rent.ID,
		UserID:      f.userID,
		StartDate:   calendar.Date(2025, time.June, 1),
		EndDate:     calendar.Date(2025, time.August, 31),
	})
	require.NoError(t, err)
	require.Len(t, output.Occurrences, 2)

	// June 28 is a Saturday and moves to Friday the 27th.
	june := output.Occurrences[0]
	assert.Equal(t, calendar.Date(2025, time.June, 27), june.Date)
	require.NotNil(t, june.OriginalDate)
	assert.Equal(t, calendar.Date(2025, time.June, 28), *june.OriginalDate)
	assert.Equal(t, "-1800", june.Amount.String())

	assert.Equal(t, calendar.Date(2025, time.August, 28), output.Occurrences[1].Date)
	assert.Equal(t, "-2000", output.Occurrences[1].Amount.String())
}

func TestUpsertOverride_ReplacesExisting(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	rent := f.createRent(t)
	upsert := NewUpsertOverrideUseCase(f.fixedCosts, f.overrides)

	moved := calendar.Date(2025, time.March, 31)
	first, err := upsert.Execute(ctx, UpsertOverrideInput{FixedCostID: rent.ID, UserID: f.userID, OriginalDate: calendar.Date(2025, time.March, 28), NewDate: &moved})
	require.NoError(t, err)
	second, err := upsert.Execute(ctx, UpsertOverrideInput{FixedCostID: rent.ID, UserID: f.userID, OriginalDate: calendar.Date(2025, time.March, 28), Skipped: true})
	require.NoError(t, err)
	assert.Equal(t, first.Override.ID, second.Override.ID)
	assert.True(t, second.Override.Skipped)

	list, err := NewListOverridesUseCase(f.fixedCosts, f.overrides).Execute(ctx, ListOverridesInput{FixedCostID: rent.ID, UserID: f.userID})
	require.NoError(t, err)
	require.Len(t, list.Overrides, 1)
	assert.Equal(t, second.Override.ID, list.Overrides[0].ID)
	assert.True(t, list.Overrides[0].Skipped)
	assert.Nil(t, list.Overrides[0].NewDate)
}

func TestUpsertOverride_RejectsUnscheduledDate(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	rent := f.createRent(t)
	upsert := NewUpsertOverrideUseCase(f.fixedCosts, f.overrides)

	tests := []struct {
		name string
		date time.Time
	}{
		{"day the rhythm does not produce", calendar.Date(2025, time.July, 31)},
		{"before the start date", calendar.Date(2024, time.December, 31)},
		{"weekend-shifted date instead of scheduled date", calendar.Date(2025, time.June, 27)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := upsert.Execute(ctx, UpsertOverrideInput{FixedCostID: rent.ID, UserID: f.userID, OriginalDate: tt.date, Skipped: true})
			assert.Equal(t, domainerror.ErrCodeNoSuchOccurrence, fixedCostCode(t, err))
		})
	}

	negative := decimal.NewFromInt(-5)
	_, err := upsert.Execute(ctx, UpsertOverrideInput{FixedCostID: rent.ID, UserID: f.userID, OriginalDate: calendar.Date(2025, time.June, 28), NewAmount: &negative})
	assert.Equal(t, domainerror.ErrCodeInvalidFixedCostAmount, fixedCostCode(t, err))
}

func TestDeleteOverride(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	rent := f.createRent(t)

	_, err := NewUpsertOverrideUseCase(f.fixedCosts, f.overrides).Execute(ctx, UpsertOverrideInput{
		FixedCostID: rent.ID, UserID: f.userID, OriginalDate: calendar.Date(2025, time.July, 28), Skipped: true,
	})
	require.NoError(t, err)

	uc := NewDeleteOverrideUseCase(f.fixedCosts, f.overrides)
	_, err = uc.Execute(ctx, DeleteOverrideInput{FixedCostID: rent.ID, UserID: f.userID, OriginalDate: calendar.Date(2025, time.July, 28)})
	require.NoError(t, err)

	_, err = uc.Execute(ctx, DeleteOverrideInput{FixedCostID: rent.ID, UserID: f.userID, OriginalDate: calendar.Date(2025, time.July, 28)})
	assert.Equal(t, domainerror.ErrCodeOverrideNotFound, fixedCostCode(t, err))
}

func TestDeleteFixedCost(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	rent := f.createRent(t)
	uc := NewDeleteFixedCostUseCase(f.fixedCosts)

	_, err := uc.Execute(ctx, DeleteFixedCostInput{FixedCostID: rent.ID, UserID: uuid.New()})
	assert.Equal(t, domainerror.ErrCodeNotAuthorizedFixedCost, fixedCostCode(t, err))

	_, err = uc.Execute(ctx, DeleteFixedCostInput{FixedCostID: rent.ID, UserID: f.userID})
	require.NoError(t, err)

	_, err = uc.Execute(ctx, DeleteFixedCostInput{FixedCostID: rent.ID, UserID: f.userID})
	assert.Equal(t, domainerror.ErrCodeFixedCostNotFound, fixedCostCode(t, err))
}
