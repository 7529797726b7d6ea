//go:build integration

package steps

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/liq-planung/backend/internal/domain/calendar"
	"github.com/liq-planung/backend/internal/domain/entity"
	"github.com/liq-planung/backend/internal/integration/entrypoint/middleware"
	"github.com/liq-planung/backend/internal/integration/persistence"
)

// todayIs pins the server clock to 10:00 UTC of the given day.
func (t *testContext) todayIs(day string) error {
	date, err := t.parseDay(day)
	if err != nil {
		return err
	}
	t.timeMock.SetCurrentTime(date.Add(10 * time.Hour))
	return nil
}

// iAmTheUser identifies all following requests as the named user. The same
// name always maps to the same id.
func (t *testContext) iAmTheUser(name string) error {
	t.userID = uuid.NewSHA1(uuid.NameSpaceOID, []byte(name))
	t.headers[middleware.UserIDHeader] = t.userID.String()
	return nil
}

func (t *testContext) aFixedCostExists(name, amount, rhythm, start string) error {
	value, startDate, err := t.amountAndDay(amount, start)
	if err != nil {
		return err
	}

	// Unknown rhythms are stored as given so projections can report them.
	parsed, ok := entity.ParseRhythm(rhythm)
	if !ok {
		parsed = entity.Rhythm(rhythm)
	}

	fixedCost := entity.NewFixedCost(t.currentUser(), name, value, parsed, startDate, nil, nil)
	if err := persistence.NewFixedCostRepository(t.db.DbConn).Create(context.Background(), fixedCost); err != nil {
		return err
	}
	t.remember("fixed_cost_id", fixedCost.ID.String())
	return nil
}

func (t *testContext) aTransactionExists(direction, details, amount, day string) error {
	value, date, err := t.amountAndDay(amount, day)
	if err != nil {
		return err
	}

	txn := entity.NewTransaction(t.currentUser(), date, value, toDirection(direction), details, "", false)
	if err := persistence.NewTransactionRepository(t.db.DbConn).Create(context.Background(), txn); err != nil {
		return err
	}
	t.remember("transaction_id", txn.ID.String())
	return nil
}

func (t *testContext) anActiveSimulationExists(name, amount, direction, day string) error {
	value, date, err := t.amountAndDay(amount, day)
	if err != nil {
		return err
	}

	sim := entity.NewSimulation(t.currentUser(), name, value, toDirection(direction), date, false, nil, nil, nil)
	if err := persistence.NewSimulationRepository(t.db.DbConn).Create(context.Background(), sim); err != nil {
		return err
	}
	t.remember("simulation_id", sim.ID.String())
	return nil
}

func (t *testContext) aCategoryRuleExists(pattern, category string) error {
	rule := entity.NewCategoryRule(t.currentUser(), pattern, category, 0)
	if err := persistence.NewCategoryRuleRepository(t.db.DbConn).Create(context.Background(), rule); err != nil {
		return err
	}
	t.remember("rule_id", rule.ID.String())
	return nil
}

func (t *testContext) theBalanceWas(amount, day string) error {
	value, date, err := t.amountAndDay(amount, day)
	if err != nil {
		return err
	}

	snapshot := entity.NewBalanceSnapshot(t.currentUser(), date, value)
	return persistence.NewBalanceRepository(t.db.DbConn).Create(context.Background(), snapshot)
}

func (t *testContext) currentUser() uuid.UUID {
	if t.userID == uuid.Nil {
		_ = t.iAmTheUser("default")
	}
	return t.userID
}

func (t *testContext) remember(name, id string) {
	t.ids[name] = id
	t.lastID = id
}

func (t *testContext) parseDay(day string) (time.Time, error) {
	date, ok := calendar.ParseLocalizedDate(day, t.timeMock.Now())
	if !ok {
		return time.Time{}, fmt.Errorf("invalid date %q", day)
	}
	return date, nil
}

func (t *testContext) amountAndDay(amount, day string) (decimal.Decimal, time.Time, error) {
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero, time.Time{}, fmt.Errorf("invalid amount %q: %w", amount, err)
	}
	date, err := t.parseDay(day)
	if err != nil {
		return decimal.Zero, time.Time{}, err
	}
	return value, date, nil
}

func toDirection(direction string) entity.Direction {
	if strings.EqualFold(direction, "incoming") {
		return entity.DirectionIncoming
	}
	return entity.DirectionOutgoing
}
