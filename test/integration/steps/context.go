//go:build integration

// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/liq-planung/backend/config"
	"github.com/liq-planung/backend/internal/infra/dependency"
	"github.com/liq-planung/backend/internal/integration/persistence/model"
	"github.com/liq-planung/backend/test/integration/mock"
)

type testContext struct {
	uri      string
	headers  map[string]string
	client   *http.Client
	response *response
	db       *mock.Db
	timeMock *mock.Time
	userID   uuid.UUID
	lastID   string
	ids      map[string]string
}

type response struct {
	status int
	body   any
}

var (
	serverInit     sync.Once
	portInit       sync.Once
	testServerPort int
	sharedClock    = mock.NewTime()
)

func initializePort() {
	portInit.Do(func() {
		testServerPort = findAvailablePort()
		_ = os.Setenv("SERVER_PORT", strconv.Itoa(testServerPort))
		_ = os.Setenv("ENV", "test")
		_ = os.Setenv("RATE_LIMIT_MAX_REQUESTS", "0")
		_ = os.Setenv("FORECAST_TIMEZONE", "UTC")
	})
}

func findAvailablePort() int {
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		panic(err)
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	initializePort()

	test := &testContext{
		uri:      fmt.Sprintf("http://localhost:%d", testServerPort),
		client:   &http.Client{Timeout: 10 * time.Second},
		timeMock: sharedClock,
		db:       mock.NewDb(model.All()...),
	}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, test.before()
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)
	ctx.Given(`^today is "([^"]*)"$`, test.todayIs)
	ctx.Step(`^I am the user "([^"]*)"$`, test.iAmTheUser)

	// Record setup steps
	ctx.Given(`^a fixed cost "([^"]*)" of "([^"]*)" paid "([^"]*)" from "([^"]*)"$`, test.aFixedCostExists)
	ctx.Given(`^an? (incoming|outgoing) transaction "([^"]*)" of "([^"]*)" on "([^"]*)"$`, test.aTransactionExists)
	ctx.Given(`^an active simulation "([^"]*)" of "([^"]*)" (incoming|outgoing) on "([^"]*)"$`, test.anActiveSimulationExists)
	ctx.Given(`^a category rule "([^"]*)" assigns "([^"]*)"$`, test.aCategoryRuleExists)
	ctx.Given(`^the balance was "([^"]*)" on "([^"]*)"$`, test.theBalanceWas)
	ctx.Given(`^the cached forecasts have expired$`, test.theCachedForecastsHaveExpired)

	// Header steps
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)
	ctx.When(`^I remember the response id as "([^"]*)"$`, test.iRememberTheResponseIDAs)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Then(`^the response field "([^"]*)" should have (\d+) items?$`, test.theResponseFieldShouldHaveItems)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)
}

func (t *testContext) before() error {
	t.headers = make(map[string]string)
	t.response = nil
	t.userID = uuid.Nil
	t.lastID = ""
	t.ids = make(map[string]string)
	t.timeMock.SetCurrentTime(time.Now().UTC())

	if err := mock.NewRedis().Clear(); err != nil {
		return err
	}
	return t.db.ClearDB()
}

func (t *testContext) startServer() {
	serverInit.Do(func() {
		go func() {
			gin.SetMode(gin.TestMode)

			cfg := config.Load()
			injector := dependency.NewInjector(cfg, t.db.DbConn, mock.NewRedis().Client, sharedClock)
			engine := injector.Router.Setup(cfg.Server.Environment)

			server := &http.Server{
				Addr:    fmt.Sprintf(":%d", testServerPort),
				Handler: engine,
			}
			_ = server.ListenAndServe()
		}()
	})

	// Wait for server to be ready
	for i := 0; i < 50; i++ {
		resp, err := http.Get(t.uri + "/health")
		if err == nil && resp.StatusCode == http.StatusOK {
			resp.Body.Close()
			return
		}
		time.Sleep(100 * time.Millisecond)
	}
}

func (t *testContext) theCachedForecastsHaveExpired() error {
	mock.NewRedis().FastForward(config.Load().Forecast.CacheTTL + time.Second)
	return nil
}

func (t *testContext) theAPIServerIsRunning() error {
	t.startServer()
	return nil
}
