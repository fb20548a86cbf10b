// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/webapp/config"
	"github.com/finance-tracker/webapp/internal/application/adapter"
	"github.com/finance-tracker/webapp/internal/infra/dependency"
	"github.com/finance-tracker/webapp/internal/integration/email"
	"github.com/finance-tracker/webapp/internal/integration/persistence"
	"github.com/finance-tracker/webapp/test/integration/mock"
)

// backendPrefix is the path the fake backend serves its API under.
const backendPrefix = "/api"

type testContext struct {
	cfg         *config.Config
	client      *http.Client
	server      *httptest.Server
	backend     *mock.ApiMock
	timeMock    *mock.Time
	sender      *email.MockEmailSender
	db          *mock.Db
	storeDriver string
	store       adapter.KeyValueStore
	headers     map[string]string
	response    *response
	lastGoalID  string
}

type response struct {
	status  int
	headers http.Header
	raw     []byte
	body    any
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	test := &testContext{
		client: &http.Client{Timeout: 10 * time.Second},
		db:     mock.NewDb(),
	}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, test.before()
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		test.after()
		return ctx, nil
	})

	registerSetupSteps(ctx, test)
	registerBackendSteps(ctx, test)
	registerRequestSteps(ctx, test)
	registerResponseSteps(ctx, test)
	registerGoalSteps(ctx, test)
	registerEmailSteps(ctx, test)
}

func (t *testContext) before() error {
	t.cfg = config.Load()
	t.cfg.Server.Environment = "test"
	t.cfg.Backend.MaxRetries = 1
	t.cfg.Backend.RetryBackoff = time.Millisecond
	t.cfg.Backend.Timeout = 5 * time.Second
	t.cfg.Email.ReportRecipient = ""
	t.cfg.RateLimit.ReportEmailAttempts = 5
	t.cfg.RateLimit.ReportEmailWindow = time.Hour

	t.backend = mock.NewApiServer()
	t.backend.Start()
	t.cfg.Backend.BaseURL = t.backend.GetUrl() + backendPrefix

	t.timeMock = mock.NewTime()
	t.sender = email.NewMockEmailSender()
	t.storeDriver = config.StorageSQLite
	t.store = nil
	t.server = nil
	t.headers = make(map[string]string)
	t.response = nil
	t.lastGoalID = ""

	if err := t.db.ClearDB(); err != nil {
		return fmt.Errorf("failed to clear goal database: %w", err)
	}
	return mock.ClearRedis(mock.NewRedis())
}

func (t *testContext) after() {
	if t.server != nil {
		t.server.Close()
	}
	if t.backend != nil {
		t.backend.Close()
	}
}

// ensureServer wires the app on first use so setup steps can still change its configuration.
func (t *testContext) ensureServer() error {
	if t.server != nil {
		return nil
	}

	switch t.storeDriver {
	case config.StorageRedis:
		t.store = persistence.NewRedisStore(mock.NewRedis(), t.cfg.Redis.KeyPrefix)
	default:
		t.store = persistence.NewGormStore(t.db.DbConn)
	}

	injector, err := dependency.NewInjector(t.cfg, dependency.Externals{
		Store:       t.store,
		EmailSender: t.sender,
		Clock:       t.timeMock,
	})
	if err != nil {
		return fmt.Errorf("failed to wire application: %w", err)
	}

	t.server = httptest.NewServer(injector.Router.Setup(t.cfg.Server.Environment))
	return nil
}
