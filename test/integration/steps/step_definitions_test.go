package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ibadah-tracker/backend/config"
	"github.com/ibadah-tracker/backend/internal/application/adapter"
	"github.com/ibadah-tracker/backend/internal/domain/entity"
	"github.com/ibadah-tracker/backend/internal/infra/dependency"
	"github.com/ibadah-tracker/backend/internal/integration/adapters"
	"github.com/ibadah-tracker/backend/internal/integration/persistence"
	persistencemock "github.com/ibadah-tracker/backend/internal/integration/persistence/mock"
	"github.com/ibadah-tracker/backend/internal/integration/persistence/model"
	"github.com/ibadah-tracker/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

// defaultNow is Sunday 2024-03-10 13:00 in Mecca, after dhuhr and before asr.
var defaultNow = time.Date(2024, 3, 10, 13, 0, 0, 0, time.FixedZone("AST", 3*3600))

var tags string

func init() {
	flag.StringVar(&tags, "scenarios", "", "tags to run")
}

func TestFeatures(t *testing.T) {
	flag.Parse()

	suite := godog.TestSuite{
		Name: "ibadah-tracker-api",
		TestSuiteInitializer: func(s *godog.TestSuiteContext) {
			s.BeforeSuite(func() { gin.SetMode(gin.TestMode) })
		},
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:      "pretty",
			Paths:       []string{"../features"},
			Tags:        tags,
			Concurrency: 1,
			Strict:      true,
			TestingT:    t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

type testContext struct {
	server      *httptest.Server
	client      *http.Client
	headers     map[string]string
	response    *response
	db          *persistencemock.Db
	redis       *persistencemock.Redis
	store       adapter.RecordStore
	remote      adapter.SyncRemote
	timeMock    *mock.Time
	events      *recordingSink
	accessToken string
	userID      uuid.UUID
}

type response struct {
	status int
	body   any
	raw    []byte
}

// recordingSink keeps the tracked analytics events of a scenario.
type recordingSink struct {
	mu     sync.Mutex
	events []entity.ActionEvent
}

func (s *recordingSink) Track(ctx context.Context, event entity.ActionEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return nil
}

func (s *recordingSink) count(eventType string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, event := range s.events {
		if string(event.Type) == eventType {
			n++
		}
	}
	return n
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	test := &testContext{
		client: &http.Client{Timeout: 10 * time.Second},
	}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, test.before()
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		test.after()
		return ctx, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)
	ctx.Given(`^the clock is at "([^"]*)"$`, test.theClockIsAt)
	ctx.Given(`^I am registered as "([^"]*)"$`, test.iAmRegisteredAs)

	// Header steps
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)
	ctx.Given(`^I drop my access token$`, test.iDropMyAccessToken)
	ctx.Given(`^my local records are wiped$`, test.myLocalRecordsAreWiped)

	// Request steps
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)

	// Store assertion steps
	ctx.Then(`^the store should contain (\d+) records with prefix "([^"]*)"$`, test.theStoreShouldContainRecordsWithPrefix)
	ctx.Then(`^the remote bundle should contain (\d+) records$`, test.theRemoteBundleShouldContainRecords)
	ctx.Then(`^(\d+) "([^"]*)" events? should have been tracked$`, test.eventsShouldHaveBeenTracked)
}

func (t *testContext) before() error {
	t.headers = make(map[string]string)
	t.response = nil
	t.accessToken = ""
	t.userID = uuid.Nil

	t.db = persistencemock.NewDb(&model.RecordModel{})
	t.redis = persistencemock.NewRedis()
	t.timeMock = mock.NewTime()
	t.timeMock.SetCurrentTime(defaultNow)
	t.events = &recordingSink{}
	t.store = persistence.NewGormRecordStore(t.db.DbConn)
	t.remote = adapters.NewRedisSyncRemote(t.redis.Client, "test:sync:")

	schedules, err := adapters.NewScheduleFileProvider("")
	if err != nil {
		return fmt.Errorf("failed to load bundled schedule: %w", err)
	}

	cfg := config.Load()
	cfg.Server.Environment = "test"
	cfg.Store.Engine = persistence.EngineSQLite
	cfg.JWT.Secret = testJWTSecret
	cfg.Engine.RateLimitPerMin = 0
	cfg.CORS.AllowedOrigins = nil
	cfg.Workers.SyncEnabled = false
	cfg.Workers.RetentionEnabled = false

	injector := dependency.NewInjector(cfg, dependency.Dependencies{
		Store:       t.store,
		Clock:       t.timeMock,
		Schedules:   schedules,
		Sink:        t.events,
		Remote:      t.remote,
		HealthCheck: func(ctx context.Context) bool { return true },
	})
	t.server = httptest.NewServer(injector.Router.Setup(cfg.Server.Environment))
	return nil
}

func (t *testContext) after() {
	if t.server != nil {
		t.server.Close()
	}
	if t.redis != nil {
		t.redis.Close()
	}
	if t.db != nil {
		t.db.Close()
	}
}

func (t *testContext) theAPIServerIsRunning() error {
	if t.server == nil {
		return fmt.Errorf("test server is not running")
	}
	return nil
}

func (t *testContext) theClockIsAt(value string) error {
	now, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return fmt.Errorf("invalid clock value %q: %w", value, err)
	}
	t.timeMock.SetCurrentTime(now)
	return nil
}

func (t *testContext) iAmRegisteredAs(name string) error {
	payload, _ := json.Marshal(map[string]any{"name": name})
	if err := t.executeRequest(http.MethodPost, "/api/v1/devices", payload); err != nil {
		return err
	}
	if t.response.status != http.StatusCreated {
		return fmt.Errorf("device registration failed with status %d: %s", t.response.status, t.response.raw)
	}

	token, ok := getFieldValue(t.response.body, "access_token").(string)
	if !ok || token == "" {
		return fmt.Errorf("registration response has no access token")
	}
	id, ok := getFieldValue(t.response.body, "profile.id").(string)
	if !ok {
		return fmt.Errorf("registration response has no profile id")
	}
	userID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid profile id %q: %w", id, err)
	}

	t.accessToken = token
	t.userID = userID
	return nil
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}

func (t *testContext) iDropMyAccessToken() error {
	t.accessToken = ""
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	return t.executeRequest(method, path, nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	return t.executeRequest(method, path, []byte(body.Content))
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, t.server.URL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}
	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	var body any
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &body)
	}
	t.response = &response{status: resp.StatusCode, body: body, raw: raw}
	return nil
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return fmt.Errorf("no request was sent")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d: %s", expectedStatus, t.response.status, t.response.raw)
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	if t.response == nil || !json.Valid(t.response.raw) {
		return fmt.Errorf("response is not valid JSON")
	}
	return nil
}

func (t *testContext) theResponseShouldContain(text string) error {
	if !strings.Contains(string(t.response.raw), text) {
		return fmt.Errorf("expected response to contain %q, got %s", text, t.response.raw)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	value := getFieldValue(t.response.body, field)
	if value == nil {
		return fmt.Errorf("field %q not found in %s", field, t.response.raw)
	}
	if got := formatValue(value); got != expectedValue {
		return fmt.Errorf("expected field %q to be %q, got %q", field, expectedValue, got)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	if getFieldValue(t.response.body, field) == nil {
		return fmt.Errorf("field %q not found in %s", field, t.response.raw)
	}
	return nil
}

func (t *testContext) myLocalRecordsAreWiped() error {
	return t.store.Clear(context.Background(), t.userID.String())
}

func (t *testContext) theStoreShouldContainRecordsWithPrefix(quantity int, prefix string) error {
	records, err := t.store.List(context.Background(), t.userID.String(), prefix)
	if err != nil {
		return err
	}
	if len(records) != quantity {
		return fmt.Errorf("expected %d records with prefix %q, got %d", quantity, prefix, len(records))
	}
	return nil
}

func (t *testContext) theRemoteBundleShouldContainRecords(quantity int) error {
	records, err := t.remote.Pull(context.Background(), t.userID.String())
	if err != nil {
		return err
	}
	if len(records) != quantity {
		return fmt.Errorf("expected %d remote records, got %d", quantity, len(records))
	}
	return nil
}

func (t *testContext) eventsShouldHaveBeenTracked(quantity int, eventType string) error {
	if got := t.events.count(eventType); got != quantity {
		return fmt.Errorf("expected %d %q events, got %d", quantity, eventType, got)
	}
	return nil
}

// getFieldValue walks a dot separated path; numeric segments index into arrays.
func getFieldValue(object any, dotSeparatedField string) any {
	current := object
	for _, part := range strings.Split(dotSeparatedField, ".") {
		switch node := current.(type) {
		case map[string]any:
			current = node[part]
		case []any:
			index, err := strconv.Atoi(part)
			if err != nil || index < 0 || index >= len(node) {
				return nil
			}
			current = node[index]
		default:
			return nil
		}
	}
	return current
}

func formatValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		raw, _ := json.Marshal(v)
		return string(raw)
	}
}
