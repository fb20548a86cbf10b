package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/cucumber/godog"

	"github.com/finance-tracker/webapp/config"
	"github.com/finance-tracker/webapp/internal/integration/persistence"
)

func registerSetupSteps(ctx *godog.ScenarioContext, t *testContext) {
	ctx.Given(`^the web app is running$`, t.theWebAppIsRunning)
	ctx.Given(`^today is "([^"]*)"$`, t.todayIs)
	ctx.Given(`^goals are stored in "(sqlite|redis)"$`, t.goalsAreStoredIn)
	ctx.Given(`^report emails are limited to (\d+) per hour$`, t.reportEmailsAreLimitedTo)
	ctx.Given(`^the default report recipient is "([^"]*)"$`, t.theDefaultReportRecipientIs)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, t.theHeaderContainsTheKeyWith)
}

func registerBackendSteps(ctx *godog.ScenarioContext, t *testContext) {
	ctx.Given(`^the backend has the expenses:$`, t.theBackendHasTheExpenses)
	ctx.Given(`^the backend budget analysis for "([^"]*)" is:$`, t.theBackendBudgetAnalysisIs)
	ctx.Given(`^the backend responds to "([^"]*)" "([^"]*)" with status (\d+)$`, t.theBackendRespondsWithStatus)
	ctx.Given(`^the backend responds to "([^"]*)" "([^"]*)" with status (\d+) and body:$`, t.theBackendRespondsWithStatusAndBody)
	ctx.Given(`^the backend serves "([^"]*)" as "([^"]*)" with body "([^"]*)"$`, t.theBackendServesRaw)
	ctx.Then(`^the backend should have received (\d+) "([^"]*)" requests? to "([^"]*)"$`, t.theBackendShouldHaveReceived)
	ctx.Then(`^the backend "([^"]*)" request to "([^"]*)" should have field "([^"]*)" equal to "([^"]*)"$`, t.theBackendRequestShouldHaveField)
	ctx.Then(`^the backend "([^"]*)" request to "([^"]*)" should have query "([^"]*)" equal to "([^"]*)"$`, t.theBackendRequestShouldHaveQuery)
}

func registerRequestSteps(ctx *godog.ScenarioContext, t *testContext) {
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, t.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, t.iSendARequestToWithBody)
}

func registerResponseSteps(ctx *godog.ScenarioContext, t *testContext) {
	ctx.Then(`^the response status should be (\d+)$`, t.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, t.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, t.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, t.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should be null$`, t.theResponseFieldShouldBeNull)
	ctx.Then(`^the response field "([^"]*)" should exist$`, t.theResponseFieldShouldExist)
	ctx.Then(`^the response field "([^"]*)" should have (\d+) items?$`, t.theResponseFieldShouldHaveItems)
	ctx.Then(`^the response header "([^"]*)" should contain "([^"]*)"$`, t.theResponseHeaderShouldContain)
	ctx.Then(`^the response body should contain "([^"]*)"$`, t.theResponseBodyShouldContain)
}

func registerGoalSteps(ctx *godog.ScenarioContext, t *testContext) {
	ctx.Given(`^a goal "([^"]*)" exists with target "([^"]*)" and deadline "([^"]*)"$`, t.aGoalExists)
	ctx.Then(`^the goal store should hold (\d+) goals?$`, t.theGoalStoreShouldHold)
}

func registerEmailSteps(ctx *godog.ScenarioContext, t *testContext) {
	ctx.Then(`^(\d+) report emails? should have been sent$`, t.reportEmailsShouldHaveBeenSent)
	ctx.Then(`^the last report email should be sent to "([^"]*)"$`, t.theLastReportEmailShouldBeSentTo)
	ctx.Then(`^the last report email should have an attachment named "([^"]*)"$`, t.theLastReportEmailShouldHaveAttachment)
}

// Setup steps

func (t *testContext) theWebAppIsRunning() error {
	if t.backend == nil {
		return errors.New("fake backend is not running")
	}
	return nil
}

func (t *testContext) todayIs(date string) error {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", date, err)
	}
	t.timeMock.SetCurrentTime(day.Add(12 * time.Hour))
	return nil
}

func (t *testContext) goalsAreStoredIn(driver string) error {
	if t.server != nil {
		return errors.New("goal store must be chosen before the first request")
	}
	if driver == "redis" {
		t.storeDriver = config.StorageRedis
	} else {
		t.storeDriver = config.StorageSQLite
	}
	return nil
}

func (t *testContext) reportEmailsAreLimitedTo(attempts int) error {
	t.cfg.RateLimit.ReportEmailAttempts = attempts
	return nil
}

func (t *testContext) theDefaultReportRecipientIs(recipient string) error {
	t.cfg.Email.ReportRecipient = recipient
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}

// Backend steps

func (t *testContext) theBackendHasTheExpenses(table *godog.Table) error {
	if len(table.Rows) == 0 {
		return errors.New("expense table needs a header row")
	}
	header := table.Rows[0].Cells

	expenses := make([]map[string]any, 0, len(table.Rows)-1)
	for _, row := range table.Rows[1:] {
		record := map[string]any{}
		for i, cell := range row.Cells {
			if cell.Value == "" {
				continue
			}
			record[header[i].Value] = cell.Value
		}
		expenses = append(expenses, record)
	}

	t.backend.SetResponse(-1, http.MethodGet, backendPrefix+"/expenses", http.StatusOK, map[string]any{
		"expenses": expenses,
		"count":    len(expenses),
	})
	return nil
}

func (t *testContext) theBackendBudgetAnalysisIs(month string, body *godog.DocString) error {
	t.backend.SetRawResponse(-1, http.MethodGet, backendPrefix+"/budgets/analysis/"+month, http.StatusOK, "application/json", []byte(body.Content))
	return nil
}

func (t *testContext) theBackendRespondsWithStatus(method, path string, status int) error {
	t.backend.SetResponse(-1, method, path, status, map[string]any{"error": http.StatusText(status)})
	return nil
}

func (t *testContext) theBackendRespondsWithStatusAndBody(method, path string, status int, body *godog.DocString) error {
	t.backend.SetRawResponse(-1, method, path, status, "application/json", []byte(body.Content))
	return nil
}

func (t *testContext) theBackendServesRaw(path, contentType, body string) error {
	t.backend.SetRawResponse(-1, http.MethodGet, path, http.StatusOK, contentType, []byte(body))
	return nil
}

func (t *testContext) theBackendShouldHaveReceived(quantity int, method, path string) error {
	got := len(t.backend.Requests(method, path))
	if got != quantity {
		return fmt.Errorf("expected %d %s requests to %s, got %d", quantity, method, path, got)
	}
	return nil
}

func (t *testContext) theBackendRequestShouldHaveField(method, path, field, expected string) error {
	body := t.backend.GetRequestBody(method, path, 0)
	if body == nil {
		return fmt.Errorf("no %s request received on %s", method, path)
	}
	value, ok := body[field]
	if !ok {
		return fmt.Errorf("field '%s' not sent to backend: %v", field, body)
	}
	actual := "null"
	if value != nil {
		actual = fmt.Sprintf("%v", value)
	}
	if actual != expected {
		return fmt.Errorf("backend field '%s' expected '%s', got '%s'", field, expected, actual)
	}
	return nil
}

func (t *testContext) theBackendRequestShouldHaveQuery(method, path, key, expected string) error {
	query := t.backend.GetRequestQueries(method, path, 0)
	if query == nil {
		return fmt.Errorf("no %s request received on %s", method, path)
	}
	if actual := query.Get(key); actual != expected {
		return fmt.Errorf("backend query '%s' expected '%s', got '%s'", key, expected, actual)
	}
	return nil
}

// Request steps

func (t *testContext) iSendARequestTo(method, path string) error {
	return t.executeRequest(method, t.replacePlaceholders(path), nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	content := t.replacePlaceholders(body.Content)
	return t.executeRequest(method, t.replacePlaceholders(path), []byte(content))
}

func (t *testContext) replacePlaceholders(content string) string {
	return strings.ReplaceAll(content, "{{goal_id}}", t.lastGoalID)
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	if err := t.ensureServer(); err != nil {
		return err
	}

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequest(method, t.server.URL+path, body)
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{
		status:  resp.StatusCode,
		headers: resp.Header,
		raw:     bodyBytes,
	}

	var decoded map[string]any
	if err := json.Unmarshal(bodyBytes, &decoded); err != nil {
		t.response.body = string(bodyBytes)
		return nil
	}
	t.response.body = decoded

	// Goal responses carry the id later steps refer to as {{goal_id}}.
	if id, ok := decoded["id"].(string); ok {
		if _, isGoal := decoded["target"]; isGoal {
			t.lastGoalID = id
		}
	}
	return nil
}

// Response steps

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %v)", expectedStatus, t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if _, ok := t.response.body.(map[string]any); !ok {
		return fmt.Errorf("response is not JSON: %v", t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldContain(field string) error {
	body, err := t.jsonBody()
	if err != nil {
		return err
	}
	if _, exists := body[field]; !exists {
		return fmt.Errorf("response does not contain field '%s': %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	body, err := t.jsonBody()
	if err != nil {
		return err
	}

	value := getFieldValue(body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}

	actualValue := fmt.Sprintf("%v", value)
	if actualValue != expectedValue {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBeNull(field string) error {
	body, err := t.jsonBody()
	if err != nil {
		return err
	}
	if value := getFieldValue(body, field); value != nil {
		return fmt.Errorf("field '%s' expected null, got '%v'", field, value)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	body, err := t.jsonBody()
	if err != nil {
		return err
	}
	if value := getFieldValue(body, field); value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldHaveItems(field string, quantity int) error {
	body, err := t.jsonBody()
	if err != nil {
		return err
	}
	items, ok := getFieldValue(body, field).([]any)
	if !ok {
		return fmt.Errorf("field '%s' is not a list: %v", field, body)
	}
	if len(items) != quantity {
		return fmt.Errorf("field '%s' expected %d items, got %d", field, quantity, len(items))
	}
	return nil
}

func (t *testContext) theResponseHeaderShouldContain(header, expected string) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if actual := t.response.headers.Get(header); !strings.Contains(actual, expected) {
		return fmt.Errorf("header '%s' expected to contain '%s', got '%s'", header, expected, actual)
	}
	return nil
}

func (t *testContext) theResponseBodyShouldContain(expected string) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if !strings.Contains(string(t.response.raw), expected) {
		return fmt.Errorf("response body does not contain '%s': %s", expected, string(t.response.raw))
	}
	return nil
}

func (t *testContext) jsonBody() (map[string]any, error) {
	if t.response == nil {
		return nil, errors.New("no response received")
	}
	body, ok := t.response.body.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}
	return body, nil
}

func getFieldValue(object any, dotSeparatedField string) any {
	if object == nil {
		return nil
	}

	fields := strings.Split(dotSeparatedField, ".")
	field := object

	for _, currentField := range fields {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(currentField); err == nil {
			if arr, ok := field.([]any); ok && i < len(arr) {
				field = arr[i]
			} else {
				return nil
			}
		} else {
			if m, ok := field.(map[string]any); ok {
				field = m[currentField]
			} else {
				return nil
			}
		}
	}

	return field
}

// Goal steps

func (t *testContext) aGoalExists(name, target, deadline string) error {
	payload, err := json.Marshal(map[string]any{
		"name":     name,
		"target":   target,
		"deadline": deadline,
	})
	if err != nil {
		return err
	}
	if err := t.executeRequest(http.MethodPost, "/api/v1/goals", payload); err != nil {
		return err
	}
	if t.response.status != http.StatusCreated {
		return fmt.Errorf("failed to create goal: status %d (body: %v)", t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theGoalStoreShouldHold(quantity int) error {
	if t.store == nil {
		return errors.New("goal store was never opened")
	}
	goals, err := persistence.NewGoalRepository(t.store).List(context.Background())
	if err != nil {
		return err
	}
	if len(goals) != quantity {
		return fmt.Errorf("expected %d stored goals, got %d", quantity, len(goals))
	}
	return nil
}

// Email steps

func (t *testContext) reportEmailsShouldHaveBeenSent(quantity int) error {
	if got := len(t.sender.Sent()); got != quantity {
		return fmt.Errorf("expected %d emails sent, got %d", quantity, got)
	}
	return nil
}

func (t *testContext) theLastReportEmailShouldBeSentTo(recipient string) error {
	sent := t.sender.Sent()
	if len(sent) == 0 {
		return errors.New("no email was sent")
	}
	if to := sent[len(sent)-1].To; to != recipient {
		return fmt.Errorf("expected email to %s, got %s", recipient, to)
	}
	return nil
}

func (t *testContext) theLastReportEmailShouldHaveAttachment(filename string) error {
	sent := t.sender.Sent()
	if len(sent) == 0 {
		return errors.New("no email was sent")
	}
	for _, a := range sent[len(sent)-1].Attachments {
		if a.Filename == filename {
			return nil
		}
	}
	return fmt.Errorf("attachment %s not found", filename)
}
