package backend

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/webapp/internal/domain/entity"
	domainerror "github.com/finance-tracker/webapp/internal/domain/error"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(Config{
		BaseURL:      server.URL + "/api",
		Timeout:      2 * time.Second,
		MaxRetries:   2,
		RetryBackoff: time.Millisecond,
	})
}

func TestListExpenses(t *testing.T) {
	t.Run("decodes envelope and tolerates bad fields", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/api/expenses" {
				t.Errorf("unexpected path %s", r.URL.Path)
			}
			io.WriteString(w, `{"expenses":[
				{"id":"a","amount":12.5,"category":"Food","date":"2024-03-05","description":"lunch","tags":["work"],"created_at":"2024-03-05T12:00:00"},
				{"id":2,"amount":"7.25","category":null,"date":"2024-03-06T10:00:00Z"},
				{"id":"c","amount":"abc","category":"Food","date":"not a date","tags":"x, y"}
			],"count":3}`)
		}))

		records, err := client.ListExpenses(context.Background(), entity.ExpenseFilter{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(records) != 3 {
			t.Fatalf("expected 3 records, got %d", len(records))
		}
		if !records[0].Amount.Equal(decimal.RequireFromString("12.5")) || records[0].Category.Label() != "Food" {
			t.Errorf("unexpected first record %+v", records[0])
		}
		if records[1].ID != "2" || !records[1].Category.IsUnspecified() {
			t.Errorf("expected numeric id and unspecified category, got %+v", records[1])
		}
		if records[1].Date.Day() != 6 {
			t.Errorf("expected RFC3339 date to parse, got %v", records[1].Date)
		}
		if !records[2].Amount.IsZero() || records[2].HasDate() {
			t.Errorf("expected malformed amount and date to zero, got %+v", records[2])
		}
		if len(records[2].Tags) != 2 || records[2].Tags[1] != "y" {
			t.Errorf("expected comma tags to split, got %v", records[2].Tags)
		}
	})

	t.Run("accepts bare array and forwards filter", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Query().Get("category") != "Food" || r.URL.Query().Get("tag") != "work" {
				t.Errorf("filter not forwarded: %s", r.URL.RawQuery)
			}
			io.WriteString(w, `[{"id":"a","amount":1,"category":"Food","date":"2024-01-01"}]`)
		}))

		records, err := client.ListExpenses(context.Background(), entity.ExpenseFilter{Category: "Food", Tag: "work"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(records) != 1 {
			t.Fatalf("expected 1 record, got %d", len(records))
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			io.WriteString(w, `<html>`)
		}))

		_, err := client.ListExpenses(context.Background(), entity.ExpenseFilter{})
		if !errors.Is(err, domainerror.ErrBackendMalformedResponse) {
			t.Fatalf("expected malformed response error, got %v", err)
		}
	})
}

func TestRetries(t *testing.T) {
	t.Run("retries 5xx on GET then succeeds", func(t *testing.T) {
		var calls atomic.Int32
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if calls.Add(1) < 3 {
				w.WriteHeader(http.StatusBadGateway)
				return
			}
			io.WriteString(w, `{"expenses":[]}`)
		}))

		records, err := client.ListExpenses(context.Background(), entity.ExpenseFilter{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(records) != 0 || calls.Load() != 3 {
			t.Errorf("expected 3 calls and no records, got %d calls", calls.Load())
		}
	})

	t.Run("gives up after max retries", func(t *testing.T) {
		var calls atomic.Int32
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusServiceUnavailable)
		}))

		_, err := client.ListExpenses(context.Background(), entity.ExpenseFilter{})
		if !errors.Is(err, domainerror.ErrBackendUnavailable) {
			t.Fatalf("expected unavailable, got %v", err)
		}
		if calls.Load() != 3 {
			t.Errorf("expected 3 attempts, got %d", calls.Load())
		}
	})

	t.Run("does not retry writes", func(t *testing.T) {
		var calls atomic.Int32
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusInternalServerError)
		}))

		err := client.DeleteExpense(context.Background(), "a")
		if !errors.Is(err, domainerror.ErrBackendUnavailable) {
			t.Fatalf("expected unavailable, got %v", err)
		}
		if calls.Load() != 1 {
			t.Errorf("expected a single attempt, got %d", calls.Load())
		}
	})

	t.Run("does not retry 4xx", func(t *testing.T) {
		var calls atomic.Int32
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusBadRequest)
			io.WriteString(w, `{"message":"bad month"}`)
		}))

		_, err := client.GetBudgetAnalysis(context.Background(), entity.MonthKey{Year: 2024, Month: time.March})
		var backendErr *domainerror.BackendError
		if !errors.As(err, &backendErr) {
			t.Fatalf("expected BackendError, got %v", err)
		}
		if backendErr.Code != domainerror.ErrCodeBackendRejected || backendErr.Message != "bad month" {
			t.Errorf("unexpected error %+v", backendErr)
		}
		if calls.Load() != 1 {
			t.Errorf("expected a single attempt, got %d", calls.Load())
		}
	})
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func TestRetriesTransportErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"expenses":[{"id":"a","amount":1,"category":"Food","date":"2024-01-01"}]}`)
	}))
	t.Cleanup(server.Close)

	var calls atomic.Int32
	httpClient := &http.Client{Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
		if calls.Add(1) == 1 {
			return nil, errors.New("connection reset by peer")
		}
		return http.DefaultTransport.RoundTrip(req)
	})}
	client := NewClientWithHTTP(Config{
		BaseURL:      server.URL + "/api",
		MaxRetries:   2,
		RetryBackoff: time.Millisecond,
	}, httpClient)

	records, err := client.ListExpenses(context.Background(), entity.ExpenseFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 || calls.Load() != 2 {
		t.Errorf("expected 1 record after 2 calls, got %d records and %d calls", len(records), calls.Load())
	}
}

func TestRetriesStopWhenContextEnds(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		cancel()
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(server.Close)

	client := NewClient(Config{
		BaseURL:      server.URL + "/api",
		Timeout:      2 * time.Second,
		MaxRetries:   5,
		RetryBackoff: time.Millisecond,
	})

	_, err := client.ListExpenses(ctx, entity.ExpenseFilter{})
	if !errors.Is(err, domainerror.ErrBackendUnavailable) {
		t.Fatalf("expected unavailable, got %v", err)
	}
	if calls.Load() != 1 {
		t.Errorf("expected a single attempt after cancellation, got %d", calls.Load())
	}
}

func TestWrites(t *testing.T) {
	t.Run("create sends payload", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				t.Errorf("expected POST, got %s", r.Method)
			}
			var body map[string]any
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				t.Fatalf("failed to decode body: %v", err)
			}
			if body["amount"] != 12.5 || body["category"] != "Food" || body["date"] != "2024-03-05" {
				t.Errorf("unexpected body %v", body)
			}
			w.WriteHeader(http.StatusCreated)
			io.WriteString(w, `{"success":true,"message":"Expense created successfully"}`)
		}))

		amount := decimal.RequireFromString("12.5")
		category := "Food"
		date := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)
		err := client.CreateExpense(context.Background(), entity.ExpenseInput{Amount: &amount, Category: &category, Date: &date})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("update maps 404", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/api/expenses/missing" || r.Method != http.MethodPut {
				t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
			}
			w.WriteHeader(http.StatusNotFound)
		}))

		err := client.UpdateExpense(context.Background(), "missing", entity.ExpenseInput{})
		if !errors.Is(err, domainerror.ErrBackendNotFound) {
			t.Fatalf("expected not found, got %v", err)
		}
	})

	t.Run("success false is rejected", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			io.WriteString(w, `{"success":false,"error":"nope"}`)
		}))

		err := client.DeleteExpense(context.Background(), "a")
		if !errors.Is(err, domainerror.ErrBackendRejected) {
			t.Fatalf("expected rejected, got %v", err)
		}
	})

	t.Run("overall budget sends null category", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var body map[string]any
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				t.Fatalf("failed to decode body: %v", err)
			}
			category, present := body["category"]
			if !present || category != nil || body["month"] != "2024-03" {
				t.Errorf("unexpected body %v", body)
			}
			w.WriteHeader(http.StatusCreated)
		}))

		err := client.SetBudget(context.Background(), entity.BudgetInput{
			Amount: decimal.NewFromInt(500),
			Month:  entity.MonthKey{Year: 2024, Month: time.March},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestGetBudgetAnalysis(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/budgets/analysis/2024-03" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		io.WriteString(w, `{"month":"2024-03","total_budget":500,"total_spent":600,"total_remaining":-100,
			"total_percentage":120,"status":"exceeded",
			"categories":{"Transport":{"budget":50,"spent":20,"remaining":30,"percentage":40,"status":"within_limit"},
			"Food":{"budget":100,"spent":150,"remaining":-50,"percentage":150,"status":"exceeded"}}}`)
	}))

	analysis, err := client.GetBudgetAnalysis(context.Background(), entity.MonthKey{Year: 2024, Month: time.March})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if analysis.Status != entity.BudgetStatusOver {
		t.Errorf("expected over, got %s", analysis.Status)
	}
	if len(analysis.Categories) != 2 || analysis.Categories[0].Category.Label() != "Food" {
		t.Fatalf("expected categories ordered by label, got %+v", analysis.Categories)
	}
	transport, ok := analysis.Category(entity.KnownCategory("transport"))
	if !ok || transport.Status != entity.BudgetStatusUnder {
		t.Errorf("expected transport under budget, got %+v", transport)
	}
}

func TestExportCSV(t *testing.T) {
	t.Run("raw body", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/csv")
			io.WriteString(w, "id,amount\na,1\n")
		}))

		data, err := client.ExportCSV(context.Background())
		if err != nil || string(data) != "id,amount\na,1\n" {
			t.Fatalf("unexpected export %q, %v", data, err)
		}
	})

	t.Run("json envelope", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			io.WriteString(w, `{"message":"ok","data":"id,amount\n"}`)
		}))

		data, err := client.ExportCSV(context.Background())
		if err != nil || string(data) != "id,amount\n" {
			t.Fatalf("unexpected export %q, %v", data, err)
		}
	})
}

func TestCategoryChart(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("month") != "3" || r.URL.Query().Get("year") != "2024" {
			t.Errorf("unexpected query %s", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "image/png")
		w.Write([]byte{0x89, 'P', 'N', 'G'})
	}))

	image, err := client.CategoryChart(context.Background(), entity.MonthKey{Year: 2024, Month: time.March})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if image.ContentType != "image/png" || len(image.Data) != 4 {
		t.Errorf("unexpected image %+v", image)
	}
}
