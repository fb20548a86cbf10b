package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/finance-tracker/webapp/internal/application/adapter"
	"github.com/finance-tracker/webapp/internal/domain/entity"
)

const (
	expensesPath   = "/expenses"
	exportCSVPath  = "/expenses/export/csv"
	budgetsPath    = "/budgets"
	analysisPath   = "/budgets/analysis/"
	categoryChart  = "/chart/category"
	budgetChart    = "/chart/budget/"
	monthlyTrendCh = "/chart/monthly-trend"
)

var (
	_ adapter.ExpenseGateway = (*Client)(nil)
	_ adapter.BudgetGateway  = (*Client)(nil)
	_ adapter.ChartGateway   = (*Client)(nil)
)

// ListExpenses fetches the records, passing the filter through to the backend.
func (c *Client) ListExpenses(ctx context.Context, filter entity.ExpenseFilter) ([]entity.ExpenseRecord, error) {
	query := url.Values{}
	if filter.Category != "" {
		query.Set("category", filter.Category)
	}
	if filter.Tag != "" {
		query.Set("tag", filter.Tag)
	}

	resp, err := c.get(ctx, expensesPath, query)
	if err != nil {
		return nil, err
	}

	records, err := decodeExpenses(resp.body)
	if err != nil {
		return nil, malformed(http.MethodGet, expensesPath, err)
	}
	return records, nil
}

// CreateExpense submits a new record.
func (c *Client) CreateExpense(ctx context.Context, input entity.ExpenseInput) error {
	resp, err := c.send(ctx, http.MethodPost, expensesPath, newExpensePayload(input))
	if err != nil {
		return err
	}
	return checkSuccess(http.MethodPost, expensesPath, resp)
}

// UpdateExpense submits staged edits for a record.
func (c *Client) UpdateExpense(ctx context.Context, id string, input entity.ExpenseInput) error {
	path := expensesPath + "/" + url.PathEscape(id)
	resp, err := c.send(ctx, http.MethodPut, path, newExpensePayload(input))
	if err != nil {
		return err
	}
	return checkSuccess(http.MethodPut, path, resp)
}

// DeleteExpense removes a record.
func (c *Client) DeleteExpense(ctx context.Context, id string) error {
	path := expensesPath + "/" + url.PathEscape(id)
	resp, err := c.send(ctx, http.MethodDelete, path, nil)
	if err != nil {
		return err
	}
	return checkSuccess(http.MethodDelete, path, resp)
}

// ExportCSV downloads the CSV export. Both a raw text/csv body and a {"data": "..."} envelope are accepted.
func (c *Client) ExportCSV(ctx context.Context) ([]byte, error) {
	resp, err := c.get(ctx, exportCSVPath, nil)
	if err != nil {
		return nil, err
	}

	trimmed := bytes.TrimSpace(resp.body)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var envelope csvEnvelope
		if err := json.Unmarshal(trimmed, &envelope); err != nil || envelope.Data == nil {
			return nil, malformed(http.MethodGet, exportCSVPath, err)
		}
		return []byte(*envelope.Data), nil
	}
	return resp.body, nil
}

// GetBudgetAnalysis fetches the backend's budget analysis for month.
func (c *Client) GetBudgetAnalysis(ctx context.Context, month entity.MonthKey) (*entity.BudgetAnalysis, error) {
	path := analysisPath + month.String()
	resp, err := c.get(ctx, path, nil)
	if err != nil {
		return nil, err
	}

	var raw budgetAnalysisJSON
	if err := json.Unmarshal(resp.body, &raw); err != nil {
		return nil, malformed(http.MethodGet, path, err)
	}
	return raw.toEntity(month), nil
}

// SetBudget upserts a budget. An Unspecified category is sent as null.
func (c *Client) SetBudget(ctx context.Context, input entity.BudgetInput) error {
	resp, err := c.send(ctx, http.MethodPost, budgetsPath, newBudgetPayload(input))
	if err != nil {
		return err
	}
	return checkSuccess(http.MethodPost, budgetsPath, resp)
}

// CategoryChart fetches the category pie chart for month.
func (c *Client) CategoryChart(ctx context.Context, month entity.MonthKey) (*adapter.ChartImage, error) {
	query := url.Values{}
	query.Set("month", strconv.Itoa(int(month.Month)))
	query.Set("year", strconv.Itoa(month.Year))
	return c.chart(ctx, categoryChart, query)
}

// BudgetChart fetches the budget against spend chart for month.
func (c *Client) BudgetChart(ctx context.Context, month entity.MonthKey) (*adapter.ChartImage, error) {
	return c.chart(ctx, budgetChart+month.String(), nil)
}

// MonthlyTrendChart fetches the monthly trend chart.
func (c *Client) MonthlyTrendChart(ctx context.Context) (*adapter.ChartImage, error) {
	return c.chart(ctx, monthlyTrendCh, nil)
}

func (c *Client) chart(ctx context.Context, path string, query url.Values) (*adapter.ChartImage, error) {
	resp, err := c.get(ctx, path, query)
	if err != nil {
		return nil, err
	}
	contentType := resp.contentType
	if contentType == "" {
		contentType = http.DetectContentType(resp.body)
	}
	return &adapter.ChartImage{ContentType: contentType, Data: resp.body}, nil
}
