package dto

import (
	"github.com/finance-tracker/webapp/internal/application/usecase/analysis"
	"github.com/finance-tracker/webapp/internal/application/usecase/dashboard"
	"github.com/finance-tracker/webapp/internal/domain/entity"
)

// CategoryShareResponse is a category total with its share of a reference total.
type CategoryShareResponse struct {
	Category string  `json:"category"`
	Icon     string  `json:"icon"`
	Amount   float64 `json:"amount"`
	Percent  float64 `json:"percent"`
}

// TrendResponse compares the current daily average with the prior month.
type TrendResponse struct {
	Direction string  `json:"direction"`
	Percent   float64 `json:"percent"`
}

// MonthSummaryResponse represents the dashboard month summary.
type MonthSummaryResponse struct {
	Month         string                  `json:"month"`
	Label         string                  `json:"label"`
	Total         float64                 `json:"total"`
	RecordCount   int                     `json:"record_count"`
	ElapsedDays   int                     `json:"elapsed_days"`
	AveragePerDay float64                 `json:"average_per_day"`
	PriorAverage  float64                 `json:"prior_average_per_day"`
	Trend         TrendResponse           `json:"trend"`
	Breakdown     []CategoryShareResponse `json:"breakdown"`
}

// MonthFlowResponse is one bucket of the history window.
type MonthFlowResponse struct {
	Month           string  `json:"month"`
	Label           string  `json:"label"`
	Year            int     `json:"year"`
	TotalExpense    float64 `json:"total_expense"`
	RecordCount     int     `json:"record_count"`
	EstimatedIncome float64 `json:"estimated_income"`
	NetFlow         float64 `json:"net_flow"`
	TopCategory     *string `json:"top_category"`
}

// HistoryResponse represents the 6-month history view.
type HistoryResponse struct {
	Anchor               string                  `json:"anchor"`
	Months               []MonthFlowResponse     `json:"months"`
	TotalExpense         float64                 `json:"total_expense"`
	TotalEstimatedIncome float64                 `json:"total_estimated_income"`
	TotalSaved           float64                 `json:"total_saved"`
	AverageMonthlySpend  float64                 `json:"average_monthly_spend"`
	HighestExpenseMonth  *string                 `json:"highest_expense_month"`
	IncomeIsSynthetic    bool                    `json:"income_is_synthetic"`
	TopCategories        []CategoryShareResponse `json:"top_categories"`
}

// CategoryBudgetResponse is the budget state of one category.
type CategoryBudgetResponse struct {
	Category   string  `json:"category"`
	Budget     float64 `json:"budget"`
	Spent      float64 `json:"spent"`
	Remaining  float64 `json:"remaining"`
	Percentage float64 `json:"percentage"`
	Status     string  `json:"status"`
	StatusText string  `json:"status_text"`
}

// DiscrepancyResponse is a field where the local analysis disagrees with the backend.
type DiscrepancyResponse struct {
	Category string `json:"category,omitempty"`
	Field    string `json:"field"`
	Local    string `json:"local"`
	Remote   string `json:"remote"`
}

// BudgetAnalysisResponse represents the month budget analysis.
type BudgetAnalysisResponse struct {
	Month           string                   `json:"month"`
	TotalBudget     float64                  `json:"total_budget"`
	TotalSpent      float64                  `json:"total_spent"`
	TotalRemaining  float64                  `json:"total_remaining"`
	TotalPercentage float64                  `json:"total_percentage"`
	Status          string                   `json:"status"`
	StatusText      string                   `json:"status_text"`
	Categories      []CategoryBudgetResponse `json:"categories"`
	Discrepancies   []DiscrepancyResponse    `json:"discrepancies"`
}

// ToCategoryShareResponses converts category shares.
func ToCategoryShareResponses(shares []analysis.CategoryShare) []CategoryShareResponse {
	out := make([]CategoryShareResponse, 0, len(shares))
	for _, s := range shares {
		out = append(out, CategoryShareResponse{
			Category: s.Category.Label(),
			Icon:     s.Category.Icon(),
			Amount:   s.Amount.InexactFloat64(),
			Percent:  s.Percent.InexactFloat64(),
		})
	}
	return out
}

// ToMonthSummaryResponse converts a month summary output.
func ToMonthSummaryResponse(output *dashboard.GetMonthSummaryOutput) MonthSummaryResponse {
	return MonthSummaryResponse{
		Month:         output.Month.String(),
		Label:         output.Month.LongLabel(),
		Total:         output.Total.InexactFloat64(),
		RecordCount:   output.RecordCount,
		ElapsedDays:   output.ElapsedDays,
		AveragePerDay: output.AveragePerDay.InexactFloat64(),
		PriorAverage:  output.PriorAverage.InexactFloat64(),
		Trend: TrendResponse{
			Direction: string(output.Trend.Direction),
			Percent:   output.Trend.Percent.InexactFloat64(),
		},
		Breakdown: ToCategoryShareResponses(output.Breakdown),
	}
}

// ToHistoryResponse converts a history output.
func ToHistoryResponse(output *dashboard.GetHistoryOutput) HistoryResponse {
	summary := output.Summary
	response := HistoryResponse{
		Anchor:               output.Anchor.String(),
		Months:               make([]MonthFlowResponse, 0, len(summary.Months)),
		TotalExpense:         summary.TotalExpense.InexactFloat64(),
		TotalEstimatedIncome: summary.TotalEstimatedIncome.InexactFloat64(),
		TotalSaved:           summary.TotalSaved.InexactFloat64(),
		AverageMonthlySpend:  summary.AverageMonthlySpend.InexactFloat64(),
		IncomeIsSynthetic:    summary.IncomeIsSynthetic,
		TopCategories:        ToCategoryShareResponses(output.TopCategories),
	}

	for _, m := range summary.Months {
		flow := MonthFlowResponse{
			Month:           m.Bucket.Key.String(),
			Label:           m.Bucket.Label(),
			Year:            m.Bucket.Year(),
			TotalExpense:    m.Bucket.TotalExpense.InexactFloat64(),
			RecordCount:     m.Bucket.RecordCount,
			EstimatedIncome: m.EstimatedIncome.InexactFloat64(),
			NetFlow:         m.NetFlow.InexactFloat64(),
		}
		if m.TopCategory != nil {
			label := m.TopCategory.Category.Label()
			flow.TopCategory = &label
		}
		response.Months = append(response.Months, flow)
	}

	if summary.HighestExpenseMonth != nil {
		highest := summary.HighestExpenseMonth.Key.String()
		response.HighestExpenseMonth = &highest
	}
	return response
}

// ToBudgetAnalysisResponse converts a budget analysis with its reconciliation result.
func ToBudgetAnalysisResponse(a entity.BudgetAnalysis, discrepancies []analysis.Discrepancy) BudgetAnalysisResponse {
	response := BudgetAnalysisResponse{
		Month:           a.Month.String(),
		TotalBudget:     a.TotalBudget.InexactFloat64(),
		TotalSpent:      a.TotalSpent.InexactFloat64(),
		TotalRemaining:  a.TotalRemaining.InexactFloat64(),
		TotalPercentage: a.TotalPercentage.Round(1).InexactFloat64(),
		Status:          string(a.Status),
		StatusText:      a.Status.DisplayName(),
		Categories:      make([]CategoryBudgetResponse, 0, len(a.Categories)),
		Discrepancies:   make([]DiscrepancyResponse, 0, len(discrepancies)),
	}

	for _, c := range a.Categories {
		response.Categories = append(response.Categories, CategoryBudgetResponse{
			Category:   c.Category.Label(),
			Budget:     c.Budget.InexactFloat64(),
			Spent:      c.Spent.InexactFloat64(),
			Remaining:  c.Remaining.InexactFloat64(),
			Percentage: c.Percentage.Round(1).InexactFloat64(),
			Status:     string(c.Status),
			StatusText: c.Status.DisplayName(),
		})
	}

	for _, d := range discrepancies {
		item := DiscrepancyResponse{Field: d.Field, Local: d.Local, Remote: d.Remote}
		if !d.Category.IsUnspecified() {
			item.Category = d.Category.Label()
		}
		response.Discrepancies = append(response.Discrepancies, item)
	}
	return response
}
