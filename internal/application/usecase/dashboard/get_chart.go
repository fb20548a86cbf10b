package dashboard

import (
	"context"
	"fmt"

	"github.com/finance-tracker/webapp/internal/application/adapter"
	"github.com/finance-tracker/webapp/internal/domain/entity"
	domainerror "github.com/finance-tracker/webapp/internal/domain/error"
)

// ChartKind identifies one of the backend charts.
type ChartKind string

const (
	ChartCategory     ChartKind = "category"
	ChartBudget       ChartKind = "budget"
	ChartMonthlyTrend ChartKind = "monthly-trend"
)

// GetChartInput represents the input for a chart proxy request.
type GetChartInput struct {
	Kind ChartKind
	// Month defaults to the current month. Ignored by the monthly trend chart.
	Month *entity.MonthKey
}

// GetChartUseCase proxies chart images rendered by the backend.
type GetChartUseCase struct {
	charts adapter.ChartGateway
	clock  adapter.Clock
}

// NewGetChartUseCase creates a new GetChartUseCase instance.
func NewGetChartUseCase(charts adapter.ChartGateway, clock adapter.Clock) *GetChartUseCase {
	return &GetChartUseCase{
		charts: charts,
		clock:  clock,
	}
}

// Execute fetches the requested chart.
func (uc *GetChartUseCase) Execute(ctx context.Context, input GetChartInput) (*adapter.ChartImage, error) {
	month := resolveMonth(input.Month, uc.clock)
	if !month.Valid() {
		return nil, domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidMonth,
			"month must be between 01 and 12",
			domainerror.ErrInvalidMonth,
		)
	}

	var (
		img *adapter.ChartImage
		err error
	)
	switch input.Kind {
	case ChartCategory:
		img, err = uc.charts.CategoryChart(ctx, month)
	case ChartBudget:
		img, err = uc.charts.BudgetChart(ctx, month)
	case ChartMonthlyTrend:
		img, err = uc.charts.MonthlyTrendChart(ctx)
	default:
		return nil, fmt.Errorf("unknown chart kind %q", input.Kind)
	}
	if err != nil {
		return nil, domainerror.NewDashboardError(
			domainerror.ErrCodeChartUnavailable,
			"chart unavailable",
			err,
		)
	}
	if img == nil || len(img.Data) == 0 {
		return nil, domainerror.NewDashboardError(
			domainerror.ErrCodeChartUnavailable,
			"chart unavailable",
			domainerror.ErrChartUnavailable,
		)
	}
	return img, nil
}
