// Package dashboard contains the read-side use cases behind the dashboard,
// history and budget views.
package dashboard

import (
	"github.com/finance-tracker/webapp/internal/application/adapter"
	"github.com/finance-tracker/webapp/internal/domain/entity"
)

// resolveMonth returns month when set, otherwise the month containing the clock's now.
func resolveMonth(month *entity.MonthKey, clock adapter.Clock) entity.MonthKey {
	if month != nil {
		return *month
	}
	return entity.MonthOf(clock.Now())
}
