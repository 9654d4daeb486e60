// Package report turns a plan's items into aggregates and export formats:
// per-category totals, profit/loss series, CSV rows, and a sectioned
// period-pivot table consumed by the PDF renderer. All arithmetic stays in
// decimal.Decimal; strings are produced only at render time.
package report

import (
	"fmt"
	"time"

	"planvida/internal/models"
)

// Period is a year-month bucket used as a report column.
type Period struct {
	Year  int
	Month time.Month
}

// PeriodOf returns the period an item date falls in.
func PeriodOf(d models.DateOnly) Period {
	return Period{Year: d.Year(), Month: d.Month()}
}

// Before reports whether p precedes q chronologically.
func (p Period) Before(q Period) bool {
	if p.Year != q.Year {
		return p.Year < q.Year
	}
	return p.Month < q.Month
}

var monthAbbr = [13]string{"", "jan", "fev", "mar", "abr", "mai", "jun",
	"jul", "ago", "set", "out", "nov", "dez"}

// Label returns the column heading for the period, e.g. "jan-2024".
func (p Period) Label() string {
	return fmt.Sprintf("%s-%d", monthAbbr[p.Month], p.Year)
}
