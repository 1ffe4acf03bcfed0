package domain

import (
	"fmt"
	"strings"
	"time"
)

// HourlyReport is the printable form of one sales-details request.
type HourlyReport struct {
	Title    string
	Period   ReportPeriod
	Currency string
	Totals   ReportTotals
	// PeakHours are "09h" style labels, empty when nothing sold.
	PeakHours []string
	PeakSales int
	// Hours lists only the hours with at least one sale, in hour order.
	Hours []ReportHour
	Page  ReportPage
}

type ReportPeriod struct {
	Start time.Time
	End   time.Time
	Days  int
}

type ReportTotals struct {
	Sales    int
	Quantity float64
	Revenue  float64
}

type ReportHour struct {
	Label    string // "09:00"
	Sales    int
	Quantity float64
	Revenue  float64
}

type ReportPage struct {
	Number      int // 1-based
	TotalPages  int
	NotesInPage int
	TotalNotes  int64
	Last        bool
}

// PeakSummary reads like "09h, 14h (3 sales)".
func (r *HourlyReport) PeakSummary() string {
	if len(r.PeakHours) == 0 {
		return "none"
	}
	return fmt.Sprintf("%s (%d sales)", strings.Join(r.PeakHours, ", "), r.PeakSales)
}
