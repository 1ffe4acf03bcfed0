package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReporter_Handle(t *testing.T) {
	report := &domain.HourlyReport{
		Title: "Sales details for product 42",
		Period: domain.ReportPeriod{
			Start: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
			Days:  2,
		},
		Currency:  "BRL",
		Totals:    domain.ReportTotals{Sales: 3, Quantity: 4.5, Revenue: 90},
		PeakHours: []string{"08h", "18h"},
		PeakSales: 1,
		Hours: []domain.ReportHour{
			{Label: "08:00", Sales: 1, Quantity: 1.5, Revenue: 30},
			{Label: "18:00", Sales: 1, Quantity: 3, Revenue: 60},
		},
		Page: domain.ReportPage{Number: 1, TotalPages: 1, NotesInPage: 2, TotalNotes: 2, Last: true},
	}

	var out bytes.Buffer
	require.NoError(t, NewReporter(&out).Handle(report))

	assert.Contains(t, out.String(), "Period: 2025-01-01 to 2025-01-02 (2 days)")
	assert.Contains(t, out.String(), "Sales: 3 | Quantity: 4.50 | Revenue: BRL 90.00")
	assert.Contains(t, out.String(), "Peak hours: 08h, 18h (1 sales)")
	assert.Contains(t, out.String(), "| 18:00  |        1 |         3.00 |          60.00 |")
}

func TestReporter_Handle_NoSales(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, NewReporter(&out).Handle(&domain.HourlyReport{Title: "empty"}))

	assert.Contains(t, out.String(), "Peak hours: none")
	assert.Contains(t, out.String(), "No sales with a readable sale time.")
	assert.NotContains(t, out.String(), "| Hour")
}
