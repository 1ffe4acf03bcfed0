package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
)

type TableConfig struct {
	HourWidth     int
	SalesWidth    int
	QuantityWidth int
	RevenueWidth  int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		HourWidth:     6,
		SalesWidth:    8,
		QuantityWidth: 12,
		RevenueWidth:  14,
	}
}

const tableTemplate = `{{.Title}}
Period: {{.Period.Start.Format "2006-01-02"}} to {{.Period.End.Format "2006-01-02"}} ({{.Period.Days}} days)
Sales: {{.Totals.Sales}} | Quantity: {{printf "%.2f" .Totals.Quantity}} | Revenue: {{.Currency}} {{printf "%.2f" .Totals.Revenue}}
Peak hours: {{.PeakSummary}}

{{if .Hours}}{{separator}}
{{header}}
{{separator}}
{{range .Hours}}{{row .}}
{{end}}{{separator}}
{{else}}No sales with a readable sale time.
{{end}}Page {{.Page.Number}} of {{.Page.TotalPages}}, {{.Page.NotesInPage}} of {{.Page.TotalNotes}} notes
`

// Reporter renders the hourly report as a fixed-width table.
type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

func (c *Reporter) Handle(report *domain.HourlyReport) error {
	cfg := c.config
	funcMap := template.FuncMap{
		"header": func() string {
			return fmt.Sprintf("| %-*s | %*s | %*s | %*s |",
				cfg.HourWidth, "Hour",
				cfg.SalesWidth, "Sales",
				cfg.QuantityWidth, "Quantity",
				cfg.RevenueWidth, "Revenue")
		},
		"row": func(h domain.ReportHour) string {
			return fmt.Sprintf("| %-*s | %*d | %*.2f | %*.2f |",
				cfg.HourWidth, h.Label,
				cfg.SalesWidth, h.Sales,
				cfg.QuantityWidth, h.Quantity,
				cfg.RevenueWidth, h.Revenue)
		},
		"separator": func() string {
			return fmt.Sprintf("+%s+%s+%s+%s+",
				strings.Repeat("-", cfg.HourWidth+2),
				strings.Repeat("-", cfg.SalesWidth+2),
				strings.Repeat("-", cfg.QuantityWidth+2),
				strings.Repeat("-", cfg.RevenueWidth+2))
		},
	}

	t, err := template.New("table").Funcs(funcMap).Parse(tableTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, report)
}
