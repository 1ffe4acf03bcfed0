package terminal

import (
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
)

const plainTemplate = `{{.Title}}
Period: {{date .Period.Start}} to {{date .Period.End}} ({{.Period.Days}} days)

Sales: {{.Totals.Sales}}
Quantity sold: {{printf "%.2f" .Totals.Quantity}}
Revenue: {{.Currency}} {{printf "%.2f" .Totals.Revenue}}
Peak hours: {{.PeakSummary}}
{{if .Hours}}
{{range .Hours}}- {{.Label}}: {{.Sales}} sales, quantity {{printf "%.2f" .Quantity}}, revenue {{printf "%.2f" .Revenue}}
{{end}}{{end}}
Page {{.Page.Number}} of {{.Page.TotalPages}}: {{.Page.NotesInPage}} of {{.Page.TotalNotes}} notes{{if .Page.Last}} (last page){{end}}
`

// Reporter prints the hourly report as plain lines, one per selling hour.
type Reporter struct {
	writer io.Writer
	tmpl   *template.Template
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		tmpl:   template.Must(template.New("plain").Funcs(reportFuncs).Parse(plainTemplate)),
	}
}

func (c *Reporter) Handle(report *domain.HourlyReport) error {
	if err := c.tmpl.Execute(c.writer, report); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	return nil
}
