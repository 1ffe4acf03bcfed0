package commands

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/de-tools/sales-atlas/pkg/adapters"
	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/de-tools/sales-atlas/pkg/services/sales"
	"github.com/spf13/cobra"
)

// ReporterFactory builds the sales reporter once flags are parsed.
type ReporterFactory func(profilesPath, settingsPath, profile string) (sales.Reporter, error)

type ReportHandler interface {
	Handle(report *domain.HourlyReport) error
}

type DetailsCmd struct {
	profilesPath string
	settingsPath string
	profile      string
	productID    string
	productName  string
	from         string
	to           string
	page         int
	size         int
	format       string
	timeout      time.Duration

	factory  ReporterFactory
	handlers map[string]ReportHandler
}

func NewDetailsCmd(factory ReporterFactory, handlers map[string]ReportHandler) *cobra.Command {
	dc := &DetailsCmd{factory: factory, handlers: handlers}
	cmd := &cobra.Command{
		Use:   "details",
		Short: "Hourly sales breakdown of a product",
		RunE:  dc.run,
	}

	cmd.Flags().StringVar(&dc.profilesPath, "config", ".erpcfg", "Path to the ERP profiles file")
	cmd.Flags().StringVar(&dc.settingsPath, "settings", "", "Path to an optional YAML settings file")
	cmd.Flags().StringVar(&dc.profile, "profile", "default", "ERP profile to use")
	cmd.Flags().StringVar(&dc.productID, "product", "", "Company product id (idProdutoEmpresa)")
	cmd.Flags().StringVar(&dc.productName, "name", "", "Product name used in the report title")
	cmd.Flags().StringVar(&dc.from, "from", "", "First sale date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&dc.to, "to", "", "Last sale date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&dc.page, "page", domain.DefaultPage, "Notes page")
	cmd.Flags().IntVar(&dc.size, "size", 0, "Notes per page (default from settings)")
	cmd.Flags().StringVar(&dc.format, "format", "table", "Output format: table or plain")
	cmd.Flags().DurationVar(&dc.timeout, "timeout", 5*time.Minute, "Overall timeout")

	_ = cmd.MarkFlagRequired("product")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func (dc *DetailsCmd) run(cmd *cobra.Command, _ []string) error {
	handler, ok := dc.handlers[dc.format]
	if !ok {
		return fmt.Errorf("unsupported format %q", dc.format)
	}

	reporter, err := dc.factory(dc.profilesPath, dc.settingsPath, dc.profile)
	if err != nil {
		return fmt.Errorf("failed to create sales reporter: %w", err)
	}

	size := ""
	if dc.size > 0 {
		size = strconv.Itoa(dc.size)
	}
	q, err := sales.ParseQuery(sales.QueryParams{
		ProductID:   dc.productID,
		ProductName: dc.productName,
		StartDate:   dc.from,
		EndDate:     dc.to,
		Page:        strconv.Itoa(dc.page),
		Size:        size,
	}, reporter.Settings().DefaultPageSize)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, dc.timeout)
	defer cancel()

	details, err := reporter.GetSalesDetails(ctx, q)
	if err != nil {
		return fmt.Errorf("failed to get sales details: %w", err)
	}

	return handler.Handle(adapters.MapDomainSalesDetailsToReport(q, details))
}
