package adapters

import (
	"fmt"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
)

const reportCurrency = "BRL"

// MapDomainSalesDetailsToReport lays the hourly aggregate out for the terminal.
func MapDomainSalesDetailsToReport(q domain.SalesQuery, details domain.SalesDetails) *domain.HourlyReport {
	product := q.ProductID
	if q.ProductName != "" {
		product = fmt.Sprintf("%s (%s)", q.ProductName, q.ProductID)
	}

	report := &domain.HourlyReport{
		Title: fmt.Sprintf("Sales details for product %s", product),
		Period: domain.ReportPeriod{
			Start: q.StartDate,
			End:   q.EndDate,
			Days:  int(q.EndDate.Sub(q.StartDate).Hours()/24) + 1,
		},
		Currency: reportCurrency,
		Totals: domain.ReportTotals{
			Sales:    details.TotalSales,
			Quantity: details.TotalProductQty,
			Revenue:  details.TotalRevenue,
		},
		PeakHours: make([]string, 0, len(details.PeakHours)),
		Hours:     make([]domain.ReportHour, 0, domain.HoursPerDay),
		Page: domain.ReportPage{
			Number:      details.Page + 1,
			TotalPages:  details.TotalPages,
			NotesInPage: len(details.Items),
			TotalNotes:  details.TotalElements,
			Last:        details.Last,
		},
	}

	for _, bucket := range details.PeakHours {
		report.PeakHours = append(report.PeakHours, FormatHour(bucket.Hour)+"h")
		report.PeakSales = bucket.SaleCount
	}

	for _, bucket := range details.Buckets {
		if bucket.SaleCount == 0 {
			continue
		}
		report.Hours = append(report.Hours, domain.ReportHour{
			Label:    FormatHour(bucket.Hour) + ":00",
			Sales:    bucket.SaleCount,
			Quantity: bucket.ProductQuantity,
			Revenue:  bucket.Revenue,
		})
	}

	return report
}
