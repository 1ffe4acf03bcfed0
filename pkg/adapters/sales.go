package adapters

import (
	"fmt"

	"github.com/de-tools/sales-atlas/pkg/models/api"
	"github.com/de-tools/sales-atlas/pkg/models/domain"
)

func MapDomainSalesDetailsToAPI(details domain.SalesDetails) api.SalesDetails {
	items := make([]api.SalesNote, 0, len(details.Items))
	for _, note := range details.Items {
		items = append(items, MapDomainSalesNoteToAPI(note))
	}

	histogram := make([]api.HourBucket, 0, len(details.Buckets))
	for _, bucket := range details.Buckets {
		histogram = append(histogram, MapDomainHourBucketToAPI(bucket))
	}

	peaks := make([]api.HourBucket, 0, len(details.PeakHours))
	for _, bucket := range details.PeakHours {
		peaks = append(peaks, MapDomainHourBucketToAPI(bucket))
	}

	perSale := make([]api.PerSaleQuantity, 0, len(details.PerSaleQuantities))
	for _, q := range details.PerSaleQuantities {
		perSale = append(perSale, api.PerSaleQuantity{
			NoteID:          q.NoteID,
			SaleTime:        q.SaleTime,
			ProductQuantity: q.ProductQuantity,
		})
	}

	return api.SalesDetails{
		Items:             items,
		Page:              details.Page,
		Size:              details.Size,
		TotalElements:     details.TotalElements,
		TotalPages:        details.TotalPages,
		First:             details.First,
		Last:              details.Last,
		TotalSales:        details.TotalSales,
		TotalProductQty:   details.TotalProductQty,
		TotalRevenue:      details.TotalRevenue,
		HourlyHistogram:   histogram,
		PeakHours:         peaks,
		PerSaleQuantities: perSale,
	}
}

func MapDomainSalesNoteToAPI(note domain.SalesNote) api.SalesNote {
	return api.SalesNote{
		IDNota:            note.ID,
		IDEmpresa:         note.CompanyID,
		NomeEmpresa:       note.CompanyName,
		Status:            note.Status,
		DataVenda:         note.SaleDate,
		HoraVenda:         note.SaleTime,
		ValorSubtotal:     note.Subtotal,
		ValorFrete:        note.Freight,
		ValorTotalServico: note.ServiceTotal,
		ValorTotal:        note.Total,
	}
}

func MapDomainHourBucketToAPI(bucket domain.HourBucket) api.HourBucket {
	return api.HourBucket{
		Hour:            FormatHour(bucket.Hour),
		Count:           bucket.SaleCount,
		ProductQuantity: bucket.ProductQuantity,
		Revenue:         bucket.Revenue,
	}
}

func FormatHour(hour int) string {
	return fmt.Sprintf("%02d", hour)
}
