package sales

import "github.com/de-tools/sales-atlas/pkg/models/domain"

// Assemble merges the pagination echo of the notes page with the aggregate.
// Fields the upstream omitted fall back to values derived from the page itself.
func Assemble(page *domain.NotesPage, agg domain.HourlyAggregate) domain.SalesDetails {
	if page == nil {
		page = &domain.NotesPage{}
	}
	items := page.Notes
	if items == nil {
		items = []domain.SalesNote{}
	}

	pagination := domain.Pagination{
		Page:          domain.DefaultPage,
		Size:          len(items),
		TotalElements: int64(len(items)),
		TotalPages:    1,
		First:         true,
		Last:          true,
	}
	if page.Number != nil {
		pagination.Page = *page.Number
	}
	if page.Size != nil {
		pagination.Size = *page.Size
	}
	if page.TotalElements != nil {
		pagination.TotalElements = *page.TotalElements
	}
	if page.TotalPages != nil {
		pagination.TotalPages = *page.TotalPages
	}
	if page.First != nil {
		pagination.First = *page.First
	}
	if page.Last != nil {
		pagination.Last = *page.Last
	}

	return domain.SalesDetails{
		Pagination:      pagination,
		HourlyAggregate: agg,
		Items:           items,
	}
}
