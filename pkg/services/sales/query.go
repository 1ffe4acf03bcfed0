package sales

import (
	"strconv"
	"strings"
	"time"

	"github.com/de-tools/sales-atlas/pkg/errx"
	"github.com/de-tools/sales-atlas/pkg/models/domain"
)

const dateLayout = "2006-01-02"

const missingParamsMessage = "required parameters: idProdutoEmpresa, dataInicial (YYYY-MM-DD), dataFinal (YYYY-MM-DD)"

// QueryParams are the raw inbound parameters, as received over HTTP or from a
// tool call.
type QueryParams struct {
	ProductID   string
	ProductName string
	StartDate   string
	EndDate     string
	Page        string
	Size        string
}

// ParseQuery validates the raw parameters. Every failure is a validation error.
func ParseQuery(p QueryParams, defaultPageSize int) (domain.SalesQuery, error) {
	productID := strings.TrimSpace(p.ProductID)
	startRaw := strings.TrimSpace(p.StartDate)
	endRaw := strings.TrimSpace(p.EndDate)
	if productID == "" || startRaw == "" || endRaw == "" {
		return domain.SalesQuery{}, errx.Validation(missingParamsMessage)
	}

	start, err := time.Parse(dateLayout, startRaw)
	if err != nil {
		return domain.SalesQuery{}, errx.Validation("invalid 'dataInicial' date format. Expected format: YYYY-MM-DD")
	}
	end, err := time.Parse(dateLayout, endRaw)
	if err != nil {
		return domain.SalesQuery{}, errx.Validation("invalid 'dataFinal' date format. Expected format: YYYY-MM-DD")
	}
	if start.After(end) {
		return domain.SalesQuery{}, errx.Validation("'dataInicial' must not be after 'dataFinal'")
	}

	if defaultPageSize <= 0 {
		defaultPageSize = domain.DefaultPageSize
	}
	page, err := parseBounded("page", p.Page, domain.DefaultPage, 0)
	if err != nil {
		return domain.SalesQuery{}, err
	}
	size, err := parseBounded("size", p.Size, defaultPageSize, 1)
	if err != nil {
		return domain.SalesQuery{}, err
	}

	return domain.SalesQuery{
		ProductID:   productID,
		ProductName: strings.TrimSpace(p.ProductName),
		StartDate:   start,
		EndDate:     end,
		Page:        page,
		PageSize:    size,
	}, nil
}

// parseBounded reads an optional integer parameter. Only an absent value takes
// the fallback; anything below minimum is rejected.
func parseBounded(name, raw string, fallback, minimum int) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < minimum {
		if minimum > 0 {
			return 0, errx.Validation("invalid '%s': expected a positive integer", name)
		}
		return 0, errx.Validation("invalid '%s': expected a non-negative integer", name)
	}
	return v, nil
}
