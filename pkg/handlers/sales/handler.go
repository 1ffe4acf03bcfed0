package sales

import (
	"net/http"

	"github.com/de-tools/sales-atlas/pkg/adapters"
	"github.com/de-tools/sales-atlas/pkg/handlers"
	"github.com/de-tools/sales-atlas/pkg/services/sales"
	"github.com/rs/zerolog"
)

type Handler struct {
	reporter sales.Reporter
}

func NewHandler(reporter sales.Reporter) *Handler {
	return &Handler{reporter: reporter}
}

// GetSalesDetailsByProduct serves the hourly sales breakdown of one product.
func (h *Handler) GetSalesDetailsByProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	params := r.URL.Query()

	q, err := sales.ParseQuery(sales.QueryParams{
		ProductID:   params.Get("idProdutoEmpresa"),
		ProductName: params.Get("nomeProduto"),
		StartDate:   params.Get("dataInicial"),
		EndDate:     params.Get("dataFinal"),
		Page:        params.Get("page"),
		Size:        params.Get("size"),
	}, h.reporter.Settings().DefaultPageSize)
	if err != nil {
		handlers.WriteError(w, r, err)
		return
	}

	details, err := h.reporter.GetSalesDetails(ctx, q)
	if err != nil {
		handlers.WriteError(w, r, err)
		return
	}

	zerolog.Ctx(ctx).Info().
		Str("product", q.ProductID).
		Int("notes", len(details.Items)).
		Int("total_sales", details.TotalSales).
		Msg("sales details computed")

	handlers.WriteJSON(w, r, http.StatusOK, adapters.MapDomainSalesDetailsToAPI(details))
}
