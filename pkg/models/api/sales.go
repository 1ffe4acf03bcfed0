package api

type SalesNote struct {
	IDNota            *int64  `json:"idNota"`
	IDEmpresa         *int64  `json:"idEmpresa"`
	NomeEmpresa       string  `json:"nomeEmpresa"`
	Status            string  `json:"status"`
	DataVenda         string  `json:"dataVenda"`
	HoraVenda         *string `json:"horaVenda"`
	ValorSubtotal     float64 `json:"valorSubtotal"`
	ValorFrete        float64 `json:"valorFrete"`
	ValorTotalServico float64 `json:"valorTotalServico"`
	ValorTotal        float64 `json:"valorTotal"`
}

// HourBucket is one hour of the histogram; Hour is zero padded ("09").
type HourBucket struct {
	Hour            string  `json:"hour"`
	Count           int     `json:"count"`
	ProductQuantity float64 `json:"productQuantity"`
	Revenue         float64 `json:"revenue"`
}

type PerSaleQuantity struct {
	NoteID          *int64  `json:"noteId"`
	SaleTime        string  `json:"saleTime"`
	ProductQuantity float64 `json:"productQuantity"`
}

type SalesDetails struct {
	Items             []SalesNote       `json:"items"`
	Page              int               `json:"page"`
	Size              int               `json:"size"`
	TotalElements     int64             `json:"totalElements"`
	TotalPages        int               `json:"totalPages"`
	First             bool              `json:"first"`
	Last              bool              `json:"last"`
	TotalSales        int               `json:"totalSales"`
	TotalProductQty   float64           `json:"totalProductQty"`
	TotalRevenue      float64           `json:"totalRevenue"`
	HourlyHistogram   []HourBucket      `json:"hourlyHistogram"`
	PeakHours         []HourBucket      `json:"peakHours"`
	PerSaleQuantities []PerSaleQuantity `json:"perSaleQuantities"`
}

type ErrorResponse struct {
	Error   string  `json:"error"`
	Status  int     `json:"status,omitempty"`
	Details *string `json:"details,omitempty"`
}
