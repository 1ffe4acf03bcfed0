package domain

import "time"

const (
	DefaultPage     = 0
	DefaultPageSize = 2000
	HoursPerDay     = 24
)

// SalesQuery selects the notes of one product sold inside a date range.
type SalesQuery struct {
	ProductID   string
	ProductName string // informational only, never sent upstream
	StartDate   time.Time
	EndDate     time.Time
	Page        int
	PageSize    int
}

// SalesNote is the reduced projection of an ERP sales note.
type SalesNote struct {
	ID           *int64
	CompanyID    *int64
	CompanyName  string
	Status       string
	SaleDate     string
	SaleTime     *string // HH:MM[:SS], may be absent or malformed
	Subtotal     float64
	Freight      float64
	ServiceTotal float64
	Total        float64
}

// NoteLineItem is one line of a sales note as returned by the items endpoint.
// Values are kept loosely typed: the ERP is not consistent about numbers vs strings.
type NoteLineItem struct {
	Type      any
	Cancelled any
	ProductID any
	Quantity  any
}

// NotesPage is one page of the notes endpoint. Pagination fields are nil when
// the upstream response omitted them.
type NotesPage struct {
	Notes         []SalesNote
	Number        *int
	Size          *int
	TotalElements *int64
	TotalPages    *int
	First         *bool
	Last          *bool
}

// HourBucket accumulates the sales of one hour of the day.
type HourBucket struct {
	Hour            int
	SaleCount       int
	ProductQuantity float64
	Revenue         float64
}

type PerSaleQuantity struct {
	NoteID          *int64
	SaleTime        string
	ProductQuantity float64
}

// HourlyAggregate is the output of the hourly aggregator.
type HourlyAggregate struct {
	Buckets           [HoursPerDay]HourBucket
	PeakHours         []HourBucket
	PerSaleQuantities []PerSaleQuantity
	TotalSales        int
	TotalProductQty   float64
	TotalRevenue      float64
}

type Pagination struct {
	Page          int
	Size          int
	TotalElements int64
	TotalPages    int
	First         bool
	Last          bool
}

// SalesDetails is the assembled result of one sales-detail request.
type SalesDetails struct {
	Pagination
	HourlyAggregate
	Items []SalesNote
}

// ERPCredentials is the request-scoped connection configuration for the ERP API.
type ERPCredentials struct {
	Profile string
	BaseURL string
	Token   string
}
