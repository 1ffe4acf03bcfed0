package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/de-tools/sales-atlas/pkg/errx"
	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/rs/zerolog"
	"github.com/spf13/cast"
)

const (
	DefaultBaseURL = "https://api.waybe.com.br"

	notesPath = "/vendas/nota"
	itemsPath = "/vendas/nota-item/buscar-todos/"
	dateFmt   = "2006-01-02"
)

// ItemLookupError is a failed call to the per-note items endpoint.
type ItemLookupError struct {
	NoteID     int64
	StatusCode int
	Err        error
}

func (e *ItemLookupError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("item lookup for note %d failed: %v", e.NoteID, e.Err)
	}
	return fmt.Sprintf("item lookup for note %d failed with status %d", e.NoteID, e.StatusCode)
}

func (e *ItemLookupError) Unwrap() error {
	return e.Err
}

// ERPClient talks to the ERP sales API with a bearer token.
type ERPClient struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func NewERPClient(creds domain.ERPCredentials, httpClient *http.Client) *ERPClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	baseURL := strings.TrimRight(strings.TrimSpace(creds.BaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &ERPClient{
		baseURL:    baseURL,
		token:      creds.Token,
		httpClient: httpClient,
	}
}

type rawNotesPage struct {
	Content       json.RawMessage `json:"content"`
	Number        any             `json:"number"`
	Size          any             `json:"size"`
	TotalElements any             `json:"totalElements"`
	TotalPages    any             `json:"totalPages"`
	First         any             `json:"first"`
	Last          any             `json:"last"`
}

type rawNote struct {
	IDNota            any `json:"idNota"`
	IDEmpresa         any `json:"idEmpresa"`
	NomeEmpresa       any `json:"nomeEmpresa"`
	Status            any `json:"status"`
	DataVenda         any `json:"dataVenda"`
	HoraVenda         any `json:"horaVenda"`
	ValorSubtotal     any `json:"valorSubtotal"`
	ValorFrete        any `json:"valorFrete"`
	ValorTotalServico any `json:"valorTotalServico"`
	ValorTotal        any `json:"valorTotal"`
}

type rawLineItem struct {
	Tipo             any `json:"tipo"`
	Cancelado        any `json:"cancelado"`
	IDProdutoEmpresa any `json:"idProdutoEmpresa"`
	Quantidade       any `json:"quantidade"`
}

// FetchNotes retrieves one page of sales notes for the query and projects each
// note to its reduced shape.
func (c *ERPClient) FetchNotes(ctx context.Context, q domain.SalesQuery) (*domain.NotesPage, error) {
	logger := zerolog.Ctx(ctx)

	params := url.Values{}
	params.Set("idProdutoEmpresa", q.ProductID)
	params.Set("dataInicial", q.StartDate.Format(dateFmt))
	params.Set("dataFinal", q.EndDate.Format(dateFmt))
	params.Set("page", strconv.Itoa(q.Page))
	params.Set("size", strconv.Itoa(q.PageSize))

	resp, err := c.get(ctx, c.baseURL+notesPath+"?"+params.Encode())
	if err != nil {
		return nil, fmt.Errorf("failed to request sales notes: %w", err)
	}
	defer func(Body io.ReadCloser) {
		err := Body.Close()
		if err != nil {
			logger.Warn().Err(err).Msg("failed to close response body")
		}
	}(resp.Body)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read sales notes response: %w", err)
	}

	if !isSuccess(resp.StatusCode) {
		logger.Error().
			Int("status", resp.StatusCode).
			Str("body", string(body)).
			Msg("ERP notes endpoint returned an error")
		return nil, errx.WrapUpstream(resp.StatusCode, string(body))
	}

	var raw rawNotesPage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal sales notes response: %w", err)
	}

	return &domain.NotesPage{
		Notes:         projectNotes(raw.Content),
		Number:        optInt(raw.Number),
		Size:          optInt(raw.Size),
		TotalElements: optInt64(raw.TotalElements),
		TotalPages:    optInt(raw.TotalPages),
		First:         optBool(raw.First),
		Last:          optBool(raw.Last),
	}, nil
}

// FetchNoteItems retrieves the line items of one note. Every failure is
// reported as an *ItemLookupError.
func (c *ERPClient) FetchNoteItems(ctx context.Context, noteID int64) ([]domain.NoteLineItem, error) {
	resp, err := c.get(ctx, c.baseURL+itemsPath+strconv.FormatInt(noteID, 10))
	if err != nil {
		return nil, &ItemLookupError{NoteID: noteID, Err: err}
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if !isSuccess(resp.StatusCode) {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &ItemLookupError{NoteID: noteID, StatusCode: resp.StatusCode}
	}

	var elements []json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&elements); err != nil {
		return nil, &ItemLookupError{NoteID: noteID, StatusCode: resp.StatusCode, Err: fmt.Errorf("response is not a list: %w", err)}
	}

	items := make([]domain.NoteLineItem, 0, len(elements))
	for _, element := range elements {
		var raw rawLineItem
		if err := json.Unmarshal(element, &raw); err != nil {
			continue
		}
		items = append(items, domain.NoteLineItem{
			Type:      raw.Tipo,
			Cancelled: raw.Cancelado,
			ProductID: raw.IDProdutoEmpresa,
			Quantity:  raw.Quantidade,
		})
	}

	return items, nil
}

func (c *ERPClient) get(ctx context.Context, target string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	return c.httpClient.Do(req)
}

// projectNotes decodes the content array. A missing or non-list content is
// an empty page, and elements that are not objects are skipped.
func projectNotes(content json.RawMessage) []domain.SalesNote {
	var elements []json.RawMessage
	if len(content) == 0 || json.Unmarshal(content, &elements) != nil {
		return []domain.SalesNote{}
	}

	notes := make([]domain.SalesNote, 0, len(elements))
	for _, element := range elements {
		var raw rawNote
		if err := json.Unmarshal(element, &raw); err != nil {
			continue
		}
		notes = append(notes, domain.SalesNote{
			ID:           optInt64(raw.IDNota),
			CompanyID:    optInt64(raw.IDEmpresa),
			CompanyName:  cast.ToString(raw.NomeEmpresa),
			Status:       cast.ToString(raw.Status),
			SaleDate:     cast.ToString(raw.DataVenda),
			SaleTime:     optString(raw.HoraVenda),
			Subtotal:     Amount(raw.ValorSubtotal),
			Freight:      Amount(raw.ValorFrete),
			ServiceTotal: Amount(raw.ValorTotalServico),
			Total:        Amount(raw.ValorTotal),
		})
	}
	return notes
}

// Amount coerces a loosely typed numeric value. Missing, unparsable and
// non-finite values are zero.
func Amount(v any) float64 {
	if v == nil {
		return 0
	}
	f, err := cast.ToFloat64E(v)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

func optInt64(v any) *int64 {
	if v == nil {
		return nil
	}
	f, err := cast.ToFloat64E(v)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	i := int64(f)
	return &i
}

func optInt(v any) *int {
	i64 := optInt64(v)
	if i64 == nil {
		return nil
	}
	i := int(*i64)
	return &i
}

func optBool(v any) *bool {
	b, ok := v.(bool)
	if !ok {
		return nil
	}
	return &b
}

func optString(v any) *string {
	s, ok := v.(string)
	if !ok {
		return nil
	}
	return &s
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}
