package agent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strconv"

	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/components/tool/utils"
	"github.com/cloudwego/eino/schema"
	"github.com/de-tools/sales-atlas/pkg/adapters"
	"github.com/de-tools/sales-atlas/pkg/errx"
	"github.com/de-tools/sales-atlas/pkg/models/api"
	"github.com/de-tools/sales-atlas/pkg/services/sales"
)

const SalesDetailsToolName = "get_sales_details_by_product"

const objectArgumentsMessage = "tool arguments must be a JSON object"

// SalesDetailsInput are the arguments the assistant passes to the sales tool.
type SalesDetailsInput struct {
	ProductID   string `json:"idProdutoEmpresa"`
	ProductName string `json:"nomeProduto,omitempty"`
	StartDate   string `json:"dataInicial"`
	EndDate     string `json:"dataFinal"`
	Page        *int   `json:"page,omitempty"`
	Size        *int   `json:"size,omitempty"`
}

var salesDetailsParams = map[string]*schema.ParameterInfo{
	"idProdutoEmpresa": {
		Type:     "string",
		Desc:     "Company product id whose sales are analysed. Use 0 to include every product of each note.",
		Required: true,
	},
	"nomeProduto": {
		Type: "string",
		Desc: "Optional product name, used only to label the answer.",
	},
	"dataInicial": {
		Type:     "string",
		Desc:     "First sale date (YYYY-MM-DD).",
		Required: true,
	},
	"dataFinal": {
		Type:     "string",
		Desc:     "Last sale date (YYYY-MM-DD).",
		Required: true,
	},
	"page": {
		Type: "integer",
		Desc: "Notes page to analyse (default 0).",
	},
	"size": {
		Type: "integer",
		Desc: "Notes per page (default 2000).",
	},
}

func newSalesDetailsTool(reporter sales.Reporter) tool.InvokableTool {
	return utils.NewTool(
		&schema.ToolInfo{
			Name: SalesDetailsToolName,
			Desc: "Hourly sales breakdown of one product in a date range: sales count, quantity sold and revenue per hour of the day, plus the peak hours. The result is rendered by the chat UI, do not repeat the numbers.",
			ParamsOneOf: schema.NewParamsOneOfByParams(salesDetailsParams),
		},
		func(ctx context.Context, in *SalesDetailsInput) (*api.SalesDetails, error) {
			if in == nil {
				return nil, errx.Validation(objectArgumentsMessage)
			}
			q, err := sales.ParseQuery(sales.QueryParams{
				ProductID:   in.ProductID,
				ProductName: in.ProductName,
				StartDate:   in.StartDate,
				EndDate:     in.EndDate,
				Page:        optIntString(in.Page),
				Size:        optIntString(in.Size),
			}, reporter.Settings().DefaultPageSize)
			if err != nil {
				return nil, err
			}

			details, err := reporter.GetSalesDetails(ctx, q)
			if err != nil {
				return nil, err
			}

			out := adapters.MapDomainSalesDetailsToAPI(details)
			return &out, nil
		},
	)
}

// decodeSalesDetailsInput checks the arguments against the input struct so
// that mistyped fields are rejected before the tool runs.
func decodeSalesDetailsInput(arguments string) error {
	var in SalesDetailsInput
	err := json.Unmarshal([]byte(arguments), &in)
	if err == nil {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return errx.Validation("invalid '%s': unexpected JSON %s", typeErr.Field, typeErr.Value)
	}
	return errx.Validation(objectArgumentsMessage)
}

type registeredTool struct {
	tool   tool.InvokableTool
	params map[string]*schema.ParameterInfo
	decode func(arguments string) error
}

// Catalog holds the functions the assistant may call.
type Catalog struct {
	tools map[string]registeredTool
}

func NewCatalog(reporter sales.Reporter) *Catalog {
	return &Catalog{
		tools: map[string]registeredTool{
			SalesDetailsToolName: {
				tool:   newSalesDetailsTool(reporter),
				params: salesDetailsParams,
				decode: decodeSalesDetailsInput,
			},
		},
	}
}

// List describes every registered tool, sorted by name.
func (c *Catalog) List(ctx context.Context) ([]api.Tool, error) {
	tools := make([]api.Tool, 0, len(c.tools))
	for _, registered := range c.tools {
		info, err := registered.tool.Info(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to describe tool: %w", err)
		}

		params := make(map[string]api.ToolParameter, len(registered.params))
		for name, p := range registered.params {
			params[name] = api.ToolParameter{
				Type:        string(p.Type),
				Description: p.Desc,
				Required:    p.Required,
				Enum:        p.Enum,
			}
		}

		tools = append(tools, api.Tool{
			Name:        info.Name,
			Description: info.Desc,
			Parameters:  params,
		})
	}

	sort.Slice(tools, func(i, j int) bool {
		return tools[i].Name < tools[j].Name
	})
	return tools, nil
}

// Invoke runs the named tool with a JSON object of arguments and returns its
// JSON result.
func (c *Catalog) Invoke(ctx context.Context, name, arguments string) (string, error) {
	registered, ok := c.tools[name]
	if !ok {
		return "", errx.New(nil, errx.KindValidation, http.StatusNotFound, fmt.Sprintf("unknown tool: %s", name))
	}

	if arguments == "" {
		arguments = "{}"
	}
	var args map[string]any
	if err := json.Unmarshal([]byte(arguments), &args); err != nil || args == nil {
		return "", errx.Validation(objectArgumentsMessage)
	}
	if registered.decode != nil {
		if err := registered.decode(arguments); err != nil {
			return "", err
		}
	}

	return registered.tool.InvokableRun(ctx, arguments)
}

func optIntString(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}
