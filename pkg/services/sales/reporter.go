package sales

import (
	"context"
	"strings"

	"github.com/de-tools/sales-atlas/pkg/errx"
	"github.com/de-tools/sales-atlas/pkg/models/domain"
)

// Reporter answers sales-detail requests. Each call builds its own ERP source
// from freshly resolved credentials; nothing is shared between requests.
type Reporter interface {
	GetSalesDetails(ctx context.Context, q domain.SalesQuery) (domain.SalesDetails, error)
	Settings() Settings
}

type CredentialsProvider interface {
	Credentials(ctx context.Context) (domain.ERPCredentials, error)
}

type SourceFactory func(creds domain.ERPCredentials) Source

type reporter struct {
	credentials CredentialsProvider
	newSource   SourceFactory
	settings    Settings
}

func NewReporter(credentials CredentialsProvider, newSource SourceFactory, settings Settings) Reporter {
	return &reporter{
		credentials: credentials,
		newSource:   newSource,
		settings:    settings,
	}
}

func (r *reporter) Settings() Settings {
	return r.settings
}

func (r *reporter) GetSalesDetails(ctx context.Context, q domain.SalesQuery) (domain.SalesDetails, error) {
	if q.ProductID == "" || q.StartDate.IsZero() || q.EndDate.IsZero() {
		return domain.SalesDetails{}, errx.Validation(missingParamsMessage)
	}
	// ParseQuery never yields a zero size; this covers queries built in code.
	if q.PageSize <= 0 {
		q.PageSize = r.settings.DefaultPageSize
	}

	creds, err := r.credentials.Credentials(ctx)
	if err != nil {
		return domain.SalesDetails{}, err
	}
	if strings.TrimSpace(creds.Token) == "" {
		return domain.SalesDetails{}, errx.Configuration("ERP token WAYBE_ERP_TOKEN is not configured")
	}

	return NewEngine(r.newSource(creds), r.settings).Details(ctx, q)
}
