package config

import (
	"fmt"
	"net/http"
	"time"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/de-tools/sales-atlas/pkg/services/sales"
	"github.com/de-tools/sales-atlas/pkg/store/client"
)

type BootstrapOptions struct {
	ProfilesPath string
	SettingsPath string
	Profile      string
	// HTTPClient is shared by the per-request ERP clients.
	HTTPClient *http.Client
}

// Services are the objects built once per process and shared by every request.
type Services struct {
	Registry Registry
	Reporter sales.Reporter
}

// Bootstrap wires profiles, settings and the ERP client into a Reporter.
func Bootstrap(opts BootstrapOptions) (*Services, error) {
	registry, err := NewRegistry(opts.ProfilesPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create profile registry: %w", err)
	}

	settings, err := LoadSettings(opts.SettingsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load engine settings: %w", err)
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = NewHTTPClient()
	}

	provider := NewCredentialsProvider(registry, CredentialsOptions{
		Profile:        opts.Profile,
		DefaultBaseURL: settings.BaseURL,
	})

	reporter := sales.NewReporter(provider, func(creds domain.ERPCredentials) sales.Source {
		return client.NewERPClient(creds, httpClient)
	}, settings.Engine())

	return &Services{
		Registry: registry,
		Reporter: reporter,
	}, nil
}

func NewSalesReporter(opts BootstrapOptions) (sales.Reporter, error) {
	services, err := Bootstrap(opts)
	if err != nil {
		return nil, err
	}
	return services.Reporter, nil
}

// NewHTTPClient keeps enough idle connections for a full fan-out to the ERP host.
func NewHTTPClient() *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.MaxIdleConnsPerHost = sales.MaxConcurrentItemLookups
	transport.IdleConnTimeout = 90 * time.Second

	return &http.Client{Transport: transport}
}
