package config

import (
	"context"
	"errors"
	"net/http"
	"os"
	"strings"

	"github.com/de-tools/sales-atlas/pkg/errx"
	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/de-tools/sales-atlas/pkg/store/client"
)

const (
	TokenEnv   = "WAYBE_ERP_TOKEN"
	BaseURLEnv = "WAYBE_ERP_BASE_URL"
)

// CredentialsProvider resolves ERP credentials on every call, so a token
// rotated in the environment is picked up by the next request.
type CredentialsProvider struct {
	registry       Registry
	profile        string
	defaultBaseURL string
	lookupEnv      func(string) string
}

type CredentialsOptions struct {
	Profile        string
	DefaultBaseURL string
	// LookupEnv defaults to os.Getenv.
	LookupEnv func(string) string
}

func NewCredentialsProvider(registry Registry, opts CredentialsOptions) *CredentialsProvider {
	if opts.LookupEnv == nil {
		opts.LookupEnv = os.Getenv
	}
	if opts.DefaultBaseURL == "" {
		opts.DefaultBaseURL = client.DefaultBaseURL
	}

	return &CredentialsProvider{
		registry:       registry,
		profile:        opts.Profile,
		defaultBaseURL: opts.DefaultBaseURL,
		lookupEnv:      opts.LookupEnv,
	}
}

// Credentials merges the selected profile with the environment. Environment
// values win. An unknown profile is not an error on its own.
func (p *CredentialsProvider) Credentials(ctx context.Context) (domain.ERPCredentials, error) {
	creds := domain.ERPCredentials{Profile: p.profile}

	if p.registry != nil && p.profile != "" {
		fromProfile, err := p.registry.GetCredentials(ctx, p.profile)
		switch {
		case err == nil:
			creds = fromProfile
		case !errors.Is(err, ErrProfileNotFound):
			return domain.ERPCredentials{}, errx.New(err, errx.KindConfiguration, http.StatusInternalServerError, "failed to read ERP profile")
		}
	}

	if token := strings.TrimSpace(p.lookupEnv(TokenEnv)); token != "" {
		creds.Token = token
	}
	if baseURL := strings.TrimSpace(p.lookupEnv(BaseURLEnv)); baseURL != "" {
		creds.BaseURL = baseURL
	}
	if creds.BaseURL == "" {
		creds.BaseURL = p.defaultBaseURL
	}
	creds.BaseURL = strings.TrimRight(creds.BaseURL, "/")

	if creds.Token == "" {
		return domain.ERPCredentials{}, errx.Configuration("ERP token %s is not configured", TokenEnv)
	}

	return creds, nil
}
