package config

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"gopkg.in/ini.v1"
)

var ErrProfileNotFound = errors.New("profile not found")

// Registry lists the ERP connection profiles of an .erpcfg file:
//
//	[default]
//	base_url = https://api.waybe.com.br
//	token    = ...
type Registry interface {
	GetProfiles(ctx context.Context) ([]string, error)
	GetCredentials(ctx context.Context, profile string) (domain.ERPCredentials, error)
}

type cfgRegistry struct {
	cfg *ini.File
}

// NewRegistry loads the profiles at path. A missing file yields an empty registry.
func NewRegistry(path string) (Registry, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return &cfgRegistry{cfg: ini.Empty()}, nil
	}

	cfg, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load profiles from %s: %w", path, err)
	}
	return &cfgRegistry{cfg: cfg}, nil
}

func (cr *cfgRegistry) GetProfiles(_ context.Context) ([]string, error) {
	var profiles []string
	for _, section := range cr.cfg.Sections() {
		if len(section.Keys()) > 0 {
			profiles = append(profiles, section.Name())
		}
	}
	return profiles, nil
}

func (cr *cfgRegistry) GetCredentials(_ context.Context, profile string) (domain.ERPCredentials, error) {
	section, err := cr.cfg.GetSection(profile)
	if err != nil || len(section.Keys()) == 0 {
		return domain.ERPCredentials{}, fmt.Errorf("%w: %s", ErrProfileNotFound, profile)
	}

	return domain.ERPCredentials{
		Profile: profile,
		BaseURL: section.Key("base_url").String(),
		Token:   section.Key("token").String(),
	}, nil
}
