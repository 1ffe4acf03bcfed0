package config

import (
	"fmt"
	"time"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/de-tools/sales-atlas/pkg/services/sales"
	"github.com/spf13/viper"
)

// Settings tune the sales-detail engine. They are read from an optional YAML file.
type Settings struct {
	BaseURL      string        `mapstructure:"base_url"`
	PageSize     int           `mapstructure:"page_size"`
	ItemTimeout  time.Duration `mapstructure:"item_timeout"`
	NotesTimeout time.Duration `mapstructure:"notes_timeout"`
}

// LoadSettings reads the file at path. An empty path returns the defaults.
func LoadSettings(path string) (*Settings, error) {
	v := viper.New()
	defaults := sales.DefaultSettings()
	v.SetDefault("page_size", defaults.DefaultPageSize)
	v.SetDefault("item_timeout", defaults.ItemTimeout)
	v.SetDefault("notes_timeout", defaults.NotesTimeout)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read settings file: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}
	if s.PageSize <= 0 {
		s.PageSize = domain.DefaultPageSize
	}
	return &s, nil
}

func (s *Settings) Engine() sales.Settings {
	return sales.Settings{
		ItemTimeout:     s.ItemTimeout,
		NotesTimeout:    s.NotesTimeout,
		DefaultPageSize: s.PageSize,
	}
}
