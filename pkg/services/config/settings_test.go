package config

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/de-tools/sales-atlas/pkg/services/sales"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettings(t *testing.T) {
	t.Run("defaults without a file", func(t *testing.T) {
		s, err := LoadSettings("")

		require.NoError(t, err)
		assert.Equal(t, sales.DefaultSettings(), s.Engine())
		assert.Empty(t, s.BaseURL)
	})

	t.Run("values from yaml", func(t *testing.T) {
		// Given
		path := writeFile(t, "settings.yaml", `
base_url: https://erp.internal
page_size: 500
item_timeout: 2s
notes_timeout: 1m
`)

		// When
		s, err := LoadSettings(path)

		// Then
		require.NoError(t, err)
		assert.Equal(t, &Settings{
			BaseURL:      "https://erp.internal",
			PageSize:     500,
			ItemTimeout:  2 * time.Second,
			NotesTimeout: time.Minute,
		}, s)
		assert.Equal(t, sales.Settings{
			ItemTimeout:     2 * time.Second,
			NotesTimeout:    time.Minute,
			DefaultPageSize: 500,
		}, s.Engine())
	})

	t.Run("partial file keeps the other defaults", func(t *testing.T) {
		s, err := LoadSettings(writeFile(t, "settings.yaml", "page_size: 0\n"))

		require.NoError(t, err)
		assert.Equal(t, domain.DefaultPageSize, s.PageSize)
		assert.Equal(t, 10*time.Second, s.ItemTimeout)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadSettings(filepath.Join(t.TempDir(), "absent.yaml"))

		assert.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := LoadSettings(writeFile(t, "settings.yaml", "page_size: [1, 2\n"))

		assert.Error(t, err)
	})
}

func TestNewSalesReporter(t *testing.T) {
	reporter, err := NewSalesReporter(BootstrapOptions{
		ProfilesPath: writeFile(t, ".erpcfg", testProfiles),
		SettingsPath: writeFile(t, "settings.yaml", "page_size: 250\n"),
		Profile:      "acme",
	})

	require.NoError(t, err)
	assert.Equal(t, 250, reporter.Settings().DefaultPageSize)
}

func TestBootstrap(t *testing.T) {
	services, err := Bootstrap(BootstrapOptions{
		ProfilesPath: writeFile(t, ".erpcfg", testProfiles),
		Profile:      "acme",
	})
	require.NoError(t, err)

	profiles, err := services.Registry.GetProfiles(context.Background())

	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"acme", "beta"}, profiles)
	assert.Equal(t, domain.DefaultPageSize, services.Reporter.Settings().DefaultPageSize)
}

func TestBootstrap_BadSettings(t *testing.T) {
	_, err := Bootstrap(BootstrapOptions{
		ProfilesPath: writeFile(t, ".erpcfg", testProfiles),
		SettingsPath: filepath.Join(t.TempDir(), "absent.yaml"),
	})

	assert.ErrorContains(t, err, "failed to load engine settings")
}
