package main

import (
	"context"
	"fmt"
	"os"

	"github.com/de-tools/sales-atlas/pkg/runtime/terminal"
	"github.com/de-tools/sales-atlas/pkg/services/config"
	"github.com/de-tools/sales-atlas/pkg/services/sales"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

func main() {
	_ = godotenv.Load()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(zerolog.WarnLevel).
		With().Timestamp().Logger()

	cli := terminal.NewCLI(terminal.Options{
		Factory: func(profilesPath, settingsPath, profile string) (sales.Reporter, error) {
			return config.NewSalesReporter(config.BootstrapOptions{
				ProfilesPath: profilesPath,
				SettingsPath: settingsPath,
				Profile:      profile,
			})
		},
		Output: os.Stdout,
	})

	if err := cli.ExecuteContext(logger.WithContext(context.Background())); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
