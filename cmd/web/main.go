package main

import (
	"fmt"
	"net"
	"os"
	"os/user"
	"path/filepath"
	"time"

	"github.com/de-tools/sales-atlas/pkg/core"
	"github.com/de-tools/sales-atlas/pkg/logger"
	"github.com/de-tools/sales-atlas/pkg/server"
	"github.com/de-tools/sales-atlas/pkg/services/config"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"
)

// AppConfig holds the process configuration sourced from the environment
// (loaded from .env for local runs).
type AppConfig struct {
	Host            string        `envconfig:"SERVER_HOST" default:"0.0.0.0"`
	Port            string        `envconfig:"SERVER_PORT" default:"8080"`
	Environment     string        `envconfig:"APP_ENV" default:"development"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
	Profile         string        `envconfig:"ERP_PROFILE" default:"default"`
}

var (
	cfgPath      string
	settingsPath string
	profile      string
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the sales insights web server",
		RunE:  runServer,
	}

	defaultPath := ".erpcfg"
	if usr, err := user.Current(); err == nil {
		defaultPath = filepath.Join(usr.HomeDir, ".erpcfg")
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", defaultPath,
		"Path to the ERP profiles file (default is $HOME/.erpcfg)")
	rootCmd.Flags().StringVarP(&settingsPath, "settings", "s", "",
		"Path to an optional YAML file with engine settings")
	rootCmd.Flags().StringVarP(&profile, "profile", "p", "",
		"ERP profile to use (overrides ERP_PROFILE)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	var appCfg AppConfig
	if err := envconfig.Process("", &appCfg); err != nil {
		return fmt.Errorf("failed to process environment config: %w", err)
	}
	if profile != "" {
		appCfg.Profile = profile
	}

	log := logger.New(logger.Options{Environment: core.ParseEnvironment(appCfg.Environment)})
	ctx := log.WithContext(cmd.Context())

	services, err := config.Bootstrap(config.BootstrapOptions{
		ProfilesPath: cfgPath,
		SettingsPath: settingsPath,
		Profile:      appCfg.Profile,
	})
	if err != nil {
		return err
	}

	profiles, err := services.Registry.GetProfiles(ctx)
	if err != nil {
		log.Warn().Err(err).Str("path", cfgPath).Msg("failed to list ERP profiles")
	} else {
		log.Info().Msgf("Profiles file `%s` loaded, %d profile(s) found", cfgPath, len(profiles))
	}
	log.Info().Msgf("Using ERP profile `%s`", appCfg.Profile)

	addr := net.JoinHostPort(appCfg.Host, appCfg.Port)
	api := server.NewWebAPI(server.Config{
		Addr:            addr,
		ShutdownTimeout: appCfg.ShutdownTimeout,
		Dependencies: server.Dependencies{
			Reporter: services.Reporter,
			Logger:   log,
		},
	})

	return api.Start()
}
