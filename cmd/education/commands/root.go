package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"educationgdp/internal/pipeline"
	inttelemetry "educationgdp/internal/telemetry"
	"educationgdp/lib/configuration"
	"educationgdp/lib/restyutil"
	"educationgdp/lib/scrapers/unstats"
	"educationgdp/lib/serviceutil"
	"educationgdp/lib/store"
	"educationgdp/lib/telemetry"

	"github.com/spf13/cobra"
)

var configPath *string
var debug *bool

var tel telemetry.Telemetry

func init() {
	configPath = rootCmd.PersistentFlags().String("config", configuration.DefaultName, "The config file to read.")
	debug = rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging.")
}

var rootCmd = &cobra.Command{
	Use:   "education",
	Short: "education compares UN school life expectancy with GDP.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		telemetry.InitSlog(*debug)

		var err error
		tel, err = telemetry.SetupFromEnv(cmd.Context(), "education")
		if err != nil {
			return fmt.Errorf("setup telemetry: %w", err)
		}
		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// ExecuteContext runs the selected command. Telemetry is flushed before a
// failing command exits.
func ExecuteContext(ctx context.Context) {
	err := rootCmd.ExecuteContext(ctx)

	shutdownErr := tel.Shutdown(context.Background())
	if shutdownErr != nil {
		slog.Warn("failed to shutdown telemetry", "err", shutdownErr)
	}

	if err != nil {
		serviceutil.Fatal("command failed", err)
	}
}

func loadConfig() (configuration.Config, error) {
	cfg, err := configuration.Load(*configPath)
	if err != nil {
		return configuration.Config{}, err
	}
	slog.Debug("loaded config", "path", *configPath, "database", cfg.Database.String())

	if cfg.DumpHttp != "" {
		output, err := restyutil.NewFilesystemOutput(cfg.DumpHttp)
		if err != nil {
			return configuration.Config{}, fmt.Errorf("create http dump directory: %w", err)
		}
		unstats.SetRestyInstrumentOutput(output)
	}
	return cfg, nil
}

// openPipeline opens the configured database, the caller must close the
// returned store.
func openPipeline(ctx context.Context, cfg configuration.Config) (pipeline.Pipeline, store.Store, error) {
	s, err := store.Open(ctx, cfg.Database)
	if err != nil {
		return pipeline.Pipeline{}, store.Store{}, fmt.Errorf("open database: %w", err)
	}
	reports := inttelemetry.NewSlogAPI(telemetry.Meter("educationgdp.pipeline"))
	return pipeline.New(cfg, s, reports, os.Stdout), s, nil
}
