package commands

import (
	"log/slog"
	"time"

	"educationgdp/lib/telemetry"

	"github.com/spf13/cobra"
)

var runHtml *string

func init() {
	runHtml = runCmd.Flags().String("html", "", "Parse a saved copy of the UN page instead of fetching it.")
	rootCmd.AddCommand(runCmd)
}

var runCmd = &cobra.Command{
	Use:   "run [--html <path/to/page.htm>]",
	Short: "Scrapes the UN table, loads the GDP file, then prints and plots the analysis.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if *runHtml != "" {
			cfg.HtmlFile = *runHtml
		}
		if tel.Enabled() {
			telemetry.InstrumentPerfStats(ctx, time.Second)
		}

		p, s, err := openPipeline(ctx, cfg)
		if err != nil {
			return err
		}
		defer s.Close()

		t1 := time.Now()
		result, err := p.Run(ctx)
		if err != nil {
			return err
		}
		slog.Info(
			"pipeline done",
			"seconds", time.Since(t1).Seconds(),
			"points", result.Points.Len(),
			"figures", result.Figures,
		)
		return nil
	},
}
