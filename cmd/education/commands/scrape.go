package commands

import (
	"log/slog"

	"github.com/spf13/cobra"
)

var scrapeHtml *string

func init() {
	scrapeHtml = scrapeCmd.Flags().String("html", "", "Parse a saved copy of the UN page instead of fetching it.")
	rootCmd.AddCommand(scrapeCmd)
}

var scrapeCmd = &cobra.Command{
	Use:   "scrape [--html <path/to/page.htm>]",
	Short: "Scrapes the UN school life expectancy table into un_education.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if *scrapeHtml != "" {
			cfg.HtmlFile = *scrapeHtml
		}

		p, s, err := openPipeline(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer s.Close()

		rows, err := p.Scrape(cmd.Context())
		if err != nil {
			return err
		}
		slog.Info("stored education rows", "count", len(rows), "database", cfg.Database.String())
		return nil
	},
}
