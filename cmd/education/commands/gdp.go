package commands

import (
	"log/slog"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(gdpCmd)
}

var gdpCmd = &cobra.Command{
	Use:   "gdp",
	Short: "Loads the GDP file into the gdp table.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		p, s, err := openPipeline(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer s.Close()

		rows, err := p.LoadGDP(cmd.Context())
		if err != nil {
			return err
		}
		slog.Info("stored gdp rows", "count", len(rows), "file", cfg.GdpFile)
		return nil
	},
}
