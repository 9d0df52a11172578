package commands

import (
	"log/slog"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Prints the summary and regressions of the stored tables and writes the figures.",
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

		result, err := p.Analyze(cmd.Context())
		if err != nil {
			return err
		}
		for _, f := range result.Figures {
			slog.Info("wrote figure", "path", f)
		}
		return nil
	},
}
