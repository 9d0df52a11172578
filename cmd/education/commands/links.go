package commands

import (
	"log/slog"

	"github.com/spf13/cobra"
)

var minSimilarity *float64

func init() {
	minSimilarity = linksCmd.Flags().Float64("min-similarity", 0.8, "The lowest similarity two names can have and still be linked.")
	rootCmd.AddCommand(linksCmd)
}

var linksCmd = &cobra.Command{
	Use:   "links [--min-similarity <0..1>]",
	Short: "Lists the countries whose names differ between un_education and gdp.",
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

		links, err := p.Links(cmd.Context(), *minSimilarity)
		if err != nil {
			return err
		}
		exact := 0
		for _, l := range links {
			if l.Exact() {
				exact++
			}
		}
		slog.Info("linked countries", "exact", exact, "total", len(links))
		return nil
	},
}
