package charts

import (
	"context"
	"log/slog"

	"educationgdp/lib/analysis"

	"gonum.org/v1/plot/vg"
)

const (
	yearsLabel  = "School Life Expectancy (Years)"
	gdpLabel    = "Gross Domestic Product (GDP)"
	logGDPLabel = "Gross Domestic Product (Log GDP)"
)

// Figures lays out the four per-gender scatter plots and the combined
// plot with both fitted lines.
func Figures(p analysis.Points, models analysis.GenderModels) []Figure {
	figures := []Figure{
		{
			File:    "male_GDP.png",
			Title:   "Male International School Life Expectancy and GDP",
			XLabel:  gdpLabel,
			YLabel:  yearsLabel,
			Scatter: []Series{{X: p.GDP, Y: p.Men, Color: Blue}},
		},
		{
			File:    "female_GDP.png",
			Title:   "Female International School Life Expectancy and GDP",
			XLabel:  gdpLabel,
			YLabel:  yearsLabel,
			Scatter: []Series{{X: p.GDP, Y: p.Women, Color: Blue}},
		},
		{
			File:    "male_logGDP.png",
			Title:   "Male International School Life Expectancy and Log GDP",
			XLabel:  logGDPLabel,
			YLabel:  yearsLabel,
			Scatter: []Series{{X: p.LogGDP, Y: p.Men, Color: Blue}},
		},
		{
			File:    "female_logGDP.png",
			Title:   "Female International School Life Expectancy and Log GDP",
			XLabel:  logGDPLabel,
			YLabel:  yearsLabel,
			Scatter: []Series{{X: p.LogGDP, Y: p.Women, Color: Blue}},
		},
	}

	grid := analysis.LineGrid(p.LogGDP, 0.5)

	return append(figures, Figure{
		File:      "SLE_GDP.png",
		Title:     "International School Life Expectancy vs Gross Domestic Product",
		TitleSize: vg.Points(16),
		XLabel:    "log(Gross Domestic Product)",
		YLabel:    yearsLabel,
		Scatter: []Series{
			{X: p.LogGDP, Y: p.Men, Color: Red},
			{X: p.LogGDP, Y: p.Women, Color: Blue},
		},
		Lines: []Line{
			{Label: "Men", X: grid, Y: models.Men.Line(grid), Color: Red},
			{Label: "Women", X: grid, Y: models.Women.Line(grid), Color: Blue},
		},
		LegendLeft: true,
	})
}

// RenderAll renders every figure into `dir`.
func RenderAll(ctx context.Context, dir string, figures []Figure) ([]string, error) {
	_, span := tracer.Start(ctx, "RenderAll")
	defer span.End()

	var written []string
	for _, f := range figures {
		path, err := f.Render(dir)
		if err != nil {
			return written, err
		}
		slog.InfoContext(ctx, "wrote figure", "path", path)
		written = append(written, path)
	}
	return written, nil
}
