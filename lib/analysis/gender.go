package analysis

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"educationgdp/lib/dataset"
	"educationgdp/lib/telemetry"

	"go.opentelemetry.io/otel/attribute"
)

var tracer = telemetry.Tracer("educationgdp.lib.analysis")

// Points are the joined rows as parallel columns.
type Points struct {
	GDP    []float64
	LogGDP []float64
	Men    []float64
	Women  []float64
}

func (p Points) Len() int {
	return len(p.GDP)
}

// NewPoints converts joined rows into columns and adds log10(GDP). Rows
// with a non-positive GDP have no logarithm and are dropped.
func NewPoints(rows []dataset.JoinedRow) Points {
	var p Points
	dropped := 0
	for _, r := range rows {
		if r.GDP <= 0 {
			dropped++
			continue
		}
		p.GDP = append(p.GDP, r.GDP)
		p.LogGDP = append(p.LogGDP, math.Log10(r.GDP))
		p.Men = append(p.Men, float64(r.Men))
		p.Women = append(p.Women, float64(r.Women))
	}
	if dropped > 0 {
		slog.Warn("dropped rows with non-positive gdp", "count", dropped)
	}
	return p
}

type GenderModels struct {
	Men   Model
	Women Model

	MenCorrelation   float64
	WomenCorrelation float64
}

// FitGender regresses the years of schooling of each gender on log10(GDP).
func FitGender(ctx context.Context, p Points) (GenderModels, error) {
	_, span := tracer.Start(ctx, "FitGender")
	defer span.End()
	span.SetAttributes(attribute.Int("points", p.Len()))

	men, err := FitOLS(p.LogGDP, p.Men)
	if err != nil {
		return GenderModels{}, fmt.Errorf("fit men: %w", err)
	}
	women, err := FitOLS(p.LogGDP, p.Women)
	if err != nil {
		return GenderModels{}, fmt.Errorf("fit women: %w", err)
	}

	return GenderModels{
		Men:              men,
		Women:            women,
		MenCorrelation:   Correlation(p.LogGDP, p.Men),
		WomenCorrelation: Correlation(p.LogGDP, p.Women),
	}, nil
}
