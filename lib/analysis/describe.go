// Package analysis computes the descriptive statistics and the log-GDP
// regressions of the pipeline.
package analysis

import (
	"math"

	"educationgdp/lib/dataset"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

type Summary struct {
	Count int
	Mean  float64
	// sample standard deviation (n-1 denominator)
	Std float64
	Min float64
	Max float64
}

func Describe(values []float64) Summary {
	if len(values) == 0 {
		return Summary{}
	}
	s := Summary{
		Count: len(values),
		Mean:  stat.Mean(values, nil),
		Min:   floats.Min(values),
		Max:   floats.Max(values),
	}
	if len(values) > 1 {
		s.Std = stat.StdDev(values, nil)
	}
	return s
}

type GenderSummary struct {
	Men   Summary
	Women Summary
}

// Summarize describes the years of schooling of every scraped row.
func Summarize(rows []dataset.EducationRow) GenderSummary {
	men := make([]float64, len(rows))
	women := make([]float64, len(rows))
	for i, r := range rows {
		men[i] = float64(r.Men)
		women[i] = float64(r.Women)
	}
	return GenderSummary{
		Men:   Describe(men),
		Women: Describe(women),
	}
}

func Round(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}
