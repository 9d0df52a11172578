package analysis

import (
	"context"
	"math"
	"testing"

	"educationgdp/lib/dataset"
	"educationgdp/lib/telemetry"

	"github.com/stretchr/testify/require"
)

func TestDescribe(t *testing.T) {
	s := Describe([]float64{11, 15, 7, 17})
	require.Equal(t, 4, s.Count)
	require.InDelta(t, 12.5, s.Mean, 1e-9)
	// sample standard deviation, like pandas' Series.std()
	require.InDelta(t, 4.434712, s.Std, 1e-6)
	require.Equal(t, 7.0, s.Min)
	require.Equal(t, 17.0, s.Max)

	require.Equal(t, Summary{}, Describe(nil))
	require.Equal(t, Summary{Count: 1, Mean: 3, Min: 3, Max: 3}, Describe([]float64{3}))
}

func TestSummarize(t *testing.T) {
	summary := Summarize([]dataset.EducationRow{
		{Country: "a", Year: 2000, Men: 10, Women: 12},
		{Country: "b", Year: 2000, Men: 14, Women: 12},
	})
	require.InDelta(t, 12, summary.Men.Mean, 1e-9)
	require.InDelta(t, 2.828427, summary.Men.Std, 1e-6)
	require.InDelta(t, 12, summary.Women.Mean, 1e-9)
	require.Equal(t, 0.0, summary.Women.Std)
}

func TestRound(t *testing.T) {
	require.Equal(t, 12.35, Round(12.3456, 2))
	require.Equal(t, 4.43, Round(4.434712, 2))
}

func TestFitOLS(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}
	y := []float64{2, 4, 5, 4, 5}

	m, err := FitOLS(x, y)
	require.NoError(t, err)

	require.Equal(t, 5, m.N)
	require.Equal(t, 3, m.DFResid)
	require.InDelta(t, 2.2, m.Intercept.Value, 1e-9)
	require.InDelta(t, 0.6, m.Slope.Value, 1e-9)
	require.InDelta(t, 2.4, m.SSR, 1e-9)
	require.InDelta(t, 0.6, m.RSquared, 1e-9)
	require.InDelta(t, 0.466667, m.AdjRSquared, 1e-6)

	require.InDelta(t, 0.938083, m.Intercept.StdErr, 1e-6)
	require.InDelta(t, 0.282843, m.Slope.StdErr, 1e-6)
	require.InDelta(t, 2.121320, m.Slope.T, 1e-6)
	require.InDelta(t, 0.12404, m.Slope.P, 1e-4)
	require.InDelta(t, 4.5, m.FStatistic, 1e-9)
	require.InDelta(t, m.Slope.P, m.FPValue, 1e-6)

	// t(0.975, 3) = 3.182446
	require.InDelta(t, 0.6-3.182446*0.282843, m.Slope.Lower, 1e-5)
	require.InDelta(t, 0.6+3.182446*0.282843, m.Slope.Upper, 1e-5)

	require.InDelta(t, 2.2+0.6*10, m.Predict(10), 1e-9)
	require.InDeltaSlice(t, []float64{2.2, 2.8, 8.2}, m.Line([]float64{0, 1, 10}), 1e-9)
	require.InDelta(t, -2*m.LogLik+4, m.AIC, 1e-9)
}

func TestFitOLSPerfect(t *testing.T) {
	m, err := FitOLS([]float64{1, 2, 3}, []float64{3, 5, 7})
	require.NoError(t, err)
	require.InDelta(t, 1, m.Intercept.Value, 1e-9)
	require.InDelta(t, 2, m.Slope.Value, 1e-9)
	require.InDelta(t, 1, m.RSquared, 1e-9)
	require.Greater(t, m.FStatistic, 1e6)
	require.False(t, math.IsNaN(m.Slope.P))
}

func TestFitOLSErrors(t *testing.T) {
	_, err := FitOLS([]float64{1, 2}, []float64{1, 2})
	require.ErrorIs(t, err, ErrTooFewPoints)

	_, err = FitOLS([]float64{2, 2, 2}, []float64{1, 2, 3})
	require.ErrorIs(t, err, ErrConstantX)

	_, err = FitOLS([]float64{1, 2, 3}, []float64{1, 2})
	require.Error(t, err)
}

func TestLineGrid(t *testing.T) {
	require.Equal(t, []float64{8, 8.5, 9, 9.5, 9.8}, LineGrid([]float64{9.8, 8, 9.1}, 0.5))
	require.Equal(t, []float64{1, 1.5, 2}, LineGrid([]float64{2, 1}, 0.5))
	require.Nil(t, LineGrid(nil, 0.5))
}

func TestFitGender(t *testing.T) {
	telemetry.SetupForTesting(t)

	rows := []dataset.JoinedRow{
		{Country: "a", Year: 2000, Men: 8, Women: 7, GDP: 1e8},
		{Country: "b", Year: 2000, Men: 10, Women: 10, GDP: 1e9},
		{Country: "c", Year: 2000, Men: 12, Women: 13, GDP: 1e10},
		{Country: "d", Year: 2000, Men: 14, Women: 16, GDP: 1e11},
		{Country: "e", Year: 2000, Men: 99, Women: 99, GDP: 0},
	}
	points := NewPoints(rows)
	require.Equal(t, 4, points.Len())
	require.InDeltaSlice(t, []float64{8, 9, 10, 11}, points.LogGDP, 1e-12)

	models, err := FitGender(context.Background(), points)
	require.NoError(t, err)
	require.InDelta(t, 2, models.Men.Slope.Value, 1e-9)
	require.InDelta(t, -8, models.Men.Intercept.Value, 1e-9)
	require.InDelta(t, 3, models.Women.Slope.Value, 1e-9)
	require.InDelta(t, -17, models.Women.Intercept.Value, 1e-9)
	require.InDelta(t, 1, models.MenCorrelation, 1e-9)

	_, err = FitGender(context.Background(), NewPoints(rows[:2]))
	require.ErrorIs(t, err, ErrTooFewPoints)
}
