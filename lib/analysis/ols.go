package analysis

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

var ErrTooFewPoints = errors.New("too few points for a regression")
var ErrConstantX = errors.New("regressor has no variance")

// Coefficient is one estimated parameter of a Model.
type Coefficient struct {
	Value  float64
	StdErr float64
	T      float64
	// two-sided p-value of T
	P float64
	// 95% confidence interval
	Lower float64
	Upper float64
}

// Model is a fitted y = intercept + slope*x.
type Model struct {
	N         int
	Intercept Coefficient
	Slope     Coefficient

	RSquared    float64
	AdjRSquared float64
	FStatistic  float64
	FPValue     float64
	LogLik      float64
	AIC         float64
	BIC         float64
	// residual degrees of freedom
	DFResid int
	// sum of squared residuals
	SSR float64
}

func (m Model) Predict(x float64) float64 {
	return m.Intercept.Value + m.Slope.Value*x
}

// Line predicts every x of `xs`.
func (m Model) Line(xs []float64) []float64 {
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = m.Predict(x)
	}
	return ys
}

// FitOLS fits y on x with an intercept by ordinary least squares.
func FitOLS(x, y []float64) (Model, error) {
	if len(x) != len(y) {
		return Model{}, fmt.Errorf("x has %d values, y has %d", len(x), len(y))
	}
	n := len(x)
	if n < 3 {
		return Model{}, fmt.Errorf("%w: %d", ErrTooFewPoints, n)
	}

	xbar := stat.Mean(x, nil)
	var sxx float64
	for _, v := range x {
		sxx += (v - xbar) * (v - xbar)
	}
	if sxx == 0 {
		return Model{}, ErrConstantX
	}

	alpha, beta := stat.LinearRegression(x, y, nil, false)

	ybar := stat.Mean(y, nil)
	var ssr, sst float64
	for i := range x {
		residual := y[i] - (alpha + beta*x[i])
		ssr += residual * residual
		sst += (y[i] - ybar) * (y[i] - ybar)
	}

	nf := float64(n)
	df := n - 2
	s2 := ssr / float64(df)

	tdist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(df)}
	tcrit := tdist.Quantile(0.975)

	m := Model{
		N:         n,
		Intercept: coefficient(alpha, math.Sqrt(s2*(1/nf+xbar*xbar/sxx)), tdist, tcrit),
		Slope:     coefficient(beta, math.Sqrt(s2/sxx), tdist, tcrit),
		RSquared:  stat.RSquared(x, y, nil, alpha, beta),
		DFResid:   df,
		SSR:       ssr,
	}
	m.AdjRSquared = 1 - (1-m.RSquared)*(nf-1)/float64(df)

	if s2 > 0 {
		m.FStatistic = (sst - ssr) / s2
		fdist := distuv.F{D1: 1, D2: float64(df)}
		m.FPValue = 1 - fdist.CDF(m.FStatistic)
	} else {
		m.FStatistic = math.Inf(1)
	}

	m.LogLik = -nf / 2 * (math.Log(2*math.Pi) + math.Log(ssr/nf) + 1)
	m.AIC = -2*m.LogLik + 2*2
	m.BIC = -2*m.LogLik + 2*math.Log(nf)

	return m, nil
}

func coefficient(value, stderr float64, tdist distuv.StudentsT, tcrit float64) Coefficient {
	c := Coefficient{
		Value:  value,
		StdErr: stderr,
		Lower:  value - tcrit*stderr,
		Upper:  value + tcrit*stderr,
	}
	switch {
	case stderr > 0:
		c.T = value / stderr
	case value != 0:
		c.T = math.Copysign(math.Inf(1), value)
	}
	c.P = 2 * (1 - tdist.CDF(math.Abs(c.T)))
	return c
}

// Correlation is Pearson's r of x and y.
func Correlation(x, y []float64) float64 {
	return stat.Correlation(x, y, nil)
}

// LineGrid returns min(xs), min+step, ... below max(xs), followed by
// max(xs) so that a line drawn over it spans every point.
func LineGrid(xs []float64, step float64) []float64 {
	if len(xs) == 0 || step <= 0 {
		return nil
	}
	lo, hi := floats.Min(xs), floats.Max(xs)
	var grid []float64
	for i := 0; ; i++ {
		v := lo + float64(i)*step
		if v >= hi {
			break
		}
		grid = append(grid, v)
	}
	return append(grid, hi)
}
