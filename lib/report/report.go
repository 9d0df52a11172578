// Package report prints the results of the pipeline to the console.
package report

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"educationgdp/lib/analysis"
	"educationgdp/lib/countrylink"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

func NewTable(out io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(out)
	return t
}

func genderSentence(gender string, s analysis.Summary) string {
	return fmt.Sprintf(
		"The international average number of years %s are likely to stay in school is %s with a variation of approximately %s years.",
		gender,
		decimal(analysis.Round(s.Mean, 2)),
		decimal(analysis.Round(s.Std, 2)),
	)
}

// decimal formats v with as few digits as needed but always with a
// fractional part, 13 prints as "13.0".
func decimal(v float64) string {
	text := strconv.FormatFloat(v, 'f', -1, 64)
	if math.IsInf(v, 0) || math.IsNaN(v) || strings.Contains(text, ".") {
		return text
	}
	return text + ".0"
}

// Summary prints the average years of schooling of each gender.
func Summary(out io.Writer, s analysis.GenderSummary) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, genderSentence("men", s.Men))
	fmt.Fprintln(out, genderSentence("women", s.Women))
}

func num(v float64) string {
	switch {
	case math.IsInf(v, 0), math.IsNaN(v):
		return fmt.Sprint(v)
	case v != 0 && (math.Abs(v) < 1e-3 || math.Abs(v) >= 1e6):
		return fmt.Sprintf("%.3e", v)
	default:
		return fmt.Sprintf("%.4f", v)
	}
}

// Model prints a regression table of `m` followed by its headline numbers.
func Model(out io.Writer, title, dependent string, m analysis.Model) {
	fmt.Fprintln(out)

	fit := NewTable(out)
	fit.SetTitle(title)
	fit.AppendRows([]table.Row{
		{"Dep. Variable:", dependent, "R-squared:", num(m.RSquared)},
		{"Model:", "OLS", "Adj. R-squared:", num(m.AdjRSquared)},
		{"No. Observations:", m.N, "F-statistic:", num(m.FStatistic)},
		{"Df Residuals:", m.DFResid, "Prob (F-statistic):", num(m.FPValue)},
		{"Df Model:", 1, "Log-Likelihood:", num(m.LogLik)},
		{"AIC:", num(m.AIC), "BIC:", num(m.BIC)},
	})
	fit.Render()

	coefs := NewTable(out)
	coefs.AppendHeader(table.Row{"", "coef", "std err", "t", "P>|t|", "[0.025", "0.975]"})
	for _, c := range []struct {
		name string
		coef analysis.Coefficient
	}{
		{"const", m.Intercept},
		{"log_GDP", m.Slope},
	} {
		coefs.AppendRow(table.Row{
			c.name,
			num(c.coef.Value),
			num(c.coef.StdErr),
			num(c.coef.T),
			fmt.Sprintf("%.3f", c.coef.P),
			num(c.coef.Lower),
			num(c.coef.Upper),
		})
	}
	coefs.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
		{Number: 6, Align: text.AlignRight},
		{Number: 7, Align: text.AlignRight},
	})
	coefs.Render()

	fmt.Fprintln(out, "Intercept:  ", m.Intercept.Value)
	fmt.Fprintln(out, "Coefficient:", m.Slope.Value)
	fmt.Fprintln(out, "P-Value:    ", m.Intercept.P)
	fmt.Fprintln(out, "R-Squared:  ", m.RSquared)
}

// Models prints both gender regressions.
func Models(out io.Writer, models analysis.GenderModels) {
	Model(out, "Men: OLS Regression Results", "Men", models.Men)
	fmt.Fprintln(out, "Correlation:", models.MenCorrelation)
	Model(out, "Women: OLS Regression Results", "Women", models.Women)
	fmt.Fprintln(out, "Correlation:", models.WomenCorrelation)
}

// Links prints the country links that are not exact matches along with
// the names that could not be linked at all.
func Links(out io.Writer, links []countrylink.Link, unlinked []string) {
	t := NewTable(out)
	t.SetTitle("Countries spelled differently")
	t.AppendHeader(table.Row{"UN name", "GDP name", "Similarity"})
	for _, l := range countrylink.Inexact(links) {
		t.AppendRow(table.Row{l.Education, l.GDP, fmt.Sprintf("%.3f", l.Similarity)})
	}
	for _, name := range unlinked {
		t.AppendRow(table.Row{name, "-", "-"})
	}
	t.Render()
}
