package report

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"educationgdp/lib/analysis"
	"educationgdp/lib/countrylink"

	"github.com/stretchr/testify/require"
)

func TestSummary(t *testing.T) {
	var out bytes.Buffer
	Summary(&out, analysis.GenderSummary{
		Men:   analysis.Summary{Count: 3, Mean: 12.3456, Std: 2.999},
		Women: analysis.Summary{Count: 3, Mean: 12.5, Std: 3.1},
	})

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Equal(t, []string{
		"The international average number of years men are likely to stay in school is 12.35 with a variation of approximately 3.0 years.",
		"The international average number of years women are likely to stay in school is 12.5 with a variation of approximately 3.1 years.",
	}, lines)
}

func TestModel(t *testing.T) {
	m, err := analysis.FitOLS([]float64{1, 2, 3, 4, 5}, []float64{2, 4, 5, 4, 5})
	require.NoError(t, err)

	var out bytes.Buffer
	Model(&out, "Men: OLS Regression Results", "Men", m)
	rendered := out.String()

	require.Contains(t, rendered, "Men: OLS Regression Results")
	require.Contains(t, rendered, "log_GDP")
	require.Contains(t, rendered, "0.124")
	require.Regexp(t, `Intercept:\s+2\.(2|19)`, rendered)
	require.Regexp(t, `R-Squared:\s+0\.(6|59)`, rendered)

	// the headline p-value is the intercept's, the slope's is in the table
	require.InDelta(t, 0.10074, m.Intercept.P, 1e-4)
	require.Contains(t, rendered, fmt.Sprintln("P-Value:    ", m.Intercept.P))
	require.NotContains(t, rendered, fmt.Sprintln("P-Value:    ", m.Slope.P))
}

func TestDecimal(t *testing.T) {
	require.Equal(t, "13.0", decimal(13))
	require.Equal(t, "12.35", decimal(12.35))
	require.Equal(t, "0.0", decimal(0))
	require.Equal(t, "-2.5", decimal(-2.5))
}

func TestLinks(t *testing.T) {
	var out bytes.Buffer
	Links(&out, []countrylink.Link{
		{Education: "Chile", GDP: "Chile", Similarity: 1},
		{Education: "Korea, Republic of", GDP: "Korea, Rep.", Similarity: 0.91},
	}, []string{"Zambia"})
	rendered := out.String()

	require.Contains(t, rendered, "Korea, Rep.")
	require.Contains(t, rendered, "0.910")
	require.Contains(t, rendered, "Zambia")
	require.NotContains(t, rendered, "Chile")
}
