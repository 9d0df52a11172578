package countrylink

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

func TestCreateImplicitLinks(t *testing.T) {
	testCases := []struct {
		education []string
		gdp       []string
		// if Link.Similarity == 0
		// the test will not assert the similarity to be equal
		expected []Link
	}{
		{
			education: []string{"Albania", "Chile", "Japan"},
			gdp:       []string{"Albania", "Chile"},
			expected: []Link{
				{Education: "Albania", GDP: "Albania", Similarity: 1},
				{Education: "Chile", GDP: "Chile", Similarity: 1},
				{Education: "Japan", GDP: ""},
			},
		},
		{
			education: []string{"Guinea-Bissau", "Bahamas", "Gambia"},
			gdp:       []string{"Guinea Bissau", "Bahamas, The", "Gambia, The"},
			expected: []Link{
				{Education: "Bahamas", GDP: "Bahamas, The"},
				{Education: "Gambia", GDP: "Gambia, The"},
				{Education: "Guinea-Bissau", GDP: "Guinea Bissau", Similarity: 0.999},
			},
		},
		{
			education: []string{"Chile"},
			gdp:       []string{},
			expected:  nil,
		},
		{
			education: []string{},
			gdp:       []string{},
			expected:  nil,
		},
	}

	for _, test := range testCases {
		links := CreateImplicitLinks(test.education, test.gdp, 0)

		var expected []Link
		for _, l := range test.expected {
			if l.GDP != "" {
				expected = append(expected, l)
			}
		}

		diff := cmp.Diff(
			expected,
			links,
			cmp.Comparer(func(a, b Link) bool {
				if a.Education != b.Education || a.GDP != b.GDP {
					return false
				}
				return a.Similarity == 0 || b.Similarity == 0 || a.Similarity == b.Similarity
			}),
			cmpopts.EquateEmpty(),
		)
		if diff != "" {
			t.Fatal(diff)
		}
	}
}

func TestCreateImplicitLinksThreshold(t *testing.T) {
	links := CreateImplicitLinks(
		[]string{"Korea, Republic of", "Zambia"},
		[]string{"Korea, Rep.", "Vanuatu"},
		0.85,
	)
	require.Len(t, links, 1)
	require.Equal(t, "Korea, Republic of", links[0].Education)
	require.Equal(t, "Korea, Rep.", links[0].GDP)
	require.False(t, links[0].Exact())
	require.Len(t, Inexact(links), 1)

	unlinked := Unlinked([]string{"Korea, Republic of", "Zambia"}, links, func(l Link) string {
		return l.Education
	})
	require.Equal(t, []string{"Zambia"}, unlinked)
}

func TestCreateImplicitLinksNormalizedIsNotExact(t *testing.T) {
	links := CreateImplicitLinks(
		[]string{"Chile", "Viet Nam"},
		[]string{"Chile", "Vietnam"},
		0.8,
	)
	require.Len(t, links, 2)
	require.True(t, links[0].Exact())
	require.Equal(t, "Vietnam", links[1].GDP)
	require.False(t, links[1].Exact())
	require.Equal(t, []Link{links[1]}, Inexact(links))
}
