// Package countrylink pairs the country names of the UN table with the
// names used by the GDP file, which spell some countries differently.
package countrylink

import (
	"sort"

	"educationgdp/lib/textutil"

	"github.com/antzucaro/matchr"
)

type Link struct {
	Education string
	GDP       string
	// 1 only for identical names
	Similarity float64
}

func (l Link) Exact() bool {
	return l.Similarity == 1
}

// normalizedSimilarity is given to names that only match after
// normalization.
const normalizedSimilarity = 0.999

// CreateImplicitLinks pairs names that are equal after normalization, then
// links every remaining education name to its most similar unmatched GDP
// name. Links below `minSimilarity` are discarded. The result is sorted by
// education name.
func CreateImplicitLinks(education, gdp []string, minSimilarity float64) []Link {
	var result []Link
	matchedEducation := make(map[string]struct{})
	matchedGDP := make(map[string]struct{})

	gdpByKey := make(map[string]string, len(gdp))
	for _, name := range gdp {
		key := textutil.NormalizeName(name)
		if _, exists := gdpByKey[key]; !exists {
			gdpByKey[key] = name
		}
	}

	for _, name := range education {
		match, ok := gdpByKey[textutil.NormalizeName(name)]
		if !ok {
			continue
		}
		if _, taken := matchedGDP[match]; taken {
			continue
		}
		// the join compares raw names, only identical spellings are exact
		similarity := 1.0
		if name != match {
			similarity = normalizedSimilarity
		}
		result = append(result, Link{Education: name, GDP: match, Similarity: similarity})
		matchedEducation[name] = struct{}{}
		matchedGDP[match] = struct{}{}
	}

	for _, name := range education {
		if _, matched := matchedEducation[name]; matched {
			continue
		}

		var mostSimilarity float64
		var mostSimilarGDP string
		left := textutil.NormalizeName(name)
		for _, candidate := range gdp {
			if _, taken := matchedGDP[candidate]; taken {
				continue
			}
			similarity := matchr.JaroWinkler(left, textutil.NormalizeName(candidate), false)
			if similarity > mostSimilarity {
				mostSimilarity = similarity
				mostSimilarGDP = candidate
			}
		}

		if mostSimilarity > 0 && mostSimilarity >= minSimilarity {
			// normalized names differ, so this is never reported as exact
			if mostSimilarity >= 1 {
				mostSimilarity = normalizedSimilarity
			}
			result = append(result, Link{
				Education:  name,
				GDP:        mostSimilarGDP,
				Similarity: mostSimilarity,
			})
			matchedEducation[name] = struct{}{}
			matchedGDP[mostSimilarGDP] = struct{}{}
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Education < result[j].Education
	})
	return result
}

// Unlinked returns the names of `names` that no link refers to.
func Unlinked(names []string, links []Link, side func(Link) string) []string {
	linked := make(map[string]struct{}, len(links))
	for _, l := range links {
		linked[side(l)] = struct{}{}
	}
	var out []string
	for _, name := range names {
		if _, ok := linked[name]; !ok {
			out = append(out, name)
		}
	}
	return out
}

// Inexact filters the links that are not exact matches.
func Inexact(links []Link) []Link {
	var out []Link
	for _, l := range links {
		if !l.Exact() {
			out = append(out, l)
		}
	}
	return out
}
