// Package dataset holds the rows that flow between the pipeline stages.
package dataset

// EducationRow is one country/year of the UN school life expectancy table.
// Men and Women are expected years of schooling.
type EducationRow struct {
	Country string
	Year    int
	Men     int
	Women   int
}

// GDPRow is one country/year of the GDP file, GDP is nil when the source
// has no value.
type GDPRow struct {
	Country string
	Year    int
	GDP     *float64
}

// JoinedRow is an education row that has a GDP value for the same
// country and year.
type JoinedRow struct {
	Country string
	Year    int
	Men     int
	Women   int
	GDP     float64
}
