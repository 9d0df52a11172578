// Package gdp reads World Bank style GDP tables: a few metadata lines, a
// header row with "Country Name" and one column per year.
package gdp

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"educationgdp/lib/dataset"
)

const CountryColumn = "Country Name"

var ErrNoCountryColumn = errors.New("header has no \"Country Name\" column")
var ErrMissingYear = errors.New("header has no column for year")

type Options struct {
	// metadata lines before the header row
	SkipRows  int
	StartYear int
	EndYear   int
}

func DefaultOptions() Options {
	return Options{SkipRows: 4, StartYear: 1999, EndYear: 2010}
}

func (o Options) years() []int {
	var years []int
	for y := o.StartYear; y <= o.EndYear; y++ {
		years = append(years, y)
	}
	return years
}

// ReadFile reads a .csv or .xlsx file depending on its extension.
func ReadFile(path string, opts Options) ([]dataset.GDPRow, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return ReadXLSX(path, opts)
	default:
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return ReadCSV(f, opts)
	}
}

// ReadCSV reads the GDP table from CSV. Rows come out country-major and
// year-minor with one row per requested year, even when the value is empty.
// SkipRows counts raw lines, blank ones included.
func ReadCSV(r io.Reader, opts Options) ([]dataset.GDPRow, error) {
	buffered := bufio.NewReader(r)
	for i := 0; i < opts.SkipRows; i++ {
		_, err := buffered.ReadString('\n')
		if err == io.EOF {
			return nil, fmt.Errorf("%w: only %d lines", ErrNoCountryColumn, i)
		}
		if err != nil {
			return nil, fmt.Errorf("read gdp csv: %w", err)
		}
	}

	reader := csv.NewReader(buffered)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var records [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read gdp csv: %w", err)
		}
		records = append(records, record)
	}
	return fromRecords(records, opts.SkipRows, opts)
}

// fromRecords reads the header from records[0], `offset` is the number of
// source lines before it.
func fromRecords(records [][]string, offset int, opts Options) ([]dataset.GDPRow, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: no header row", ErrNoCountryColumn)
	}
	header := records[0]

	countryIdx := -1
	columns := map[string]int{}
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		columns[name] = i
		if name == CountryColumn {
			countryIdx = i
		}
	}
	if countryIdx < 0 {
		return nil, ErrNoCountryColumn
	}

	years := opts.years()
	yearIdx := make([]int, len(years))
	for i, y := range years {
		idx, ok := columns[strconv.Itoa(y)]
		if !ok {
			return nil, fmt.Errorf("%w %d", ErrMissingYear, y)
		}
		yearIdx[i] = idx
	}

	var rows []dataset.GDPRow
	for line, record := range records[1:] {
		if countryIdx >= len(record) {
			continue
		}
		country := strings.TrimSpace(record[countryIdx])
		if country == "" {
			continue
		}
		for i, y := range years {
			value, err := parseValue(record, yearIdx[i])
			if err != nil {
				return nil, fmt.Errorf(
					"line %d, %s %d: %w",
					offset+line+2, country, y, err,
				)
			}
			rows = append(rows, dataset.GDPRow{
				Country: country,
				Year:    y,
				GDP:     value,
			})
		}
	}
	return rows, nil
}

func parseValue(record []string, idx int) (*float64, error) {
	if idx >= len(record) {
		return nil, nil
	}
	text := strings.TrimSpace(record[idx])
	if text == "" || text == ".." {
		return nil, nil
	}
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil, err
	}
	return &value, nil
}
