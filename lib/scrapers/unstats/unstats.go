// Package unstats scrapes the archived UN Statistics page of school life
// expectancy by gender.
package unstats

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"regexp"
	"strconv"

	"educationgdp/lib/dataset"
	"educationgdp/lib/htmlutil"
	"educationgdp/lib/restyutil"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const DefaultURL = "http://web.archive.org/web/20110514112442/http://unstats.un.org/unsd/demographic/products/socind/education.htm"

// the page nests the statistics table inside a layout table, these are the
// positions that lead to it
const (
	layoutTableIdx = 6
	layoutRowIdx   = 3
	dataTableIdx   = 0
	headerRows     = 4
)

// cell positions inside a data row
const (
	countryCell = 0
	yearCell    = 1
	menCell     = 7
	womenCell   = 10
)

var ErrLayout = errors.New("unexpected page layout")

var client = resty.New()

func init() {
	restyutil.InstrumentClient(client, tracer, nil)
}

// Fetch downloads the page at `url`.
func Fetch(ctx context.Context, url string) ([]byte, error) {
	ctx, span := tracer.Start(ctx, "Fetch")
	defer span.End()

	res, err := client.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	if res.IsError() {
		err = fmt.Errorf("fetch %s: unexpected status %s", url, res.Status())
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	slog.DebugContext(ctx, "fetched page", "url", url, "bytes", len(res.Body()))
	return res.Body(), nil
}

// FetchAndParse is Fetch followed by Parse.
func FetchAndParse(ctx context.Context, url string) ([]dataset.EducationRow, error) {
	body, err := Fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	return Parse(ctx, bytes.NewReader(body))
}

// ParseFile parses a saved copy of the page.
func ParseFile(ctx context.Context, path string) ([]dataset.EducationRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(ctx, f)
}

func pick(sel *goquery.Selection, selector string, idx int, step string) (*goquery.Selection, error) {
	found := sel.Find(selector)
	if idx >= found.Length() {
		return nil, fmt.Errorf(
			"%w: %s: wanted %s #%d, found %d",
			ErrLayout, step, selector, idx, found.Length(),
		)
	}
	return found.Eq(idx), nil
}

// Parse walks the fixed positions of the page down to the statistics table
// and reads country, year, men and women from every data row. Rows whose
// values cannot be coerced are skipped.
func Parse(ctx context.Context, r io.Reader) ([]dataset.EducationRow, error) {
	ctx, span := tracer.Start(ctx, "Parse")
	defer span.End()

	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	layout, err := pick(doc.Selection, "table", layoutTableIdx, "layout table")
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	row, err := pick(layout, "tr", layoutRowIdx, "layout row")
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	table, err := pick(row, "table", dataTableIdx, "data table")
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	var rows []dataset.EducationRow
	skipped := 0
	table.Find("tr").Each(func(i int, tr *goquery.Selection) {
		if i < headerRows {
			return
		}
		parsed, err := parseRow(tr.Find("td"))
		if err != nil {
			slog.DebugContext(ctx, "skipping row", "row", i, "err", err)
			skipped++
			return
		}
		rows = append(rows, parsed)
	})

	if skipped > 0 {
		slog.WarnContext(ctx, "skipped rows that could not be coerced", "count", skipped)
	}
	span.SetAttributes(
		attribute.Int("rows", len(rows)),
		attribute.Int("skipped", skipped),
	)
	return rows, nil
}

var yearRegex = regexp.MustCompile(`\d{4}`)

func parseRow(cells *goquery.Selection) (dataset.EducationRow, error) {
	if cells.Length() <= womenCell {
		return dataset.EducationRow{}, fmt.Errorf("row has %d cells", cells.Length())
	}

	// footnote markers would otherwise become part of the name
	nameCell := cells.Eq(countryCell).Clone()
	nameCell.Find("sup").Remove()
	country := htmlutil.CellText(nameCell)
	if country == "" {
		return dataset.EducationRow{}, fmt.Errorf("empty country")
	}

	yearText := yearRegex.FindString(htmlutil.CellText(cells.Eq(yearCell)))
	year, err := strconv.Atoi(yearText)
	if err != nil {
		return dataset.EducationRow{}, fmt.Errorf("year of %s: %w", country, err)
	}
	men, err := parseYears(htmlutil.CellText(cells.Eq(menCell)))
	if err != nil {
		return dataset.EducationRow{}, fmt.Errorf("men of %s: %w", country, err)
	}
	women, err := parseYears(htmlutil.CellText(cells.Eq(womenCell)))
	if err != nil {
		return dataset.EducationRow{}, fmt.Errorf("women of %s: %w", country, err)
	}

	return dataset.EducationRow{
		Country: country,
		Year:    year,
		Men:     men,
		Women:   women,
	}, nil
}

func parseYears(text string) (int, error) {
	n, err := strconv.Atoi(text)
	if err == nil {
		return n, nil
	}
	f, ferr := strconv.ParseFloat(text, 64)
	if ferr != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, err
	}
	return int(math.Round(f)), nil
}
