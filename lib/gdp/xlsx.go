package gdp

import (
	"fmt"

	"educationgdp/lib/dataset"

	"github.com/xuri/excelize/v2"
)

// ReadXLSX reads the GDP table from the first sheet of a workbook.
func ReadXLSX(path string, opts Options) ([]dataset.GDPRow, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook %s has no sheets", path)
	}

	records, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheets[0], err)
	}
	if opts.SkipRows >= len(records) {
		return nil, fmt.Errorf("%w: only %d rows", ErrNoCountryColumn, len(records))
	}
	return fromRecords(records[opts.SkipRows:], opts.SkipRows, opts)
}
