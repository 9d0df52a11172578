package gdp

import (
	"path/filepath"
	"strings"
	"testing"

	"educationgdp/lib/dataset"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const sampleCSV = `"Data Source","World Development Indicators",

"Last Updated Date","2015-10-01",

"Country Name","Country Code","Indicator Name","Indicator Code","1998","1999","2000","2001",
"Aruba","ABW","GDP (current US$)","NY.GDP.MKTP.CD","1665013966.48","1722798882.68","1873452513.97","",
"Albania","ALB","GDP (current US$)","NY.GDP.MKTP.CD","2545964541.12","3212121651.41","3480355258.04","3922100793.5",
"","","","","","","","",
`

func float(v float64) *float64 {
	return &v
}

func TestReadCSV(t *testing.T) {
	rows, err := ReadCSV(strings.NewReader(sampleCSV), Options{SkipRows: 4, StartYear: 1999, EndYear: 2001})
	require.NoError(t, err)

	expected := []dataset.GDPRow{
		{Country: "Aruba", Year: 1999, GDP: float(1722798882.68)},
		{Country: "Aruba", Year: 2000, GDP: float(1873452513.97)},
		{Country: "Aruba", Year: 2001},
		{Country: "Albania", Year: 1999, GDP: float(3212121651.41)},
		{Country: "Albania", Year: 2000, GDP: float(3480355258.04)},
		{Country: "Albania", Year: 2001, GDP: float(3922100793.5)},
	}
	if diff := cmp.Diff(expected, rows); diff != "" {
		t.Fatal(diff)
	}
}

func TestReadCSVErrors(t *testing.T) {
	_, err := ReadCSV(strings.NewReader(sampleCSV), Options{SkipRows: 0, StartYear: 1999, EndYear: 2000})
	require.ErrorIs(t, err, ErrNoCountryColumn)

	_, err = ReadCSV(strings.NewReader(sampleCSV), Options{SkipRows: 4, StartYear: 1999, EndYear: 2010})
	require.ErrorIs(t, err, ErrMissingYear)
	require.Contains(t, err.Error(), "2002")

	_, err = ReadCSV(strings.NewReader(sampleCSV), Options{SkipRows: 40, StartYear: 1999, EndYear: 2000})
	require.ErrorIs(t, err, ErrNoCountryColumn)

	broken := "Country Name,1999\nAruba,lots\n"
	_, err = ReadCSV(strings.NewReader(broken), Options{StartYear: 1999, EndYear: 1999})
	require.Error(t, err)
	require.Contains(t, err.Error(), "Aruba 1999")
}

func TestReadXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gdp.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]any{"Data Source", "World Development Indicators"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]any{"Country Name", "Country Code", "1999", "2000"}))
	require.NoError(t, f.SetSheetRow(sheet, "A3", &[]any{"Chile", "CHL", 75000000000.5, ""}))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	rows, err := ReadFile(path, Options{SkipRows: 1, StartYear: 1999, EndYear: 2000})
	require.NoError(t, err)

	expected := []dataset.GDPRow{
		{Country: "Chile", Year: 1999, GDP: float(75000000000.5)},
		{Country: "Chile", Year: 2000},
	}
	if diff := cmp.Diff(expected, rows); diff != "" {
		t.Fatal(diff)
	}
}
