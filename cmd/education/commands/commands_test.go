package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"educationgdp/lib/configuration"
	"educationgdp/lib/store"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir string) string {
	path := filepath.Join(dir, configuration.DefaultName)
	contents := fmt.Sprintf(`{
		gdp_file: %q,
		output_dir: %q,
		database: { file: %q },
	}`,
		filepath.Join(dir, "missing.csv"),
		filepath.Join(dir, "figures"),
		filepath.Join(dir, "education.db"),
	)
	err := os.WriteFile(path, []byte(contents), 0600)
	require.NoError(t, err)
	return path
}

func writePage(t *testing.T, dir string) string {
	var b strings.Builder
	b.WriteString("<html><body>")
	for i := 0; i < 6; i++ {
		b.WriteString("<table><tr><td>layout</td></tr></table>")
	}
	b.WriteString("<table><tr><td>1</td></tr><tr><td>2</td></tr><tr><td>3</td></tr><tr><td><table>")
	for i := 0; i < 4; i++ {
		b.WriteString("<tr><td>header</td></tr>")
	}
	for _, country := range []string{"Albania", "Chile"} {
		cells := []string{country, "2008", "-", "-", "-", "-", "-", "12", "-", "-", "13"}
		b.WriteString("<tr><td>" + strings.Join(cells, "</td><td>") + "</td></tr>")
	}
	b.WriteString("</table></td></tr></table></body></html>")

	path := filepath.Join(dir, "education.htm")
	err := os.WriteFile(path, []byte(b.String()), 0600)
	require.NoError(t, err)
	return path
}

func execute(args ...string) error {
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(context.Background())
}

func TestFailingCommandReturnsError(t *testing.T) {
	config := writeConfig(t, t.TempDir())

	err := execute("gdp", "--config", config)
	require.ErrorIs(t, err, os.ErrNotExist)
	require.False(t, tel.Enabled())
	require.NoError(t, tel.Shutdown(context.Background()))
}

func TestScrapeCommand(t *testing.T) {
	dir := t.TempDir()
	config := writeConfig(t, dir)
	page := writePage(t, dir)

	err := execute("scrape", "--config", config, "--html", page)
	require.NoError(t, err)

	ctx := context.Background()
	s, err := store.Open(ctx, configuration.Database{File: filepath.Join(dir, "education.db")})
	require.NoError(t, err)
	defer s.Close()

	rows, err := s.Education(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, 12, rows[0].Men)
	require.Equal(t, 13, rows[0].Women)
}
