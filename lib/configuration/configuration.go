// Package configuration defines education.json5, the pipeline's config file.
package configuration

import (
	"fmt"

	devenv "educationgdp/dev/env"
	"educationgdp/lib/configutil"
	"educationgdp/lib/gdp"
	"educationgdp/lib/scrapers/unstats"
)

const DefaultName = "education.json5"

type Config struct {
	// page to scrape, ignored when HtmlFile is set
	SourceUrl string `json:"source_url"`
	// a saved copy of the page
	HtmlFile string `json:"html_file"`

	GdpFile     string `json:"gdp_file"`
	GdpSkipRows int    `json:"gdp_skip_rows"`
	StartYear   int    `json:"start_year"`
	EndYear     int    `json:"end_year"`

	OutputDir string   `json:"output_dir"`
	Database  Database `json:"database"`

	// directory that receives a dump of every http message when running
	// with debug logging
	DumpHttp string `json:"dump_http"`
}

func Defaults() Config {
	opts := gdp.DefaultOptions()
	return Config{
		SourceUrl:   unstats.DefaultURL,
		GdpFile:     "country-gdp-1960-2014.csv",
		GdpSkipRows: opts.SkipRows,
		StartYear:   opts.StartYear,
		EndYear:     opts.EndYear,
		OutputDir:   ".",
		Database: Database{
			File: "education.db",
		},
	}
}

// Load reads `name` (and its .local overlay), filling unset fields with
// Defaults. A missing file yields the defaults.
func Load(name string) (Config, error) {
	cfg, err := configutil.ReadConfigWithDefaults(name, Defaults())
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", name, err)
	}
	err = cfg.Validate()
	if err != nil {
		return Config{}, err
	}
	return cfg, cfg.ResolvePaths()
}

// ResolvePaths expands <dev_state> prefixed file paths. The database file
// and dump_http are resolved when they are opened.
func (c *Config) ResolvePaths() error {
	for _, path := range []*string{&c.HtmlFile, &c.GdpFile, &c.OutputDir} {
		resolved, err := devenv.ResolvePath(*path)
		if err != nil {
			return err
		}
		*path = resolved
	}
	return nil
}

func (c Config) Validate() error {
	if c.StartYear > c.EndYear {
		return fmt.Errorf("start_year %d is after end_year %d", c.StartYear, c.EndYear)
	}
	if c.GdpSkipRows < 0 {
		return fmt.Errorf("gdp_skip_rows must not be negative")
	}
	if c.Database.File == "" && c.Database.Url == "" {
		return fmt.Errorf("database needs a file or url")
	}
	return nil
}

func (c Config) GdpOptions() gdp.Options {
	return gdp.Options{
		SkipRows:  c.GdpSkipRows,
		StartYear: c.StartYear,
		EndYear:   c.EndYear,
	}
}
