// Package pipeline runs the stages of the education/GDP analysis: scrape the
// UN page, load the GDP file, store both, then describe, plot and regress.
package pipeline

import (
	"context"
	"fmt"
	"io"

	"educationgdp/internal/telemetry"
	"educationgdp/lib/analysis"
	"educationgdp/lib/charts"
	"educationgdp/lib/configuration"
	"educationgdp/lib/countrylink"
	"educationgdp/lib/dataset"
	"educationgdp/lib/gdp"
	"educationgdp/lib/report"
	"educationgdp/lib/scrapers/unstats"
	"educationgdp/lib/store"
)

const (
	report_education_rows    = "education.rows"
	report_gdp_rows          = "gdp.rows"
	report_joined_rows       = "joined.rows"
	report_unmatched_country = "join.unmatched-country"
	report_unlinked_country  = "join.unlinked-country"
	report_figures           = "charts.figures"
	report_scrape_failed     = "scrape"
	report_gdp_failed        = "gdp"
	report_analysis_failed   = "analysis"
)

const defaultLinkMinSimilarity = 0.8

type Pipeline struct {
	config configuration.Config
	store  store.Store
	tel    telemetry.API
	// console output
	out io.Writer
}

func New(config configuration.Config, s store.Store, tel telemetry.API, out io.Writer) Pipeline {
	return Pipeline{
		config: config,
		store:  s,
		tel:    telemetry.NewScopedAPI("pipeline", tel),
		out:    out,
	}
}

// Scrape reads the UN table (from the saved page if one is configured,
// otherwise from the source url) and replaces un_education with it.
func (p Pipeline) Scrape(ctx context.Context) ([]dataset.EducationRow, error) {
	var rows []dataset.EducationRow
	var err error
	if p.config.HtmlFile != "" {
		rows, err = unstats.ParseFile(ctx, p.config.HtmlFile)
	} else {
		rows, err = unstats.FetchAndParse(ctx, p.config.SourceUrl)
	}
	if err != nil {
		p.tel.ReportBroken(report_scrape_failed, err)
		return nil, err
	}
	if len(rows) == 0 {
		err = fmt.Errorf("no rows found on the page")
		p.tel.ReportBroken(report_scrape_failed, err)
		return nil, err
	}
	p.tel.ReportCount(report_education_rows, int64(len(rows)))

	err = p.store.ReplaceEducation(ctx, rows)
	if err != nil {
		return nil, fmt.Errorf("store education rows: %w", err)
	}
	return rows, nil
}

// LoadGDP reads the GDP file and replaces the gdp table with it.
func (p Pipeline) LoadGDP(ctx context.Context) ([]dataset.GDPRow, error) {
	rows, err := gdp.ReadFile(p.config.GdpFile, p.config.GdpOptions())
	if err != nil {
		p.tel.ReportBroken(report_gdp_failed, err)
		return nil, fmt.Errorf("read %s: %w", p.config.GdpFile, err)
	}
	p.tel.ReportCount(report_gdp_rows, int64(len(rows)))

	err = p.store.ReplaceGDP(ctx, rows)
	if err != nil {
		return nil, fmt.Errorf("store gdp rows: %w", err)
	}
	return rows, nil
}

type Result struct {
	Summary analysis.GenderSummary
	Models  analysis.GenderModels
	Points  analysis.Points
	Figures []string
}

// Analyze describes the scraped rows, fits the log-GDP regressions on the
// joined rows and renders the figures.
func (p Pipeline) Analyze(ctx context.Context) (Result, error) {
	education, err := p.store.Education(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("read education rows: %w", err)
	}
	if len(education) == 0 {
		return Result{}, fmt.Errorf("un_education is empty, run the scrape stage first")
	}
	summary := analysis.Summarize(education)
	report.Summary(p.out, summary)

	joined, err := p.store.Joined(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("join education with gdp: %w", err)
	}
	p.tel.ReportCount(report_joined_rows, int64(len(joined)))

	points := analysis.NewPoints(joined)
	models, err := analysis.FitGender(ctx, points)
	if err != nil {
		p.tel.ReportBroken(report_analysis_failed, err)
		return Result{}, err
	}
	report.Models(p.out, models)

	figures, err := charts.RenderAll(ctx, p.config.OutputDir, charts.Figures(points, models))
	if err != nil {
		p.tel.ReportBroken(report_analysis_failed, err)
		return Result{}, err
	}
	p.tel.ReportCount(report_figures, int64(len(figures)))

	return Result{
		Summary: summary,
		Models:  models,
		Points:  points,
		Figures: figures,
	}, nil
}

// Links pairs the country names of both tables and prints the pairs that
// only match approximately.
func (p Pipeline) Links(ctx context.Context, minSimilarity float64) ([]countrylink.Link, error) {
	countries, err := p.store.Countries(ctx)
	if err != nil {
		return nil, err
	}
	links := countrylink.CreateImplicitLinks(countries.Education, countries.GDP, minSimilarity)
	unlinked := countrylink.Unlinked(countries.Education, links, func(l countrylink.Link) string {
		return l.Education
	})
	report.Links(p.out, links, unlinked)
	return links, nil
}

// reportUnmatched warns about scraped countries that have no exact match
// in the GDP file, they never make it into the join.
func (p Pipeline) reportUnmatched(ctx context.Context) error {
	countries, err := p.store.Countries(ctx)
	if err != nil {
		return err
	}
	links := countrylink.CreateImplicitLinks(countries.Education, countries.GDP, defaultLinkMinSimilarity)
	for _, l := range countrylink.Inexact(links) {
		p.tel.ReportWarning(report_unmatched_country, l.Education, l.GDP)
	}
	unlinked := countrylink.Unlinked(countries.Education, links, func(l countrylink.Link) string {
		return l.Education
	})
	for _, name := range unlinked {
		p.tel.ReportWarning(report_unlinked_country, name)
	}
	return nil
}

// Run executes every stage once, in order.
func (p Pipeline) Run(ctx context.Context) (Result, error) {
	_, err := p.Scrape(ctx)
	if err != nil {
		return Result{}, err
	}
	_, err = p.LoadGDP(ctx)
	if err != nil {
		return Result{}, err
	}
	err = p.reportUnmatched(ctx)
	if err != nil {
		return Result{}, err
	}
	return p.Analyze(ctx)
}
