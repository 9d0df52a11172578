// Package store persists the scraped and loaded datasets and joins them.
package store

import (
	"context"
	"database/sql"
	"fmt"

	"educationgdp/lib/configuration"
	"educationgdp/lib/dataset"
	"educationgdp/lib/store/db"
	"educationgdp/lib/telemetry"

	"go.opentelemetry.io/otel/attribute"
)

var tracer = telemetry.Tracer("educationgdp.lib.store")

type Store struct {
	db  *sql.DB
	qry *db.Queries
}

// Open opens the configured database and makes sure both tables exist.
func Open(ctx context.Context, config configuration.Database) (Store, error) {
	database, err := config.OpenDB()
	if err != nil {
		return Store{}, err
	}
	store, err := New(ctx, database)
	if err != nil {
		database.Close()
		return Store{}, err
	}
	return store, nil
}

// New applies the schema to an already opened database.
func New(ctx context.Context, database *sql.DB) (Store, error) {
	_, err := database.ExecContext(ctx, db.Schema)
	if err != nil {
		return Store{}, fmt.Errorf("apply schema: %w", err)
	}
	return Store{
		db:  database,
		qry: db.New(database),
	}, nil
}

func (s Store) Close() error {
	return s.db.Close()
}

// ReplaceEducation swaps the contents of un_education for `rows`.
func (s Store) ReplaceEducation(ctx context.Context, rows []dataset.EducationRow) error {
	ctx, span := tracer.Start(ctx, "ReplaceEducation")
	defer span.End()
	span.SetAttributes(attribute.Int("rows", len(rows)))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()
	txqry := s.qry.WithTx(tx)

	err = txqry.DeleteEducation(ctx)
	if err != nil {
		return fmt.Errorf("clear un_education: %w", err)
	}
	for _, r := range rows {
		err = txqry.CreateEducation(ctx, db.UnEducation{
			Country: r.Country,
			Year:    int64(r.Year),
			Men:     int64(r.Men),
			Women:   int64(r.Women),
		})
		if err != nil {
			return fmt.Errorf("insert %s %d: %w", r.Country, r.Year, err)
		}
	}
	return tx.Commit()
}

// ReplaceGDP swaps the contents of gdp for `rows`, nil values are stored
// as NULL.
func (s Store) ReplaceGDP(ctx context.Context, rows []dataset.GDPRow) error {
	ctx, span := tracer.Start(ctx, "ReplaceGDP")
	defer span.End()
	span.SetAttributes(attribute.Int("rows", len(rows)))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()
	txqry := s.qry.WithTx(tx)

	err = txqry.DeleteGdp(ctx)
	if err != nil {
		return fmt.Errorf("clear gdp: %w", err)
	}
	for _, r := range rows {
		value := sql.NullFloat64{}
		if r.GDP != nil {
			value = sql.NullFloat64{Float64: *r.GDP, Valid: true}
		}
		err = txqry.CreateGdp(ctx, db.Gdp{
			Country: r.Country,
			Year:    int64(r.Year),
			Gdp:     value,
		})
		if err != nil {
			return fmt.Errorf("insert %s %d: %w", r.Country, r.Year, err)
		}
	}
	return tx.Commit()
}

func (s Store) Education(ctx context.Context) ([]dataset.EducationRow, error) {
	rows, err := s.qry.GetEducation(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dataset.EducationRow, len(rows))
	for i, r := range rows {
		out[i] = dataset.EducationRow{
			Country: r.Country,
			Year:    int(r.Year),
			Men:     int(r.Men),
			Women:   int(r.Women),
		}
	}
	return out, nil
}

// Joined returns the education rows that have a GDP value for the same
// country and year.
func (s Store) Joined(ctx context.Context) ([]dataset.JoinedRow, error) {
	ctx, span := tracer.Start(ctx, "Joined")
	defer span.End()

	rows, err := s.qry.GetJoined(ctx)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int("rows", len(rows)))

	out := make([]dataset.JoinedRow, len(rows))
	for i, r := range rows {
		out[i] = dataset.JoinedRow{
			Country: r.Country,
			Year:    int(r.Year),
			Men:     int(r.Men),
			Women:   int(r.Women),
			GDP:     r.Gdp,
		}
	}
	return out, nil
}

type Countries struct {
	Education []string
	GDP       []string
}

// Countries lists the distinct country names of both tables.
func (s Store) Countries(ctx context.Context) (Countries, error) {
	education, err := s.qry.GetEducationCountries(ctx)
	if err != nil {
		return Countries{}, err
	}
	gdp, err := s.qry.GetGdpCountries(ctx)
	if err != nil {
		return Countries{}, err
	}
	return Countries{Education: education, GDP: gdp}, nil
}
