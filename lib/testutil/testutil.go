package testutil

import (
	"context"
	"testing"

	"educationgdp/lib/configuration"
	"educationgdp/lib/dataset"
	"educationgdp/lib/store"
	"educationgdp/lib/telemetry"
)

// OpenStore opens an in-memory store that is closed when the test ends.
func OpenStore(t testing.TB) store.Store {
	t.Helper()
	telemetry.SetupForTesting(t)

	s, err := store.Open(context.Background(), configuration.Database{File: ":memory:"})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Error(err)
		}
	})
	return s
}

func Float(v float64) *float64 {
	return &v
}

// SeedStore fills both tables of `s`.
func SeedStore(t testing.TB, s store.Store, education []dataset.EducationRow, gdp []dataset.GDPRow) {
	t.Helper()
	ctx := context.Background()
	if err := s.ReplaceEducation(ctx, education); err != nil {
		t.Fatal(err)
	}
	if err := s.ReplaceGDP(ctx, gdp); err != nil {
		t.Fatal(err)
	}
}
