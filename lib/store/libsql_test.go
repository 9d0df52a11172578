package store_test

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"testing"
	"time"

	"educationgdp/lib/configuration"
	"educationgdp/lib/store"
	"educationgdp/lib/telemetry"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestLibsqlServer(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping libsql server test in short mode")
	}
	if os.Getenv("LIBSQL_CONTAINER_TESTS") == "" {
		t.Skip("set LIBSQL_CONTAINER_TESTS=1 to run against a libsql server container")
	}
	telemetry.SetupForTesting(t)

	// suppress logging
	testcontainers.Logger = log.New(io.Discard, "", 0)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute*2)
	defer cancel()

	sqld, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		Started: true,
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "ghcr.io/tursodatabase/libsql-server:latest",
			ExposedPorts: []string{"8080/tcp"},
			WaitingFor:   wait.ForHTTP("/health").WithPort("8080/tcp"),
		},
	})
	if err != nil {
		t.Skipf("could not start libsql server (is docker running?): %s", err)
	}
	defer func() {
		err := sqld.Terminate(context.Background())
		if err != nil {
			t.Fatal(err)
		}
	}()

	host, err := sqld.Host(ctx)
	require.NoError(t, err)
	port, err := sqld.MappedPort(ctx, "8080/tcp")
	require.NoError(t, err)

	s, err := store.Open(ctx, configuration.Database{
		Url: fmt.Sprintf("http://%s:%s", host, port.Port()),
	})
	require.NoError(t, err)
	defer s.Close()

	err = s.ReplaceEducation(ctx, education)
	require.NoError(t, err)
	err = s.ReplaceGDP(ctx, gdp)
	require.NoError(t, err)

	joined, err := s.Joined(ctx)
	require.NoError(t, err)
	require.Len(t, joined, 2)
}
