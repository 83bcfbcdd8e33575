package testutils

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	_ "github.com/lib/pq"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// SetupPostgres returns a DSN for an empty PostgreSQL database. TEST_DB_DSN
// points at an existing server; otherwise a postgres:15 container is started.
// The returned cleanup stops the container.
func SetupPostgres(ctx context.Context) (string, func(), error) {
	if dsn := os.Getenv("TEST_DB_DSN"); dsn != "" {
		if err := waitForPostgres(dsn, 1); err != nil {
			return "", nil, err
		}
		return dsn, func() {}, nil
	}

	req := testcontainers.ContainerRequest{
		Image: "postgres:15",
		Env: map[string]string{
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_USER":     "test",
			"POSTGRES_DB":       "bugtrackr",
		},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForLog("database system is ready to accept connections").WithOccurrence(2).WithStartupTimeout(60 * time.Second),
	}

	pg, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return "", nil, fmt.Errorf("start postgres container: %w", err)
	}
	cleanup := func() { _ = pg.Terminate(context.Background()) }

	host, err := pg.Host(ctx)
	if err != nil {
		cleanup()
		return "", nil, err
	}
	port, err := pg.MappedPort(ctx, "5432")
	if err != nil {
		cleanup()
		return "", nil, err
	}

	dsn := fmt.Sprintf("postgres://test:test@%s:%s/bugtrackr?sslmode=disable", host, port.Port())
	if err := waitForPostgres(dsn, 10); err != nil {
		cleanup()
		return "", nil, err
	}
	return dsn, cleanup, nil
}

func waitForPostgres(dsn string, attempts int) error {
	var err error
	for i := 0; i < attempts; i++ {
		var conn *sql.DB
		conn, err = sql.Open("postgres", dsn)
		if err == nil {
			err = conn.Ping()
			_ = conn.Close()
			if err == nil {
				return nil
			}
		}
		time.Sleep(time.Second)
	}
	return fmt.Errorf("postgres not reachable: %w", err)
}
