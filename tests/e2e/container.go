//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	pgUser     = "booking"
	pgPassword = "booking"
	pgPort     = nat.Port("5432/tcp")
)

// postgresServer is started once per test binary; every suite gets its own
// database inside it.
var postgresServer struct {
	once      sync.Once
	container testcontainers.Container
	host      string
	port      string
	err       error
}

// tuned for throwaway data: durability settings off, data dir on tmpfs
var postgresFlags = []string{
	"postgres",
	"-c", "fsync=off",
	"-c", "synchronous_commit=off",
	"-c", "full_page_writes=off",
	"-c", "max_connections=300",
	"-c", "shared_buffers=256MB",
	"-c", "log_statement=none",
}

func postgresAddr(t *testing.T) (host, port string) {
	t.Helper()

	postgresServer.once.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
		defer cancel()

		c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				Image:        "postgres:17",
				ExposedPorts: []string{string(pgPort)},
				Env: map[string]string{
					"POSTGRES_USER":     pgUser,
					"POSTGRES_PASSWORD": pgPassword,
					"POSTGRES_DB":       "postgres",
				},
				Tmpfs:  map[string]string{"/var/lib/postgresql/data": "rw,size=512m"},
				Cmd:    postgresFlags,
				Labels: map[string]string{"app": "slot-booking", "purpose": "e2e"},
				WaitingFor: wait.ForSQL(pgPort, "pgx", func(host string, port nat.Port) string {
					return adminDSN(host, port.Port())
				}).WithStartupTimeout(time.Minute),
			},
			Started: true,
		})
		if err != nil {
			postgresServer.err = err
			return
		}
		postgresServer.container = c

		mapped, err := c.MappedPort(ctx, pgPort)
		if err != nil {
			postgresServer.err = err
			return
		}
		host, err := c.Host(ctx)
		if err != nil {
			postgresServer.err = err
			return
		}
		postgresServer.host, postgresServer.port = host, mapped.Port()

		slog.Info("postgres container ready", "host", host, "port", mapped.Port())
	})

	require.NoError(t, postgresServer.err, "PostgreSQLコンテナの起動に失敗")
	return postgresServer.host, postgresServer.port
}

func adminDSN(host, port string) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable", pgUser, pgPassword, host, port)
}
