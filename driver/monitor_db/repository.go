package monitor_db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DBPool is the subset of pgxpool.Pool this repository uses. Tests
// substitute a pgxmock pool.
type DBPool interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type MonitorDBRepository struct {
	pool DBPool
}

func NewMonitorDBRepository(pool *pgxpool.Pool) *MonitorDBRepository {
	return &MonitorDBRepository{pool: pool}
}
