package postgres_test

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"fxcalc/internal/adapters/postgres"
	"fxcalc/internal/domain"
	"fxcalc/internal/rollover"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"
	tcpg "github.com/testcontainers/testcontainers-go/modules/postgres"
)

const migrationsDir = "../../platform/db/migrations"

var (
	pgSetupOnce sync.Once

	pgContainer *tcpg.PostgresContainer
	pgConnStr   string
)

func TestMain(m *testing.M) {
	code := m.Run()
	if pgContainer != nil {
		_ = pgContainer.Terminate(context.Background())
	}
	os.Exit(code)
}

func setupPostgres(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping postgres container tests in short mode")
	}

	pgSetupOnce.Do(func() {
		startPostgres(t)
	})

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, pgConnStr)
	require.NoError(t, err)
	t.Cleanup(func() { pool.Close() })

	_, err = pool.Exec(ctx, `truncate table short_term_interest_rates`)
	require.NoError(t, err)

	return pool
}

func startPostgres(t *testing.T) {
	ctx := context.Background()
	pg, err := tcpg.Run(ctx,
		"postgres:16-alpine",
		tcpg.WithDatabase("postgres"),
		tcpg.WithUsername("postgres"),
		tcpg.WithPassword("postgres"),
	)
	require.NoError(t, err)

	dsn, err := pg.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := goose.OpenDBWithDriver("pgx", dsn)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	require.Eventually(t, func() bool {
		pingCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		return db.PingContext(pingCtx) == nil
	}, 15*time.Second, 500*time.Millisecond)

	require.NoError(t, goose.SetDialect("postgres"))
	require.NoError(t, goose.UpContext(ctx, db, migrationsDir))

	pgContainer = pg
	pgConnStr = dsn
}

func insertRate(t *testing.T, pool *pgxpool.Pool, start, end string, currency string, value float64) {
	t.Helper()
	_, err := pool.Exec(context.Background(),
		`insert into short_term_interest_rates(period_start, period_end, currency, value) values ($1::date, $2::date, $3, $4)`,
		start, end, currency, value)
	require.NoError(t, err)
}

func TestInterestRateRepository_Load_Empty(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewInterestRateRepository(pool)

	_, err := repo.Load(context.Background())
	require.ErrorIs(t, err, rollover.ErrEmptyTable)
}

func TestInterestRateRepository_Load_Success(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewInterestRateRepository(pool)

	insertRate(t, pool, "1970-01-01", "1970-01-31", "AUD", 5.05)
	insertRate(t, pool, "1970-01-01", "1970-01-31", "USD", 8.16)
	insertRate(t, pool, "2018-02-01", "2018-02-28", "AUD", 1.78)
	insertRate(t, pool, "2018-02-01", "2018-02-28", "USD", 1.79)

	table, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, table.Len())
	require.Equal(t, time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC), table.MinDate())
	require.Equal(t, time.Date(2018, time.February, 28, 0, 0, 0, 0, time.UTC), table.MaxDate())

	calc := rollover.NewCalculator(table)
	rate, err := calc.CalcOvernightRate("AUDUSD", time.Unix(0, 0).UTC())
	require.NoError(t, err)
	require.Equal(t, -8.52054794520548e-05, rate)

	_, err = calc.CalcOvernightRate("AUDUSD", time.Date(2018, time.March, 1, 0, 0, 0, 0, time.UTC))
	require.ErrorIs(t, err, domain.ErrOutOfRangeDate)

	// no period covers 1970-02..2018-01
	_, err = calc.CalcOvernightRate("AUDUSD", time.Date(2017, time.December, 15, 0, 0, 0, 0, time.UTC))
	require.ErrorIs(t, err, domain.ErrRateNotFound)
}

func TestInterestRateRepository_Load_OverlappingPeriods(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewInterestRateRepository(pool)

	insertRate(t, pool, "2018-01-01", "2018-03-31", "AUD", 1.8)
	insertRate(t, pool, "2018-02-01", "2018-02-28", "USD", 1.79)

	_, err := repo.Load(context.Background())
	require.ErrorIs(t, err, rollover.ErrOverlap)
}

func TestInterestRateRepository_Load_ContextCanceled(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewInterestRateRepository(pool)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.Load(ctx)
	require.Error(t, err)
	require.ErrorContains(t, err, "failed to query interest rates")
}
