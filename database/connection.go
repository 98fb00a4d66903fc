package database

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/mattn/go-sqlite3"
)

// Ping opens a connection to the datasource with the driver matching its
// provider and checks that it answers.
func Ping(ctx context.Context, ds *Datasource) error {
	switch ds.Provider {
	case "postgresql", "postgres", "cockroachdb":
		return pingPostgres(ctx, ds.URL)
	case "mysql":
		dsn, err := mysqlDSN(ds.URL)
		if err != nil {
			return err
		}
		return pingSQL(ctx, "mysql", dsn)
	case "sqlite":
		return pingSQL(ctx, "sqlite3", ds.URL)
	}
	return fmt.Errorf("%w: %s", ErrUnsupportedProvider, ds.Provider)
}

func pingPostgres(ctx context.Context, connStr string) error {
	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		return fmt.Errorf("unable to create connection pool: %w", err)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		return fmt.Errorf("unable to ping database: %w", err)
	}
	return nil
}

func pingSQL(ctx context.Context, driver, dsn string) error {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}
	return nil
}

// mysqlDSN converts a Prisma style mysql:// url into a go-sql-driver DSN.
func mysqlDSN(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid mysql url: %w", err)
	}
	if u.Scheme != "mysql" {
		return "", fmt.Errorf("invalid mysql url: unexpected scheme %q", u.Scheme)
	}

	cfg := mysql.NewConfig()
	cfg.Net = "tcp"
	cfg.Addr = u.Host
	if u.Port() == "" {
		cfg.Addr = u.Host + ":3306"
	}
	cfg.DBName = strings.TrimPrefix(u.Path, "/")
	if u.User != nil {
		cfg.User = u.User.Username()
		cfg.Passwd, _ = u.User.Password()
	}
	return cfg.FormatDSN(), nil
}
