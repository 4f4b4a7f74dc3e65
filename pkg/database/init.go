package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"github.com/Alijeyrad/complaintdesk/config"
)

// InitializeDatabases creates every configured database that does not exist
// yet, connecting through the server's maintenance "postgres" database.
func InitializeDatabases(ctx context.Context, cfg *config.Config) error {
	names := databaseNames(cfg)
	if len(names) == 0 {
		return fmt.Errorf("no database names configured")
	}

	admin := FromCentralConfig(cfg.Database)
	admin.DBName = "postgres"
	admin.MaxOpenConns = 1

	conn, err := openSQLDB(admin)
	if err != nil {
		return fmt.Errorf("failed to connect to postgres database: %w", err)
	}
	defer conn.Close()

	for _, name := range names {
		if err := createDatabaseIfNotExists(ctx, conn, name); err != nil {
			return fmt.Errorf("failed to create database %q: %w", name, err)
		}
	}
	return nil
}

// databaseNames returns server.databases, falling back to database.dbname.
func databaseNames(cfg *config.Config) []string {
	seen := make(map[string]bool)
	var out []string
	add := func(n string) {
		n = strings.TrimSpace(n)
		if n != "" && !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	for _, n := range cfg.Server.Databases {
		add(n)
	}
	if len(out) == 0 {
		add(cfg.Database.DBName)
	}
	return out
}

func createDatabaseIfNotExists(ctx context.Context, conn *sql.DB, name string) error {
	var exists bool
	err := conn.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)`, name,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check if database exists: %w", err)
	}
	if exists {
		return nil
	}

	// CREATE DATABASE cannot take bind parameters.
	if _, err := conn.ExecContext(ctx, "CREATE DATABASE "+pq.QuoteIdentifier(name)); err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}
	return nil
}
