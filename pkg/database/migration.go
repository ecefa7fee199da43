package database

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

type MigrationRecord struct {
	Version   string
	Name      string
	AppliedAt time.Time
}

// Migrator is satisfied by *pgxpool.Pool.
type Migrator interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Begin(ctx context.Context) (pgx.Tx, error)
}

// RunMigrations applies every NNN_name.sql file of migrationsDir not yet
// recorded in the migrations table, each in its own transaction.
func RunMigrations(ctx context.Context, db Migrator, migrationsDir string, logger *zap.Logger) error {
	_, err := db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS migrations (
			version VARCHAR(255) PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			applied_at TIMESTAMP WITH TIME ZONE NOT NULL
		);
	`)
	if err != nil {
		return fmt.Errorf("create migrations table: %w", err)
	}

	appliedMap, err := appliedVersions(ctx, db)
	if err != nil {
		return err
	}

	files, err := os.ReadDir(migrationsDir)
	if err != nil {
		return fmt.Errorf("read migrations dir: %w", err)
	}

	var migrationFiles []string
	for _, file := range files {
		if !file.IsDir() && strings.HasSuffix(file.Name(), ".sql") {
			migrationFiles = append(migrationFiles, file.Name())
		}
	}
	sort.Strings(migrationFiles)

	for _, file := range migrationFiles {
		parts := strings.SplitN(file, "_", 2)
		if len(parts) != 2 {
			logger.Warn("nombre de migración no válido", zap.String("file", file))
			continue
		}

		version := parts[0]
		name := strings.TrimSuffix(parts[1], ".sql")

		if appliedMap[version] {
			logger.Debug("migración ya aplicada", zap.String("version", version), zap.String("name", name))
			continue
		}

		content, err := os.ReadFile(filepath.Join(migrationsDir, file))
		if err != nil {
			return fmt.Errorf("read migration %s: %w", file, err)
		}

		logger.Info("aplicando migración", zap.String("version", version), zap.String("name", name))

		if err := applyMigration(ctx, db, version, name, string(content)); err != nil {
			return fmt.Errorf("migration %s: %w", file, err)
		}

		logger.Info("migración aplicada", zap.String("version", version), zap.String("name", name))
	}

	return nil
}

func appliedVersions(ctx context.Context, db Migrator) (map[string]bool, error) {
	rows, err := db.Query(ctx, "SELECT version, name, applied_at FROM migrations ORDER BY version")
	if err != nil {
		return nil, fmt.Errorf("list applied migrations: %w", err)
	}
	defer rows.Close()

	applied := make(map[string]bool)
	for rows.Next() {
		var record MigrationRecord
		if err := rows.Scan(&record.Version, &record.Name, &record.AppliedAt); err != nil {
			return nil, fmt.Errorf("scan migration record: %w", err)
		}
		applied[record.Version] = true
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate migration records: %w", err)
	}

	return applied, nil
}

func applyMigration(ctx context.Context, db Migrator, version, name, sql string) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}

	if _, err := tx.Exec(ctx, sql); err != nil {
		_ = tx.Rollback(ctx)
		return fmt.Errorf("exec: %w", err)
	}

	_, err = tx.Exec(ctx,
		"INSERT INTO migrations (version, name, applied_at) VALUES ($1, $2, $3)",
		version, name, time.Now(),
	)
	if err != nil {
		_ = tx.Rollback(ctx)
		return fmt.Errorf("record: %w", err)
	}

	return tx.Commit(ctx)
}
