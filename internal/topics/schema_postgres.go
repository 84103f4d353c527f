package topics

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/anavarrete/frameteca/internal/platform/database/schema"
	"github.com/anavarrete/frameteca/internal/platform/dberr"
)

// createTableDDL is the legacy baseline. It matches the versioned startup
// migration on purpose: after an administrative DROP TABLE the versioned
// migrator will not replay, so this statement is the recovery path.
const createTableDDL = `
	CREATE TABLE IF NOT EXISTS topics (
		id SERIAL PRIMARY KEY,
		titulo VARCHAR(255),
		explicacion_tecnica TEXT,
		explicacion_ejemplo TEXT,
		image_explicacion VARCHAR(255),
		librerias JSONB DEFAULT '[]'::jsonb,
		table_elements JSONB DEFAULT '{}'::jsonb,
		code_exemple JSONB DEFAULT '{}'::jsonb,
		parent VARCHAR(255),
		childs JSONB DEFAULT '[]'::jsonb,
		created_at TIMESTAMP DEFAULT NOW(),
		updated_at TIMESTAMP DEFAULT NOW()
	)`

// PostgresSchemaManager implements [SchemaManager] with additive,
// introspection-driven column evolution.
type PostgresSchemaManager struct {
	db     *pgxpool.Pool
	logger *slog.Logger
}

func NewPostgresSchemaManager(db *pgxpool.Pool, logger *slog.Logger) *PostgresSchemaManager {
	return &PostgresSchemaManager{db: db, logger: logger}
}

// Ensure creates the topics table if absent and adds every missing
// current-generation column.
//
// # Failure semantics
//
// Table creation and connection-level failures are fatal and propagate.
// Individual column additions are best-effort: a failure is logged and the
// loop continues, so a partially-upgraded schema still serves what it can.
// Two requests racing through this on a cold start must both succeed —
// "already exists" conditions are detected and skipped, never fatal.
func (manager *PostgresSchemaManager) Ensure(ctx context.Context) error {
	if _, err := manager.db.Exec(ctx, createTableDDL); err != nil {
		// CREATE TABLE IF NOT EXISTS can still race on the catalog.
		if !dberr.IsDuplicateTable(err) {
			return dberr.Wrap(err, "create_topics_table")
		}
	}

	for _, upgrade := range schema.Topics.Upgrades() {
		exists, err := manager.columnExists(ctx, upgrade.Name)
		if err != nil {
			manager.logger.Error("schema_column_check_failed",
				slog.String("column", upgrade.Name),
				slog.Any("error", err),
			)
			continue
		}
		if exists {
			continue
		}

		alter := fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s", schema.Topics.Table, upgrade.Definition)
		if _, err := manager.db.Exec(ctx, alter); err != nil {
			if dberr.IsDuplicateColumn(err) {
				// Lost the race against a concurrent Ensure; the column is there.
				manager.logger.Debug("schema_column_race_skipped", slog.String("column", upgrade.Name))
				continue
			}
			manager.logger.Error("schema_column_add_failed",
				slog.String("column", upgrade.Name),
				slog.Any("error", err),
			)
			continue
		}
		manager.logger.Info("schema_column_added", slog.String("column", upgrade.Name))
	}

	// Slug uniqueness is best-effort: pre-existing duplicate slugs make the
	// index impossible, and the API must keep serving in that degraded
	// state rather than refuse to start.
	indexDDL := fmt.Sprintf("CREATE UNIQUE INDEX IF NOT EXISTS %s ON %s(%s)",
		schema.SlugIndex, schema.Topics.Table, schema.Topics.Slug)
	if _, err := manager.db.Exec(ctx, indexDDL); err != nil {
		manager.logger.Warn("schema_slug_index_failed", slog.Any("error", err))
	}

	return nil
}

// Drop removes the topics table entirely (administrative reset).
func (manager *PostgresSchemaManager) Drop(ctx context.Context) error {
	query := fmt.Sprintf("DROP TABLE IF EXISTS %s", schema.Topics.Table)
	if _, err := manager.db.Exec(ctx, query); err != nil {
		return dberr.Wrap(err, "drop_topics_table")
	}
	manager.logger.Info("topics_table_dropped")
	return nil
}

// columnExists probes information_schema for a column on the topics table.
func (manager *PostgresSchemaManager) columnExists(ctx context.Context, column string) (bool, error) {
	const query = `
		SELECT COUNT(*)
		FROM information_schema.columns
		WHERE table_name = $1 AND column_name = $2`

	var count int
	if err := manager.db.QueryRow(ctx, query, schema.Topics.Table, column).Scan(&count); err != nil {
		return false, dberr.Wrap(err, "check_column_exists")
	}
	return count > 0, nil
}
