package mcp

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SchemaRepo provides the workload DB schema (information_schema) data.
type SchemaRepo interface {
	GetWorkloadColumns(ctx context.Context) ([]SchemaColumn, error)
	GetRowEstimates(ctx context.Context) (map[string]int64, error)
}

// SchemaColumn represents one row from information_schema.columns for workload tables.
type SchemaColumn struct {
	TableSchema string
	TableName   string
	ColumnName  string
	DataType    string
	IsNullable  string
	ColumnDef   *string
}

var workloadTables = []string{"exercise_definition", "program", "program_day"}

type poolSchemaRepo struct {
	pool *pgxpool.Pool
}

// NewPoolSchemaRepo returns a SchemaRepo that uses the given pool.
func NewPoolSchemaRepo(pool *pgxpool.Pool) SchemaRepo {
	return &poolSchemaRepo{pool: pool}
}

// GetWorkloadColumns returns column metadata for the catalog and program tables.
func (r *poolSchemaRepo) GetWorkloadColumns(ctx context.Context) ([]SchemaColumn, error) {
	query := `
		SELECT table_schema, table_name, column_name, data_type, is_nullable, column_default
		FROM information_schema.columns
		WHERE table_schema = 'public'
		  AND table_name = ANY($1)
		ORDER BY table_name, ordinal_position`
	rows, err := r.pool.Query(ctx, query, workloadTables)
	if err != nil {
		return nil, fmt.Errorf("query information_schema: %w", err)
	}
	defer rows.Close()

	var cols []SchemaColumn
	for rows.Next() {
		var c SchemaColumn
		if err := rows.Scan(&c.TableSchema, &c.TableName, &c.ColumnName, &c.DataType, &c.IsNullable, &c.ColumnDef); err != nil {
			return nil, fmt.Errorf("scan column row: %w", err)
		}
		cols = append(cols, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating columns: %w", err)
	}

	return cols, nil
}

// GetRowEstimates returns the planner's live row estimate per workload table.
// Tables never analyzed by postgres are missing from the result.
func (r *poolSchemaRepo) GetRowEstimates(ctx context.Context) (map[string]int64, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT relname, n_live_tup
		FROM pg_stat_user_tables
		WHERE schemaname = 'public' AND relname = ANY($1)`, workloadTables)
	if err != nil {
		return nil, fmt.Errorf("query pg_stat_user_tables: %w", err)
	}
	defer rows.Close()

	estimates := make(map[string]int64, len(workloadTables))
	for rows.Next() {
		var (
			table string
			live  int64
		)
		if err := rows.Scan(&table, &live); err != nil {
			return nil, fmt.Errorf("scan row estimate: %w", err)
		}
		estimates[table] = live
	}
	return estimates, rows.Err()
}
