// Package sqlclient adapts database/sql query results carrying SQL Server
// geometry/geography columns into decoded sqlgeom values. It does not build
// SQL, manage cursors, or discover column types; callers supply a query that
// already selects an identifying column and a geometry/geography column as
// its native serialized CLR UDT bytes (not STAsBinary's WKB output).
package sqlclient

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/go-spatial/mssqlgeom/pkg/sqlgeom"

	_ "github.com/microsoft/go-mssqldb"
)

// Row pairs a caller-supplied row identifier with its decoded geometry
// value.
type Row struct {
	ID    int64
	Value sqlgeom.Value
}

// Open opens a *sql.DB using the "sqlserver" driver registered by
// github.com/microsoft/go-mssqldb. dsn follows that driver's URL or ADO
// connection string formats.
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlserver", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlserver connection: %w", err)
	}
	return db, nil
}

// QueryValues runs query, which must select exactly two columns — a row
// identifier and a geometry/geography column's raw bytes — and decodes each
// row with kind. The first decode failure ends the read: no rows are
// returned, and the error is wrapped with the failing row's identifier.
func QueryValues(ctx context.Context, db *sql.DB, kind sqlgeom.ColumnKind, query string, args ...any) ([]Row, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query geometry rows: %w", err)
	}
	defer rows.Close()

	var out []Row
	for rows.Next() {
		var id int64
		var raw []byte
		if err := rows.Scan(&id, &raw); err != nil {
			return nil, fmt.Errorf("scan geometry row: %w", err)
		}

		val, err := sqlgeom.Parse(raw, kind)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", id, err)
		}
		out = append(out, Row{ID: id, Value: val})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate geometry rows: %w", err)
	}
	return out, nil
}
