package adapters

import "context"

// DBAdapter defines the database operations needed by the event store.
type DBAdapter interface {
	Query(ctx context.Context, query string) (DBRows, error)

	// ExecSerializable runs the statement in its own SERIALIZABLE transaction and commits it.
	ExecSerializable(ctx context.Context, query string) (DBResult, error)

	// Exec runs the statement without an explicit transaction (schema setup).
	Exec(ctx context.Context, query string) (DBResult, error)
}

// DBRows defines the interface for query result rows.
type DBRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

// DBResult defines the interface for execution results.
type DBResult interface {
	RowsAffected() (int64, error)
}
