// Package adapters lets the PostgreSQL event store run on pgxpool.Pool, sql.DB (lib/pq) or sqlx.DB.
//
// Reads run as plain queries. Appends run inside a SERIALIZABLE transaction, so two writers
// that read the same dynamic event stream cannot both commit.
package adapters
