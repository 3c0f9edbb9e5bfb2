// internal/store/postgres.go
package store

import (
    "database/sql"
    "fmt"
    "log"
    "os"

    _ "github.com/lib/pq"
)

// PostgresStore persists each collection as a single JSONB row in a kv_store
// table. One row per key keeps the single-key atomicity contract: a replace
// is one upsert.
type PostgresStore struct {
    DB *sql.DB
}

const createKVTable = `
    CREATE TABLE IF NOT EXISTS kv_store (
        key        TEXT PRIMARY KEY,
        value      JSONB NOT NULL,
        updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
    )
`

// NewPostgresStore connects using the DB_* environment variables and makes
// sure the kv_store table exists.
func NewPostgresStore() (*PostgresStore, error) {
    user := os.Getenv("DB_USER")
    pass := os.Getenv("DB_PASSWORD")
    host := os.Getenv("DB_HOST")
    port := os.Getenv("DB_PORT")
    name := os.Getenv("DB_NAME")

    dsn := fmt.Sprintf(
        "postgres://%s:%s@%s:%s/%s?sslmode=disable",
        user, pass, host, port, name,
    )

    db, err := sql.Open("postgres", dsn)
    if err != nil {
        return nil, fmt.Errorf("failed to connect to DB: %w", err)
    }
    if err = db.Ping(); err != nil {
        return nil, fmt.Errorf("failed to ping DB: %w", err)
    }
    if _, err = db.Exec(createKVTable); err != nil {
        return nil, fmt.Errorf("failed to create kv_store table: %w", err)
    }

    log.Println("✅ Connected to database")
    return &PostgresStore{DB: db}, nil
}

func (s *PostgresStore) Get(key string) ([]byte, bool, error) {
    var value []byte
    err := s.DB.QueryRow(`SELECT value FROM kv_store WHERE key=$1`, key).Scan(&value)
    if err != nil {
        if err == sql.ErrNoRows {
            return nil, false, nil
        }
        return nil, false, err
    }
    return value, true, nil
}

func (s *PostgresStore) Set(key string, value []byte) error {
    query := `
        INSERT INTO kv_store (key, value, updated_at)
        VALUES ($1, $2, NOW())
        ON CONFLICT (key) DO UPDATE SET value=$2, updated_at=NOW()
    `
    _, err := s.DB.Exec(query, key, value)
    return err
}

func (s *PostgresStore) Close() error {
    return s.DB.Close()
}

var _ KV = (*PostgresStore)(nil)
