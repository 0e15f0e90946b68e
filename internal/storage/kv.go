package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// KV is a string key to JSON value store backed by SQLite. There are no
// transactions across keys; each Set is an independent upsert.
type KV struct {
	db *sqlx.DB
}

func NewKV(db *sqlx.DB) *KV {
	return &KV{db: db}
}

// Get returns the raw stored value and whether the key exists.
func (k *KV) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := k.db.GetContext(ctx, &value, `SELECT value FROM kv WHERE key = ?`, key)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("kv get %q: %w", key, err)
	}
	return value, true, nil
}

func (k *KV) Set(ctx context.Context, key, value string) error {
	_, err := k.db.ExecContext(ctx, `
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`, key, value)
	if err != nil {
		return fmt.Errorf("kv set %q: %w", key, err)
	}
	return nil
}

func (k *KV) Delete(ctx context.Context, key string) error {
	if _, err := k.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key); err != nil {
		return fmt.Errorf("kv delete %q: %w", key, err)
	}
	return nil
}

// GetJSON unmarshals the stored value into v. Returns false if the key is
// absent; v is left untouched in that case.
func (k *KV) GetJSON(ctx context.Context, key string, v any) (bool, error) {
	raw, ok, err := k.Get(ctx, key)
	if err != nil || !ok {
		return ok, err
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return true, fmt.Errorf("kv decode %q: %w", key, err)
	}
	return true, nil
}

func (k *KV) SetJSON(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("kv encode %q: %w", key, err)
	}
	return k.Set(ctx, key, string(raw))
}
