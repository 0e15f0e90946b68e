package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

const (
	HistoryEarn  = "earn"
	HistorySpend = "spend"
)

type HistoryEntry struct {
	ID          int64     `db:"id"`
	Type        string    `db:"type"`
	Category    string    `db:"category"`
	Amount      int       `db:"amount"`
	Description string    `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
}

// HistoryRepo is the append-only point ledger. Earn entries carry positive
// amounts, spend entries negative ones.
type HistoryRepo struct {
	db *sqlx.DB
}

func NewHistoryRepo(db *sqlx.DB) *HistoryRepo {
	return &HistoryRepo{db: db}
}

func (r *HistoryRepo) Append(ctx context.Context, e HistoryEntry) error {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO point_history (type, category, amount, description, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, e.Type, e.Category, e.Amount, e.Description, e.CreatedAt)
	if err != nil {
		return fmt.Errorf("history append: %w", err)
	}
	return nil
}

// List returns entries newest first. limit <= 0 returns everything.
func (r *HistoryRepo) List(ctx context.Context, limit int) ([]HistoryEntry, error) {
	q := `SELECT id, type, category, amount, description, created_at FROM point_history ORDER BY id DESC`
	var entries []HistoryEntry
	var err error
	if limit > 0 {
		err = r.db.SelectContext(ctx, &entries, q+` LIMIT ?`, limit)
	} else {
		err = r.db.SelectContext(ctx, &entries, q)
	}
	if err != nil {
		return nil, fmt.Errorf("history list: %w", err)
	}
	return entries, nil
}
