package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	ctx := context.Background()
	db, err := Open(ctx, filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestKVRoundTrip(t *testing.T) {
	kv := NewKV(newTestDB(t))
	ctx := context.Background()

	if _, ok, err := kv.Get(ctx, "missing"); err != nil || ok {
		t.Fatalf("missing key: ok=%v err=%v", ok, err)
	}

	if err := kv.Set(ctx, "k", "v1"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := kv.Set(ctx, "k", "v2"); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	got, ok, err := kv.Get(ctx, "k")
	if err != nil || !ok || got != "v2" {
		t.Fatalf("get=%q ok=%v err=%v, want v2", got, ok, err)
	}

	if err := kv.Delete(ctx, "k"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := kv.Get(ctx, "k"); ok {
		t.Fatalf("key survived delete")
	}
}

func TestKVJSON(t *testing.T) {
	kv := NewKV(newTestDB(t))
	ctx := context.Background()

	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}
	in := payload{Name: "streak", Count: 7}
	if err := kv.SetJSON(ctx, "p", in); err != nil {
		t.Fatalf("set json: %v", err)
	}

	var out payload
	ok, err := kv.GetJSON(ctx, "p", &out)
	if err != nil || !ok {
		t.Fatalf("get json: ok=%v err=%v", ok, err)
	}
	if out != in {
		t.Fatalf("got %+v, want %+v", out, in)
	}

	// Absent keys leave the target untouched.
	probe := payload{Name: "untouched"}
	ok, err = kv.GetJSON(ctx, "absent", &probe)
	if err != nil || ok {
		t.Fatalf("absent: ok=%v err=%v", ok, err)
	}
	if probe.Name != "untouched" {
		t.Fatalf("absent key mutated target: %+v", probe)
	}

	// Malformed stored values surface as an error, not a panic.
	if err := kv.Set(ctx, "bad", "{not json"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if _, err := kv.GetJSON(ctx, "bad", &out); err == nil {
		t.Fatalf("malformed value decoded without error")
	}
}

func TestHistoryNewestFirst(t *testing.T) {
	repo := NewHistoryRepo(newTestDB(t))
	ctx := context.Background()

	for i, e := range []HistoryEntry{
		{Type: HistoryEarn, Category: "task", Amount: 5, Description: "one"},
		{Type: HistoryEarn, Category: "attendance", Amount: 10, Description: "two"},
		{Type: HistorySpend, Category: "dday", Amount: -100, Description: "three"},
	} {
		if err := repo.Append(ctx, e); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	entries, err := repo.List(ctx, 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("len=%d, want 2", len(entries))
	}
	if entries[0].Description != "three" || entries[1].Description != "two" {
		t.Fatalf("order wrong: %q then %q", entries[0].Description, entries[1].Description)
	}

	all, err := repo.List(ctx, 0)
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("len=%d, want 3", len(all))
	}
}
