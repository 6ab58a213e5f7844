package db

import "testing"

func TestOpen_AppliesMigrations(t *testing.T) {
	d, err := Open("file:dbtest?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })

	for _, table := range []string{"users", "categories", "posts", "comments"} {
		var name string
		err := d.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		if err != nil {
			t.Fatalf("table %s missing: %v", table, err)
		}
	}

	// Re-opening must not re-run applied migrations.
	var n int
	if err := d.QueryRow(`SELECT COUNT(*) FROM schema_migrations`).Scan(&n); err != nil {
		t.Fatalf("schema_migrations: %v", err)
	}
	if n == 0 {
		t.Fatal("no migrations recorded")
	}
	if err := migrate(d); err != nil {
		t.Fatalf("second migrate: %v", err)
	}
	var n2 int
	if err := d.QueryRow(`SELECT COUNT(*) FROM schema_migrations`).Scan(&n2); err != nil {
		t.Fatalf("schema_migrations: %v", err)
	}
	if n2 != n {
		t.Fatalf("migrations re-applied: %d != %d", n2, n)
	}
}

func TestRollbackLast(t *testing.T) {
	d, err := Open("file:dbrollback?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })

	if err := RollbackLast(d); err != nil {
		t.Fatalf("rollback: %v", err)
	}
	var name string
	err = d.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name='users'`).Scan(&name)
	if err == nil {
		t.Fatal("users table still present after rollback")
	}
	// Rolling back an empty history is a no-op.
	if err := RollbackLast(d); err != nil {
		t.Fatalf("rollback on empty history: %v", err)
	}
}

func TestOpen_EnablesForeignKeys(t *testing.T) {
	d, err := Open("file:dbfk?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })

	var on int
	if err := d.QueryRow(`PRAGMA foreign_keys`).Scan(&on); err != nil {
		t.Fatalf("pragma: %v", err)
	}
	if on != 1 {
		t.Fatal("foreign_keys pragma not enabled")
	}
}
