package session

import (
	"testing"
	"time"

	"event-manager/testutil"
)

func TestMemoryStoreLifecycle(t *testing.T) {
	store := NewMemoryStore(time.Hour)

	token, err := store.Create(1, "admin1")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	sess, err := store.Resolve(token)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if sess == nil {
		t.Fatal("expected session, got nil")
	}
	if sess.AdminID != 1 || sess.Username != "admin1" {
		t.Errorf("unexpected identity: %+v", sess)
	}

	if err := store.Destroy(token); err != nil {
		t.Fatalf("Destroy failed: %v", err)
	}
	sess, err = store.Resolve(token)
	if err != nil {
		t.Fatalf("Resolve after destroy failed: %v", err)
	}
	if sess != nil {
		t.Error("expected nil session after destroy")
	}
}

func TestMemoryStoreUnknownToken(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	sess, err := store.Resolve("no-such-token")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if sess != nil {
		t.Error("expected nil session for unknown token")
	}
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := NewMemoryStore(time.Nanosecond)
	token, err := store.Create(1, "admin1")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	time.Sleep(2 * time.Millisecond)

	sess, err := store.Resolve(token)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if sess != nil {
		t.Error("expected expired session to resolve to nil")
	}
}

func TestSQLStoreLifecycle(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := NewSQLStore(db, time.Hour)

	token, err := store.Create(2, "admin2")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	sess, err := store.Resolve(token)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if sess == nil {
		t.Fatal("expected session, got nil")
	}
	if sess.AdminID != 2 || sess.Username != "admin2" {
		t.Errorf("unexpected identity: %+v", sess)
	}

	if err := store.Destroy(token); err != nil {
		t.Fatalf("Destroy failed: %v", err)
	}
	sess, err = store.Resolve(token)
	if err != nil {
		t.Fatalf("Resolve after destroy failed: %v", err)
	}
	if sess != nil {
		t.Error("expected nil session after destroy")
	}
}

func TestSQLStoreExpiredRow(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := NewSQLStore(db, time.Hour)

	expired := time.Now().Add(-time.Hour).Format(timeLayout)
	if _, err := db.Exec(
		"INSERT INTO sessions (token, admin_id, username, expires_at) VALUES (?, ?, ?, ?)",
		"stale-token", 3, "admin3", expired,
	); err != nil {
		t.Fatalf("Failed to seed expired session: %v", err)
	}

	sess, err := store.Resolve("stale-token")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if sess != nil {
		t.Error("expected expired row to resolve to nil")
	}

	// Expired rows are removed lazily on resolve.
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM sessions WHERE token = ?", "stale-token").Scan(&count); err != nil {
		t.Fatalf("Failed to count sessions: %v", err)
	}
	if count != 0 {
		t.Error("expected expired row to be deleted")
	}
}
