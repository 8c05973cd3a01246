// Package testutil backs the handler and store tests with an in-memory
// sqlite database. Production runs MySQL; every query is written with
// portable placeholders and application-formatted timestamps, so the same
// SQL runs against both.
package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	_ "modernc.org/sqlite"

	"event-manager/utils"
)

// SetupTestDB opens a fresh in-memory database with the full schema. A
// single connection keeps the memory database alive for the test's duration.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	db.SetMaxOpenConns(1)

	_, err = db.Exec(`
		CREATE TABLE admins (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			username TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL
		);

		CREATE TABLE candidates (
			uid INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			age INTEGER NOT NULL,
			phone TEXT NOT NULL,
			gender TEXT NOT NULL,
			created_at TEXT NOT NULL
		);

		CREATE TABLE points_log (
			log_id INTEGER PRIMARY KEY AUTOINCREMENT,
			candidate_uid INTEGER NOT NULL,
			points INTEGER NOT NULL,
			reason TEXT,
			admin_username TEXT,
			awarded_at TEXT NOT NULL
		);

		CREATE TABLE attendance (
			attendance_id INTEGER PRIMARY KEY AUTOINCREMENT,
			candidate_uid INTEGER NOT NULL,
			event_day INTEGER NOT NULL,
			attended_at TEXT NOT NULL,
			UNIQUE (candidate_uid, event_day)
		);

		CREATE TABLE sessions (
			token TEXT PRIMARY KEY,
			admin_id INTEGER NOT NULL,
			username TEXT NOT NULL,
			expires_at TEXT NOT NULL
		);
	`)
	if err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	t.Cleanup(func() { db.Close() })
	return db
}

// SeedAdmin inserts an admin with a bcrypt-hashed password.
func SeedAdmin(t *testing.T, db *sql.DB, username, password string) {
	t.Helper()
	hash, err := utils.HashPassword(password)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}
	if _, err := db.Exec("INSERT INTO admins (username, password) VALUES (?, ?)", username, hash); err != nil {
		t.Fatalf("Failed to seed admin: %v", err)
	}
}

// SeedCandidate inserts a candidate and returns its UID.
func SeedCandidate(t *testing.T, db *sql.DB, name string, age int, phone, gender string) int64 {
	t.Helper()
	result, err := db.Exec(
		"INSERT INTO candidates (name, age, phone, gender, created_at) VALUES (?, ?, ?, ?, ?)",
		name, age, phone, gender, "2025-01-01 10:00:00",
	)
	if err != nil {
		t.Fatalf("Failed to seed candidate: %v", err)
	}
	uid, err := result.LastInsertId()
	if err != nil {
		t.Fatalf("Failed to read candidate UID: %v", err)
	}
	return uid
}

// SeedCandidateWithUID inserts a candidate with a fixed UID.
func SeedCandidateWithUID(t *testing.T, db *sql.DB, uid int64, name string) {
	t.Helper()
	_, err := db.Exec(
		"INSERT INTO candidates (uid, name, age, phone, gender, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		uid, name, 18, "9876543210", "Male", "2025-01-01 10:00:00",
	)
	if err != nil {
		t.Fatalf("Failed to seed candidate %d: %v", uid, err)
	}
}

// MakeRequest builds an HTTP test request with an optional JSON body and
// headers (use "Cookie" for session cookies).
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	return req
}

// AssertStatus checks the response status code.
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into v.
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
