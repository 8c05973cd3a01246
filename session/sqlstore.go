package session

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

const timeLayout = "2006-01-02 15:04:05"

// SQLStore persists sessions in the sessions table so logins survive server
// restarts. Expiry is checked in Go after the row is read; expired rows are
// deleted lazily on resolve.
type SQLStore struct {
	db  *sql.DB
	ttl time.Duration
}

func NewSQLStore(db *sql.DB, ttl time.Duration) *SQLStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &SQLStore{db: db, ttl: ttl}
}

func (s *SQLStore) Create(adminID int, username string) (string, error) {
	token := uuid.NewString()
	expiresAt := time.Now().Add(s.ttl).Format(timeLayout)
	_, err := s.db.Exec(
		"INSERT INTO sessions (token, admin_id, username, expires_at) VALUES (?, ?, ?, ?)",
		token, adminID, username, expiresAt,
	)
	if err != nil {
		return "", err
	}
	return token, nil
}

func (s *SQLStore) Resolve(token string) (*Session, error) {
	var sess Session
	var expiresAt string
	err := s.db.QueryRow(
		"SELECT token, admin_id, username, expires_at FROM sessions WHERE token = ?",
		token,
	).Scan(&sess.Token, &sess.AdminID, &sess.Username, &expiresAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	sess.ExpiresAt, err = time.ParseInLocation(timeLayout, expiresAt, time.Local)
	if err != nil {
		return nil, err
	}
	if time.Now().After(sess.ExpiresAt) {
		_, _ = s.db.Exec("DELETE FROM sessions WHERE token = ?", token)
		return nil, nil
	}
	return &sess, nil
}

func (s *SQLStore) Destroy(token string) error {
	_, err := s.db.Exec("DELETE FROM sessions WHERE token = ?", token)
	return err
}
