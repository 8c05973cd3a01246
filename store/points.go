package store

import (
	"database/sql"
	"time"
)

// GrantPoints appends one entry to the points ledger. Negative values are
// allowed and used for deductions. Returns ErrNotFound when the candidate
// does not exist.
func GrantPoints(db *sql.DB, uid int64, points int, reason, adminUsername string) error {
	exists, err := CandidateExists(db, uid)
	if err != nil {
		return err
	}
	if !exists {
		return ErrNotFound
	}
	_, err = db.Exec(
		"INSERT INTO points_log (candidate_uid, points, reason, admin_username, awarded_at) VALUES (?, ?, ?, ?, ?)",
		uid, points, reason, adminUsername, time.Now().Format(timeLayout),
	)
	return err
}
