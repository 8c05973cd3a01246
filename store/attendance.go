package store

import (
	"database/sql"
	"fmt"
	"time"
)

// AttendancePoints is the fixed grant paired with every attendance mark.
const AttendancePoints = 100

// MarkAttendance records attendance for one (candidate, day) pair and the
// paired fixed-value grant as a single atomic unit. The duplicate pre-check
// runs before the transaction; the UNIQUE(candidate_uid, event_day)
// constraint backstops it at the storage level.
func MarkAttendance(db *sql.DB, uid int64, day int, adminUsername string) error {
	exists, err := CandidateExists(db, uid)
	if err != nil {
		return err
	}
	if !exists {
		return ErrNotFound
	}

	var existing int64
	err = db.QueryRow(
		"SELECT attendance_id FROM attendance WHERE candidate_uid = ? AND event_day = ?",
		uid, day,
	).Scan(&existing)
	if err == nil {
		return ErrDuplicate
	}
	if err != sql.ErrNoRows {
		return err
	}

	now := time.Now()
	reason := fmt.Sprintf("Attendance Day %d", day)

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		"INSERT INTO points_log (candidate_uid, points, reason, admin_username, awarded_at) VALUES (?, ?, ?, ?, ?)",
		uid, AttendancePoints, reason, adminUsername, now.Format(timeLayout),
	)
	if err != nil {
		return err
	}
	_, err = tx.Exec(
		"INSERT INTO attendance (candidate_uid, event_day, attended_at) VALUES (?, ?, ?)",
		uid, day, now.Format(dateLayout),
	)
	if err != nil {
		return err
	}
	return tx.Commit()
}
