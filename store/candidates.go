package store

import (
	"database/sql"
	"strconv"
	"time"

	"event-manager/models"
)

func CreateCandidate(db *sql.DB, name string, age int, phone, gender string) (int64, error) {
	result, err := db.Exec(
		"INSERT INTO candidates (name, age, phone, gender, created_at) VALUES (?, ?, ?, ?, ?)",
		name, age, phone, gender, time.Now().Format(timeLayout),
	)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

func CandidateExists(db *sql.DB, uid int64) (bool, error) {
	var found int64
	err := db.QueryRow("SELECT uid FROM candidates WHERE uid = ?", uid).Scan(&found)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// FindCandidate resolves a search term to a single candidate. A numeric term
// is tried as an exact UID first; only when that finds nothing does the name
// substring match run. The detail includes total points, the attendance day
// list and the full grant history, newest first.
func FindCandidate(db *sql.DB, term string) (*models.CandidateDetail, error) {
	var detail models.CandidateDetail

	const selectCols = "SELECT uid, name, age, phone, gender, created_at FROM candidates "
	scan := func(row *sql.Row) error {
		return row.Scan(&detail.UID, &detail.Name, &detail.Age, &detail.Phone,
			&detail.Gender, &detail.CreatedAt)
	}

	found := false
	if uid, convErr := strconv.ParseInt(term, 10, 64); convErr == nil {
		err := scan(db.QueryRow(selectCols+"WHERE uid = ?", uid))
		if err != nil && err != sql.ErrNoRows {
			return nil, err
		}
		found = err == nil
	}
	if !found {
		err := scan(db.QueryRow(selectCols+"WHERE name LIKE ? ORDER BY uid LIMIT 1", "%"+term+"%"))
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		if err != nil {
			return nil, err
		}
	}

	err := db.QueryRow(
		"SELECT COALESCE(SUM(points), 0) FROM points_log WHERE candidate_uid = ?",
		detail.UID,
	).Scan(&detail.TotalPoints)
	if err != nil {
		return nil, err
	}

	dayRows, err := db.Query(
		"SELECT event_day FROM attendance WHERE candidate_uid = ? ORDER BY event_day",
		detail.UID,
	)
	if err != nil {
		return nil, err
	}
	defer dayRows.Close()
	detail.Attendance = []int{}
	for dayRows.Next() {
		var day int
		if err := dayRows.Scan(&day); err != nil {
			return nil, err
		}
		detail.Attendance = append(detail.Attendance, day)
	}
	if err := dayRows.Err(); err != nil {
		return nil, err
	}

	logRows, err := db.Query(
		`SELECT points, reason, admin_username, awarded_at
		 FROM points_log WHERE candidate_uid = ?
		 ORDER BY awarded_at DESC, log_id DESC`,
		detail.UID,
	)
	if err != nil {
		return nil, err
	}
	defer logRows.Close()
	detail.Logs = []models.PointsLogEntry{}
	for logRows.Next() {
		var entry models.PointsLogEntry
		var admin sql.NullString
		if err := logRows.Scan(&entry.Points, &entry.Reason, &admin, &entry.AwardedAt); err != nil {
			return nil, err
		}
		entry.AdminUsername = admin.String
		detail.Logs = append(detail.Logs, entry)
	}
	if err := logRows.Err(); err != nil {
		return nil, err
	}

	return &detail, nil
}

// ListCandidates returns every candidate with lifetime and today's point
// totals, ordered by UID. Filtering and re-sorting happen client side.
func ListCandidates(db *sql.DB) ([]models.CandidateSummary, error) {
	today := time.Now().Format(dateLayout)
	rows, err := db.Query(
		`SELECT c.uid, c.name, c.phone, c.gender,
		 COALESCE(SUM(pl.points), 0) AS total_points,
		 COALESCE(SUM(CASE WHEN DATE(pl.awarded_at) = ? THEN pl.points ELSE 0 END), 0) AS today_points
		 FROM candidates c LEFT JOIN points_log pl ON c.uid = pl.candidate_uid
		 GROUP BY c.uid, c.name, c.phone, c.gender
		 ORDER BY c.uid ASC`,
		today,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := []models.CandidateSummary{}
	for rows.Next() {
		var s models.CandidateSummary
		if err := rows.Scan(&s.UID, &s.Name, &s.Phone, &s.Gender, &s.TotalPoints, &s.TodayPoints); err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

// DeleteCandidate removes the candidate and its ledger rows in one
// transaction. Returns false when no candidate row existed.
func DeleteCandidate(db *sql.DB, uid int64) (bool, error) {
	tx, err := db.Begin()
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM points_log WHERE candidate_uid = ?", uid); err != nil {
		return false, err
	}
	if _, err := tx.Exec("DELETE FROM attendance WHERE candidate_uid = ?", uid); err != nil {
		return false, err
	}
	result, err := tx.Exec("DELETE FROM candidates WHERE uid = ?", uid)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	if err := tx.Commit(); err != nil {
		return false, err
	}
	return affected > 0, nil
}
