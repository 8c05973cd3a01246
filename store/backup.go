package store

import (
	"database/sql"

	"event-manager/models"
)

func AllCandidates(db *sql.DB) ([]models.Candidate, error) {
	rows, err := db.Query(
		"SELECT uid, name, age, phone, gender, created_at FROM candidates ORDER BY uid ASC",
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	candidates := []models.Candidate{}
	for rows.Next() {
		var c models.Candidate
		if err := rows.Scan(&c.UID, &c.Name, &c.Age, &c.Phone, &c.Gender, &c.CreatedAt); err != nil {
			return nil, err
		}
		candidates = append(candidates, c)
	}
	return candidates, rows.Err()
}

func AllPointsLog(db *sql.DB) ([]models.PointsLogRow, error) {
	rows, err := db.Query(
		`SELECT log_id, candidate_uid, points, reason, admin_username, awarded_at
		 FROM points_log ORDER BY log_id ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []models.PointsLogRow{}
	for rows.Next() {
		var e models.PointsLogRow
		var admin sql.NullString
		if err := rows.Scan(&e.LogID, &e.CandidateUID, &e.Points, &e.Reason, &admin, &e.AwardedAt); err != nil {
			return nil, err
		}
		e.AdminUsername = admin.String
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func AllAttendance(db *sql.DB) ([]models.AttendanceEntry, error) {
	rows, err := db.Query(
		`SELECT attendance_id, candidate_uid, event_day, attended_at
		 FROM attendance ORDER BY attendance_id ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []models.AttendanceEntry{}
	for rows.Next() {
		var e models.AttendanceEntry
		if err := rows.Scan(&e.AttendanceID, &e.CandidateUID, &e.EventDay, &e.AttendedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
