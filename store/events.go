package store

import (
	"database/sql"

	"event-manager/models"
)

// SearchEventNames lists distinct reasons from the points ledger. With a
// term, matches are substring-filtered and capped at 20; without one, every
// distinct reason comes back.
func SearchEventNames(db *sql.DB, term string) ([]string, error) {
	var rows *sql.Rows
	var err error
	if term != "" {
		rows, err = db.Query(
			"SELECT DISTINCT reason FROM points_log WHERE reason LIKE ? ORDER BY reason LIMIT 20",
			"%"+term+"%",
		)
	} else {
		rows, err = db.Query("SELECT DISTINCT reason FROM points_log ORDER BY reason")
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// EventParticipants returns the distinct candidates who received points
// tagged with the given reason, with their point total for that event.
func EventParticipants(db *sql.DB, eventName string) ([]models.EventParticipant, error) {
	rows, err := db.Query(
		`SELECT c.uid, c.name, SUM(pl.points) AS points
		 FROM points_log pl JOIN candidates c ON c.uid = pl.candidate_uid
		 WHERE pl.reason = ?
		 GROUP BY c.uid, c.name
		 ORDER BY c.uid ASC`,
		eventName,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	participants := []models.EventParticipant{}
	for rows.Next() {
		var p models.EventParticipant
		if err := rows.Scan(&p.UID, &p.Name, &p.Points); err != nil {
			return nil, err
		}
		participants = append(participants, p)
	}
	return participants, rows.Err()
}
