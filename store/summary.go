package store

import (
	"database/sql"

	"event-manager/models"
)

// Summary gathers the dashboard aggregates: counters, the per-day point
// series for the 7 most recent days (returned oldest first for the chart),
// the top-3 leaderboard (optionally filtered by gender) and the 5 newest
// ledger entries.
func Summary(db *sql.DB, gender string) (*models.SummaryResponse, error) {
	resp := &models.SummaryResponse{Success: true}

	if err := db.QueryRow("SELECT COUNT(*) FROM candidates").Scan(&resp.Stats.TotalCandidates); err != nil {
		return nil, err
	}
	if err := db.QueryRow("SELECT COALESCE(SUM(points), 0) FROM points_log").Scan(&resp.Stats.TotalPoints); err != nil {
		return nil, err
	}
	if err := db.QueryRow("SELECT COUNT(*) FROM attendance").Scan(&resp.Stats.TotalAttendance); err != nil {
		return nil, err
	}

	dayRows, err := db.Query(
		`SELECT DATE(awarded_at) AS date, SUM(points) AS total
		 FROM points_log GROUP BY DATE(awarded_at)
		 ORDER BY date DESC LIMIT 7`,
	)
	if err != nil {
		return nil, err
	}
	defer dayRows.Close()
	resp.Charts.PointsPerDay = []models.DayPoints{}
	for dayRows.Next() {
		var dp models.DayPoints
		if err := dayRows.Scan(&dp.Date, &dp.Total); err != nil {
			return nil, err
		}
		resp.Charts.PointsPerDay = append(resp.Charts.PointsPerDay, dp)
	}
	if err := dayRows.Err(); err != nil {
		return nil, err
	}
	// Chart wants oldest first.
	for i, j := 0, len(resp.Charts.PointsPerDay)-1; i < j; i, j = i+1, j-1 {
		resp.Charts.PointsPerDay[i], resp.Charts.PointsPerDay[j] =
			resp.Charts.PointsPerDay[j], resp.Charts.PointsPerDay[i]
	}

	topQuery := `SELECT c.uid, c.name, COALESCE(SUM(pl.points), 0) AS total
		FROM candidates c LEFT JOIN points_log pl ON c.uid = pl.candidate_uid`
	var topArgs []interface{}
	if gender != "" {
		topQuery += " WHERE c.gender = ?"
		topArgs = append(topArgs, gender)
	}
	topQuery += " GROUP BY c.uid, c.name ORDER BY total DESC LIMIT 3"

	topRows, err := db.Query(topQuery, topArgs...)
	if err != nil {
		return nil, err
	}
	defer topRows.Close()
	resp.Charts.TopUsers = []models.TopCandidate{}
	for topRows.Next() {
		var tc models.TopCandidate
		if err := topRows.Scan(&tc.UID, &tc.Name, &tc.Total); err != nil {
			return nil, err
		}
		resp.Charts.TopUsers = append(resp.Charts.TopUsers, tc)
	}
	if err := topRows.Err(); err != nil {
		return nil, err
	}

	feedRows, err := db.Query(
		`SELECT c.name, pl.reason, pl.points, pl.awarded_at
		 FROM points_log pl JOIN candidates c ON c.uid = pl.candidate_uid
		 ORDER BY pl.awarded_at DESC, pl.log_id DESC LIMIT 5`,
	)
	if err != nil {
		return nil, err
	}
	defer feedRows.Close()
	resp.Feed = []models.ActivityEntry{}
	for feedRows.Next() {
		var ae models.ActivityEntry
		if err := feedRows.Scan(&ae.Name, &ae.Reason, &ae.Points, &ae.AwardedAt); err != nil {
			return nil, err
		}
		resp.Feed = append(resp.Feed, ae)
	}
	return resp, feedRows.Err()
}
