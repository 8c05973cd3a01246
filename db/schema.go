// Package db creates the MySQL schema on startup. Statements are idempotent
// so restarting the server against an existing database is safe.
package db

import "database/sql"

func CreateSchema(db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS admins (
			id INT AUTO_INCREMENT PRIMARY KEY,
			username VARCHAR(100) NOT NULL UNIQUE,
			password VARCHAR(255) NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS candidates (
			uid INT AUTO_INCREMENT PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			age INT NOT NULL,
			phone VARCHAR(20) NOT NULL,
			gender VARCHAR(10) NOT NULL,
			created_at DATETIME NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS points_log (
			log_id INT AUTO_INCREMENT PRIMARY KEY,
			candidate_uid INT NOT NULL,
			points INT NOT NULL,
			reason TEXT,
			admin_username VARCHAR(100),
			awarded_at DATETIME NOT NULL,
			FOREIGN KEY (candidate_uid) REFERENCES candidates(uid) ON DELETE CASCADE
		)`,
		`CREATE TABLE IF NOT EXISTS attendance (
			attendance_id INT AUTO_INCREMENT PRIMARY KEY,
			candidate_uid INT NOT NULL,
			event_day INT NOT NULL,
			attended_at DATE NOT NULL,
			UNIQUE KEY uniq_candidate_day (candidate_uid, event_day),
			FOREIGN KEY (candidate_uid) REFERENCES candidates(uid) ON DELETE CASCADE
		)`,
		`CREATE TABLE IF NOT EXISTS sessions (
			token VARCHAR(64) PRIMARY KEY,
			admin_id INT NOT NULL,
			username VARCHAR(100) NOT NULL,
			expires_at DATETIME NOT NULL
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
