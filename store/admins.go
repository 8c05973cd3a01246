package store

import (
	"database/sql"

	"event-manager/models"
)

func GetAdminByUsername(db *sql.DB, username string) (*models.Admin, error) {
	var admin models.Admin
	err := db.QueryRow(
		"SELECT id, username, password FROM admins WHERE username = ?",
		username,
	).Scan(&admin.ID, &admin.Username, &admin.Password)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

func CreateAdmin(db *sql.DB, username, passwordHash string) error {
	_, err := db.Exec(
		"INSERT INTO admins (username, password) VALUES (?, ?)",
		username, passwordHash,
	)
	return err
}
