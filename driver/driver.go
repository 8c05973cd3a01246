package driver

import (
	"database/sql"
	"log"

	_ "github.com/go-sql-driver/mysql"

	"event-manager/config"
)

func ConnectDB(cfg config.DatabaseConfig) *sql.DB {
	db, err := sql.Open("mysql", cfg.DSN())
	if err != nil {
		log.Fatal("Error opening database connection:", err)
	}
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	if err := db.Ping(); err != nil {
		log.Fatal("Could not connect to the database:", err)
	}
	return db
}
