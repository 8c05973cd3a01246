// Command createadmin provisions admin accounts out-of-band. The running
// server never creates admins; run this against the database directly:
//
//	createadmin -config config.yaml admin1 secret1 [admin2 secret2 ...]
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"event-manager/config"
	"event-manager/db"
	"event-manager/driver"
	"event-manager/store"
	"event-manager/utils"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 || len(args)%2 != 0 {
		fmt.Fprintln(os.Stderr, "usage: createadmin [-config config.yaml] username password [username password ...]")
		os.Exit(2)
	}

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("Error loading config:", err)
	}

	database := driver.ConnectDB(cfg.Database)
	defer database.Close()

	if err := db.CreateSchema(database); err != nil {
		log.Fatal("Error creating schema:", err)
	}

	for i := 0; i < len(args); i += 2 {
		username, password := args[i], args[i+1]
		hash, err := utils.HashPassword(password)
		if err != nil {
			log.Fatalf("Error hashing password for %s: %v", username, err)
		}
		if err := store.CreateAdmin(database, username, hash); err != nil {
			log.Fatalf("Error creating admin %s: %v", username, err)
		}
		fmt.Printf("Created admin %s\n", username)
	}
}
