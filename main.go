package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	"event-manager/audit"
	"event-manager/config"
	"event-manager/controllers"
	"event-manager/db"
	"event-manager/driver"
	"event-manager/session"
)

var database *sql.DB

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatal("Error loading config:", err)
	}

	if err := audit.Init(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.ActionFile); err != nil {
		log.Fatal("Error initializing audit log:", err)
	}

	database = driver.ConnectDB(cfg.Database)
	defer database.Close()

	if err := db.CreateSchema(database); err != nil {
		log.Fatal("Error creating schema:", err)
	}

	ttl := time.Duration(cfg.Sessions.TTLHours) * time.Hour
	var sessions session.Store
	if cfg.Sessions.Backend == "database" {
		sessions = session.NewSQLStore(database, ttl)
	} else {
		sessions = session.NewMemoryStore(ttl)
	}

	authController := controllers.AuthController{Sessions: sessions, TTL: ttl}
	candidateController := controllers.CandidateController{}
	pointsController := controllers.PointsController{}
	attendanceController := controllers.AttendanceController{}
	summaryController := controllers.SummaryController{}
	eventController := controllers.EventController{}
	backupController := controllers.BackupController{Backup: cfg.Backup}

	router := mux.NewRouter()

	router.HandleFunc("/api/login", authController.Login(database)).Methods("POST")
	router.HandleFunc("/api/logout", authController.Logout()).Methods("POST")
	router.HandleFunc("/api/auth/status", authController.Status()).Methods("GET")

	router.HandleFunc("/api/summary", authController.RequireLogin(summaryController.Get(database))).Methods("GET")
	router.HandleFunc("/api/backup/excel", authController.RequireLogin(backupController.Excel(database))).Methods("GET")

	router.HandleFunc("/api/candidates", authController.RequireLogin(candidateController.Create(database))).Methods("POST")
	router.HandleFunc("/api/candidates/all", authController.RequireLogin(candidateController.GetAll(database))).Methods("GET")
	router.HandleFunc("/api/candidates", authController.RequireLogin(candidateController.Get(database))).Methods("GET")
	router.HandleFunc("/api/candidates/{uid}", authController.RequireLogin(candidateController.Delete(database))).Methods("DELETE")

	router.HandleFunc("/api/points", authController.RequireLogin(pointsController.Add(database))).Methods("POST")
	router.HandleFunc("/api/event-points", authController.RequireLogin(pointsController.AddEventPoints(database))).Methods("POST")

	router.HandleFunc("/api/attendance", authController.RequireLogin(attendanceController.Mark(database))).Methods("POST")
	router.HandleFunc("/api/attendance/bulk", authController.RequireLogin(attendanceController.MarkBulk(database))).Methods("POST")

	router.HandleFunc("/api/events/search", authController.RequireLogin(eventController.Search(database))).Methods("GET")
	router.HandleFunc("/api/events/participants", authController.RequireLogin(eventController.Participants(database))).Methods("GET")

	// Login page is the only unauthenticated page; everything else redirects
	// there until a session exists.
	router.HandleFunc("/Login", func(w http.ResponseWriter, r *http.Request) {
		if session.ResolveRequest(sessions, r) != nil {
			http.Redirect(w, r, "/", http.StatusFound)
			return
		}
		http.ServeFile(w, r, filepath.Join("public", "login.html"))
	}).Methods("GET")

	router.PathPrefix("/").HandlerFunc(authController.RequireLogin(servePage)).Methods("GET")

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	server := &http.Server{
		Handler:      router,
		Addr:         addr,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	audit.Log.Infof("Server started on port %d", cfg.Server.Port)
	log.Fatal(server.ListenAndServe())
}

// servePage hands the dashboard shell to any authenticated page route; asset
// requests that miss the public directory get a plain 404.
func servePage(w http.ResponseWriter, r *http.Request) {
	if ext := filepath.Ext(r.URL.Path); ext != "" && r.URL.Path != "/" {
		asset := filepath.Join("public", filepath.Clean(r.URL.Path))
		if _, err := os.Stat(asset); err != nil {
			audit.Warnf("Resource not found: %s", r.URL.Path)
			http.NotFound(w, r)
			return
		}
		http.ServeFile(w, r, asset)
		return
	}
	http.ServeFile(w, r, filepath.Join("public", "index.html"))
}
