package controllers

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"time"

	"event-manager/audit"
	"event-manager/models"
	"event-manager/session"
	"event-manager/store"
	"event-manager/utils"
)

type AuthController struct {
	Sessions session.Store
	TTL      time.Duration
}

// Login verifies credentials against the admins table and opens a session.
// A missing username and a wrong password are indistinguishable to the
// caller; both attempts are audited with the client address.
func (c AuthController) Login(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body.")
			return
		}
		ipAddress := utils.ClientIP(r)

		admin, err := store.GetAdminByUsername(db, req.Username)
		if err == store.ErrNotFound {
			audit.Warnf("Login Failed: Username '%s' not found. IP: %s", req.Username, ipAddress)
			utils.RespondWithError(w, http.StatusUnauthorized, "Invalid credentials.")
			return
		}
		if err != nil {
			audit.Errorf("Login Error: %v. Username: %s, IP: %s", err, req.Username, ipAddress)
			utils.RespondWithError(w, http.StatusInternalServerError, "Server error during login.")
			return
		}

		if !utils.ComparePasswords(admin.Password, []byte(req.Password)) {
			audit.Warnf("Login Failed: Incorrect password for username '%s'. IP: %s", req.Username, ipAddress)
			utils.RespondWithError(w, http.StatusUnauthorized, "Invalid credentials.")
			return
		}

		token, err := c.Sessions.Create(admin.ID, admin.Username)
		if err != nil {
			audit.Errorf("Login Error: %v. Username: %s, IP: %s", err, req.Username, ipAddress)
			utils.RespondWithError(w, http.StatusInternalServerError, "Server error during login.")
			return
		}
		session.SetCookie(w, token, c.ttl())

		audit.Action(admin.Username, "Logged In", ipAddress, "")
		utils.ResponseJSON(w, models.APIResponse{Success: true, Message: "Login successful!"})
	}
}

func (c AuthController) Logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ipAddress := utils.ClientIP(r)
		username := "Unknown user"

		if sess := session.ResolveRequest(c.Sessions, r); sess != nil {
			username = sess.Username
			if err := c.Sessions.Destroy(sess.Token); err != nil {
				audit.Errorf("Logout Error for %s: %v. IP: %s", username, err, ipAddress)
				utils.RespondWithError(w, http.StatusInternalServerError, "Logout failed.")
				return
			}
		}
		session.ClearCookie(w)

		audit.Action(username, "Logged Out", ipAddress, "")
		utils.ResponseJSON(w, models.APIResponse{Success: true, Message: "Logged out successfully."})
	}
}

// Status lets the frontend check whether its session is still live.
func (c AuthController) Status() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := session.ResolveRequest(c.Sessions, r)
		if sess == nil {
			utils.ResponseJSON(w, models.AuthStatusResponse{LoggedIn: false})
			return
		}
		utils.ResponseJSON(w, models.AuthStatusResponse{LoggedIn: true, Username: sess.Username})
	}
}

// RequireLogin wraps a protected handler with the session check.
func (c AuthController) RequireLogin(next http.HandlerFunc) http.HandlerFunc {
	return session.RequireLogin(c.Sessions, next)
}

func (c AuthController) ttl() time.Duration {
	if c.TTL > 0 {
		return c.TTL
	}
	return session.DefaultTTL
}
