package controllers

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"event-manager/audit"
	"event-manager/bulk"
	"event-manager/models"
	"event-manager/session"
	"event-manager/store"
	"event-manager/utils"
)

type PointsController struct{}

// Add grants points to one candidate. Negative values are deductions.
func (c PointsController) Add(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.AddPointsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body.")
			return
		}
		username := session.FromContext(r.Context()).Username
		ipAddress := utils.ClientIP(r)

		err := store.GrantPoints(db, req.UID, req.Points, req.Reason, username)
		if err == store.ErrNotFound {
			audit.Action(username, "Attempted Add Points", ipAddress,
				fmt.Sprintf("Failed - UID %d not found", req.UID))
			utils.RespondWithError(w, http.StatusNotFound, fmt.Sprintf("Candidate UID %d not found.", req.UID))
			return
		}
		if err != nil {
			audit.Errorf("Add Points Error by %s, IP: %s: %v", username, ipAddress, err)
			audit.Action(username, "Attempted Add Points", ipAddress,
				fmt.Sprintf("Failed - UID: %d, Error: %v", req.UID, err))
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to add points.")
			return
		}

		audit.Action(username, "Added Points", ipAddress,
			fmt.Sprintf("UID: %d, Points: %d, Reason: %s", req.UID, req.Points, req.Reason))
		utils.ResponseJSON(w, models.APIResponse{Success: true, Message: "Points added successfully."})
	}
}

// AddEventPoints is the bulk grant: one event name, one point value, one
// delimited UID string. Outcomes are bucketed per UID and aggregated into a
// single response; one identifier's failure never aborts the rest.
func (c PointsController) AddEventPoints(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.EventPointsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body.")
			return
		}
		username := session.FromContext(r.Context()).Username
		ipAddress := utils.ClientIP(r)

		if strings.TrimSpace(req.EventName) == "" {
			utils.RespondWithError(w, http.StatusBadRequest, "eventName is required.")
			return
		}

		uids := bulk.ParseUIDs(req.UIDs)
		if len(uids) == 0 {
			utils.ResponseJSON(w, models.APIResponse{Success: false, Message: bulk.NoValidUIDsMessage})
			return
		}

		// Batch setup: verify storage is reachable at all before starting.
		// Per-item faults below are absorbed into the error bucket instead.
		if err := db.PingContext(r.Context()); err != nil {
			audit.Errorf("Bulk Event Points Main Error by %s, IP: %s: %v", username, ipAddress, err)
			audit.Action(username, "Attempted Add Event Points (Bulk)", ipAddress,
				fmt.Sprintf("Failed - Error: %v", err))
			utils.RespondWithError(w, http.StatusInternalServerError, "Server error during bulk points add.")
			return
		}

		result := bulk.Run(uids, func(uid int64) bulk.Status {
			err := store.GrantPoints(db, uid, req.Points, req.EventName, username)
			switch err {
			case nil:
				return bulk.StatusSuccess
			case store.ErrNotFound:
				return bulk.StatusNotFound
			default:
				audit.Errorf("Bulk Event Points Error for UID %d by %s, IP: %s: %v", uid, username, ipAddress, err)
				return bulk.StatusError
			}
		})

		logStatus := "Partial Failure"
		if result.OK() {
			logStatus = "Success"
		}
		audit.Action(username, "Added Event Points (Bulk)", ipAddress,
			fmt.Sprintf("%s - Event: %s, Points: %d, %s", logStatus, req.EventName, req.Points, result.AuditDetails()))

		utils.ResponseJSON(w, models.APIResponse{
			Success: result.OK(),
			Message: result.Summary("Points added to %d user(s)."),
		})
	}
}
