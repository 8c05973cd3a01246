package controllers

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"

	"event-manager/audit"
	"event-manager/bulk"
	"event-manager/models"
	"event-manager/session"
	"event-manager/store"
	"event-manager/utils"
)

type AttendanceController struct{}

// Mark records attendance for one candidate and day. The mark and its paired
// 100-point grant land in one transaction.
func (c AttendanceController) Mark(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.MarkAttendanceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body.")
			return
		}
		username := session.FromContext(r.Context()).Username
		ipAddress := utils.ClientIP(r)

		if req.Day < 1 {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid day.")
			return
		}

		err := store.MarkAttendance(db, req.UID, req.Day, username)
		switch err {
		case nil:
			audit.Action(username, "Marked Attendance", ipAddress,
				fmt.Sprintf("UID: %d, Day: %d", req.UID, req.Day))
			utils.ResponseJSON(w, models.APIResponse{
				Success: true,
				Message: fmt.Sprintf("Attendance marked for Day %d.", req.Day),
			})
		case store.ErrNotFound:
			audit.Action(username, "Attempted Mark Attendance", ipAddress,
				fmt.Sprintf("Failed - UID %d not found", req.UID))
			utils.RespondWithError(w, http.StatusNotFound, fmt.Sprintf("Candidate UID %d not found.", req.UID))
		case store.ErrDuplicate:
			audit.Action(username, "Attempted Mark Attendance", ipAddress,
				fmt.Sprintf("Failed - UID %d already marked for Day %d", req.UID, req.Day))
			utils.RespondWithError(w, http.StatusConflict,
				fmt.Sprintf("Attendance for Day %d already marked for UID %d.", req.Day, req.UID))
		default:
			audit.Errorf("Mark Attendance Error by %s, IP: %s: %v", username, ipAddress, err)
			audit.Action(username, "Attempted Mark Attendance", ipAddress,
				fmt.Sprintf("Failed - UID: %d, Error: %v", req.UID, err))
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to mark attendance.")
		}
	}
}

// MarkBulk marks attendance for a delimited UID string. Duplicates get their
// own bucket and do not count against overall success; only not-found and
// error outcomes do.
func (c AttendanceController) MarkBulk(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.BulkAttendanceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body.")
			return
		}
		username := session.FromContext(r.Context()).Username
		ipAddress := utils.ClientIP(r)

		if req.Day < 1 {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid day.")
			return
		}

		uids := bulk.ParseUIDs(req.UIDs)
		if len(uids) == 0 {
			utils.ResponseJSON(w, models.APIResponse{Success: false, Message: bulk.NoValidUIDsMessage})
			return
		}

		if err := db.PingContext(r.Context()); err != nil {
			audit.Errorf("Bulk Attendance Main Error by %s, IP: %s: %v", username, ipAddress, err)
			audit.Action(username, "Attempted Mark Bulk Attendance", ipAddress,
				fmt.Sprintf("Failed - Error: %v", err))
			utils.RespondWithError(w, http.StatusInternalServerError, "Server error during bulk attendance.")
			return
		}

		result := bulk.Run(uids, func(uid int64) bulk.Status {
			err := store.MarkAttendance(db, uid, req.Day, username)
			switch err {
			case nil:
				return bulk.StatusSuccess
			case store.ErrNotFound:
				return bulk.StatusNotFound
			case store.ErrDuplicate:
				return bulk.StatusDuplicate
			default:
				audit.Errorf("Bulk Attendance Error for UID %d by %s, IP: %s: %v", uid, username, ipAddress, err)
				return bulk.StatusError
			}
		})

		logStatus := "Partial Failure"
		if result.OK() {
			logStatus = "Success"
		}
		audit.Action(username, "Marked Bulk Attendance", ipAddress,
			fmt.Sprintf("%s - Day: %d, %s", logStatus, req.Day, result.AuditDetails()))

		utils.ResponseJSON(w, models.APIResponse{
			Success: result.OK(),
			Message: result.Summary("Attendance marked for %d user(s)."),
		})
	}
}
