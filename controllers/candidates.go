package controllers

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"event-manager/audit"
	"event-manager/models"
	"event-manager/session"
	"event-manager/store"
	"event-manager/utils"
)

type CandidateController struct{}

func (c CandidateController) Create(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.CreateCandidateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body.")
			return
		}
		username := session.FromContext(r.Context()).Username
		ipAddress := utils.ClientIP(r)

		req.Name = strings.TrimSpace(req.Name)
		if req.Name == "" {
			utils.RespondWithError(w, http.StatusBadRequest, "Name is required.")
			return
		}
		if req.Age < 4 {
			utils.RespondWithError(w, http.StatusBadRequest, "Age must be at least 4.")
			return
		}
		if !utils.IsPhoneNumber(req.Phone) {
			utils.RespondWithError(w, http.StatusBadRequest, "Phone must be exactly 10 digits.")
			return
		}
		if !utils.IsValidGender(req.Gender) {
			utils.RespondWithError(w, http.StatusBadRequest, "Gender must be Male or Female.")
			return
		}

		uid, err := store.CreateCandidate(db, req.Name, req.Age, req.Phone, req.Gender)
		if err != nil {
			audit.Errorf("Create Candidate Error by %s, IP: %s: %v", username, ipAddress, err)
			audit.Action(username, "Attempted Create Candidate", ipAddress,
				fmt.Sprintf("Failed - Name: %s, Error: %v", req.Name, err))
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create candidate.")
			return
		}

		audit.Action(username, "Created Candidate", ipAddress,
			fmt.Sprintf("UID: %d, Name: %s", uid, req.Name))
		utils.ResponseJSONStatus(w, http.StatusCreated, map[string]interface{}{
			"success": true,
			"uid":     uid,
		})
	}
}

// Get resolves a search term (exact UID, or name substring) to one candidate
// with its aggregates and full points history.
func (c CandidateController) Get(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		term := strings.TrimSpace(r.URL.Query().Get("searchTerm"))
		if term == "" {
			utils.RespondWithError(w, http.StatusBadRequest, "searchTerm is required.")
			return
		}

		detail, err := store.FindCandidate(db, term)
		if err == store.ErrNotFound {
			utils.RespondWithError(w, http.StatusNotFound, "Candidate not found")
			return
		}
		if err != nil {
			audit.Errorf("View Candidate Error: %v", err)
			utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching candidate data.")
			return
		}
		utils.ResponseJSON(w, map[string]interface{}{"success": true, "data": detail})
	}
}

func (c CandidateController) GetAll(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summaries, err := store.ListCandidates(db)
		if err != nil {
			audit.Errorf("View All Candidates Error: %v", err)
			utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching all candidates.")
			return
		}
		utils.ResponseJSON(w, map[string]interface{}{"success": true, "data": summaries})
	}
}

func (c CandidateController) Delete(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := session.FromContext(r.Context()).Username
		ipAddress := utils.ClientIP(r)

		uid, err := strconv.ParseInt(mux.Vars(r)["uid"], 10, 64)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid UID.")
			return
		}

		deleted, err := store.DeleteCandidate(db, uid)
		if err != nil {
			audit.Errorf("Delete Candidate Error by %s, IP: %s: %v", username, ipAddress, err)
			audit.Action(username, "Attempted Delete Candidate", ipAddress,
				fmt.Sprintf("Failed - UID: %d, Error: %v", uid, err))
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete candidate.")
			return
		}
		if !deleted {
			audit.Warnf("Delete Failed by %s, IP: %s: Candidate UID %d not found.", username, ipAddress, uid)
			audit.Action(username, "Attempted Delete Candidate", ipAddress,
				fmt.Sprintf("Failed - UID %d not found", uid))
			utils.RespondWithError(w, http.StatusNotFound, fmt.Sprintf("Candidate UID %d not found.", uid))
			return
		}

		audit.Action(username, "Deleted Candidate", ipAddress, fmt.Sprintf("UID: %d", uid))
		utils.ResponseJSON(w, models.APIResponse{
			Success: true,
			Message: fmt.Sprintf("Candidate %d deleted successfully.", uid),
		})
	}
}
