package controllers

import (
	"database/sql"
	"net/http"

	"event-manager/audit"
	"event-manager/store"
	"event-manager/utils"
)

type SummaryController struct{}

func (c SummaryController) Get(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		gender := r.URL.Query().Get("gender")
		if gender != "" && !utils.IsValidGender(gender) {
			utils.RespondWithError(w, http.StatusBadRequest, "Gender must be Male or Female.")
			return
		}

		resp, err := store.Summary(db, gender)
		if err != nil {
			audit.Errorf("Dashboard Summary Error: %v", err)
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to load dashboard data.")
			return
		}
		utils.ResponseJSON(w, resp)
	}
}
