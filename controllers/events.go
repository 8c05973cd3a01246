package controllers

import (
	"database/sql"
	"net/http"
	"strings"

	"event-manager/audit"
	"event-manager/store"
	"event-manager/utils"
)

type EventController struct{}

// Search returns distinct event/reason names for the bulk-grant autocomplete.
func (c EventController) Search(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		term := strings.TrimSpace(r.URL.Query().Get("term"))

		names, err := store.SearchEventNames(db, term)
		if err != nil {
			audit.Errorf("Event Search Error: %v", err)
			utils.RespondWithError(w, http.StatusInternalServerError, "Error searching events.")
			return
		}
		utils.ResponseJSON(w, map[string]interface{}{"success": true, "data": names})
	}
}

// Participants lists the candidates who received points under an event name.
func (c EventController) Participants(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		eventName := strings.TrimSpace(r.URL.Query().Get("eventName"))
		if eventName == "" {
			utils.RespondWithError(w, http.StatusBadRequest, "eventName is required.")
			return
		}

		participants, err := store.EventParticipants(db, eventName)
		if err != nil {
			audit.Errorf("Event Participants Error: %v", err)
			utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching event participants.")
			return
		}
		utils.ResponseJSON(w, map[string]interface{}{"success": true, "data": participants})
	}
}
