package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"event-manager/models"
	"event-manager/store"
	"event-manager/testutil"
)

func TestSummary(t *testing.T) {
	db := testutil.SetupTestDB(t)
	router, sessions := newTestRouter(db)
	headers := loginAs(t, sessions, "admin1")
	uid := testutil.SeedCandidate(t, db, "Asha", 12, "9876543210", "Female")

	if err := store.GrantPoints(db, uid, 50, "Quiz", "admin1"); err != nil {
		t.Fatalf("GrantPoints failed: %v", err)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, testutil.MakeRequest("GET", "/api/summary", nil, headers))
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.SummaryResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Stats.TotalCandidates != 1 || resp.Stats.TotalPoints != 50 {
		t.Errorf("unexpected stats: %+v", resp.Stats)
	}
	if len(resp.Charts.TopUsers) != 1 || resp.Charts.TopUsers[0].UID != uid {
		t.Errorf("unexpected leaderboard: %+v", resp.Charts.TopUsers)
	}
	if len(resp.Feed) != 1 {
		t.Errorf("feed = %d entries, want 1", len(resp.Feed))
	}
}

func TestSummaryGenderValidation(t *testing.T) {
	db := testutil.SetupTestDB(t)
	router, sessions := newTestRouter(db)
	headers := loginAs(t, sessions, "admin1")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, testutil.MakeRequest("GET", "/api/summary?gender=unknown", nil, headers))
	testutil.AssertStatus(t, w, http.StatusBadRequest)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, testutil.MakeRequest("GET", "/api/summary?gender=Male", nil, headers))
	testutil.AssertStatus(t, w, http.StatusOK)
}

func TestEventSearchAndParticipants(t *testing.T) {
	db := testutil.SetupTestDB(t)
	router, sessions := newTestRouter(db)
	headers := loginAs(t, sessions, "admin1")
	uid := testutil.SeedCandidate(t, db, "Asha", 12, "9876543210", "Female")

	if err := store.GrantPoints(db, uid, 10, "Treasure Hunt", "admin1"); err != nil {
		t.Fatalf("GrantPoints failed: %v", err)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, testutil.MakeRequest("GET", "/api/events/search?term=Treasure", nil, headers))
	testutil.AssertStatus(t, w, http.StatusOK)

	var searchResp struct {
		Success bool     `json:"success"`
		Data    []string `json:"data"`
	}
	testutil.AssertJSON(t, w, &searchResp)
	if len(searchResp.Data) != 1 || searchResp.Data[0] != "Treasure Hunt" {
		t.Errorf("search data = %v", searchResp.Data)
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, testutil.MakeRequest("GET", "/api/events/participants?eventName=Treasure+Hunt", nil, headers))
	testutil.AssertStatus(t, w, http.StatusOK)

	var partResp struct {
		Success bool                      `json:"success"`
		Data    []models.EventParticipant `json:"data"`
	}
	testutil.AssertJSON(t, w, &partResp)
	if len(partResp.Data) != 1 || partResp.Data[0].UID != uid || partResp.Data[0].Points != 10 {
		t.Errorf("participants = %+v", partResp.Data)
	}

	// eventName is mandatory.
	w = httptest.NewRecorder()
	router.ServeHTTP(w, testutil.MakeRequest("GET", "/api/events/participants", nil, headers))
	testutil.AssertStatus(t, w, http.StatusBadRequest)
}
