package store

import (
	"fmt"
	"testing"
	"time"

	"event-manager/testutil"
)

func TestCreateCandidateReturnsFreshUID(t *testing.T) {
	db := testutil.SetupTestDB(t)

	uid1, err := CreateCandidate(db, "Asha", 12, "9876543210", "Female")
	if err != nil {
		t.Fatalf("CreateCandidate failed: %v", err)
	}
	uid2, err := CreateCandidate(db, "Rohan", 14, "9876543211", "Male")
	if err != nil {
		t.Fatalf("CreateCandidate failed: %v", err)
	}
	if uid1 == 0 || uid2 == 0 {
		t.Fatal("expected non-zero UIDs")
	}
	if uid1 == uid2 {
		t.Errorf("expected fresh UIDs, got %d twice", uid1)
	}
}

func TestGrantPoints(t *testing.T) {
	db := testutil.SetupTestDB(t)
	uid := testutil.SeedCandidate(t, db, "Asha", 12, "9876543210", "Female")

	if err := GrantPoints(db, uid, 40, "Quiz", "admin1"); err != nil {
		t.Fatalf("GrantPoints failed: %v", err)
	}
	if err := GrantPoints(db, uid, -50, "Penalty", "admin1"); err != nil {
		t.Fatalf("negative GrantPoints failed: %v", err)
	}

	var total int64
	if err := db.QueryRow("SELECT COALESCE(SUM(points), 0) FROM points_log WHERE candidate_uid = ?", uid).Scan(&total); err != nil {
		t.Fatalf("Failed to sum points: %v", err)
	}
	if total != -10 {
		t.Errorf("total points = %d, want -10", total)
	}

	if err := GrantPoints(db, 9999, 10, "Quiz", "admin1"); err != ErrNotFound {
		t.Errorf("expected ErrNotFound for unknown candidate, got %v", err)
	}
}

func TestMarkAttendance(t *testing.T) {
	db := testutil.SetupTestDB(t)
	uid := testutil.SeedCandidate(t, db, "Asha", 12, "9876543210", "Female")

	if err := MarkAttendance(db, uid, 3, "admin1"); err != nil {
		t.Fatalf("MarkAttendance failed: %v", err)
	}

	// The mark and its paired grant must both exist.
	var marks int
	if err := db.QueryRow("SELECT COUNT(*) FROM attendance WHERE candidate_uid = ? AND event_day = 3", uid).Scan(&marks); err != nil {
		t.Fatalf("Failed to count attendance: %v", err)
	}
	if marks != 1 {
		t.Errorf("attendance rows = %d, want 1", marks)
	}
	var points int
	var reason string
	err := db.QueryRow(
		"SELECT points, reason FROM points_log WHERE candidate_uid = ?", uid,
	).Scan(&points, &reason)
	if err != nil {
		t.Fatalf("Failed to read paired grant: %v", err)
	}
	if points != AttendancePoints {
		t.Errorf("paired grant = %d points, want %d", points, AttendancePoints)
	}
	if reason != "Attendance Day 3" {
		t.Errorf("paired grant reason = %q, want %q", reason, "Attendance Day 3")
	}

	if err := MarkAttendance(db, uid, 3, "admin1"); err != ErrDuplicate {
		t.Errorf("expected ErrDuplicate on re-mark, got %v", err)
	}
	// The failed re-mark must not have granted more points.
	var grants int
	if err := db.QueryRow("SELECT COUNT(*) FROM points_log WHERE candidate_uid = ?", uid).Scan(&grants); err != nil {
		t.Fatalf("Failed to count grants: %v", err)
	}
	if grants != 1 {
		t.Errorf("grants = %d, want 1", grants)
	}

	if err := MarkAttendance(db, 9999, 3, "admin1"); err != ErrNotFound {
		t.Errorf("expected ErrNotFound for unknown candidate, got %v", err)
	}

	// Same candidate, different day is fine.
	if err := MarkAttendance(db, uid, 4, "admin1"); err != nil {
		t.Errorf("MarkAttendance for a new day failed: %v", err)
	}
}

func TestFindCandidateUIDPrecedence(t *testing.T) {
	db := testutil.SetupTestDB(t)
	// A candidate whose name contains "10", seeded before UID 10 exists.
	testutil.SeedCandidateWithUID(t, db, 7, "Team 10 Captain")
	testutil.SeedCandidateWithUID(t, db, 10, "Asha")

	detail, err := FindCandidate(db, "10")
	if err != nil {
		t.Fatalf("FindCandidate failed: %v", err)
	}
	if detail.UID != 10 {
		t.Errorf("expected UID-equality match to win, got UID %d", detail.UID)
	}

	// Non-matching numeric term falls back to the name substring.
	detail, err = FindCandidate(db, "Asha")
	if err != nil {
		t.Fatalf("FindCandidate by name failed: %v", err)
	}
	if detail.UID != 10 {
		t.Errorf("name search returned UID %d, want 10", detail.UID)
	}

	if _, err := FindCandidate(db, "nobody"); err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestFindCandidateDetail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	uid := testutil.SeedCandidate(t, db, "Asha", 12, "9876543210", "Female")

	if err := GrantPoints(db, uid, 20, "Quiz", "admin1"); err != nil {
		t.Fatalf("GrantPoints failed: %v", err)
	}
	if err := MarkAttendance(db, uid, 1, "admin2"); err != nil {
		t.Fatalf("MarkAttendance failed: %v", err)
	}

	detail, err := FindCandidate(db, fmt.Sprintf("%d", uid))
	if err != nil {
		t.Fatalf("FindCandidate failed: %v", err)
	}
	if detail.TotalPoints != 20+AttendancePoints {
		t.Errorf("TotalPoints = %d, want %d", detail.TotalPoints, 20+AttendancePoints)
	}
	if len(detail.Attendance) != 1 || detail.Attendance[0] != 1 {
		t.Errorf("Attendance = %v, want [1]", detail.Attendance)
	}
	if len(detail.Logs) != 2 {
		t.Fatalf("Logs = %d entries, want 2", len(detail.Logs))
	}
	// Newest first: the attendance grant came after the quiz grant.
	if detail.Logs[0].Reason != "Attendance Day 1" {
		t.Errorf("newest log = %q, want the attendance grant first", detail.Logs[0].Reason)
	}
	if detail.Logs[1].AdminUsername != "admin1" {
		t.Errorf("acting admin = %q, want admin1", detail.Logs[1].AdminUsername)
	}
}

func TestListCandidatesAggregates(t *testing.T) {
	db := testutil.SetupTestDB(t)
	uid1 := testutil.SeedCandidate(t, db, "Asha", 12, "9876543210", "Female")
	uid2 := testutil.SeedCandidate(t, db, "Rohan", 14, "9876543211", "Male")

	// Today's grant via the normal path, plus an old one inserted directly.
	if err := GrantPoints(db, uid1, 30, "Quiz", "admin1"); err != nil {
		t.Fatalf("GrantPoints failed: %v", err)
	}
	lastWeek := time.Now().AddDate(0, 0, -7).Format(timeLayout)
	if _, err := db.Exec(
		"INSERT INTO points_log (candidate_uid, points, reason, admin_username, awarded_at) VALUES (?, ?, ?, ?, ?)",
		uid1, 50, "Old Event", "admin1", lastWeek,
	); err != nil {
		t.Fatalf("Failed to insert old grant: %v", err)
	}

	summaries, err := ListCandidates(db)
	if err != nil {
		t.Fatalf("ListCandidates failed: %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("got %d summaries, want 2", len(summaries))
	}
	// Ordered by UID ascending.
	if summaries[0].UID != uid1 || summaries[1].UID != uid2 {
		t.Errorf("unexpected order: %d, %d", summaries[0].UID, summaries[1].UID)
	}
	if summaries[0].TotalPoints != 80 {
		t.Errorf("TotalPoints = %d, want 80", summaries[0].TotalPoints)
	}
	if summaries[0].TodayPoints != 30 {
		t.Errorf("TodayPoints = %d, want 30", summaries[0].TodayPoints)
	}
	if summaries[1].TotalPoints != 0 || summaries[1].TodayPoints != 0 {
		t.Errorf("expected zero totals for candidate without grants, got %+v", summaries[1])
	}
}

func TestDeleteCandidateCascades(t *testing.T) {
	db := testutil.SetupTestDB(t)
	uid := testutil.SeedCandidate(t, db, "Asha", 12, "9876543210", "Female")

	if err := GrantPoints(db, uid, 10, "Quiz", "admin1"); err != nil {
		t.Fatalf("GrantPoints failed: %v", err)
	}
	if err := MarkAttendance(db, uid, 2, "admin1"); err != nil {
		t.Fatalf("MarkAttendance failed: %v", err)
	}

	deleted, err := DeleteCandidate(db, uid)
	if err != nil {
		t.Fatalf("DeleteCandidate failed: %v", err)
	}
	if !deleted {
		t.Fatal("expected deletion to report true")
	}

	for _, q := range []string{
		"SELECT COUNT(*) FROM candidates WHERE uid = ?",
		"SELECT COUNT(*) FROM points_log WHERE candidate_uid = ?",
		"SELECT COUNT(*) FROM attendance WHERE candidate_uid = ?",
	} {
		var count int
		if err := db.QueryRow(q, uid).Scan(&count); err != nil {
			t.Fatalf("count query failed: %v", err)
		}
		if count != 0 {
			t.Errorf("orphan rows remain for %q", q)
		}
	}

	deleted, err = DeleteCandidate(db, uid)
	if err != nil {
		t.Fatalf("second DeleteCandidate failed: %v", err)
	}
	if deleted {
		t.Error("expected false when deleting a missing candidate")
	}
}

func TestSummary(t *testing.T) {
	db := testutil.SetupTestDB(t)
	uid1 := testutil.SeedCandidate(t, db, "Asha", 12, "9876543210", "Female")
	uid2 := testutil.SeedCandidate(t, db, "Rohan", 14, "9876543211", "Male")
	uid3 := testutil.SeedCandidate(t, db, "Meera", 13, "9876543212", "Female")
	uid4 := testutil.SeedCandidate(t, db, "Dev", 15, "9876543213", "Male")

	for uid, points := range map[int64]int{uid1: 40, uid2: 30, uid3: 20, uid4: 10} {
		if err := GrantPoints(db, uid, points, "Quiz", "admin1"); err != nil {
			t.Fatalf("GrantPoints failed: %v", err)
		}
	}
	if err := MarkAttendance(db, uid1, 1, "admin1"); err != nil {
		t.Fatalf("MarkAttendance failed: %v", err)
	}

	resp, err := Summary(db, "")
	if err != nil {
		t.Fatalf("Summary failed: %v", err)
	}
	if resp.Stats.TotalCandidates != 4 {
		t.Errorf("TotalCandidates = %d, want 4", resp.Stats.TotalCandidates)
	}
	if resp.Stats.TotalPoints != 100+AttendancePoints {
		t.Errorf("TotalPoints = %d, want %d", resp.Stats.TotalPoints, 100+AttendancePoints)
	}
	if resp.Stats.TotalAttendance != 1 {
		t.Errorf("TotalAttendance = %d, want 1", resp.Stats.TotalAttendance)
	}
	if len(resp.Charts.TopUsers) != 3 {
		t.Fatalf("TopUsers = %d entries, want 3", len(resp.Charts.TopUsers))
	}
	if resp.Charts.TopUsers[0].UID != uid1 {
		t.Errorf("leaderboard head = UID %d, want %d", resp.Charts.TopUsers[0].UID, uid1)
	}
	if len(resp.Feed) != 5 {
		t.Errorf("Feed = %d entries, want 5", len(resp.Feed))
	}
	if len(resp.Charts.PointsPerDay) != 1 {
		t.Errorf("PointsPerDay = %d entries, want 1", len(resp.Charts.PointsPerDay))
	}

	// Gender filter restricts the leaderboard only.
	resp, err = Summary(db, "Male")
	if err != nil {
		t.Fatalf("Summary with gender failed: %v", err)
	}
	for _, tc := range resp.Charts.TopUsers {
		if tc.UID != uid2 && tc.UID != uid4 {
			t.Errorf("unexpected UID %d in Male leaderboard", tc.UID)
		}
	}
	if resp.Stats.TotalCandidates != 4 {
		t.Errorf("stats must stay unfiltered, got %d candidates", resp.Stats.TotalCandidates)
	}
}

func TestEventQueries(t *testing.T) {
	db := testutil.SetupTestDB(t)
	uid1 := testutil.SeedCandidate(t, db, "Asha", 12, "9876543210", "Female")
	uid2 := testutil.SeedCandidate(t, db, "Rohan", 14, "9876543211", "Male")

	for _, grant := range []struct {
		uid    int64
		points int
		reason string
	}{
		{uid1, 10, "Treasure Hunt"},
		{uid1, 15, "Treasure Hunt"},
		{uid2, 10, "Treasure Hunt"},
		{uid2, 5, "Quiz Night"},
	} {
		if err := GrantPoints(db, grant.uid, grant.points, grant.reason, "admin1"); err != nil {
			t.Fatalf("GrantPoints failed: %v", err)
		}
	}

	names, err := SearchEventNames(db, "Treasure")
	if err != nil {
		t.Fatalf("SearchEventNames failed: %v", err)
	}
	if len(names) != 1 || names[0] != "Treasure Hunt" {
		t.Errorf("names = %v, want [Treasure Hunt]", names)
	}

	names, err = SearchEventNames(db, "")
	if err != nil {
		t.Fatalf("SearchEventNames without term failed: %v", err)
	}
	if len(names) != 2 {
		t.Errorf("expected all distinct names, got %v", names)
	}

	participants, err := EventParticipants(db, "Treasure Hunt")
	if err != nil {
		t.Fatalf("EventParticipants failed: %v", err)
	}
	if len(participants) != 2 {
		t.Fatalf("participants = %d, want 2", len(participants))
	}
	if participants[0].UID != uid1 || participants[0].Points != 25 {
		t.Errorf("participant[0] = %+v, want UID %d with 25 points", participants[0], uid1)
	}
}
