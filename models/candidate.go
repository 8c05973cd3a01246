package models

type Candidate struct {
	UID       int64  `json:"uid"`
	Name      string `json:"name"`
	Age       int    `json:"age"`
	Phone     string `json:"phone"`
	Gender    string `json:"gender"`
	CreatedAt string `json:"created_at"`
}

// CandidateSummary is one row of the "all candidates" listing with the
// aggregates the dashboard table sorts and filters on.
type CandidateSummary struct {
	UID         int64  `json:"uid"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Gender      string `json:"gender"`
	TotalPoints int64  `json:"total_points"`
	TodayPoints int64  `json:"today_points"`
}

// CandidateDetail is the search result: the candidate row plus derived
// aggregates and the full points history, newest first.
type CandidateDetail struct {
	Candidate
	TotalPoints int64            `json:"total_points"`
	Attendance  []int            `json:"attendance"`
	Logs        []PointsLogEntry `json:"logs"`
}

type CreateCandidateRequest struct {
	Name   string `json:"name"`
	Age    int    `json:"age"`
	Phone  string `json:"phone"`
	Gender string `json:"gender"`
}
