package models

// APIResponse is the envelope every mutating endpoint answers with.
// Error responses always carry Success=false and a message.
type APIResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AuthStatusResponse struct {
	LoggedIn bool   `json:"loggedIn"`
	Username string `json:"username,omitempty"`
}

type SummaryStats struct {
	TotalCandidates int64 `json:"totalCandidates"`
	TotalPoints     int64 `json:"totalPoints"`
	TotalAttendance int64 `json:"totalAttendance"`
}

type DayPoints struct {
	Date  string `json:"date"`
	Total int64  `json:"total"`
}

type TopCandidate struct {
	UID   int64  `json:"uid"`
	Name  string `json:"name"`
	Total int64  `json:"total"`
}

type ActivityEntry struct {
	Name      string `json:"name"`
	Reason    string `json:"reason"`
	Points    int    `json:"points"`
	AwardedAt string `json:"awarded_at"`
}

type SummaryResponse struct {
	Success bool          `json:"success"`
	Stats   SummaryStats  `json:"stats"`
	Charts  SummaryCharts `json:"charts"`
	Feed    []ActivityEntry `json:"feed"`
}

type SummaryCharts struct {
	PointsPerDay []DayPoints    `json:"pointsPerDay"`
	TopUsers     []TopCandidate `json:"topUsers"`
}
