package models

type EventParticipant struct {
	UID    int64  `json:"uid"`
	Name   string `json:"name"`
	Points int64  `json:"points"`
}

// PointsLogRow is the full ledger row shape used by the backup export.
type PointsLogRow struct {
	LogID         int64  `json:"log_id"`
	CandidateUID  int64  `json:"candidate_uid"`
	Points        int    `json:"points"`
	Reason        string `json:"reason"`
	AdminUsername string `json:"admin_username"`
	AwardedAt     string `json:"awarded_at"`
}
