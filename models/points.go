package models

type PointsLogEntry struct {
	Points        int    `json:"points"`
	Reason        string `json:"reason"`
	AdminUsername string `json:"admin_username"`
	AwardedAt     string `json:"awarded_at"`
}

type AddPointsRequest struct {
	UID    int64  `json:"uid"`
	Points int    `json:"points"`
	Reason string `json:"reason"`
}

// EventPointsRequest is the bulk grant: UIDs is a single delimited string
// typed or pasted by the admin.
type EventPointsRequest struct {
	EventName string `json:"eventName"`
	Points    int    `json:"points"`
	UIDs      string `json:"uids"`
}
