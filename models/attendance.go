package models

type AttendanceEntry struct {
	AttendanceID int64  `json:"attendance_id"`
	CandidateUID int64  `json:"candidate_uid"`
	EventDay     int    `json:"event_day"`
	AttendedAt   string `json:"attended_at"`
}

type MarkAttendanceRequest struct {
	UID int64 `json:"uid"`
	Day int   `json:"day"`
}

type BulkAttendanceRequest struct {
	Day  int    `json:"day"`
	UIDs string `json:"uids"`
}
