package controllers

import (
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/xuri/excelize/v2"

	"event-manager/audit"
	"event-manager/config"
	"event-manager/session"
	"event-manager/storage"
	"event-manager/store"
	"event-manager/utils"
)

type BackupController struct {
	Backup config.BackupConfig
}

// Excel exports the three tables as one workbook. When the S3 copy is
// enabled, upload failures are logged but never fail the download.
func (c BackupController) Excel(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := session.FromContext(r.Context()).Username
		ipAddress := utils.ClientIP(r)

		candidates, err := store.AllCandidates(db)
		if err != nil {
			c.fail(w, username, ipAddress, err)
			return
		}
		pointsLog, err := store.AllPointsLog(db)
		if err != nil {
			c.fail(w, username, ipAddress, err)
			return
		}
		attendance, err := store.AllAttendance(db)
		if err != nil {
			c.fail(w, username, ipAddress, err)
			return
		}

		f := excelize.NewFile()
		defer f.Close()

		if err := writeSheet(f, "Candidates",
			[]interface{}{"uid", "name", "age", "phone", "gender", "created_at"},
			len(candidates), func(i int) []interface{} {
				c := candidates[i]
				return []interface{}{c.UID, c.Name, c.Age, c.Phone, c.Gender, c.CreatedAt}
			}); err != nil {
			c.fail(w, username, ipAddress, err)
			return
		}
		if err := writeSheet(f, "Points Log",
			[]interface{}{"log_id", "candidate_uid", "points", "reason", "admin_username", "awarded_at"},
			len(pointsLog), func(i int) []interface{} {
				e := pointsLog[i]
				return []interface{}{e.LogID, e.CandidateUID, e.Points, e.Reason, e.AdminUsername, e.AwardedAt}
			}); err != nil {
			c.fail(w, username, ipAddress, err)
			return
		}
		if err := writeSheet(f, "Attendance",
			[]interface{}{"attendance_id", "candidate_uid", "event_day", "attended_at"},
			len(attendance), func(i int) []interface{} {
				e := attendance[i]
				return []interface{}{e.AttendanceID, e.CandidateUID, e.EventDay, e.AttendedAt}
			}); err != nil {
			c.fail(w, username, ipAddress, err)
			return
		}
		// The workbook starts with a default sheet we never use.
		if err := f.DeleteSheet("Sheet1"); err != nil {
			c.fail(w, username, ipAddress, err)
			return
		}

		buf, err := f.WriteToBuffer()
		if err != nil {
			c.fail(w, username, ipAddress, err)
			return
		}

		fileName := fmt.Sprintf("EventBackup-%d.xlsx", time.Now().UnixMilli())
		if c.Backup.S3Enabled {
			if url, err := storage.UploadBackup(c.Backup, fileName, buf.Bytes()); err != nil {
				audit.Errorf("Backup S3 upload failed for %s: %v", username, err)
			} else {
				audit.Action(username, "Uploaded Backup to S3", ipAddress, url)
			}
		}

		audit.Action(username, "Downloaded Backup", ipAddress, "Success")

		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
		_, _ = w.Write(buf.Bytes())
	}
}

func (c BackupController) fail(w http.ResponseWriter, username, ipAddress string, err error) {
	audit.Errorf("Backup Error by %s, IP: %s: %v", username, ipAddress, err)
	audit.Action(username, "Attempted Download Backup", ipAddress, fmt.Sprintf("Failed - Error: %v", err))
	utils.RespondWithError(w, http.StatusInternalServerError, "Excel backup failed.")
}

func writeSheet(f *excelize.File, name string, header []interface{}, rows int, row func(i int) []interface{}) error {
	if _, err := f.NewSheet(name); err != nil {
		return err
	}
	if err := f.SetSheetRow(name, "A1", &header); err != nil {
		return err
	}
	for i := 0; i < rows; i++ {
		values := row(i)
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(name, cell, &values); err != nil {
			return err
		}
	}
	return nil
}
