// Package audit is the action log: every admin-visible operation is recorded
// with the acting admin, client IP, action name and free-form details. Lines
// go to stdout and to a persistent log file.
package audit

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

func Init(level, format, actionFile string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	Log.SetLevel(lvl)

	if format == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05.000 -0700",
		})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05.000 -0700",
		})
	}

	if actionFile != "" {
		file, err := os.OpenFile(actionFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return err
		}
		Log.SetOutput(io.MultiWriter(os.Stdout, file))
	} else {
		Log.SetOutput(os.Stdout)
	}
	return nil
}

// Action writes one standardized audit line.
func Action(username, action, ipAddress, details string) {
	msg := fmt.Sprintf("Admin: %s, IP: %s, Action: %s", username, ipAddress, action)
	if details != "" {
		msg += ", Details: " + details
	}
	Log.Info(msg)
}

func Warnf(format string, args ...interface{}) {
	Log.Warnf(format, args...)
}

func Errorf(format string, args ...interface{}) {
	Log.Errorf(format, args...)
}
