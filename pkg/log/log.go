// Package log configures logrus for the selint CLI.
package log

import (
	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/logrus-error/logerr"
)

func New(version string) *logrus.Entry {
	return logrus.NewEntry(logrus.New()).WithFields(logrus.Fields{
		"selint_version": version,
		"program":        "selint",
	})
}

// SetLevel changes the log level. An empty level is ignored.
// An invalid level is reported but doesn't stop the command.
func SetLevel(level string, logE *logrus.Entry) {
	if level == "" {
		return
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		logerr.WithError(logE, err).WithField("log_level", level).Error("the log level is invalid")
		return
	}
	logE.Logger.SetLevel(lvl)
}
