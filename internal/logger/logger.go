package logger

import (
	"github.com/sirupsen/logrus"
)

// Init sets up the custom time formatter and log level for all log statements.
// Unknown level strings fall back to info.
func Init(level string) {
	customFormatter := new(logrus.TextFormatter)
	customFormatter.TimestampFormat = "2006-01-02 15:04:05"
	customFormatter.FullTimestamp = true
	logrus.SetFormatter(customFormatter)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logrus.SetLevel(lvl)
}

// Default returns a logger without request scope.
func Default() *logrus.Entry {
	return logrus.NewEntry(logrus.StandardLogger())
}
