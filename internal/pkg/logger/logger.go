package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

var (
	logger = logrus.New()
)

func init() {
	logger.SetFormatter(&logrus.TextFormatter{})
	logger.SetReportCaller(false)
	logger.SetLevel(logrus.WarnLevel)
	logger.SetOutput(os.Stderr)
}

// SetLevel parses a logrus level name, "none" silences the logger
func SetLevel(level string) error {
	if level == "none" {
		logger.SetOutput(io.Discard)
		return nil
	}
	l, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	logger.SetLevel(l)
	return nil
}

// SetOutput ...
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

// SetLogFile appends log lines to path, creating its folder
func SetLogFile(path string) (io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, err
	}
	logger.SetOutput(f)
	return f, nil
}

// Debugf wrapper logrus log.Debugf
func Debugf(format string, args ...interface{}) {
	logger.Debugf(format, args...)
}

// Infof wrapper logrus log.Infof
func Infof(format string, args ...interface{}) {
	logger.Infof(format, args...)
}

// Warnf wrapper logrus log.Warnf
func Warnf(format string, args ...interface{}) {
	logger.Warnf(format, args...)
}

// Errorf wrapper logrus log.Errorf
func Errorf(err error, format string, args ...interface{}) {
	if err != nil {
		logger.WithError(err).Errorf(format, args...)
	} else {
		logger.Errorf(format, args...)
	}
}
