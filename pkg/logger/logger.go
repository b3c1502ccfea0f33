// pkg/logger/logger.go
package logger

import (
	"io"
	"os"
	"path/filepath"

	"codetext-backend/internal/config"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Init configures the standard logrus logger and returns the file writer, if
// any, so the caller can close it on shutdown.
func Init(cfg config.LogConfig) io.Closer {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	logrus.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
	})

	writers := []io.Writer{os.Stdout}

	var fileWriter *lumberjack.Logger
	if cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0755); err != nil {
			logrus.WithError(err).Warn("failed to create log directory")
		} else {
			fileWriter = &lumberjack.Logger{
				Filename:   cfg.File,
				MaxSize:    cfg.MaxSize, // MB
				MaxAge:     cfg.MaxAge,  // days
				MaxBackups: cfg.MaxBackups,
				LocalTime:  true,
				Compress:   true,
			}
			writers = append(writers, fileWriter)
		}
	}

	logrus.SetOutput(io.MultiWriter(writers...))

	logrus.WithField("level", level.String()).Debug("logger initialized")

	if fileWriter == nil {
		return nopCloser{}
	}
	return fileWriter
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
