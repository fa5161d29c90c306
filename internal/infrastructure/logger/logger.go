package logger

import (
	"io"
	"os"

	"clinic-booking/config"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// New configures the standard logrus logger from cfg and returns it.
// Output goes to stdout and, when a file path is set, to a rotating file.
func New(cfg config.LogConfig) *logrus.Logger {
	log := logrus.StandardLogger()
	Configure(log, cfg, os.Stdout)
	return log
}

func Configure(log *logrus.Logger, cfg config.LogConfig, stdout io.Writer) {
	log.SetFormatter(&logrus.JSONFormatter{})

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	writers := []io.Writer{stdout}
	if cfg.File != "" {
		writers = append(writers, &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   true,
		})
	}
	log.SetOutput(io.MultiWriter(writers...))
}
