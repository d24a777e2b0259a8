package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/agvc-system/fleet-management/internal/config"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// New 根据日志配置构建logrus日志器
// output为file时写入滚动日志文件（10MB切分，保留30份）
func New(cfg config.LoggingConfig) *logrus.Logger {
	log := logrus.New()

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Format == "json" {
		log.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
		})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}

	var writer io.Writer = os.Stdout
	if cfg.Output == "file" {
		path := cfg.Path
		if path == "" {
			path = filepath.Join("logs", "app.log")
		}
		writer = &lumberjack.Logger{
			Filename:   path,
			MaxSize:    10,
			MaxBackups: 30,
		}
	}
	log.SetOutput(writer)

	return log
}
