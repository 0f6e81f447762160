package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	InfoLogger  *logrus.Logger
	ErrorLogger *logrus.Logger
)

func init() {
	InfoLogger = logrus.New()
	ErrorLogger = logrus.New()

	InfoLogger.SetLevel(logrus.InfoLevel)
	ErrorLogger.SetLevel(logrus.ErrorLevel)

	formatter := &logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	}
	InfoLogger.SetFormatter(formatter)
	ErrorLogger.SetFormatter(formatter)

	logDir := os.Getenv("LOG_DIR")
	if logDir == "" {
		InfoLogger.SetOutput(os.Stdout)
		ErrorLogger.SetOutput(os.Stderr)
		return
	}

	rotating := &lumberjack.Logger{
		Filename:   logDir + "/dogstudio.log",
		MaxSize:    50, // megabytes
		MaxBackups: 5,
		MaxAge:     30, // days
		Compress:   true,
	}
	InfoLogger.SetOutput(io.MultiWriter(os.Stdout, rotating))
	ErrorLogger.SetOutput(io.MultiWriter(os.Stderr, rotating))
}
