package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	log "github.com/sirupsen/logrus"
)

// LogFormatter renders entries as "timestamp [LEVEL] message".
type LogFormatter struct {
	TimestampFormat string
	LevelDesc       []string
}

// Format formats an entry in the custom format.
func (f *LogFormatter) Format(entry *log.Entry) ([]byte, error) {
	timestamp := entry.Time.Format(f.TimestampFormat)
	level := f.LevelDesc[entry.Level]
	return []byte(fmt.Sprintf("%s [%s] %s\n", timestamp, level, entry.Message)), nil
}

// Init configures the global logger. With an empty dir, logs go to
// stdout; otherwise an hourly-rotated file under dir is used.
func Init(level, dir string) error {
	log.SetFormatter(&LogFormatter{
		TimestampFormat: "2006-01-02 15:04:05.000",
		LevelDesc:       []string{"PANIC", "FATAL", "ERROR", "WARN", "INFO", "DEBUG", "TRACE"},
	})

	switch level {
	case "DEBUG":
		log.SetLevel(log.DebugLevel)
	case "WARN":
		log.SetLevel(log.WarnLevel)
	case "ERROR":
		log.SetLevel(log.ErrorLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}

	if dir == "" {
		log.SetOutput(os.Stdout)
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}
	rl, err := rotatelogs.New(
		filepath.Join(dir, "%Y-%m-%d-%H.log"),
		rotatelogs.WithLinkName(filepath.Join(dir, "current.log")),
		rotatelogs.WithRotationTime(time.Hour),
		rotatelogs.WithMaxAge(7*24*time.Hour),
	)
	if err != nil {
		return fmt.Errorf("init log rotation: %w", err)
	}
	log.SetOutput(rl)
	return nil
}

// Info logs an informational message.
func Info(message string) { log.Info(message) }

// Warn logs a warning message.
func Warn(message string) { log.Warn(message) }

// Error logs an error message.
func Error(message string) { log.Error(message) }

// Debug logs a debug message.
func Debug(message string) { log.Debug(message) }

// Infof logs a formatted informational message.
func Infof(format string, args ...interface{}) { log.Infof(format, args...) }

// Warnf logs a formatted warning message.
func Warnf(format string, args ...interface{}) { log.Warnf(format, args...) }

// Errorf logs a formatted error message.
func Errorf(format string, args ...interface{}) { log.Errorf(format, args...) }

// Debugf logs a formatted debug message.
func Debugf(format string, args ...interface{}) { log.Debugf(format, args...) }
