package output

import (
	"os"
	"strconv"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Environment variables controlling the log file
const (
	EnvLogFile       = "PSTACK_LOG_FILE"
	EnvLogMaxSize    = "PSTACK_LOG_MAX_SIZE"
	EnvLogMaxBackups = "PSTACK_LOG_MAX_BACKUPS"
	EnvLogMaxAge     = "PSTACK_LOG_MAX_AGE"
)

// GetLogFilePath returns the log file path from PSTACK_LOG_FILE, or "" when
// file logging is off.
func GetLogFilePath() string {
	return os.Getenv(EnvLogFile)
}

// createLumberjackLogger creates a lumberjack logger with configuration from environment variables
func createLumberjackLogger(logFilePath string) *lumberjack.Logger {
	config := &lumberjack.Logger{
		Filename:   logFilePath,
		MaxSize:    1, // megabytes
		MaxBackups: 2,
		MaxAge:     30, // days
		Compress:   false,
	}

	if n, ok := positiveEnv(EnvLogMaxSize, 1); ok {
		config.MaxSize = n
	}
	if n, ok := positiveEnv(EnvLogMaxBackups, 0); ok {
		config.MaxBackups = n
	}
	if n, ok := positiveEnv(EnvLogMaxAge, 1); ok {
		config.MaxAge = n
	}

	return config
}

// positiveEnv reads an integer variable no smaller than least
func positiveEnv(name string, least int) (int, bool) {
	s := os.Getenv(name)
	if s == "" {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < least {
		return 0, false
	}
	return n, true
}
