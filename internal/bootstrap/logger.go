package bootstrap

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/osse101/ColonyPlanner_Go/internal/config"
	"github.com/osse101/ColonyPlanner_Go/internal/logger"
)

// SetupLogger initializes the application logger with file and stdout output.
// It creates the log directory, cleans up old logs and installs a slog
// handler writing to both stdout and a timestamped session file.
// Returns the log file handle (caller must close) and any error encountered.
func SetupLogger(cfg *config.Config) (*os.File, error) {
	return setupLogger(cfg, os.Stdout)
}

func setupLogger(cfg *config.Config, stdout io.Writer) (*os.File, error) {
	if err := os.MkdirAll(cfg.LogDir, DirPermission); err != nil {
		return nil, fmt.Errorf("%s: %w", LogMsgFailedCreateLogsDir, err)
	}

	cleanupLogs(cfg.LogDir)

	timestamp := time.Now().Format(LogFileTimestampFormat)
	logFileName := filepath.Join(cfg.LogDir, fmt.Sprintf(LogFileNamePattern, timestamp))

	logFile, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, LogFilePermission)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", LogMsgFailedOpenLogFile, err)
	}

	loggerConfig := logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		cfg.IsDevelopment(),
	)
	logger.InitLoggerWithWriter(loggerConfig, io.MultiWriter(stdout, logFile))

	slog.Info(LogMsgLoggingInitialized, "level", loggerConfig.LogLevel())
	slog.Info(LogMsgStartingPlanner,
		"environment", cfg.Environment,
		"log_level", cfg.LogLevel,
		"log_format", cfg.LogFormat,
		"version", cfg.Version)

	slog.Debug(LogMsgConfigurationLoaded,
		"port", cfg.Port,
		"catalog_path", cfg.CatalogPath,
		"catalog_watch", cfg.CatalogWatch,
		"closure_cache_size", cfg.ClosureCacheSize,
		"closure_cache_ttl", cfg.ClosureCacheTTL,
		"solver_tolerance", cfg.SolverTolerance,
		"request_timeout", cfg.RequestTimeout)

	return logFile, nil
}

// cleanupLogs deletes the oldest log files so that, with the file about to be
// opened, at most MaxLogFiles remain
func cleanupLogs(logDir string) {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return
	}

	var logFiles []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), LogFileExtension) {
			logFiles = append(logFiles, entry.Name())
		}
	}
	sort.Strings(logFiles)

	excess := len(logFiles) - (MaxLogFiles - 1)
	for i := 0; i < excess; i++ {
		if err := os.Remove(filepath.Join(logDir, logFiles[i])); err != nil {
			fmt.Fprintf(os.Stderr, LogMsgFailedDeleteOldLog, logFiles[i], err)
		}
	}
}
