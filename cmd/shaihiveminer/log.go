package main

import (
	"path/filepath"

	"github.com/shaicoin/shaicoin/infrastructure/logger"
)

var log = logger.RegisterSubSystem("SHVM")

// initLog adds the process's log files to the default Backend and starts
// it running. Nothing written by any subsystem logger before this runs
// reaches disk -- it falls back to stderr, per Logger.write.
func initLog(logDir string, logLevel logger.Level) error {
	backend := logger.DefaultBackend()

	logFile := filepath.Join(logDir, defaultLogFilename)
	if err := backend.AddLogFile(logFile, logger.LevelTrace); err != nil {
		return err
	}

	errLogFile := filepath.Join(logDir, defaultErrLogFilename)
	if err := backend.AddLogFile(errLogFile, logger.LevelWarn); err != nil {
		return err
	}

	if err := backend.Run(); err != nil {
		return err
	}

	log.SetLevel(logLevel)
	return nil
}
