package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

const (
	logDir      = "logs"
	logFileName = "code-rain.log"
	maxLogSize  = 10 * 1024 * 1024
)

// setupLogging routes the standard logger to a file when debug mode is
// on and discards it otherwise. Nothing may reach stdout or stderr
// while the animation owns the terminal.
func setupLogging(debugEnabled bool) *os.File {
	return setupLoggingAt(logDir, debugEnabled)
}

// setupLoggingAt opens the debug log under dir, rotating an oversized
// log aside under a timestamped name first. Returns the open log file,
// or nil when logging is disabled or the file cannot be opened.
func setupLoggingAt(dir string, debugEnabled bool) *os.File {
	if !debugEnabled {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(dir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(dir, "code-rain-"+time.Now().Format("20060102-150405")+".log")
		os.Rename(logPath, rotated)
	}

	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(logFile)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return logFile
}
