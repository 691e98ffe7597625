package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
)

const (
	logDir      = "logs"
	logFileName = "invaders.log"
)

// setupLogging sends log output to logs/invaders.log when debug is set, and discards it otherwise
// The terminal belongs to the game, so log lines never go to stdout or stderr
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0o755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	f, err := os.OpenFile(filepath.Join(logDir, logFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f
}

// debugEnabled reads INVADERS_DEBUG, anything unparsable counts as off
func debugEnabled() bool {
	v, err := strconv.ParseBool(os.Getenv("INVADERS_DEBUG"))
	return err == nil && v
}
