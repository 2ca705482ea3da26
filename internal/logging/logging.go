// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logging constructs the pipeline's diagnostic logger: a zerolog
// logger writing human-readable timestamp/level/message lines to a named
// log file and mirroring them to the console.
//
// Loggers are handed to stage functions explicitly; there is no
// package-global logger.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
)

const timeFormat = "2006-01-02 15:04:05"

var (
	mu sync.Mutex

	// sinks caches open log files by cleaned path. Repeated Setup calls
	// for the same filename share one handle, so a record logged once is
	// written once.
	sinks = map[string]*os.File{}
)

// Setup returns a logger that writes records at info level and above to
// logFilename and to stderr. Calling Setup again with the same filename
// reuses the already-open sink rather than attaching a second one.
// Failure to open the log file is a fatal setup error for the caller.
func Setup(logFilename string) (zerolog.Logger, error) {
	mu.Lock()
	defer mu.Unlock()

	path := filepath.Clean(logFilename)
	f, ok := sinks[path]
	if !ok {
		var err error
		f, err = os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return zerolog.Logger{}, fmt.Errorf("opening log file %s: %w", path, err)
		}
		sinks[path] = f
	}

	fileSink := zerolog.ConsoleWriter{Out: f, TimeFormat: timeFormat, NoColor: true}
	console := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: timeFormat, NoColor: true}

	logger := zerolog.New(zerolog.MultiLevelWriter(fileSink, console)).
		Level(zerolog.InfoLevel).
		With().Timestamp().Logger()
	return logger, nil
}
