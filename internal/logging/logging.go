// Package logging holds the global application logger: a rotating file under
// the config directory, teed to stderr when debug is on.
package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// L is the global logger. It discards everything until Init runs, so early
// callers and tests never hit a nil logger.
var L = log.New(io.Discard)

// Init points the global logger at a rotating file in dir/logs. With debug
// set the level drops to Debug and output is mirrored to stderr; otherwise
// the terminal stays quiet.
func Init(dir string, debug bool) error {
	logDir := filepath.Join(dir, "logs")
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return err
	}

	fileWriter := &lumberjack.Logger{
		Filename:   filepath.Join(logDir, "worklog.log"),
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}

	level := log.WarnLevel
	writer := io.Writer(fileWriter)
	if debug {
		level = log.DebugLevel
		writer = io.MultiWriter(os.Stderr, fileWriter)
	}

	L = log.NewWithOptions(writer, log.Options{
		ReportCaller:    debug,
		ReportTimestamp: true,
		Level:           level,
	})
	return nil
}
