// kbgen/pkg/logging/logging.go

package logging

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"
)

// LogFile is where the "file" output writes.
const LogFile = "kbgen.log"

var Logger zerolog.Logger

// logFile is the handle behind the "file" output, closed on reconfigure.
var logFile *os.File

func init() {
	logLevel := zerolog.InfoLevel // Default log level
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	if envLevel := os.Getenv("LOG_LEVEL"); envLevel != "" {
		if level, err := zerolog.ParseLevel(envLevel); err == nil {
			logLevel = level
		}
	}

	// stdout carries the generated document, so logs always go to stderr
	zerolog.SetGlobalLevel(logLevel)
	Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
}

// ConfigureLogger sets the global level and replaces Logger with one writing
// to the requested output: "console", "json" or "file".
func ConfigureLogger(logLevel, logOutput string) error {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack

	level, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("Invalid log level %q: %w", logLevel, err)
	}

	var file *os.File
	switch logOutput {
	case "console":
		Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).With().Timestamp().Logger()
	case "json":
		Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	case "file":
		file, err = os.OpenFile(LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		Logger = zerolog.New(file).With().Timestamp().Logger()
	default:
		return fmt.Errorf("Invalid log output option %q", logOutput)
	}

	if logFile != nil {
		logFile.Close()
	}
	logFile = file

	zerolog.SetGlobalLevel(level)
	log.Logger = Logger
	return nil
}

// Component returns Logger tagged with the component name.
func Component(name string) zerolog.Logger {
	return Logger.With().Str("component", name).Logger()
}
