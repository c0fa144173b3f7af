// kbgen/pkg/logging/logging_test.go

package logging

import (
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestConfigureLogger(t *testing.T) {
	tests := []struct {
		name          string
		logLevel      string
		logOutput     string
		expectedError string
		checkFunc     func(t *testing.T)
	}{
		{
			name:      "Debug level to console",
			logLevel:  "debug",
			logOutput: "console",
			checkFunc: func(t *testing.T) {
				assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
			},
		},
		{
			name:      "Warn level as json",
			logLevel:  "warn",
			logOutput: "json",
			checkFunc: func(t *testing.T) {
				assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())
			},
		},
		{
			name:      "Error level to console",
			logLevel:  "error",
			logOutput: "console",
			checkFunc: func(t *testing.T) {
				assert.Equal(t, zerolog.ErrorLevel, zerolog.GlobalLevel())
			},
		},
		{
			name:          "Invalid level returns error",
			logLevel:      "invalid",
			logOutput:     "console",
			expectedError: "Invalid log level",
		},
		{
			name:      "Debug level to file",
			logLevel:  "debug",
			logOutput: "file",
			checkFunc: func(t *testing.T) {
				assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
				_, err := os.Stat(LogFile)
				assert.NoError(t, err)
			},
		},
		{
			name:          "Invalid output option returns error",
			logLevel:      "info",
			logOutput:     "invalid",
			expectedError: "Invalid log output option",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ConfigureLogger(tt.logLevel, tt.logOutput)

			if tt.expectedError != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError)
			} else {
				assert.NoError(t, err)
				tt.checkFunc(t)
			}
		})
	}

	os.Remove(LogFile)
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

func TestInvalidOutputKeepsLevel(t *testing.T) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	err := ConfigureLogger("trace", "nowhere")
	assert.Error(t, err)
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}

func TestReconfigureClosesLogFile(t *testing.T) {
	defer os.Remove(LogFile)
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	assert.NoError(t, ConfigureLogger("info", "file"))
	first := logFile
	assert.NotNil(t, first)

	assert.NoError(t, ConfigureLogger("info", "file"))
	second := logFile
	assert.NotSame(t, first, second)
	_, err := first.Write([]byte("x"))
	assert.ErrorIs(t, err, os.ErrClosed)

	assert.NoError(t, ConfigureLogger("info", "console"))
	assert.Nil(t, logFile)
	_, err = second.Write([]byte("x"))
	assert.ErrorIs(t, err, os.ErrClosed)
}

func TestInvalidOutputKeepsLogFile(t *testing.T) {
	defer os.Remove(LogFile)
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	assert.NoError(t, ConfigureLogger("info", "file"))
	current := logFile

	assert.Error(t, ConfigureLogger("info", "nowhere"))
	assert.Same(t, current, logFile)
	_, err := current.Write([]byte("still open\n"))
	assert.NoError(t, err)

	assert.NoError(t, ConfigureLogger("info", "console"))
}
