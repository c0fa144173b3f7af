// kbgen/pkg/output/writer.go

package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"rgehrsitz/kbgen/pkg/logging"
)

// Stdout is the path meaning "write to the provided stdout writer".
const Stdout = "-"

// Writer delivers a finished document either to stdout or to a file.
type Writer struct {
	Fs     afero.Fs
	Stdout io.Writer
}

func NewWriter(fs afero.Fs, stdout io.Writer) *Writer {
	return &Writer{Fs: fs, Stdout: stdout}
}

// Write emits doc to path. Files are replaced atomically through a temp
// file in the same directory, so an existing configuration is never left
// half written.
func (w *Writer) Write(path string, doc []byte) error {
	if path == "" || path == Stdout {
		if _, err := w.Stdout.Write(doc); err != nil {
			return logging.NewError(logging.ErrorTypeOutput, "failed to write to stdout", err, nil)
		}
		return nil
	}

	dir := filepath.Dir(path)
	if err := w.Fs.MkdirAll(dir, 0o755); err != nil {
		return logging.NewError(logging.ErrorTypeOutput, "failed to create output directory", err,
			map[string]interface{}{"dir": dir})
	}

	tmp, err := afero.TempFile(w.Fs, dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return logging.NewError(logging.ErrorTypeOutput, "failed to create temp file", err,
			map[string]interface{}{"dir": dir})
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(doc); err != nil {
		tmp.Close()
		w.Fs.Remove(tmpName)
		return logging.NewError(logging.ErrorTypeOutput, "failed to write temp file", err,
			map[string]interface{}{"path": tmpName})
	}
	if err := tmp.Close(); err != nil {
		w.Fs.Remove(tmpName)
		return logging.NewError(logging.ErrorTypeOutput, "failed to close temp file", err,
			map[string]interface{}{"path": tmpName})
	}
	if err := w.Fs.Chmod(tmpName, 0o644); err != nil {
		logging.Logger.Warn().Err(err).Str("path", tmpName).Msg("Failed to set document permissions")
	}
	if err := w.Fs.Rename(tmpName, path); err != nil {
		w.Fs.Remove(tmpName)
		return logging.NewError(logging.ErrorTypeOutput, fmt.Sprintf("failed to replace %s", path), err,
			map[string]interface{}{"path": path})
	}

	logging.Logger.Info().Str("path", path).Int("bytes", len(doc)).Msg("Wrote document")
	return nil
}

// OSWriter writes to the real filesystem and process stdout.
func OSWriter() *Writer {
	return NewWriter(afero.NewOsFs(), os.Stdout)
}
