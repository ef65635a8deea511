// Package adapter provides the file system and storage collaborators of the report core.
package adapter

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	m "github.com/mouse-blink/tracecov/internal/model"
)

// StdinPath makes ReadReport read from standard input.
const StdinPath m.Path = "-"

// ErrReportNotFound is returned when no report exists at the requested path.
var ErrReportNotFound = errors.New("report not found")

// ReportSource resolves a report path to its text content.
type ReportSource interface {
	ReadReport(path m.Path) (string, error)
}

// LocalReportSource reads reports from the local file system.
type LocalReportSource struct {
	stdin io.Reader
}

// NewLocalReportSource creates a LocalReportSource. stdin is read when the
// path is StdinPath; it may be nil.
func NewLocalReportSource(stdin io.Reader) *LocalReportSource {
	return &LocalReportSource{stdin: stdin}
}

// ReadReport returns the content of the report at path.
func (s *LocalReportSource) ReadReport(path m.Path) (string, error) {
	if path == StdinPath {
		if s.stdin == nil {
			return "", fmt.Errorf("%w: no standard input", ErrReportNotFound)
		}

		data, err := io.ReadAll(s.stdin)
		if err != nil {
			return "", fmt.Errorf("read report from stdin: %w", err)
		}

		return string(data), nil
	}

	info, err := os.Stat(string(path))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrReportNotFound, path)
		}

		return "", fmt.Errorf("stat report %s: %w", path, err)
	}

	if info.IsDir() {
		return "", fmt.Errorf("%w: %s is a directory", ErrReportNotFound, path)
	}

	data, err := os.ReadFile(string(path))
	if err != nil {
		return "", fmt.Errorf("read report %s: %w", path, err)
	}

	return string(data), nil
}
