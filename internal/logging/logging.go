// Package logging builds the charmbracelet/log loggers used by the CLI and
// the terminal front-end, and adapts them to the engine's tracing hook.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-quoridor/internal/quoridor"
)

// Prefix is the prefix every logger reports.
const Prefix = "quoridor"

// New creates a logger writing to w at the given level.
func New(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          Prefix,
		Level:           lvl,
	}), nil
}

// NewFile creates a logger appending to path, creating parent directories.
// The caller closes the returned file.
func NewFile(path, level string) (*log.Logger, *os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("logging: cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("logging: cannot open log file: %w", err)
	}
	logger, err := New(f, level)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return logger, f, nil
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}

// PathTracer reports engine path searches to a logger at debug level.
type PathTracer struct {
	logger *log.Logger
	board  *quoridor.Board // optional, enables the visited-cells diagram
}

// NewPathTracer creates a tracer. board may be nil.
func NewPathTracer(logger *log.Logger, board *quoridor.Board) *PathTracer {
	return &PathTracer{logger: logger, board: board}
}

// Attach points the tracer at b and installs it there.
func (t *PathTracer) Attach(b *quoridor.Board) {
	t.board = b
	b.SetTracer(t)
}

// Visit implements quoridor.Tracer.
func (t *PathTracer) Visit(pos quoridor.Position) {
	t.logger.Debug("path search visit", "pos", pos.String())
}

// Done implements quoridor.Tracer.
func (t *PathTracer) Done(trace quoridor.PathTrace) {
	kv := []any{
		"player", trace.Player.String(),
		"start", trace.Start.String(),
		"visited", len(trace.Visited),
		"found", trace.Found,
	}
	if t.board != nil && t.board.Dims() == trace.Start.Dims() {
		kv = append(kv, "grid", "\n"+t.board.RenderVisited(trace.Visited))
	}
	t.logger.Debug("path search done", kv...)
}
