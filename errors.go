package soundfield

import (
	"errors"
	"fmt"

	"github.com/shaban/soundfield/assets"
)

// Sentinel errors surfaced through the typed errors below.
var (
	// ErrAssetUnavailable reports a sound name that could not be resolved
	// to a decodable file. The play request aborts before any graph
	// mutation. Shared with the assets package so errors.Is matches
	// either spelling.
	ErrAssetUnavailable = assets.ErrAssetUnavailable

	// ErrGraphNotStarted reports a play request against a render graph
	// that never started. Surfaced loudly instead of silently dropping
	// the request.
	ErrGraphNotStarted = errors.New("render graph not started")
)

// ConfigError reports a failed output-session setup step. Non-fatal: the
// system continues degraded (audio may play without spatialization).
type ConfigError struct {
	Step string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("session config: %s: %v", e.Step, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// GraphError reports a failure building or starting the render graph.
// Fatal to all playback: no audio path exists and there is no retry.
type GraphError struct {
	Op  string
	Err error
}

func (e *GraphError) Error() string {
	return fmt.Sprintf("render graph: %s: %v", e.Op, e.Err)
}

func (e *GraphError) Unwrap() error { return e.Err }

// PlaybackError reports a failed play request. Only that request is
// affected; the active source set and aggregate flag are unchanged.
type PlaybackError struct {
	Asset string
	Err   error
}

func (e *PlaybackError) Error() string {
	return fmt.Sprintf("playback %q: %v", e.Asset, e.Err)
}

func (e *PlaybackError) Unwrap() error { return e.Err }

// ErrorHandler defines the interface for handling degraded-path errors:
// failures that are logged and survived rather than propagated.
type ErrorHandler interface {
	HandleError(error)
}

// DefaultErrorHandler provides a basic error handling implementation
type DefaultErrorHandler struct{}

// HandleError implements ErrorHandler interface with basic logging
func (h *DefaultErrorHandler) HandleError(err error) {
	fmt.Printf("soundfield: %v\n", err)
}

// LoggingErrorHandler wraps another handler and logs errors
type LoggingErrorHandler struct {
	underlying ErrorHandler
	logger     func(error)
}

// NewLoggingErrorHandler creates a new logging error handler
func NewLoggingErrorHandler(underlying ErrorHandler, logger func(error)) *LoggingErrorHandler {
	return &LoggingErrorHandler{
		underlying: underlying,
		logger:     logger,
	}
}

// HandleError implements ErrorHandler interface with logging
func (h *LoggingErrorHandler) HandleError(err error) {
	if h.logger != nil {
		h.logger(err)
	}
	if h.underlying != nil {
		h.underlying.HandleError(err)
	}
}

// PanicErrorHandler panics on any error (useful for development)
type PanicErrorHandler struct{}

// HandleError implements ErrorHandler interface by panicking
func (h *PanicErrorHandler) HandleError(err error) {
	panic(fmt.Sprintf("soundfield error: %v", err))
}
