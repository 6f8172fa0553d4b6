//go:build !darwin

package session

import (
	"errors"

	soundfield "github.com/shaban/soundfield"
)

type Session struct {
	DeviceName string
	Channels   int
	SampleRate float64
	Spatial    bool
}

// Configure reports the platform gap once and returns a degraded session.
func Configure(handler soundfield.ErrorHandler) *Session {
	if handler == nil {
		handler = &soundfield.DefaultErrorHandler{}
	}
	handler.HandleError(&soundfield.ConfigError{
		Step: "select output device",
		Err:  errors.New("output session configuration is only supported on darwin"),
	})
	return &Session{}
}

func (s *Session) Shutdown() {
	if s == nil {
		return
	}
	s.Spatial = false
}
