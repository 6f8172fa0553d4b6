//go:build darwin

package session

/*
#cgo CFLAGS: -x objective-c -fobjc-arc
#cgo LDFLAGS: -framework CoreAudio -framework Foundation
#include "native/session.m"
#include <stdbool.h>
*/
import "C"
import (
	"errors"

	soundfield "github.com/shaban/soundfield"
)

// Session is the configured output state: created once at startup, read-only
// afterwards, torn down with Shutdown.
type Session struct {
	// DeviceName is the default output device, empty when lookup failed.
	DeviceName string

	// Channels is the device's total output channel count.
	Channels int

	// SampleRate is the device's nominal sample rate.
	SampleRate float64

	// Spatial reports whether the output can carry spatialized content
	// (at least stereo on a live device). When false the graph still
	// plays, without meaningful spatialization.
	Spatial bool
}

// Configure runs the best-effort output session setup. Every failed step is
// reported to handler as a ConfigError and configuration continues degraded;
// Configure never fails outright.
func Configure(handler soundfield.ErrorHandler) *Session {
	if handler == nil {
		handler = &soundfield.DefaultErrorHandler{}
	}
	s := &Session{}

	var deviceID C.uint
	if errStr := C.audiosession_default_output_device(&deviceID); errStr != nil {
		handler.HandleError(&soundfield.ConfigError{
			Step: "select output device",
			Err:  errors.New(C.GoString(errStr)),
		})
		return s
	}

	var nameBuf [256]C.char
	if errStr := C.audiosession_device_name(deviceID, &nameBuf[0], C.int(len(nameBuf))); errStr != nil {
		handler.HandleError(&soundfield.ConfigError{
			Step: "read device name",
			Err:  errors.New(C.GoString(errStr)),
		})
	} else {
		s.DeviceName = C.GoString(&nameBuf[0])
	}

	var channels C.int
	if errStr := C.audiosession_output_channels(deviceID, &channels); errStr != nil {
		handler.HandleError(&soundfield.ConfigError{
			Step: "query multichannel support",
			Err:  errors.New(C.GoString(errStr)),
		})
	} else {
		s.Channels = int(channels)
	}

	var sampleRate C.double
	if errStr := C.audiosession_sample_rate(deviceID, &sampleRate); errStr != nil {
		handler.HandleError(&soundfield.ConfigError{
			Step: "read sample rate",
			Err:  errors.New(C.GoString(errStr)),
		})
	} else {
		s.SampleRate = float64(sampleRate)
	}

	var alive C.bool
	if errStr := C.audiosession_device_is_alive(deviceID, &alive); errStr != nil {
		handler.HandleError(&soundfield.ConfigError{
			Step: "activate session",
			Err:  errors.New(C.GoString(errStr)),
		})
	} else if !bool(alive) {
		handler.HandleError(&soundfield.ConfigError{
			Step: "activate session",
			Err:  errors.New("default output device is not alive"),
		})
	} else {
		s.Spatial = s.Channels >= 2
	}

	return s
}

// Shutdown releases the session. The configuration holds no native
// resources, so this only marks the session unusable for spatial checks.
func (s *Session) Shutdown() {
	if s == nil {
		return
	}
	s.Spatial = false
}
