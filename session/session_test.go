//go:build darwin

package session

import (
	"errors"
	"testing"

	soundfield "github.com/shaban/soundfield"
)

type collectingHandler struct {
	errs []error
}

func (h *collectingHandler) HandleError(err error) {
	h.errs = append(h.errs, err)
}

func TestConfigureNeverFails(t *testing.T) {
	handler := &collectingHandler{}
	s := Configure(handler)
	if s == nil {
		t.Fatal("Configure must always return a session")
	}

	// On a machine without any output device every step degrades; with
	// one, the session carries real device data. Either way no panic and
	// every reported error is a ConfigError.
	for _, err := range handler.errs {
		var ce *soundfield.ConfigError
		if !errors.As(err, &ce) {
			t.Errorf("handler received non-ConfigError: %v", err)
		}
	}

	if len(handler.errs) == 0 {
		t.Logf("configured output %q: %d channels @ %.0f Hz, spatial=%v",
			s.DeviceName, s.Channels, s.SampleRate, s.Spatial)
		if s.Channels >= 2 && !s.Spatial {
			t.Error("stereo device should report spatial support")
		}
	}
}

func TestShutdownClearsSpatial(t *testing.T) {
	s := &Session{Spatial: true}
	s.Shutdown()
	if s.Spatial {
		t.Error("Shutdown should clear spatial flag")
	}

	// Safe on nil
	var nilSession *Session
	nilSession.Shutdown()
}

func TestConfigureNilHandler(t *testing.T) {
	// Must not panic; falls back to the default handler.
	_ = Configure(nil)
}
