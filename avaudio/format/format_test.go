//go:build darwin

package format

import "testing"

func TestNewMono(t *testing.T) {
	fmt, err := NewMono(44100.0)
	if err != nil {
		t.Fatal("Failed to create mono format:", err)
	}
	defer fmt.Destroy()

	if fmt.ChannelCount() != 1 {
		t.Errorf("Expected 1 channel, got %d", fmt.ChannelCount())
	}
	if fmt.SampleRate() != 44100.0 {
		t.Errorf("Expected 44100 Hz, got %f", fmt.SampleRate())
	}
}

func TestNewStereo(t *testing.T) {
	fmt, err := NewStereo(48000.0)
	if err != nil {
		t.Fatal("Failed to create stereo format:", err)
	}
	defer fmt.Destroy()

	if fmt.ChannelCount() != 2 {
		t.Errorf("Expected 2 channels, got %d", fmt.ChannelCount())
	}
	if fmt.GetFormatPtr() == nil {
		t.Error("Format pointer should not be nil")
	}
}

func TestNewWithChannels(t *testing.T) {
	fmt, err := NewWithChannels(48000.0, 4, false)
	if err != nil {
		t.Fatal("Failed to create 4-channel format:", err)
	}
	defer fmt.Destroy()

	if fmt.ChannelCount() != 4 {
		t.Errorf("Expected 4 channels, got %d", fmt.ChannelCount())
	}
	if fmt.IsInterleaved() {
		t.Error("Format should be non-interleaved")
	}
}

func TestInvalidChannelCount(t *testing.T) {
	_, err := NewWithChannels(48000.0, 0, false)
	if err == nil {
		t.Error("Expected error for zero channels")
	}
}

func TestDestroyIsIdempotent(t *testing.T) {
	fmt, err := NewMono(44100.0)
	if err != nil {
		t.Fatal("Failed to create format:", err)
	}

	fmt.Destroy()
	fmt.Destroy() // must be safe to call twice

	if fmt.GetFormatPtr() != nil {
		t.Error("Destroyed format should have nil pointer")
	}
}
