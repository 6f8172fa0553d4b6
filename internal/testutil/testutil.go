// Package testutil provides helpers shared by tests that need real audio
// files on disk.
package testutil

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// WriteSineWAV writes a mono 16-bit PCM WAV containing a sine tone and
// returns its path. Failures abort the test.
func WriteSineWAV(t *testing.T, dir, name string, sampleRate int, freq, seconds float64) string {
	t.Helper()

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatal("create wav:", err)
	}

	enc := wav.NewEncoder(f, sampleRate, 16, 1, 1)
	frames := int(seconds * float64(sampleRate))
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           make([]int, frames),
		SourceBitDepth: 16,
	}
	for i := 0; i < frames; i++ {
		sample := 0.3 * math.Sin(2*math.Pi*freq*float64(i)/float64(sampleRate))
		buf.Data[i] = int(sample * math.MaxInt16)
	}

	if err := enc.Write(buf); err != nil {
		t.Fatal("write wav samples:", err)
	}
	if err := enc.Close(); err != nil {
		t.Fatal("finalize wav:", err)
	}
	if err := f.Close(); err != nil {
		t.Fatal("close wav:", err)
	}
	return path
}

// WriteJunk writes a file with the given name that no decoder accepts.
func WriteJunk(t *testing.T, dir, name string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("definitely not audio data"), 0o644); err != nil {
		t.Fatal("write junk file:", err)
	}
	return path
}
