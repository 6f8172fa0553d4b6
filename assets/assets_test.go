package assets

import (
	"errors"
	"testing"
	"time"

	"github.com/shaban/soundfield/internal/testutil"
)

func TestScanAndResolve(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteSineWAV(t, dir, "Ping.wav", 44100, 440, 0.25)
	testutil.WriteSineWAV(t, dir, "pong.wav", 48000, 880, 0.5)

	cat, err := Scan(dir, nil)
	if err != nil {
		t.Fatal("scan:", err)
	}

	if cat.Len() != 2 {
		t.Fatalf("catalog size = %d, want 2", cat.Len())
	}

	// Names are lower-cased base names.
	names := cat.Names()
	if names[0] != "ping" || names[1] != "pong" {
		t.Errorf("names = %v, want [ping pong]", names)
	}

	path, err := cat.Resolve("PING")
	if err != nil {
		t.Fatal("resolve is case-insensitive:", err)
	}
	if path == "" {
		t.Error("resolved path should not be empty")
	}

	info, err := cat.Lookup("pong")
	if err != nil {
		t.Fatal("lookup:", err)
	}
	if info.Format != "wav" || info.SampleRate != 48000 || info.Channels != 1 {
		t.Errorf("info = %+v", info)
	}
	if d := info.Duration; d < 400*time.Millisecond || d > 600*time.Millisecond {
		t.Errorf("duration = %v, want ~500ms", d)
	}
}

func TestResolveUnknownName(t *testing.T) {
	dir := t.TempDir()
	cat, err := Scan(dir, nil)
	if err != nil {
		t.Fatal("scan:", err)
	}

	_, err = cat.Resolve("nothing")
	if !errors.Is(err, ErrAssetUnavailable) {
		t.Errorf("want ErrAssetUnavailable, got %v", err)
	}
}

func TestScanSkipsUndecodableFiles(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteSineWAV(t, dir, "good.wav", 44100, 440, 0.1)
	junk := testutil.WriteJunk(t, dir, "bad.wav")
	testutil.WriteJunk(t, dir, "notes.txt") // unknown extension, silently ignored

	var skipped []string
	cat, err := Scan(dir, func(path string, err error) {
		skipped = append(skipped, path)
	})
	if err != nil {
		t.Fatal("scan:", err)
	}

	if cat.Len() != 1 {
		t.Fatalf("catalog size = %d, want 1", cat.Len())
	}
	if len(skipped) != 1 || skipped[0] != junk {
		t.Errorf("skipped = %v, want [%s]", skipped, junk)
	}
}

func TestProbeMissingFile(t *testing.T) {
	_, err := Probe("/does/not/exist.wav")
	if !errors.Is(err, ErrAssetUnavailable) {
		t.Errorf("want ErrAssetUnavailable, got %v", err)
	}
}

func TestProbeUnsupportedExtension(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteJunk(t, dir, "sound.flac")

	_, err := Probe(path)
	if !errors.Is(err, ErrAssetUnavailable) {
		t.Errorf("want ErrAssetUnavailable, got %v", err)
	}
}
