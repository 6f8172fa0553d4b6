package assets

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-audio/wav"
	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/jfreymuth/oggvorbis"
)

type prober func(f *os.File) (Info, error)

var probers = map[string]prober{
	".wav": probeWAV,
	".mp3": probeMP3,
	".ogg": probeOgg,
}

func probeWAV(f *os.File) (Info, error) {
	dec := wav.NewDecoder(f)
	dec.ReadInfo()
	if !dec.IsValidFile() {
		return Info{}, errors.New("not a valid WAV file")
	}

	dur, err := dec.Duration()
	if err != nil {
		return Info{}, fmt.Errorf("wav duration: %w", err)
	}

	return Info{
		Format:     "wav",
		SampleRate: int(dec.SampleRate),
		Channels:   int(dec.NumChans),
		Duration:   dur,
	}, nil
}

func probeMP3(f *os.File) (Info, error) {
	dec, err := gomp3.NewDecoder(f)
	if err != nil {
		return Info{}, err
	}

	// go-mp3 always outputs 16-bit stereo at the stream's sample rate.
	const bytesPerFrame = 4
	frames := dec.Length() / bytesPerFrame
	var dur time.Duration
	if dec.SampleRate() > 0 {
		dur = time.Duration(float64(frames) / float64(dec.SampleRate()) * float64(time.Second))
	}

	return Info{
		Format:     "mp3",
		SampleRate: dec.SampleRate(),
		Channels:   2,
		Duration:   dur,
	}, nil
}

func probeOgg(f *os.File) (Info, error) {
	r, err := oggvorbis.NewReader(f)
	if err != nil {
		return Info{}, err
	}

	var dur time.Duration
	if r.SampleRate() > 0 {
		dur = time.Duration(float64(r.Length()) / float64(r.SampleRate()) * float64(time.Second))
	}

	return Info{
		Format:     "ogg",
		SampleRate: r.SampleRate(),
		Channels:   r.Channels(),
		Duration:   dur,
	}, nil
}
