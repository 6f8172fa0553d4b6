//go:build !darwin

package format

import (
	"errors"
	"unsafe"
)

// Format is unavailable off darwin; every constructor reports the platform gap.
type Format struct{}

var errUnsupported = errors.New("avaudio format: AVAudioFormat is only supported on darwin")

func NewMono(sampleRate float64) (*Format, error)   { return nil, errUnsupported }
func NewStereo(sampleRate float64) (*Format, error) { return nil, errUnsupported }

func NewWithChannels(sampleRate float64, channels int, interleaved bool) (*Format, error) {
	return nil, errUnsupported
}

func (f *Format) GetFormatPtr() unsafe.Pointer { return nil }
func (f *Format) SampleRate() float64          { return 0.0 }
func (f *Format) ChannelCount() int            { return 0 }
func (f *Format) IsInterleaved() bool          { return false }
func (f *Format) Destroy()                     {}
