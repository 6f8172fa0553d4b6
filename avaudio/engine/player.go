//go:build darwin

package engine

/*
#cgo CFLAGS: -x objective-c -fobjc-arc
#cgo LDFLAGS: -framework AVFoundation -framework AudioToolbox -framework Foundation
#include "native/soundfield.h"
#include "native/player.m"
#include <stdlib.h>
*/
import "C"
import (
	"errors"
	"runtime/cgo"
	"time"
	"unsafe"
)

// RenderingAlgorithm selects how a source node is spatialized by an
// environment node. Values mirror AVAudio3DMixingRenderingAlgorithm.
type RenderingAlgorithm int

const (
	RenderingEqualPowerPanning RenderingAlgorithm = 0
	RenderingSphericalHead     RenderingAlgorithm = 1
	RenderingHRTF              RenderingAlgorithm = 2
	RenderingSoundField        RenderingAlgorithm = 3
	RenderingStereoPassThrough RenderingAlgorithm = 5
	RenderingHRTFHQ            RenderingAlgorithm = 6
)

// Player represents a 1:1 mapping to AVAudioPlayerNode plus the AVAudioFile
// it plays. A player is transient: created per play request, attached and
// connected by the caller, and destroyed when its file finishes.
type Player struct {
	ptr *C.AudioPlayer
}

// FileInfo contains information about the loaded audio file
type FileInfo struct {
	SampleRate   float64
	ChannelCount int
	Duration     time.Duration
}

// NewPlayer creates a new detached player node. The caller attaches it to an
// engine and connects it before scheduling playback.
func NewPlayer() (*Player, error) {
	result := C.audioplayer_new()
	if result.error != nil {
		return nil, errors.New(C.GoString(result.error))
	}
	if result.result == nil {
		return nil, errors.New("player creation returned null pointer")
	}

	return &Player{ptr: (*C.AudioPlayer)(result.result)}, nil
}

// LoadFile opens an audio file for playback.
// Supported formats: WAV, AIFF, MP3, AAC, M4A, FLAC (macOS 11+)
func (p *Player) LoadFile(filePath string) error {
	if p == nil || p.ptr == nil {
		return errors.New("player is nil")
	}

	cPath := C.CString(filePath)
	defer C.free(unsafe.Pointer(cPath))

	errorStr := C.audioplayer_load_file(p.ptr, cPath)
	if errorStr != nil {
		return errors.New(C.GoString(errorStr))
	}
	return nil
}

// ScheduleFile schedules the full loaded file for playback. onComplete fires
// asynchronously on an engine-owned thread once the file's data has played
// back, or immediately if the node is stopped first. It fires exactly once
// per call; do not mutate shared state in it directly.
func (p *Player) ScheduleFile(onComplete func()) error {
	if p == nil || p.ptr == nil {
		return errors.New("player is nil")
	}

	handle := cgo.NewHandle(onComplete)
	errorStr := C.audioplayer_schedule_file(p.ptr, C.uint64_t(handle))
	if errorStr != nil {
		handle.Delete()
		return errors.New(C.GoString(errorStr))
	}
	return nil
}

// Play starts playback of scheduled audio. The player must be attached and
// connected, and its engine running.
func (p *Player) Play() error {
	if p == nil || p.ptr == nil {
		return errors.New("player is nil")
	}

	errorStr := C.audioplayer_play(p.ptr)
	if errorStr != nil {
		return errors.New(C.GoString(errorStr))
	}
	return nil
}

// Stop stops playback and flushes scheduled audio. Completion handlers of
// scheduled segments still fire.
func (p *Player) Stop() error {
	if p == nil || p.ptr == nil {
		return errors.New("player is nil")
	}

	errorStr := C.audioplayer_stop(p.ptr)
	if errorStr != nil {
		return errors.New(C.GoString(errorStr))
	}
	return nil
}

// IsPlaying returns true if the player is currently playing audio
func (p *Player) IsPlaying() (bool, error) {
	if p == nil || p.ptr == nil {
		return false, errors.New("player is nil")
	}

	var isPlaying C.bool
	errorStr := C.audioplayer_is_playing(p.ptr, &isPlaying)
	if errorStr != nil {
		return false, errors.New(C.GoString(errorStr))
	}
	return bool(isPlaying), nil
}

// GetFileInfo returns information about the loaded audio file
func (p *Player) GetFileInfo() (*FileInfo, error) {
	if p == nil || p.ptr == nil {
		return nil, errors.New("player is nil")
	}

	var sampleRate C.double
	var channelCount C.int
	errorStr := C.audioplayer_get_file_info(p.ptr, &sampleRate, &channelCount)
	if errorStr != nil {
		return nil, errors.New(C.GoString(errorStr))
	}

	var duration C.double
	errorStr = C.audioplayer_get_duration(p.ptr, &duration)
	if errorStr != nil {
		return nil, errors.New(C.GoString(errorStr))
	}

	return &FileInfo{
		SampleRate:   float64(sampleRate),
		ChannelCount: int(channelCount),
		Duration:     time.Duration(float64(duration) * float64(time.Second)),
	}, nil
}

// GetNodePtr returns the underlying AVAudioNode pointer for engine operations
func (p *Player) GetNodePtr() (unsafe.Pointer, error) {
	if p == nil || p.ptr == nil {
		return nil, errors.New("player is nil")
	}

	result := C.audioplayer_get_node_ptr(p.ptr)
	if result.error != nil {
		return nil, errors.New(C.GoString(result.error))
	}
	return unsafe.Pointer(result.result), nil
}

// GetFileFormatPtr returns the loaded file's processing format pointer,
// used to connect the player with the file's native format
func (p *Player) GetFileFormatPtr() (unsafe.Pointer, error) {
	if p == nil || p.ptr == nil {
		return nil, errors.New("player is nil")
	}

	result := C.audioplayer_get_file_format(p.ptr)
	if result.error != nil {
		return nil, errors.New(C.GoString(result.error))
	}
	return unsafe.Pointer(result.result), nil
}

// SetPosition places the source in the environment node's coordinate space.
// Only meaningful while the player feeds an environment node; must be set
// before playback starts, repositioning a playing source is unsupported.
func (p *Player) SetPosition(x, y, z float32) error {
	if p == nil || p.ptr == nil {
		return errors.New("player is nil")
	}

	errorStr := C.audioplayer_set_position(p.ptr, C.float(x), C.float(y), C.float(z))
	if errorStr != nil {
		return errors.New(C.GoString(errorStr))
	}
	return nil
}

// SetRenderingAlgorithm selects the spatialization algorithm for this source
func (p *Player) SetRenderingAlgorithm(algorithm RenderingAlgorithm) error {
	if p == nil || p.ptr == nil {
		return errors.New("player is nil")
	}

	errorStr := C.audioplayer_set_rendering_algorithm(p.ptr, C.int(algorithm))
	if errorStr != nil {
		return errors.New(C.GoString(errorStr))
	}
	return nil
}

// Destroy stops the player and frees all native resources
func (p *Player) Destroy() {
	if p == nil || p.ptr == nil {
		return
	}

	C.audioplayer_destroy(p.ptr)
	p.ptr = nil
}
