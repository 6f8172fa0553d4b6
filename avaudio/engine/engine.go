//go:build darwin

package engine

/*
#cgo CFLAGS: -x objective-c -fobjc-arc
#cgo LDFLAGS: -framework AVFoundation -framework AudioToolbox -framework Foundation
#include "native/soundfield.h"
#include "native/engine.m"
#include <stdlib.h>
*/
import "C"
import (
	"errors"
	"unsafe"
)

// AudioSpec defines the foundational audio settings for an engine
type AudioSpec struct {
	SampleRate   float64 // 44100, 48000, 96000 Hz
	ChannelCount int     // 1 (mono), 2 (stereo)
}

// DefaultAudioSpec returns commonly used audio settings
func DefaultAudioSpec() AudioSpec {
	return AudioSpec{
		SampleRate:   48000, // Common modern default
		ChannelCount: 2,     // Stereo
	}
}

// Engine represents a 1:1 mapping to AVAudioEngine
type Engine struct {
	ptr  *C.AudioEngine
	spec AudioSpec

	// Mixer nodes created through CreateMixerNode are retained on the C side;
	// track them so Destroy can release each one exactly once.
	ownedMixers []unsafe.Pointer
}

// New creates a new AVAudioEngine instance with specified audio settings
func New(spec AudioSpec) (*Engine, error) {
	result := C.audioengine_new()
	if result.error != nil {
		return nil, errors.New(C.GoString(result.error))
	}
	if result.result == nil {
		return nil, errors.New("engine creation returned null pointer")
	}

	return &Engine{
		ptr:  (*C.AudioEngine)(result.result),
		spec: spec,
	}, nil
}

// GetSpec returns the engine's audio specification
func (e *Engine) GetSpec() AudioSpec {
	return e.spec
}

// Prepare preallocates resources ahead of Start
func (e *Engine) Prepare() {
	if e == nil || e.ptr == nil {
		return
	}
	C.audioengine_prepare(e.ptr)
}

// Start starts the audio engine. Returns an error if the engine fails to start.
func (e *Engine) Start() error {
	if e == nil || e.ptr == nil {
		return errors.New("engine is nil")
	}

	errorStr := C.audioengine_start(e.ptr)
	if errorStr != nil {
		return errors.New(C.GoString(errorStr))
	}
	return nil
}

// Stop stops the audio engine but preserves graph topology
func (e *Engine) Stop() {
	if e == nil || e.ptr == nil {
		return
	}
	C.audioengine_stop(e.ptr)
}

// Reset clears all scheduled audio from the engine's nodes
func (e *Engine) Reset() {
	if e == nil || e.ptr == nil {
		return
	}
	C.audioengine_reset(e.ptr)
}

// IsRunning returns true if the engine has been started and not stopped
func (e *Engine) IsRunning() bool {
	if e == nil || e.ptr == nil {
		return false
	}
	return bool(C.audioengine_is_running(e.ptr))
}

// OutputNode returns the engine's output node pointer
func (e *Engine) OutputNode() (unsafe.Pointer, error) {
	if e == nil || e.ptr == nil {
		return nil, errors.New("engine is nil")
	}

	result := C.audioengine_output_node(e.ptr)
	if result.error != nil {
		return nil, errors.New(C.GoString(result.error))
	}
	return unsafe.Pointer(result.result), nil
}

// MainMixerNode returns the engine's main mixer node pointer.
// Accessing it implicitly connects the mixer to the output node.
func (e *Engine) MainMixerNode() (unsafe.Pointer, error) {
	if e == nil || e.ptr == nil {
		return nil, errors.New("engine is nil")
	}

	result := C.audioengine_main_mixer_node(e.ptr)
	if result.error != nil {
		return nil, errors.New(C.GoString(result.error))
	}
	return unsafe.Pointer(result.result), nil
}

// CreateMixerNode creates a new intermediate mixer node owned by this engine.
// The node still needs Attach and Connect calls to join the graph.
func (e *Engine) CreateMixerNode() (unsafe.Pointer, error) {
	if e == nil || e.ptr == nil {
		return nil, errors.New("engine is nil")
	}

	result := C.audioengine_create_mixer_node(e.ptr)
	if result.error != nil {
		return nil, errors.New(C.GoString(result.error))
	}

	ptr := unsafe.Pointer(result.result)
	e.ownedMixers = append(e.ownedMixers, ptr)
	return ptr, nil
}

// Attach adds a node to the engine. Nodes must be attached before connecting.
func (e *Engine) Attach(nodePtr unsafe.Pointer) error {
	if e == nil || e.ptr == nil {
		return errors.New("engine is nil")
	}

	errorStr := C.audioengine_attach(e.ptr, nodePtr)
	if errorStr != nil {
		return errors.New(C.GoString(errorStr))
	}
	return nil
}

// Detach removes a node from the engine, breaking its connections
func (e *Engine) Detach(nodePtr unsafe.Pointer) error {
	if e == nil || e.ptr == nil {
		return errors.New("engine is nil")
	}

	errorStr := C.audioengine_detach(e.ptr, nodePtr)
	if errorStr != nil {
		return errors.New(C.GoString(errorStr))
	}
	return nil
}

// Connect links source to destination without an explicit format; the engine
// negotiates using the source node's output format.
func (e *Engine) Connect(sourcePtr, destPtr unsafe.Pointer, fromBus, toBus int) error {
	return e.ConnectWithFormat(sourcePtr, destPtr, fromBus, toBus, nil)
}

// ConnectWithFormat links source to destination using the given AVAudioFormat
// pointer for the connection
func (e *Engine) ConnectWithFormat(sourcePtr, destPtr unsafe.Pointer, fromBus, toBus int, formatPtr unsafe.Pointer) error {
	if e == nil || e.ptr == nil {
		return errors.New("engine is nil")
	}

	errorStr := C.audioengine_connect(e.ptr, sourcePtr, destPtr, C.int(fromBus), C.int(toBus), formatPtr)
	if errorStr != nil {
		return errors.New(C.GoString(errorStr))
	}
	return nil
}

// NextAvailableInputBus returns the first unconnected input bus on a mixer
// node. Mixers grow their input buses on demand, so this never fails for a
// healthy mixer.
func (e *Engine) NextAvailableInputBus(mixerPtr unsafe.Pointer) (int, error) {
	if e == nil || e.ptr == nil {
		return 0, errors.New("engine is nil")
	}

	var bus C.int
	errorStr := C.audiomixer_next_available_input_bus(mixerPtr, &bus)
	if errorStr != nil {
		return 0, errors.New(C.GoString(errorStr))
	}
	return int(bus), nil
}

// DisconnectNodeInput breaks the connection feeding the given input bus
func (e *Engine) DisconnectNodeInput(nodePtr unsafe.Pointer, inputBus int) error {
	if e == nil || e.ptr == nil {
		return errors.New("engine is nil")
	}

	errorStr := C.audioengine_disconnect_node_input(e.ptr, nodePtr, C.int(inputBus))
	if errorStr != nil {
		return errors.New(C.GoString(errorStr))
	}
	return nil
}

// Destroy stops the engine and frees all native resources
func (e *Engine) Destroy() {
	if e == nil || e.ptr == nil {
		return
	}

	for _, mixer := range e.ownedMixers {
		C.audioengine_release_node(mixer)
	}
	e.ownedMixers = nil

	C.audioengine_destroy(e.ptr)
	e.ptr = nil
}
