//go:build darwin

package engine

/*
#cgo CFLAGS: -x objective-c -fobjc-arc
#cgo LDFLAGS: -framework AVFoundation -framework AudioToolbox -framework Foundation
#include "native/soundfield.h"
#include "native/environment.m"
#include <stdlib.h>
*/
import "C"
import (
	"errors"
	"unsafe"
)

// DistanceAttenuationModel selects how the environment node attenuates
// sources by distance. Values mirror
// AVAudioEnvironmentDistanceAttenuationModel.
type DistanceAttenuationModel int

const (
	AttenuationExponential DistanceAttenuationModel = 1
	AttenuationInverse     DistanceAttenuationModel = 2
	AttenuationLinear      DistanceAttenuationModel = 3
)

// Environment represents a 1:1 mapping to AVAudioEnvironmentNode: the
// platform's spatial mixer computing panning, HRTF and distance attenuation
// for every 3D-positioned source connected to it.
type Environment struct {
	ptr *C.AudioEnvironment
}

// NewEnvironment creates a new detached environment node
func NewEnvironment() (*Environment, error) {
	result := C.audioenvironment_new()
	if result.error != nil {
		return nil, errors.New(C.GoString(result.error))
	}
	if result.result == nil {
		return nil, errors.New("environment creation returned null pointer")
	}

	return &Environment{ptr: (*C.AudioEnvironment)(result.result)}, nil
}

// GetNodePtr returns the underlying AVAudioNode pointer for engine operations
func (env *Environment) GetNodePtr() (unsafe.Pointer, error) {
	if env == nil || env.ptr == nil {
		return nil, errors.New("environment is nil")
	}

	result := C.audioenvironment_get_node_ptr(env.ptr)
	if result.error != nil {
		return nil, errors.New(C.GoString(result.error))
	}
	return unsafe.Pointer(result.result), nil
}

// SetDistanceAttenuation configures the distance attenuation curve.
// referenceDistance is the distance below which no attenuation is applied;
// maximumDistance is where attenuation saturates.
func (env *Environment) SetDistanceAttenuation(model DistanceAttenuationModel, referenceDistance, maximumDistance float32) error {
	if env == nil || env.ptr == nil {
		return errors.New("environment is nil")
	}

	errorStr := C.audioenvironment_set_distance_attenuation(env.ptr, C.int(model), C.float(referenceDistance), C.float(maximumDistance))
	if errorStr != nil {
		return errors.New(C.GoString(errorStr))
	}
	return nil
}

// SetListenerPosition places the listener in the environment's coordinate space
func (env *Environment) SetListenerPosition(x, y, z float32) error {
	if env == nil || env.ptr == nil {
		return errors.New("environment is nil")
	}

	errorStr := C.audioenvironment_set_listener_position(env.ptr, C.float(x), C.float(y), C.float(z))
	if errorStr != nil {
		return errors.New(C.GoString(errorStr))
	}
	return nil
}

// SetListenerOrientation sets the listener's yaw/pitch/roll in degrees
func (env *Environment) SetListenerOrientation(yaw, pitch, roll float32) error {
	if env == nil || env.ptr == nil {
		return errors.New("environment is nil")
	}

	errorStr := C.audioenvironment_set_listener_orientation(env.ptr, C.float(yaw), C.float(pitch), C.float(roll))
	if errorStr != nil {
		return errors.New(C.GoString(errorStr))
	}
	return nil
}

// Destroy frees the environment node
func (env *Environment) Destroy() {
	if env == nil || env.ptr == nil {
		return
	}

	C.audioenvironment_destroy(env.ptr)
	env.ptr = nil
}
