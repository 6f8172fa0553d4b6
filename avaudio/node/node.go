//go:build darwin

// Package node exposes the base AVAudioNode functionality that is consistent
// across node types: bus counts and per-bus formats. Connection code uses the
// output format reported here so every link in the graph carries the format
// the nodes themselves negotiated.
package node

/*
#cgo CFLAGS: -x objective-c -fobjc-arc
#cgo LDFLAGS: -framework AVFoundation -framework AudioToolbox -framework Foundation
#include "native/node.m"
#include <stdlib.h>

AudioNodeResult audionode_input_format_for_bus(void* nodePtr, int bus);
AudioNodeResult audionode_output_format_for_bus(void* nodePtr, int bus);
const char* audionode_get_number_of_inputs(void* nodePtr, int* result);
const char* audionode_get_number_of_outputs(void* nodePtr, int* result);
*/
import "C"
import (
	"errors"
	"unsafe"
)

// GetInputFormatForBus returns the input format for the specified bus
func GetInputFormatForBus(nodePtr unsafe.Pointer, bus int) (unsafe.Pointer, error) {
	if nodePtr == nil {
		return nil, errors.New("node pointer is nil")
	}

	result := C.audionode_input_format_for_bus(nodePtr, C.int(bus))
	if result.error != nil {
		return nil, errors.New(C.GoString(result.error))
	}
	return unsafe.Pointer(result.result), nil
}

// GetOutputFormatForBus returns the output format for the specified bus
func GetOutputFormatForBus(nodePtr unsafe.Pointer, bus int) (unsafe.Pointer, error) {
	if nodePtr == nil {
		return nil, errors.New("node pointer is nil")
	}

	result := C.audionode_output_format_for_bus(nodePtr, C.int(bus))
	if result.error != nil {
		return nil, errors.New(C.GoString(result.error))
	}
	return unsafe.Pointer(result.result), nil
}

// GetNumberOfInputs returns the number of input buses on the node
func GetNumberOfInputs(nodePtr unsafe.Pointer) (int, error) {
	if nodePtr == nil {
		return 0, errors.New("node pointer is nil")
	}

	var result C.int
	errorStr := C.audionode_get_number_of_inputs(nodePtr, &result)
	if errorStr != nil {
		return 0, errors.New(C.GoString(errorStr))
	}
	return int(result), nil
}

// GetNumberOfOutputs returns the number of output buses on the node
func GetNumberOfOutputs(nodePtr unsafe.Pointer) (int, error) {
	if nodePtr == nil {
		return 0, errors.New("node pointer is nil")
	}

	var result C.int
	errorStr := C.audionode_get_number_of_outputs(nodePtr, &result)
	if errorStr != nil {
		return 0, errors.New(C.GoString(errorStr))
	}
	return int(result), nil
}
