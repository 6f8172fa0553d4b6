//go:build !darwin

package node

import (
	"errors"
	"unsafe"
)

var errUnsupported = errors.New("avaudio node: AVAudioNode is only supported on darwin")

func GetInputFormatForBus(nodePtr unsafe.Pointer, bus int) (unsafe.Pointer, error) {
	return nil, errUnsupported
}

func GetOutputFormatForBus(nodePtr unsafe.Pointer, bus int) (unsafe.Pointer, error) {
	return nil, errUnsupported
}

func GetNumberOfInputs(nodePtr unsafe.Pointer) (int, error)  { return 0, errUnsupported }
func GetNumberOfOutputs(nodePtr unsafe.Pointer) (int, error) { return 0, errUnsupported }
