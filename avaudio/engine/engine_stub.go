//go:build !darwin

// Stub implementations keep the package compiling off darwin. Every
// constructor reports the platform gap; accessors return zero values.
package engine

import (
	"errors"
	"time"
	"unsafe"
)

var errUnsupported = errors.New("avaudio engine: AVAudioEngine is only supported on darwin")

type AudioSpec struct {
	SampleRate   float64
	ChannelCount int
}

func DefaultAudioSpec() AudioSpec {
	return AudioSpec{SampleRate: 48000, ChannelCount: 2}
}

type RenderingAlgorithm int

const (
	RenderingEqualPowerPanning RenderingAlgorithm = 0
	RenderingSphericalHead     RenderingAlgorithm = 1
	RenderingHRTF              RenderingAlgorithm = 2
	RenderingSoundField        RenderingAlgorithm = 3
	RenderingStereoPassThrough RenderingAlgorithm = 5
	RenderingHRTFHQ            RenderingAlgorithm = 6
)

type DistanceAttenuationModel int

const (
	AttenuationExponential DistanceAttenuationModel = 1
	AttenuationInverse     DistanceAttenuationModel = 2
	AttenuationLinear      DistanceAttenuationModel = 3
)

type Engine struct {
	spec AudioSpec
}

func New(spec AudioSpec) (*Engine, error) { return nil, errUnsupported }

func (e *Engine) GetSpec() AudioSpec { return AudioSpec{} }
func (e *Engine) Prepare()           {}
func (e *Engine) Start() error       { return errUnsupported }
func (e *Engine) Stop()              {}
func (e *Engine) Reset()             {}
func (e *Engine) IsRunning() bool    { return false }

func (e *Engine) OutputNode() (unsafe.Pointer, error)      { return nil, errUnsupported }
func (e *Engine) MainMixerNode() (unsafe.Pointer, error)   { return nil, errUnsupported }
func (e *Engine) CreateMixerNode() (unsafe.Pointer, error) { return nil, errUnsupported }

func (e *Engine) Attach(nodePtr unsafe.Pointer) error { return errUnsupported }
func (e *Engine) Detach(nodePtr unsafe.Pointer) error { return errUnsupported }

func (e *Engine) Connect(sourcePtr, destPtr unsafe.Pointer, fromBus, toBus int) error {
	return errUnsupported
}

func (e *Engine) ConnectWithFormat(sourcePtr, destPtr unsafe.Pointer, fromBus, toBus int, formatPtr unsafe.Pointer) error {
	return errUnsupported
}

func (e *Engine) NextAvailableInputBus(mixerPtr unsafe.Pointer) (int, error) {
	return 0, errUnsupported
}

func (e *Engine) DisconnectNodeInput(nodePtr unsafe.Pointer, inputBus int) error {
	return errUnsupported
}

func (e *Engine) Destroy() {}

type Player struct{}

type FileInfo struct {
	SampleRate   float64
	ChannelCount int
	Duration     time.Duration
}

func NewPlayer() (*Player, error) { return nil, errUnsupported }

func (p *Player) LoadFile(filePath string) error          { return errUnsupported }
func (p *Player) ScheduleFile(onComplete func()) error    { return errUnsupported }
func (p *Player) Play() error                             { return errUnsupported }
func (p *Player) Stop() error                             { return errUnsupported }
func (p *Player) IsPlaying() (bool, error)                { return false, errUnsupported }
func (p *Player) GetFileInfo() (*FileInfo, error)         { return nil, errUnsupported }
func (p *Player) GetNodePtr() (unsafe.Pointer, error)     { return nil, errUnsupported }
func (p *Player) GetFileFormatPtr() (unsafe.Pointer, error) {
	return nil, errUnsupported
}
func (p *Player) SetPosition(x, y, z float32) error { return errUnsupported }
func (p *Player) SetRenderingAlgorithm(algorithm RenderingAlgorithm) error {
	return errUnsupported
}
func (p *Player) Destroy() {}

type Environment struct{}

func NewEnvironment() (*Environment, error) { return nil, errUnsupported }

func (env *Environment) GetNodePtr() (unsafe.Pointer, error) { return nil, errUnsupported }

func (env *Environment) SetDistanceAttenuation(model DistanceAttenuationModel, referenceDistance, maximumDistance float32) error {
	return errUnsupported
}

func (env *Environment) SetListenerPosition(x, y, z float32) error { return errUnsupported }

func (env *Environment) SetListenerOrientation(yaw, pitch, roll float32) error {
	return errUnsupported
}

func (env *Environment) Destroy() {}
