package soundfield

import (
	"unsafe"

	"github.com/shaban/soundfield/avaudio/engine"
	"github.com/shaban/soundfield/avaudio/format"
	"github.com/shaban/soundfield/avaudio/node"
)

// GraphSpec carries the static renderer configuration for the fixed graph.
type GraphSpec struct {
	Audio engine.AudioSpec

	// Rendering selects the spatialization algorithm applied to every
	// source node.
	Rendering engine.RenderingAlgorithm

	// ReferenceDistance is the distance below which no attenuation is
	// applied; MaximumDistance is where attenuation saturates. The model
	// between them is exponential.
	ReferenceDistance float32
	MaximumDistance   float32
}

// DefaultGraphSpec returns the renderer configuration used by the demo:
// high-quality HRTF panning with an exponential attenuation curve.
func DefaultGraphSpec() GraphSpec {
	return GraphSpec{
		Audio:             engine.DefaultAudioSpec(),
		Rendering:         engine.RenderingHRTFHQ,
		ReferenceDistance: 1.0,
		MaximumDistance:   100.0,
	}
}

// Source is one in-flight sound: a transient node created per play request,
// positioned once, and torn down on completion or stop.
type Source interface {
	// SetPosition places the source in the renderer's coordinate space.
	// Fixed at schedule time; repositioning after Start is unsupported.
	SetPosition(p Point3D) error

	// Schedule queues the source's full buffer for playback. onComplete
	// fires asynchronously exactly once when the data has played back or
	// the source was stopped.
	Schedule(onComplete func()) error

	// Start begins playback of scheduled audio.
	Start() error

	// Stop halts playback, flushing scheduled audio.
	Stop()

	// Detach removes the source from the graph and frees it. Safe to
	// call once per source; the playback manager guarantees that.
	Detach()
}

// RenderGraph is the surface the playback manager needs from the fixed
// audio graph. *Graph implements it; tests substitute fakes.
type RenderGraph interface {
	NewSource(path string) (Source, error)
	IsRunning() bool
}

// Graph owns the fixed topology built once at startup:
//
//	per-sound source nodes -> intermediate mixer -> environment -> main mixer
//
// The environment node is the platform renderer computing panning, HRTF and
// distance attenuation; nothing below attach/connect calls happens here.
type Graph struct {
	eng   *engine.Engine
	env   *engine.Environment
	mixer unsafe.Pointer
	spec  GraphSpec
}

// BuildGraph constructs and starts the fixed render graph. Invoked once; a
// failure is a GraphError and leaves the system without an audio path (no
// retry).
func BuildGraph(spec GraphSpec) (*Graph, error) {
	eng, err := engine.New(spec.Audio)
	if err != nil {
		return nil, &GraphError{Op: "create engine", Err: err}
	}

	env, err := engine.NewEnvironment()
	if err != nil {
		eng.Destroy()
		return nil, &GraphError{Op: "create environment node", Err: err}
	}

	g := &Graph{eng: eng, env: env, spec: spec}
	if err := g.wire(); err != nil {
		g.Close()
		return nil, err
	}

	eng.Prepare()
	if err := eng.Start(); err != nil {
		g.Close()
		return nil, &GraphError{Op: "start engine", Err: err}
	}
	return g, nil
}

// wire attaches and connects the static nodes. Every connection uses the
// source node's negotiated output format.
func (g *Graph) wire() error {
	envPtr, err := g.env.GetNodePtr()
	if err != nil {
		return &GraphError{Op: "environment node pointer", Err: err}
	}
	if err := g.eng.Attach(envPtr); err != nil {
		return &GraphError{Op: "attach environment", Err: err}
	}

	if err := g.env.SetDistanceAttenuation(engine.AttenuationExponential, g.spec.ReferenceDistance, g.spec.MaximumDistance); err != nil {
		return &GraphError{Op: "configure attenuation", Err: err}
	}

	// Listener fixed at the origin with no rotation.
	if err := g.env.SetListenerPosition(0, 0, 0); err != nil {
		return &GraphError{Op: "place listener", Err: err}
	}
	if err := g.env.SetListenerOrientation(0, 0, 0); err != nil {
		return &GraphError{Op: "orient listener", Err: err}
	}

	mainMixer, err := g.eng.MainMixerNode()
	if err != nil {
		return &GraphError{Op: "main mixer node", Err: err}
	}

	envFormat, err := node.GetOutputFormatForBus(envPtr, 0)
	if err != nil {
		return &GraphError{Op: "environment output format", Err: err}
	}
	if err := g.eng.ConnectWithFormat(envPtr, mainMixer, 0, 0, envFormat); err != nil {
		return &GraphError{Op: "connect environment to main mixer", Err: err}
	}

	mixer, err := g.eng.CreateMixerNode()
	if err != nil {
		return &GraphError{Op: "create intermediate mixer", Err: err}
	}
	if err := g.eng.Attach(mixer); err != nil {
		return &GraphError{Op: "attach intermediate mixer", Err: err}
	}

	// The mixer feeds the environment's pass-through bus, which wants an
	// explicit stereo format at the engine rate rather than whatever the
	// mixer negotiated upstream.
	mixerFormat, err := format.NewStereo(g.spec.Audio.SampleRate)
	if err != nil {
		return &GraphError{Op: "mixer output format", Err: err}
	}
	defer mixerFormat.Destroy()
	if err := g.eng.ConnectWithFormat(mixer, envPtr, 0, 0, mixerFormat.GetFormatPtr()); err != nil {
		return &GraphError{Op: "connect mixer to environment", Err: err}
	}

	g.mixer = mixer
	return nil
}

// IsRunning reports whether the engine started and has not stopped.
func (g *Graph) IsRunning() bool {
	return g != nil && g.eng.IsRunning()
}

// NewSource loads the file at path into a fresh source node, attaches it and
// connects it to the intermediate mixer using the file's native format. The
// returned source still needs SetPosition, Schedule and Start.
func (g *Graph) NewSource(path string) (Source, error) {
	player, err := engine.NewPlayer()
	if err != nil {
		return nil, err
	}

	if err := player.LoadFile(path); err != nil {
		player.Destroy()
		return nil, err
	}

	nodePtr, err := player.GetNodePtr()
	if err != nil {
		player.Destroy()
		return nil, err
	}

	if err := g.eng.Attach(nodePtr); err != nil {
		player.Destroy()
		return nil, err
	}

	fileFormat, err := player.GetFileFormatPtr()
	if err != nil {
		g.detachNode(nodePtr)
		player.Destroy()
		return nil, err
	}

	bus, err := g.eng.NextAvailableInputBus(g.mixer)
	if err != nil {
		g.detachNode(nodePtr)
		player.Destroy()
		return nil, err
	}

	if err := g.eng.ConnectWithFormat(nodePtr, g.mixer, 0, bus, fileFormat); err != nil {
		g.detachNode(nodePtr)
		player.Destroy()
		return nil, err
	}

	if err := player.SetRenderingAlgorithm(g.spec.Rendering); err != nil {
		g.detachNode(nodePtr)
		player.Destroy()
		return nil, err
	}

	return &graphSource{graph: g, player: player, nodePtr: nodePtr}, nil
}

func (g *Graph) detachNode(nodePtr unsafe.Pointer) {
	// Best-effort: detaching also breaks the node's connections.
	_ = g.eng.Detach(nodePtr)
}

// Close stops the engine and frees the static nodes. Source nodes still
// attached are torn down with the engine.
func (g *Graph) Close() {
	if g == nil {
		return
	}
	if g.eng != nil {
		g.eng.Stop()
	}
	if g.env != nil {
		g.env.Destroy()
		g.env = nil
	}
	if g.eng != nil {
		g.eng.Destroy()
		g.eng = nil
	}
}

// graphSource binds a player node to the graph that owns it.
type graphSource struct {
	graph   *Graph
	player  *engine.Player
	nodePtr unsafe.Pointer
}

func (s *graphSource) SetPosition(p Point3D) error {
	return s.player.SetPosition(p.X, p.Y, p.Z)
}

func (s *graphSource) Schedule(onComplete func()) error {
	return s.player.ScheduleFile(onComplete)
}

func (s *graphSource) Start() error {
	return s.player.Play()
}

func (s *graphSource) Stop() {
	_ = s.player.Stop()
}

func (s *graphSource) Detach() {
	if s.player == nil {
		return
	}
	s.graph.detachNode(s.nodePtr)
	s.player.Destroy()
	s.player = nil
}
