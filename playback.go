package soundfield

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/shaban/soundfield/queue"
)

// AssetResolver maps a logical sound name to a playable file path.
// Resolution failures wrap ErrAssetUnavailable.
type AssetResolver interface {
	Resolve(name string) (string, error)
}

// Manager tracks the set of currently playing source nodes and serializes
// every mutation of it - play registration, completion events, stop-all -
// onto a single queue worker. The renderer's completion callbacks never
// touch the set directly; they enqueue removal operations.
type Manager struct {
	graph    RenderGraph
	resolver AssetResolver
	handler  ErrorHandler

	q      *queue.Queue
	active map[Source]struct{}

	// Aggregate playing flag: true iff the active set is non-empty.
	// Written only by the queue worker, read from anywhere.
	playing atomic.Bool
}

// NewManager creates a playback manager over a started render graph.
// handler receives degraded-path errors (completion-time detach failures);
// nil means DefaultErrorHandler.
func NewManager(graph RenderGraph, resolver AssetResolver, handler ErrorHandler) *Manager {
	if handler == nil {
		handler = &DefaultErrorHandler{}
	}
	m := &Manager{
		graph:    graph,
		resolver: resolver,
		handler:  handler,
		q:        queue.New(64),
		active:   make(map[Source]struct{}),
	}
	m.q.Start()
	return m
}

// Play resolves the named asset, creates a transient source node at the
// position derived from the compass angle and distance, and starts it.
// Returns once scheduling is issued, not once playback completes.
func (m *Manager) Play(name string, angleDegrees, distance float64) error {
	if !m.graph.IsRunning() {
		return &PlaybackError{Asset: name, Err: ErrGraphNotStarted}
	}

	path, err := m.resolver.Resolve(name)
	if err != nil {
		return &PlaybackError{Asset: name, Err: err}
	}

	src, err := m.graph.NewSource(path)
	if err != nil {
		return &PlaybackError{Asset: name, Err: err}
	}

	if err := src.SetPosition(AngleToPosition(angleDegrees, distance)); err != nil {
		src.Detach()
		return &PlaybackError{Asset: name, Err: err}
	}

	// Register, schedule and start under the queue worker so the active
	// set has exactly one writer. The completion handler runs on an
	// engine-owned thread and only enqueues the removal op.
	err = m.q.RunSync(func(ctx context.Context) error {
		if err := src.Schedule(func() { m.enqueueCompletion(src) }); err != nil {
			return err
		}
		if err := src.Start(); err != nil {
			return err
		}
		m.active[src] = struct{}{}
		m.playing.Store(true)
		return nil
	})
	if err != nil {
		src.Detach()
		return &PlaybackError{Asset: name, Err: err}
	}
	return nil
}

// PlayDirection plays the named asset at one of the eight compass points.
func (m *Manager) PlayDirection(name string, dir Direction, distance float64) error {
	return m.Play(name, dir.Angle(), distance)
}

// benignShutdown reports whether err is one of the sentinels the queue
// returns once it has shut down. Ops racing Close (late completions, a
// StopAll or ActiveCount after Close) hit these; the closing StopAll
// already detached every source, so there is nothing left to report.
func benignShutdown(err error) bool {
	return errors.Is(err, queue.ErrClosed) || errors.Is(err, context.Canceled)
}

// enqueueCompletion turns an asynchronous completion callback into an
// operation on the serialized update context.
func (m *Manager) enqueueCompletion(src Source) {
	err := m.q.Enqueue(queue.Func(func(ctx context.Context) error {
		if _, ok := m.active[src]; !ok {
			// Already removed by StopAll; its detach ran there.
			return nil
		}
		delete(m.active, src)
		src.Detach()
		if len(m.active) == 0 {
			m.playing.Store(false)
		}
		return nil
	}))
	if err != nil && !benignShutdown(err) {
		m.handler.HandleError(err)
	}
}

// StopAll stops and detaches every active source node, clears the set and
// the aggregate flag. Idempotent: safe to call when nothing is playing and
// after Close.
func (m *Manager) StopAll() {
	err := m.q.RunSync(func(ctx context.Context) error {
		for src := range m.active {
			src.Stop()
			src.Detach()
			delete(m.active, src)
		}
		m.playing.Store(false)
		return nil
	})
	if err != nil && !benignShutdown(err) {
		m.handler.HandleError(err)
	}
}

// IsPlaying reports whether any source node is currently active.
func (m *Manager) IsPlaying() bool {
	return m.playing.Load()
}

// ActiveCount returns the size of the active source set.
func (m *Manager) ActiveCount() int {
	count := 0
	err := m.q.RunSync(func(ctx context.Context) error {
		count = len(m.active)
		return nil
	})
	if err != nil && !benignShutdown(err) {
		m.handler.HandleError(err)
	}
	return count
}

// Close stops all playback and shuts the update queue down. Safe to call
// more than once.
func (m *Manager) Close() {
	m.StopAll()
	m.q.Close()
}
