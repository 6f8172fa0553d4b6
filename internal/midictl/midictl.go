// Package midictl maps MIDI note-on events to compass directions so a pad
// controller can trigger the same spatialized sounds as the terminal UI.
// A MIDI driver must be registered by the importing program (the usual
// gomidi pattern); without one, Listen reports that no input port exists.
package midictl

import (
	"fmt"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"

	soundfield "github.com/shaban/soundfield"
)

// Player is the playback surface MIDI triggers drive.
type Player interface {
	PlayDirection(name string, dir soundfield.Direction, distance float64) error
	StopAll()
}

// DefaultBaseNote is middle C; the eight compass points occupy eight
// consecutive notes starting here, one octave below holds stop-all.
const DefaultBaseNote uint8 = 60

// Trigger is a running MIDI listener.
type Trigger struct {
	stop func()
}

// Listen opens the named input port (or the first available one when name
// is empty) and plays sound at the compass point mapped from each note-on.
// Notes baseNote..baseNote+7 map to N..NW clockwise; baseNote-12 stops all
// playback. Errors from play requests go to handler.
func Listen(portName string, baseNote uint8, player Player, sound string, distance float64, handler soundfield.ErrorHandler) (*Trigger, error) {
	if handler == nil {
		handler = &soundfield.DefaultErrorHandler{}
	}

	in, err := findPort(portName)
	if err != nil {
		return nil, err
	}

	l := &listener{
		player:   player,
		sound:    sound,
		distance: distance,
		baseNote: baseNote,
		handler:  handler,
	}
	stop, err := midi.ListenTo(in, l.receive)
	if err != nil {
		return nil, fmt.Errorf("listen on %q: %w", in.String(), err)
	}

	return &Trigger{stop: stop}, nil
}

type listener struct {
	player   Player
	sound    string
	distance float64
	baseNote uint8
	handler  soundfield.ErrorHandler
}

func (l *listener) receive(msg midi.Message, timestampms int32) {
	var channel, note, velocity uint8
	if !msg.GetNoteStart(&channel, &note, &velocity) {
		return
	}

	if l.baseNote >= 12 && note == l.baseNote-12 {
		l.player.StopAll()
		return
	}

	if note < l.baseNote || note >= l.baseNote+soundfield.NumDirections {
		return
	}
	dir := soundfield.Direction(note - l.baseNote)
	if err := l.player.PlayDirection(l.sound, dir, l.distance); err != nil {
		l.handler.HandleError(err)
	}
}

func findPort(name string) (drivers.In, error) {
	if name != "" {
		in, err := midi.FindInPort(name)
		if err != nil {
			return nil, fmt.Errorf("midi input %q: %w", name, err)
		}
		return in, nil
	}

	ports := midi.GetInPorts()
	if len(ports) == 0 {
		return nil, fmt.Errorf("no midi input ports available")
	}
	return ports[0], nil
}

// Close stops listening. Safe to call on a nil trigger.
func (t *Trigger) Close() {
	if t == nil || t.stop == nil {
		return
	}
	t.stop()
	t.stop = nil
}
