//go:build darwin

package engine

/*
#include <stdint.h>
*/
import "C"
import "runtime/cgo"

// soundfield_player_completion is invoked from the native completion handler
// of a scheduled file. The handle wraps the Go callback registered by
// Player.ScheduleFile; it is deleted after a single invocation.
//
//export soundfield_player_completion
func soundfield_player_completion(handle C.uint64_t) {
	h := cgo.Handle(handle)
	if onComplete, ok := h.Value().(func()); ok && onComplete != nil {
		onComplete()
	}
	h.Delete()
}
