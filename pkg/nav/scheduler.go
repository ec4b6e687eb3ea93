package nav

import (
	"sync/atomic"
	"time"
)

// Timer is a pending scheduled call.
type Timer interface {
	// Stop prevents the call from running. It returns false if the call
	// already ran or was already stopped.
	Stop() bool
}

// Scheduler creates timers.
type Scheduler interface {
	// AfterFunc schedules fn after d. If the call cannot be delivered when
	// the timer fires, dropped runs instead. Neither runs after Stop.
	AfterFunc(d time.Duration, fn, dropped func()) Timer
}

// NewTimerScheduler returns a Scheduler backed by time.AfterFunc. When the
// timer fires, fn is handed to dispatch, which typically queues it on the
// owning session's event loop and reports whether it was queued. A nil
// dispatch runs fn on the timer goroutine.
func NewTimerScheduler(dispatch func(func()) bool) Scheduler {
	return timerScheduler{dispatch: dispatch}
}

type timerScheduler struct {
	dispatch func(func()) bool
}

func (s timerScheduler) AfterFunc(d time.Duration, fn, dropped func()) Timer {
	t := &dispatchTimer{}
	t.timer = time.AfterFunc(d, func() {
		// Prevent a fire racing with Stop from dispatching.
		if !t.done.CompareAndSwap(false, true) {
			return
		}
		if s.dispatch != nil {
			if !s.dispatch(fn) && dropped != nil {
				dropped()
			}
			return
		}
		fn()
	})
	return t
}

type dispatchTimer struct {
	timer *time.Timer
	done  atomic.Bool
}

func (t *dispatchTimer) Stop() bool {
	t.timer.Stop()
	return t.done.CompareAndSwap(false, true)
}
