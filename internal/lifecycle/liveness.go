// Package lifecycle tracks whether a consumer is still interested in the
// results of asynchronous work.
package lifecycle

import "sync/atomic"

// Liveness is alive until Kill is called. The zero value is not alive; use
// NewLiveness.
type Liveness struct {
	alive atomic.Bool
}

func NewLiveness() *Liveness {
	l := &Liveness{}
	l.alive.Store(true)

	return l
}

func (l *Liveness) Alive() bool {
	return l.alive.Load()
}

func (l *Liveness) Kill() {
	l.alive.Store(false)
}
