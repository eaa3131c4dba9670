package pool

import "sync"

// NewDynamic returns an uncapped pool backed by sync.Pool, for running as
// many races concurrently as the caller schedules, with no slot reuse
// pressure.
func NewDynamic(newSlot func() interface{}) Pool {
	return &sync.Pool{New: newSlot}
}
