package pool

// fixed is a pool bounded at a fixed capacity of slots, created lazily.
// tickets gates how many slots may ever be created (one ticket consumed per
// newSlot call, never replenished); free holds slots that have been
// released and are ready for reuse. Once capacity slots are outstanding and
// none are free, Get blocks until a Put releases one, which is what gives
// raceexec's executor its concurrency ceiling.
type fixed struct {
	free    chan interface{}
	tickets chan struct{}
	newSlot func() interface{}
}

// NewFixed returns a Pool that creates at most capacity slots via newSlot,
// reusing released slots instead of creating new ones beyond that.
func NewFixed(capacity uint, newSlot func() interface{}) Pool {
	tickets := make(chan struct{}, capacity)
	for i := uint(0); i < capacity; i++ {
		tickets <- struct{}{}
	}
	return &fixed{
		free:    make(chan interface{}, capacity),
		tickets: tickets,
		newSlot: newSlot,
	}
}

func (p *fixed) Get() interface{} {
	select {
	case s := <-p.free:
		return s
	default:
	}

	select {
	case s := <-p.free:
		return s
	case <-p.tickets:
		return p.newSlot()
	}
}

func (p *fixed) Put(s interface{}) {
	p.free <- s
}
