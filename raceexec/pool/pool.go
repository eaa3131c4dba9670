// Package pool provides a small capacity-bounded object pool used to cap
// how many races raceexec runs at once, by bounding how many reusable race
// runner slots exist rather than gating with a separate semaphore.
package pool

// Pool hands out and reclaims interchangeable runner slots.
type Pool interface {
	// Get returns a slot, reusing a released one if available, creating a
	// new one if the pool has room, or blocking until one is released.
	Get() interface{}

	// Put releases a slot back to the pool.
	Put(interface{})
}
