// Package raceexec runs many independent races concurrently, for
// benchmarking and bulk verification. It is deliberately separate from
// engine.RaceEngine: a single race's sorters are stepped one at a time by a
// single goroutine, with no concurrency inside the tick loop at all. What
// raceexec parallelizes is running N wholly independent RaceEngines side by
// side to completion, each on its own goroutine, bounded by a concurrency
// cap.
package raceexec
