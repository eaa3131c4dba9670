package raceexec

import "errors"

const Namespace = "raceexec"

var (
	// ErrMaxTicksExceeded is reported in a Result when a job's MaxTicks was
	// reached before the race completed.
	ErrMaxTicksExceeded = errors.New(Namespace + ": race did not complete within MaxTicks")

	// ErrJobPanicked is reported in a Result when running a job panicked.
	ErrJobPanicked = errors.New(Namespace + ": job execution panicked")
)
