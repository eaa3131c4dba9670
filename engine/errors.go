package engine

import "errors"

const Namespace = "engine"

var (
	// ErrInvalidConfig wraps every configuration-time validation failure.
	ErrInvalidConfig = errors.New(Namespace + ": invalid configuration")

	// ErrPaused is returned by Tick while the engine is paused.
	ErrPaused = errors.New(Namespace + ": race is paused")
)
