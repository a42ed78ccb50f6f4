package engine

import "errors"

var (
	// ErrPipelineOrder reports a system that reads state not yet produced in the tick
	ErrPipelineOrder = errors.New("pipeline order violation")

	// ErrEmptyPipeline reports a scheduler started with no systems
	ErrEmptyPipeline = errors.New("pipeline has no systems")
)
