package pipeline

import (
	"errors"
	"fmt"
)

// Failure taxonomy. Every pipeline failure wraps exactly one of these so the
// HTTP layer can map it to a status without inspecting provider errors.
var (
	// ErrUpstreamUnavailable means a scraping or model provider call
	// failed or timed out.
	ErrUpstreamUnavailable = errors.New("upstream provider unavailable")
	// ErrEmptyResult means a provider succeeded but yielded zero usable items.
	ErrEmptyResult = errors.New("provider returned no usable items")
	// ErrContractViolation means the model returned text that does not
	// satisfy the declared JSON contract.
	ErrContractViolation = errors.New("model output violates contract")
	// ErrConflict means a uniqueness or integrity constraint was violated.
	ErrConflict = errors.New("constraint conflict")
)

// Step-level failures, each tied to its taxonomy entry.
var (
	ErrPostDetailsUnavailable = fmt.Errorf("post details unavailable: %w", ErrEmptyResult)
	ErrNoComments             = fmt.Errorf("no comments found: %w", ErrEmptyResult)
	ErrAnalysisFailed         = fmt.Errorf("AI analysis failed: %w", ErrUpstreamUnavailable)
	ErrStrategyFailed         = fmt.Errorf("strategy generation failed: %w", ErrUpstreamUnavailable)
	ErrProspectFailed         = fmt.Errorf("prospect search failed: %w", ErrUpstreamUnavailable)
)
