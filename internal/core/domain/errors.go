package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound is returned by repositories when a record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrGenerationUnavailable means no text-generation backend is configured
	// and the caller has no template to fall back to.
	ErrGenerationUnavailable = errors.New("text generation unavailable")
	// ErrGenerationFailed means every attempt returned unusable output.
	ErrGenerationFailed = errors.New("text generation failed")
	// ErrInvalidTransition is returned when a run cannot move to a status.
	ErrInvalidTransition = errors.New("invalid run status transition")
	// ErrArtifactMissing is returned when a stage output a step depends on
	// has not been generated yet.
	ErrArtifactMissing = errors.New("artifact missing")
	// ErrSyncInProgress is returned when another sync holds the run or has
	// already recorded a resource this sync tried to record.
	ErrSyncInProgress = errors.New("sync already in progress")
	// ErrInvalidInput wraps caller mistakes such as an unknown strategy.
	ErrInvalidInput = errors.New("invalid input")
)

// ComplianceError reports content rejected by the compliance gate. Reasons
// are written for the operator and can be shown verbatim.
type ComplianceError struct {
	Context string
	Reasons []string
}

func (e *ComplianceError) Error() string {
	return fmt.Sprintf("compliance check failed for %s: %s", e.Context, strings.Join(e.Reasons, "; "))
}

// ConfigurationError reports a component that cannot run because required
// settings are missing.
type ConfigurationError struct {
	Component string
	Missing   []string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s is not configured: missing %s", e.Component, strings.Join(e.Missing, ", "))
}

// SyncError aborts a live sync. Step is the step that failed and Messages
// are the platform's error messages, aggregated.
type SyncError struct {
	Step     string
	Messages []string
	Err      error
}

func (e *SyncError) Error() string {
	msg := fmt.Sprintf("sync failed at %s", e.Step)
	if len(e.Messages) > 0 {
		msg += ": " + strings.Join(e.Messages, "; ")
	}
	return msg
}

func (e *SyncError) Unwrap() error { return e.Err }
