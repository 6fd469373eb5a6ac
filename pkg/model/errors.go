package model

import (
	"errors"
	"fmt"
)

// Model errors.
var (
	ErrNotFound             = errors.New("not found")
	ErrNoDefaultResource    = errors.New("no default value resource")
	ErrLinkTargetMissing    = errors.New("link target missing")
	ErrMissingTimerResource = errors.New("missing timer resource")
	ErrValueKind            = errors.New("value kind mismatch")
	ErrSyncDepth            = errors.New("synchronization nested too deeply")
	ErrSyncCycle            = errors.New("synchronization cycle")
)

// LinkError reports a failed synchronization over a single link resource.
type LinkError struct {
	// Source is the object holding the link resource.
	Source Link

	// Target is the object the link points at.
	Target Link

	// Index is the link's resource instance ID.
	Index uint16

	// Err is the underlying cause.
	Err error
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("link %s[%d] -> %s: %v", e.Source, e.Index, e.Target, e.Err)
}

func (e *LinkError) Unwrap() error {
	return e.Err
}
