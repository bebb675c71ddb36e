package errors

import (
	"errors"
	"fmt"
)

// Folder reconciliation errors.
var (
	ErrConflict           = errors.New("destination already occupied")
	ErrNotFound           = errors.New("folder not found")
	ErrInconsistency      = errors.New("offline record has no online folder")
	ErrActionNotPermitted = errors.New("action not permitted")
)

// Value validation errors.
var (
	ErrInvalidPath = errors.New("invalid folder path")
	ErrInvalidUUID = errors.New("invalid folder uuid")
)

// Server/transport errors.
var (
	ErrRemoteOperation = errors.New("remote operation failed")
	ErrAPIResponse     = errors.New("unexpected API response")
)

// ConflictError reports that a move or rename target is occupied by a
// folder with a different identity.
type ConflictError struct {
	Path         string
	ExistingUUID string
}

func (e *ConflictError) Error() string {
	if e.ExistingUUID == "" {
		return fmt.Sprintf("%s: %s", ErrConflict, e.Path)
	}

	return fmt.Sprintf("%s: %s (by %s)", ErrConflict, e.Path, e.ExistingUUID)
}

func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}

// NotFoundError reports a missing parent or destination folder.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: %s", ErrNotFound, e.Path)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// InconsistencyError reports an offline modification record whose
// identity is missing from the online repository.
type InconsistencyError struct {
	UUID string
}

func (e *InconsistencyError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInconsistency, e.UUID)
}

func (e *InconsistencyError) Is(target error) bool {
	return target == ErrInconsistency
}

// RemoteOperationError wraps a failed backend call. The underlying error
// is kept untranslated and reachable through Unwrap.
type RemoteOperationError struct {
	Op  string
	Err error
}

func (e *RemoteOperationError) Error() string {
	return fmt.Sprintf("remote %s: %v", e.Op, e.Err)
}

func (e *RemoteOperationError) Unwrap() error { return e.Err }

func (e *RemoteOperationError) Is(target error) bool {
	return target == ErrRemoteOperation
}
