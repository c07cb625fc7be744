package errors

import "fmt"

// ErrValidation indicates malformed or missing user input. Always
// recoverable; surfaced as a field-specific notification.
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("validation failed: %s", e.Message)
	}
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}

// ErrConflict indicates a duplicate identity, e.g. an email that is
// already registered.
type ErrConflict struct {
	Resource string
	Key      string
}

func (e *ErrConflict) Error() string {
	return fmt.Sprintf("%s already exists: %s", e.Resource, e.Key)
}

// ErrAuth indicates a credential mismatch or a missing session.
type ErrAuth struct {
	Message string
}

func (e *ErrAuth) Error() string {
	return e.Message
}

// ErrNotFound indicates a referenced entity is absent.
type ErrNotFound struct {
	Resource string
	ID       string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ErrStorageRead indicates a persisted value could not be decoded. The
// callers recover by treating the value as absent; this error is logged,
// never shown to the user.
type ErrStorageRead struct {
	Key string
	Err error
}

func (e *ErrStorageRead) Error() string {
	return fmt.Sprintf("failed to read stored value %q: %v", e.Key, e.Err)
}

func (e *ErrStorageRead) Unwrap() error {
	return e.Err
}

// ErrInvalidStateTransition indicates a checkout transition that the
// state machine does not allow.
type ErrInvalidStateTransition struct {
	From interface{}
	To   interface{}
}

func (e *ErrInvalidStateTransition) Error() string {
	return fmt.Sprintf("invalid state transition from %v to %v", e.From, e.To)
}
