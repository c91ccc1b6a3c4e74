package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "with this location"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// ConflictError represents an overlapping shift interval for the same staff
// member. Distinguished from generic validation so callers can render a
// specific message.
type ConflictError struct {
	StaffName string
	Date      string
	Window    string
}

func (e *ConflictError) Error() string {
	if e.StaffName != "" {
		return fmt.Sprintf("schedule conflict: %s already has an overlapping shift on %s (%s)", e.StaffName, e.Date, e.Window)
	}
	return "schedule conflict: overlapping shift for this staff member"
}

// InvalidStateError represents an illegal lifecycle transition
type InvalidStateError struct {
	Entity string
	From   string
	To     string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("invalid state transition for %s: %s -> %s", e.Entity, e.From, e.To)
}

// Entity Not Found Errors
var (
	ErrShiftNotFound       = &NotFoundError{Entity: "shift assignment"}
	ErrStaffMemberNotFound = &NotFoundError{Entity: "staff member"}
	ErrGateNotFound        = &NotFoundError{Entity: "gate"}
)

// Already Exists Errors
var (
	ErrGateExists        = &AlreadyExistsError{Entity: "gate", Context: "with this location code"}
	ErrStaffMemberExists = &AlreadyExistsError{Entity: "staff member", Context: "with this badge number or email"}
)

// Business Logic Errors
var (
	ErrInvalidTimeRange    = errors.New("shift start time must be before end time")
	ErrCrossMidnightShift  = errors.New("shifts crossing midnight are not supported")
	ErrStaffInactive       = errors.New("staff member is not active")
	ErrBuiltinGateReadOnly = errors.New("builtin gates cannot be modified or removed")
	ErrInvalidStatusFilter = errors.New("invalid status filter")
)

// Configuration Errors
var (
	ErrDirectoryNotConfigured = errors.New("corporate directory is not configured: LDAP_HOST, LDAP_BIND_DN or LDAP_BASE_DN missing")
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsConflict checks if an error is a ConflictError
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// IsInvalidState checks if an error is an InvalidStateError
func IsInvalidState(err error) bool {
	var stateErr *InvalidStateError
	return errors.As(err, &stateErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewConflictError creates a new ConflictError
func NewConflictError(staffName, date, window string) error {
	return &ConflictError{StaffName: staffName, Date: date, Window: window}
}

// NewInvalidStateError creates a new InvalidStateError
func NewInvalidStateError(entity, from, to string) error {
	return &InvalidStateError{Entity: entity, From: from, To: to}
}
