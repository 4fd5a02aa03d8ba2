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
	Context string
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

// InUseError represents a refused delete: the entity still has dependents.
type InUseError struct {
	Entity    string
	Dependent string
	Count     int
}

func (e *InUseError) Error() string {
	return fmt.Sprintf("%s has %s records attached", e.Entity, e.Dependent)
}

// Is enables errors.Is() comparison for InUseError, ignoring Count.
func (e *InUseError) Is(target error) bool {
	t, ok := target.(*InUseError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity && e.Dependent == t.Dependent
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

// Entity Not Found Errors
var (
	ErrBoxNotFound       = &NotFoundError{Entity: "box"}
	ErrActionNotFound    = &NotFoundError{Entity: "action"}
	ErrBarrelNotFound    = &NotFoundError{Entity: "barrel"}
	ErrSavedLoadNotFound = &NotFoundError{Entity: "saved load"}
	ErrCartridgeNotFound = &NotFoundError{Entity: "cartridge"}
	ErrElevationNotFound = &NotFoundError{Entity: "elevation"}
	ErrComponentNotFound = &NotFoundError{Entity: "component"}
)

// Already Exists Errors
var (
	ErrComponentExists = &AlreadyExistsError{Entity: "component", Context: "in this list"}
)

// Delete Refusals
var (
	ErrActionHasBarrels = &InUseError{Entity: "action", Dependent: "barrel"}
	ErrBarrelHasBoxes   = &InUseError{Entity: "barrel", Dependent: "box"}
)

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

// IsInUse checks if an error is an InUseError
func IsInUse(err error) bool {
	var inUseErr *InUseError
	return errors.As(err, &inUseErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}
