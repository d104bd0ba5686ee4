package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found,
// or exists but is not owned by the requesting user.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates that the operation conflicts with the current state
// of a resource (e.g. deleting an account that transactions still reference).
var ErrConflict = errors.New("operation conflicts with resource state")

// ErrInternal indicates an unexpected internal failure. A paired
// record/balance write that could not complete atomically surfaces as this.
var ErrInternal = errors.New("internal error")
