package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that
// violates a uniqueness constraint (invoice number, payment number, email).
// Callers are expected to regenerate the conflicting value and retry.
var ErrDuplicate = errors.New("resource already exists")
