package domain

import "errors"

// ErrValidation marks user-input failures: a malformed email at login or
// registration, or a missing address/payment selection at order time.
// Callers match it with errors.Is.
var ErrValidation = errors.New("validation error")
