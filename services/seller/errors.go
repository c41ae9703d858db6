package seller

import "errors"

// ErrEmailTaken signals that an account already exists for the email.
var ErrEmailTaken = errors.New("an account with this email already exists")

// ErrInvalidCredentials signals a failed login attempt.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ErrWeakPassword signals the password fails the minimum complexity rule.
var ErrWeakPassword = errors.New("password must be at least 8 characters")
