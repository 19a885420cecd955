// Package errors defines error types shared across the bot's infrastructure
// layers. Domain-specific errors live in internal/wordhush/errors.
package errors

import (
	"errors"
	"fmt"
)

// RedisError wraps a failed Redis/Valkey operation.
type RedisError struct {
	Operation string
	Err       error
}

func (e RedisError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("redis error operation=%s", e.Operation)
	}
	return fmt.Sprintf("redis error operation=%s: %v", e.Operation, e.Err)
}

func (e RedisError) Unwrap() error { return e.Err }

// DatabaseError wraps a failed relational-store operation.
type DatabaseError struct {
	Operation string
	Err       error
}

func (e DatabaseError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("db error operation=%s", e.Operation)
	}
	return fmt.Sprintf("db error operation=%s: %v", e.Operation, e.Err)
}

func (e DatabaseError) Unwrap() error { return e.Err }

// MalformedInputError signals input that cannot be parsed.
type MalformedInputError struct {
	Message string
}

func (e MalformedInputError) Error() string { return e.Message }

// AccessDeniedError signals an action the user is not permitted to take.
type AccessDeniedError struct {
	Reason string
}

func (e AccessDeniedError) Error() string {
	if e.Reason == "" {
		return "access denied"
	}
	return fmt.Sprintf("access denied: %s", e.Reason)
}

// expectedUserBehaviorTypes lists errors that are normal user mistakes
// rather than system failures, so handlers can log them at a lower level.
var expectedUserBehaviorTypes = []func() any{
	func() any { return new(MalformedInputError) },
	func() any { return new(AccessDeniedError) },
}

// IsExpectedUserBehavior reports whether err is an ordinary user mistake.
// Domain packages extend this check with their own precondition types.
func IsExpectedUserBehavior(err error) bool {
	if err == nil {
		return false
	}
	for _, targetFn := range expectedUserBehaviorTypes {
		if errors.As(err, targetFn()) {
			return true
		}
	}
	return false
}
