package fmsg

import (
	"errors"
	"fmt"
	"log"
	"strings"
)

// baseError implements a basic error container
type baseError struct{ Err error }

func (e *baseError) Error() string { return e.Err.Error() }
func (e *baseError) Unwrap() error { return e.Err }

// BaseError implements an error container with a user-facing message
type BaseError struct {
	message string
	baseError
}

// Message returns a user-facing error message
func (e *BaseError) Message() string { return e.message }

// WrapErr wraps an error with a corresponding message.
func WrapErr(err error, a ...any) error {
	if err == nil {
		return nil
	}
	return wrapErr(err, fmt.Sprintln(a...))
}

// WrapErrSuffix wraps an error with a corresponding message with err at the end of the message.
func WrapErrSuffix(err error, a ...any) error {
	if err == nil {
		return nil
	}
	return wrapErr(err, fmt.Sprintln(append(a, err)...))
}

func wrapErr(err error, message string) *BaseError {
	return &BaseError{message, baseError{err}}
}

// PrintBaseError prints the message held by err if it is a [BaseError],
// or prints fallback followed by err otherwise.
func PrintBaseError(err error, fallback string) {
	var e *BaseError
	if errors.As(err, &e) {
		if msg := e.Message(); strings.TrimSpace(msg) != "" {
			log.Print(msg)
			return
		}
		Verbose("*"+fallback, err)
		return
	}
	log.Println(fallback, err)
}
