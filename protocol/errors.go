package protocol

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedMessage is matched by every error returned from
	// ParseCommand and ParseResponse.
	ErrMalformedMessage = errors.New("malformed message")

	ErrEmptyMessage error = &emptyMessageError{}
)

type emptyMessageError struct{}

func (e *emptyMessageError) Error() string {
	return "empty message"
}

func (e *emptyMessageError) Unwrap() error {
	return ErrMalformedMessage
}

// UnknownTypeError is returned when the first token of a line is not a known
// command verb or response code.
type UnknownTypeError struct {
	Type string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("unknown message type %q", e.Type)
}

func (e *UnknownTypeError) Unwrap() error {
	return ErrMalformedMessage
}

// MissingArgumentError is returned when a line has fewer arguments than its
// message type requires. Name is the argument that was expected.
type MissingArgumentError struct {
	Name string
}

func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("missing argument %q", e.Name)
}

func (e *MissingArgumentError) Unwrap() error {
	return ErrMalformedMessage
}

// TooManyArgumentsError is returned when a line has more arguments than its
// message type accepts. The verb or code is not counted.
type TooManyArgumentsError struct {
	Expected int
	Actual   int
}

func (e *TooManyArgumentsError) Error() string {
	return fmt.Sprintf("too many arguments (expected %d, got %d)", e.Expected, e.Actual)
}

func (e *TooManyArgumentsError) Unwrap() error {
	return ErrMalformedMessage
}

// InvalidIntegerArgumentError is returned when an integer argument is not a
// whole, signed, 64 bit decimal number.
type InvalidIntegerArgumentError struct {
	Argument string
	Value    string
}

func (e *InvalidIntegerArgumentError) Error() string {
	return fmt.Sprintf("invalid integer value %q for argument %q", e.Value, e.Argument)
}

func (e *InvalidIntegerArgumentError) Unwrap() error {
	return ErrMalformedMessage
}
