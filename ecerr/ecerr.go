// Package ecerr declares the error kinds shared by the curve, key and
// address packages.
//
// Every failure returned by this module wraps exactly one of the
// sentinels below, so callers can classify it with errors.Is.
package ecerr

import "github.com/pkg/errors"

var (
	// ErrInvalidInput reports an absent curve or point, a non-positive
	// scalar, or malformed encoded input.
	ErrInvalidInput = errors.New("invalid input")
	// ErrArithmetic reports a modular inverse or square root that does
	// not exist. Valid group points never produce it.
	ErrArithmetic = errors.New("arithmetic error")
	// ErrEncodingOverflow reports a value that does not fit the fixed
	// size buffer it is being encoded into.
	ErrEncodingOverflow = errors.New("encoding overflow")
)

// InvalidInput wraps ErrInvalidInput with a formatted message.
func InvalidInput(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidInput, format, args...)
}

// Arithmetic wraps ErrArithmetic with a formatted message.
func Arithmetic(format string, args ...interface{}) error {
	return errors.Wrapf(ErrArithmetic, format, args...)
}

// EncodingOverflow wraps ErrEncodingOverflow with a formatted message.
func EncodingOverflow(format string, args ...interface{}) error {
	return errors.Wrapf(ErrEncodingOverflow, format, args...)
}
