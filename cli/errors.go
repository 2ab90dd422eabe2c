// SPDX-License-Identifier: MIT
//
// errors.go - usage errors for the command line.

package cli

import "errors"

// ErrUsage matches every command-line usage error with errors.Is.
var ErrUsage = errors.New("cli: usage error")

// UsageError is a bad operand or flag. Its message is printed after "error: "
// and followed by a hint to run --help.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string { return e.Msg }

// Unwrap lets errors.Is(err, ErrUsage) match.
func (e *UsageError) Unwrap() error { return ErrUsage }

func usagef(msg string) error { return &UsageError{Msg: msg} }
