/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package errors

import (
	"fmt"

	"github.com/pkg/errors"
)

// InvalidArgumentError signals a violated precondition: a nil, blank, or empty
// argument was passed where a valid one is required.
type InvalidArgumentError struct {
	msg string
}

func (e *InvalidArgumentError) Error() string {
	return e.msg
}

// InvalidArgumentf builds an InvalidArgumentError carrying the formatted message.
func InvalidArgumentf(format string, args ...any) error {
	return &InvalidArgumentError{msg: fmt.Sprintf(format, args...)}
}

// IsInvalidArgument reports whether err has an InvalidArgumentError anywhere
// in its chain.
func IsInvalidArgument(err error) bool {
	target := &InvalidArgumentError{}
	return errors.As(err, &target)
}

// IOError signals that reading or parsing a configuration source failed. It
// always carries the underlying cause.
type IOError struct {
	msg   string
	cause error
}

func (e *IOError) Error() string {
	if e.cause == nil {
		return e.msg
	}
	return e.msg + ": " + e.cause.Error()
}

func (e *IOError) Unwrap() error {
	return e.cause
}

// Cause keeps IOError transparent to github.com/pkg/errors traversal.
func (e *IOError) Cause() error {
	return e.cause
}

// WrapIOf wraps cause into an IOError with the formatted message.
func WrapIOf(cause error, format string, args ...any) error {
	return &IOError{msg: fmt.Sprintf(format, args...), cause: cause}
}

// IsIOFailure reports whether err has an IOError anywhere in its chain.
func IsIOFailure(err error) bool {
	target := &IOError{}
	return errors.As(err, &target)
}
