/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package errors

import "github.com/pkg/errors"

// New returns an error with the supplied message and a stack trace.
func New(message string) error {
	return errors.New(message)
}

// Errorf formats an error with a stack trace.
func Errorf(format string, args ...any) error {
	return errors.Errorf(format, args...)
}

// Wrapf wraps an error in a way compatible with HasCause. A nil err yields nil.
func Wrapf(err error, format string, args ...any) error {
	return errors.Wrapf(err, format, args...)
}

// HasType recursively unwraps source until it detects the target error type
func HasType(source, target error) bool {
	return source != nil && target != nil && errors.As(source, &target)
}

// HasCause recursively unwraps source until it detects the target error
func HasCause(source, target error) bool {
	return source != nil && target != nil && errors.Is(source, target)
}
