/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package utils

// Zero returns the zero value of A.
func Zero[A any]() A {
	var a A
	return a
}

// Must panics if err is not nil.
func Must(err error) {
	if err != nil {
		panic(err)
	}
}

// DefaultString returns a if it is non-empty, b otherwise.
func DefaultString(a, b string) string {
	if len(a) > 0 {
		return a
	}
	return b
}
