/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package utils

import (
	"github.com/google/uuid"

	"github.com/flossware/gocore/pkg/utils/strutils"
)

func init() {
	// pooled random bytes make uuid generation roughly 5x cheaper;
	// see uuid.EnableRandPool docs for the heap caveat.
	uuid.EnableRandPool()
}

// GenerateBytesUUID creates a new random UUID and returns it as []byte
func GenerateBytesUUID() []byte {
	u := uuid.New()
	return u[:]
}

// GenerateUUID creates a new random UUID and returns it as a string
func GenerateUUID() string {
	return uuid.NewString()
}

// UniqueString joins parts and a fresh UUID with dashes, so repeated calls
// with the same parts never collide. Handy for building unique fixtures.
func UniqueString(parts ...string) string {
	elems := make([]string, 0, len(parts)+1)
	elems = append(elems, parts...)
	elems = append(elems, GenerateUUID())

	s, err := strutils.JoinWithSeparator(elems, "-", false)
	Must(err)
	return s
}
