/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package check provides ensure-style argument validation: each helper returns
// its input unchanged when valid and an InvalidArgumentError carrying the
// supplied message otherwise.
package check

import (
	"reflect"
	"strings"

	"go.uber.org/zap/zapcore"

	"github.com/flossware/gocore/pkg/logging"
	"github.com/flossware/gocore/pkg/utils"
	"github.com/flossware/gocore/pkg/utils/errors"
)

var logger = logging.MustGetLogger("gocore.check")

// IsBlank reports whether s is empty once surrounding space is removed.
func IsBlank(s string) bool {
	blank := strings.TrimSpace(s) == ""
	if logger.IsEnabledFor(zapcore.DebugLevel) {
		logger.Debugf("is string blank [%t] for string [%s]", blank, s)
	}
	return blank
}

// String returns s unchanged if it is not blank.
func String(s string, msg string) (string, error) {
	if IsBlank(s) {
		return "", errors.InvalidArgumentf("%s", msg)
	}
	return s, nil
}

// IsNil reports whether v is nil, including a typed nil held in an interface.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}

// NotNil returns v unchanged if it is not nil.
func NotNil[T any](v T, msg string) (T, error) {
	missing := IsNil(v)
	if logger.IsEnabledFor(zapcore.DebugLevel) {
		logger.Debugf("is value nil [%t] for type [%T]", missing, v)
	}
	if missing {
		return utils.Zero[T](), errors.InvalidArgumentf("%s", msg)
	}
	return v, nil
}

// Slice returns items unchanged if the slice is non-nil and non-empty.
func Slice[T any](items []T, msg string) ([]T, error) {
	empty := len(items) == 0
	if logger.IsEnabledFor(zapcore.DebugLevel) {
		logger.Debugf("is slice empty [%t] for length [%d]", empty, len(items))
	}
	if empty {
		return nil, errors.InvalidArgumentf("%s", msg)
	}
	return items, nil
}
