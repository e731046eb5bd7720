/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package strutils assembles strings from ordered sequences of values,
// inserting separators without ever doubling one an element already ends with.
package strutils

import (
	"fmt"
	"strings"

	"go.uber.org/zap/zapcore"

	"github.com/flossware/gocore/pkg/logging"
	"github.com/flossware/gocore/pkg/utils/errors"
)

var logger = logging.MustGetLogger("gocore.strutils")

// AppendWithSeparator writes the textual form of each element to sb, placing
// sep between element i and i+1 unless element i already ends with sep. When
// trailing is true one final sep is appended regardless of content. A nil
// elems slice is rejected; an empty one writes nothing (or just sep).
func AppendWithSeparator[T any](sb *strings.Builder, elems []T, sep string, trailing bool) error {
	if elems == nil {
		return errors.InvalidArgumentf("must have a list of elements to concat")
	}

	for i, elem := range elems {
		text := fmt.Sprint(elem)
		sb.WriteString(text)
		if i < len(elems)-1 && !strings.HasSuffix(text, sep) {
			sb.WriteString(sep)
		}
	}

	if trailing {
		sb.WriteString(sep)
	}

	return nil
}

// JoinWithSeparator returns the concatenation of the elements' textual forms,
// separated by sep, with AppendWithSeparator's doubling and trailing rules.
func JoinWithSeparator[T any](elems []T, sep string, trailing bool) (string, error) {
	var sb strings.Builder
	if err := AppendWithSeparator(&sb, elems, sep, trailing); err != nil {
		return "", err
	}
	if logger.IsEnabledFor(zapcore.DebugLevel) {
		logger.Debugf("joined [%d] elements into [%s]", len(elems), sb.String())
	}
	return sb.String(), nil
}

// Join concatenates the elements' textual forms with no separator.
func Join[T any](elems []T) (string, error) {
	return JoinWithSeparator(elems, "", false)
}
