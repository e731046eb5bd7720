/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package logging

import (
	"fmt"
	"strings"

	"github.com/flossware/gocore/pkg/utils/collections"
)

// Keys logs lazily the keys of a map
func Keys[K comparable, V any](m map[K]V) fmt.Stringer {
	return keys[K, V](m)
}

type keys[K comparable, V any] map[K]V

func (k keys[K, V]) String() string {
	format := strings.Join(collections.Repeat("%v", len(k)), ", ")
	return fmt.Sprintf(format, collections.ToAnySlice(collections.Keys(k))...)
}
