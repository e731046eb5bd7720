/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package collections

// Repeat returns a slice containing item the given number of times.
func Repeat[T any](item T, times int) []T {
	res := make([]T, times)
	for i := range res {
		res[i] = item
	}
	return res
}

// ToAnySlice widens a typed slice for use with variadic ...any APIs.
func ToAnySlice[T any](items []T) []any {
	res := make([]any, len(items))
	for i, item := range items {
		res[i] = item
	}
	return res
}
