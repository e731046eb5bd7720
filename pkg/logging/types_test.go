/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package logging

import (
	"strings"
	"testing"

	. "github.com/onsi/gomega"
)

func TestKeysStringer(t *testing.T) {
	RegisterTestingT(t)

	Expect(Keys(map[string]int{"a": 1}).String()).To(Equal("a"))
	Expect(Keys(map[string]int{}).String()).To(Equal(""))

	rendered := Keys(map[string]string{"host": "x", "port": "y"}).String()
	Expect(strings.Split(rendered, ", ")).To(ConsistOf("host", "port"))
}
