/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package ioutils

import (
	"io"

	"github.com/flossware/gocore/pkg/logging"
	"github.com/flossware/gocore/pkg/utils/check"
)

var logger = logging.MustGetLogger("gocore.ioutils")

// CloseQuietly releases c exactly once, swallowing any failure so it can never
// mask the outcome of the operation that used the resource. A close failure is
// observable only as a warning log record. No-op on a nil closer.
func CloseQuietly(c io.Closer) {
	if check.IsNil(c) {
		return
	}
	if err := c.Close(); err != nil {
		logger.Warnf("trouble closing resource [%T]: %s", c, err)
	}
}
