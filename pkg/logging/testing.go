/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package logging

import (
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// NewTestLogger installs an in-memory debug-level backend for the duration of
// the test and returns a logger plus a Recorder over everything emitted, by
// any logger, while it is installed.
func NewTestLogger(tb testing.TB) (Logger, *Recorder) {
	core, logs := observer.New(zapcore.DebugLevel)
	prev := swapCore(core)
	tb.Cleanup(func() { swapCore(prev) })

	return MustGetLogger(tb.Name()), &Recorder{logs: logs}
}

// Recorder exposes the records captured by NewTestLogger.
type Recorder struct {
	logs *observer.ObservedLogs
}

func (r *Recorder) Len() int {
	return r.logs.Len()
}

func (r *Recorder) Entries() []observer.LoggedEntry {
	return r.logs.All()
}

// MessagesContaining returns the captured messages that contain sub.
func (r *Recorder) MessagesContaining(sub string) []string {
	var out []string
	for _, entry := range r.logs.All() {
		if strings.Contains(entry.Message, sub) {
			out = append(out, entry.Message)
		}
	}
	return out
}

// EntriesAt returns the captured entries emitted at the given level.
func (r *Recorder) EntriesAt(level zapcore.Level) []observer.LoggedEntry {
	var out []observer.LoggedEntry
	for _, entry := range r.logs.All() {
		if entry.Level == level {
			out = append(out, entry)
		}
	}
	return out
}
