/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger provides logging API
type Logger interface {
	Debug(args ...interface{})
	Debugf(format string, args ...interface{})
	Info(args ...interface{})
	Infof(format string, args ...interface{})
	Warn(args ...interface{})
	Warnf(format string, args ...interface{})
	Error(args ...interface{})
	Errorf(format string, args ...interface{})
	IsEnabledFor(level zapcore.Level) bool
	Named(name string) Logger
	With(args ...interface{}) Logger
	Zap() *zap.Logger
}

// MustGetLogger returns a named logger bound to the backend installed by Init.
func MustGetLogger(name string) Logger {
	return &logger{s: zap.New(&delegatingCore{}).Named(name).Sugar()}
}

type logger struct {
	s *zap.SugaredLogger
}

func (l *logger) Debug(args ...interface{})                 { l.s.Debug(args...) }
func (l *logger) Debugf(format string, args ...interface{}) { l.s.Debugf(format, args...) }
func (l *logger) Info(args ...interface{})                  { l.s.Info(args...) }
func (l *logger) Infof(format string, args ...interface{})  { l.s.Infof(format, args...) }
func (l *logger) Warn(args ...interface{})                  { l.s.Warn(args...) }
func (l *logger) Warnf(format string, args ...interface{})  { l.s.Warnf(format, args...) }
func (l *logger) Error(args ...interface{})                 { l.s.Error(args...) }
func (l *logger) Errorf(format string, args ...interface{}) { l.s.Errorf(format, args...) }

func (l *logger) IsEnabledFor(level zapcore.Level) bool {
	return l.s.Desugar().Core().Enabled(level)
}

func (l *logger) Named(name string) Logger {
	return &logger{s: l.s.Named(name)}
}

func (l *logger) With(args ...interface{}) Logger {
	return &logger{s: l.s.With(args...)}
}

func (l *logger) Zap() *zap.Logger {
	return l.s.Desugar()
}

// delegatingCore routes every record through the core currently installed by
// Init, so package-level loggers created at init time follow reconfiguration.
type delegatingCore struct {
	fields []zapcore.Field
}

func (c *delegatingCore) Enabled(level zapcore.Level) bool {
	return currentCore().Enabled(level)
}

func (c *delegatingCore) With(fields []zapcore.Field) zapcore.Core {
	merged := make([]zapcore.Field, 0, len(c.fields)+len(fields))
	merged = append(merged, c.fields...)
	merged = append(merged, fields...)
	return &delegatingCore{fields: merged}
}

func (c *delegatingCore) Check(entry zapcore.Entry, checked *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(entry.Level) {
		return checked.AddCore(entry, c)
	}
	return checked
}

func (c *delegatingCore) Write(entry zapcore.Entry, fields []zapcore.Field) error {
	target := currentCore()
	if len(c.fields) != 0 {
		target = target.With(c.fields)
	}
	return target.Write(entry, fields)
}

func (c *delegatingCore) Sync() error {
	return currentCore().Sync()
}
