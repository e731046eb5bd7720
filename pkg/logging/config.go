/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package logging

import (
	"io"
	"os"
	"sync"

	zaplogfmt "github.com/sykesm/zap-logfmt"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config describes the logging backend installed by Init.
type Config struct {
	// Format is the record encoding: "json", "logfmt", or anything else for
	// console output.
	Format string

	// LogSpec is the minimum enabled level, using zap level names ("debug",
	// "info", "warn", ...). Unparsable or empty specs fall back to info.
	LogSpec string

	// Writer is the sink for encoded log records.
	//
	// If a Writer is not provided, os.Stderr will be used as the log sink.
	Writer io.Writer
}

var (
	coreMutex sync.RWMutex
	rootCore  = newCore(Config{})
)

// Init replaces the logging backend. Loggers obtained before the call pick up
// the new configuration.
func Init(c Config) {
	swapCore(newCore(c))
}

func swapCore(c zapcore.Core) zapcore.Core {
	coreMutex.Lock()
	defer coreMutex.Unlock()
	prev := rootCore
	rootCore = c
	return prev
}

func currentCore() zapcore.Core {
	coreMutex.RLock()
	defer coreMutex.RUnlock()
	return rootCore
}

func newCore(c Config) zapcore.Core {
	level := zapcore.InfoLevel
	if c.LogSpec != "" {
		if err := level.Set(c.LogSpec); err != nil {
			level = zapcore.InfoLevel
		}
	}

	writer := c.Writer
	if writer == nil {
		writer = os.Stderr
	}

	return zapcore.NewCore(newEncoder(c.Format), zapcore.AddSync(writer), level)
}

func newEncoder(format string) zapcore.Encoder {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder

	switch format {
	case "json":
		return zapcore.NewJSONEncoder(cfg)
	case "logfmt":
		return zaplogfmt.NewEncoder(cfg)
	default:
		cfg.EncodeLevel = zapcore.CapitalLevelEncoder
		return zapcore.NewConsoleEncoder(cfg)
	}
}
