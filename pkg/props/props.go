/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package props loads key-value mappings from the line-oriented properties
// text format ("#"/"!" comments, backslash escapes). Each call returns a fresh
// map owned by the caller; sources are quiet-closed when requested, exactly
// once, on success and failure alike.
package props

import (
	"io"
	"io/fs"
	"os"

	"github.com/magiconair/properties"
	"go.uber.org/zap/zapcore"

	"github.com/flossware/gocore/pkg/logging"
	"github.com/flossware/gocore/pkg/utils/check"
	"github.com/flossware/gocore/pkg/utils/errors"
	"github.com/flossware/gocore/pkg/utils/ioutils"
)

var logger = logging.MustGetLogger("gocore.props")

// Load parses a properties document from r. Read or parse failures come back
// as an IOError wrapping the cause. When closeAfter is true and r is an
// io.Closer, r is quiet-closed before Load returns, whatever the outcome.
func Load(r io.Reader, closeAfter bool) (map[string]string, error) {
	if closeAfter {
		if c, ok := r.(io.Closer); ok {
			defer ioutils.CloseQuietly(c)
		}
	}

	if _, err := check.NotNil(r, "must provide a reader"); err != nil {
		return nil, err
	}

	data, err := io.ReadAll(r)
	if err != nil {
		logger.Warnf("trouble reading properties source: %s", err)
		return nil, errors.WrapIOf(err, "failed reading properties source")
	}

	// expansion is disabled so "${...}" stays verbatim, as in the plain
	// line-oriented format this package reads
	parsed := properties.NewProperties()
	parsed.DisableExpansion = true
	if err := parsed.Load(data, properties.UTF8); err != nil {
		logger.Warnf("trouble parsing properties source: %s", err)
		return nil, errors.WrapIOf(err, "failed parsing properties source")
	}

	m := parsed.Map()
	if logger.IsEnabledFor(zapcore.DebugLevel) {
		logger.Debugf("loaded [%d] properties with keys [%s]", len(m), logging.Keys(m))
	}
	return m, nil
}

// LoadFile opens path and loads it, always closing the file. A missing or
// unreadable file is an IOError.
func LoadFile(path string) (map[string]string, error) {
	if _, err := check.String(path, "must provide a file path"); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		logger.Warnf("trouble opening properties file [%s]: %s", path, err)
		return nil, errors.WrapIOf(err, "failed opening properties file [%s]", path)
	}

	return Load(f, true)
}

// LoadFS resolves name within fsys and loads it, always closing the source.
// This is the bundled-resource analog of LoadFile.
func LoadFS(fsys fs.FS, name string) (map[string]string, error) {
	if _, err := check.NotNil(fsys, "must provide a file system"); err != nil {
		return nil, err
	}
	if _, err := check.String(name, "must provide a resource name"); err != nil {
		return nil, err
	}

	f, err := fsys.Open(name)
	if err != nil {
		logger.Warnf("trouble opening properties resource [%s]: %s", name, err)
		return nil, errors.WrapIOf(err, "failed opening properties resource [%s]", name)
	}

	return Load(f, true)
}
