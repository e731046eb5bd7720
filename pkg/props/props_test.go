/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package props

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flossware/gocore/pkg/utils/errors"
)

const sampleDoc = "# comment line\n! also a comment\n\nhost=localhost\nport: 8080\ngreeting=hello\\u0020world\nmulti=one \\\n    two\n"

var sampleMap = map[string]string{
	"host":     "localhost",
	"port":     "8080",
	"greeting": "hello world",
	"multi":    "one two",
}

type trackingSource struct {
	io.Reader
	closes int
}

func (s *trackingSource) Close() error {
	s.closes++
	return nil
}

type failingSource struct {
	trackingSource
}

func (s *failingSource) Read([]byte) (int, error) {
	return 0, errors.New("wire cut")
}

func TestLoadWellFormedSource(t *testing.T) {
	got, err := Load(strings.NewReader(sampleDoc), false)
	require.NoError(t, err)
	assert.Equal(t, sampleMap, got)
}

func TestLoadEmptySource(t *testing.T) {
	got, err := Load(strings.NewReader(""), false)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLoadNilSource(t *testing.T) {
	_, err := Load(nil, false)
	assert.True(t, errors.IsInvalidArgument(err))

	// closeAfter with a nil source must not panic either
	_, err = Load(nil, true)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestLoadClosesSourceOnSuccess(t *testing.T) {
	src := &trackingSource{Reader: strings.NewReader(sampleDoc)}

	got, err := Load(src, true)
	require.NoError(t, err)
	assert.Equal(t, sampleMap, got)
	assert.Equal(t, 1, src.closes)
}

func TestLoadClosesSourceOnFailure(t *testing.T) {
	src := &failingSource{}

	_, err := Load(src, true)
	assert.True(t, errors.IsIOFailure(err))
	assert.Contains(t, err.Error(), "wire cut")
	assert.Equal(t, 1, src.closes)
}

func TestLoadLeavesSourceOpenWhenAsked(t *testing.T) {
	src := &trackingSource{Reader: strings.NewReader(sampleDoc)}

	_, err := Load(src, false)
	require.NoError(t, err)
	assert.Equal(t, 0, src.closes)
}

func TestLoadKeepsPlaceholderValuesVerbatim(t *testing.T) {
	doc := "b=c\na=${b}\nself=${self}\n"

	got, err := Load(strings.NewReader(doc), false)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"b": "c", "a": "${b}", "self": "${self}"}, got)
}

func TestLoadRejectsMalformedEscape(t *testing.T) {
	_, err := Load(strings.NewReader("bad=\\uZZZZ\n"), false)
	assert.True(t, errors.IsIOFailure(err))
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.properties")
	require.NoError(t, os.WriteFile(path, []byte(sampleDoc), 0o600))

	got, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, sampleMap, got)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "no-such.properties"))
	assert.True(t, errors.IsIOFailure(err))
	assert.True(t, errors.HasCause(err, os.ErrNotExist))
}

func TestLoadFileBlankPath(t *testing.T) {
	_, err := LoadFile("  ")
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestLoadFS(t *testing.T) {
	fsys := fstest.MapFS{
		"conf/app.properties": &fstest.MapFile{Data: []byte(sampleDoc)},
	}

	got, err := LoadFS(fsys, "conf/app.properties")
	require.NoError(t, err)
	assert.Equal(t, sampleMap, got)
}

func TestLoadFSMissingResource(t *testing.T) {
	_, err := LoadFS(fstest.MapFS{}, "conf/app.properties")
	assert.True(t, errors.IsIOFailure(err))
}

func TestLoadFSNilFS(t *testing.T) {
	_, err := LoadFS(nil, "conf/app.properties")
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestLoadReturnsFreshMapPerCall(t *testing.T) {
	first, err := Load(strings.NewReader("k=v\n"), false)
	require.NoError(t, err)
	second, err := Load(strings.NewReader("k=v\n"), false)
	require.NoError(t, err)

	first["k"] = "mutated"
	assert.Equal(t, "v", second["k"])
}
