package rdn

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_RoundTrip(t *testing.T) {
	doc, err := Parse([]byte(`{"a": 1, "b": [2, 3]}`), Options{})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteMinimized(&buf, doc, WriteOptions{}))
	assert.Equal(t, `{"a":1,"b":[2,3]}`, buf.String())
}

func TestParse_SyntaxErrorIsError(t *testing.T) {
	_, err := Parse([]byte(`{"a": }`), Options{})
	require.Error(t, err)
	var perr *Error
	require.True(t, errors.As(err, &perr))
	assert.NotZero(t, perr.Line)
}

func TestParseFile_StampsFileName(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.rdn")
	require.NoError(t, os.WriteFile(path, []byte(`[1, `), 0o644))

	_, err := ParseFile(path, Options{})
	require.Error(t, err)
	var perr *Error
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, path, perr.File)
}

func TestWriteIndented_DefaultsIndentWhenEmpty(t *testing.T) {
	doc, err := Parse([]byte(`[1]`), Options{})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteIndented(&buf, doc, WriteOptions{}))
	assert.Equal(t, "[\n  1\n]", buf.String())
}

func TestParseReader(t *testing.T) {
	doc, err := ParseReader(bytes.NewBufferString(`S{1, 2, 3}`), Options{})
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, WriteMinimized(&buf, doc, WriteOptions{}))
	assert.Equal(t, `Set{1,2,3}`, buf.String())
}
