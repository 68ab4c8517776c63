package document

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rdnfmt/rdn/token"
	"github.com/rdnfmt/rdn/tokenizer"
)

func TestBuild_Object(t *testing.T) {
	doc, err := Build([]byte(`{"a": 1, "b": [2, 3], "c": "x"}`), tokenizer.Options{})
	require.NoError(t, err)

	root := doc.Root()
	require.Equal(t, token.StartObject, doc.Rows[root].Kind)
	assert.Equal(t, 3, doc.ChildCount(root))
	assert.True(t, doc.Rows[root].HasComplex)

	assert.Equal(t, 2, doc.PropertyValue(root, "a"))
	assert.Equal(t, "1", string(doc.RawValue(doc.PropertyValue(root, "a"))))

	bIdx := doc.PropertyValue(root, "b")
	require.NotEqual(t, -1, bIdx)
	assert.Equal(t, token.StartArray, doc.Rows[bIdx].Kind)

	assert.Equal(t, -1, doc.PropertyValue(root, "missing"))
}

func TestBuild_NthChild(t *testing.T) {
	doc, err := Build([]byte(`{"a": 1, "b": 2, "c": 3}`), tokenizer.Options{})
	require.NoError(t, err)
	root := doc.Root()

	for n, want := range []string{"a", "b", "c"} {
		idx, err := doc.NthChild(root, n)
		require.NoError(t, err)
		assert.Equal(t, token.PropertyName, doc.Rows[idx].Kind)
		assert.Equal(t, want, string(doc.RawValue(idx)))
	}

	_, err = doc.NthChild(root, 3)
	assert.Error(t, err)
}

func TestBuild_NestedArraysPreserveChildCounts(t *testing.T) {
	// Regression coverage for the row-table analogue of the tokenizer's
	// slice-reallocation bug: nested container pushes must not corrupt an
	// ancestor's in-progress child count.
	doc, err := Build([]byte(`[1, [2, 3, [4, 5]], 6]`), tokenizer.Options{})
	require.NoError(t, err)
	root := doc.Root()
	assert.Equal(t, 3, doc.ChildCount(root))

	mid, err := doc.NthChild(root, 1)
	require.NoError(t, err)
	assert.Equal(t, token.StartArray, doc.Rows[mid].Kind)
	assert.Equal(t, 3, doc.ChildCount(mid))

	inner, err := doc.NthChild(mid, 2)
	require.NoError(t, err)
	assert.Equal(t, token.StartArray, doc.Rows[inner].Kind)
	assert.Equal(t, 2, doc.ChildCount(inner))
}

func TestBuild_DocumentIDIsStamped(t *testing.T) {
	doc, err := Build([]byte(`1`), tokenizer.Options{})
	require.NoError(t, err)
	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", doc.ID().String())
}

func TestBuild_MapRows(t *testing.T) {
	doc, err := Build([]byte(`Map{"a" => 1, "b" => 2}`), tokenizer.Options{})
	require.NoError(t, err)
	root := doc.Root()
	assert.Equal(t, token.StartMap, doc.Rows[root].Kind)
	// Each key and each value is its own direct child row.
	assert.Equal(t, 4, doc.ChildCount(root))
}

func TestBuildFromReader_DrivesResumablePath(t *testing.T) {
	// A 1-byte-at-a-time reader forces every token (including the two-byte
	// "=>" separator and the multi-digit numbers) to resume across many
	// Read calls instead of completing within one, exercising the same
	// partial-token state machine tokenizer.Reader.Read documents.
	src := `Map{"a" => 123, "b" => [4, 5, 6]}`
	doc, err := BuildFromReader(iotest1Byte(src), tokenizer.Options{}, 1)
	require.NoError(t, err)

	root := doc.Root()
	assert.Equal(t, token.StartMap, doc.Rows[root].Kind)
	assert.Equal(t, src, string(doc.Raw))
	// 2 pairs, each key and value its own direct child: "a", 123, "b", [...].
	assert.Equal(t, 4, doc.ChildCount(root))

	bValueIdx, err := doc.NthChild(root, 3)
	require.NoError(t, err)
	assert.Equal(t, token.StartArray, doc.Rows[bValueIdx].Kind)
	assert.Equal(t, 3, doc.ChildCount(bValueIdx))
}

// iotest1Byte returns an io.Reader over s that yields at most one byte per
// Read call, the way a slow network socket would.
func iotest1Byte(s string) *oneByteReader { return &oneByteReader{r: strings.NewReader(s)} }

type oneByteReader struct{ r *strings.Reader }

func (o *oneByteReader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	return o.r.Read(p[:1])
}

func TestBuild_BinaryIsHexRoundTrips(t *testing.T) {
	doc, err := Build([]byte(`x"68656c6c6f"`), tokenizer.Options{})
	require.NoError(t, err)
	root := doc.Root()
	assert.Equal(t, token.RdnBinary, doc.Rows[root].Kind)
	assert.True(t, doc.BinaryIsHex(root))
}
