package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rdnfmt/rdn/token"
)

type tok struct {
	kind  token.Kind
	value string
	depth int
}

// readAll drives a fresh Reader over the whole of data, re-slicing the
// unconsumed suffix before every call the way document.Build does, and
// collects every token it produces.
func readAll(t *testing.T, data string, opts Options) []tok {
	t.Helper()
	r := NewReader(opts)
	raw := []byte(data)
	var out []tok
	for {
		ok, err := r.Read(raw[r.TotalConsumed():], true)
		require.NoError(t, err)
		if !ok {
			break
		}
		out = append(out, tok{kind: r.Kind(), value: string(r.Value()), depth: r.Depth()})
	}
	return out
}

func TestReader_Object(t *testing.T) {
	t.Run("empty object", func(t *testing.T) {
		got := readAll(t, `{}`, Options{})
		require.Len(t, got, 2)
		assert.Equal(t, token.StartObject, got[0].kind)
		assert.Equal(t, token.EndObject, got[1].kind)
	})

	t.Run("single property", func(t *testing.T) {
		got := readAll(t, `{"a": 1}`, Options{})
		require.Len(t, got, 4)
		assert.Equal(t, token.StartObject, got[0].kind)
		assert.Equal(t, token.PropertyName, got[1].kind)
		assert.Equal(t, "a", got[1].value)
		assert.Equal(t, token.Number, got[2].kind)
		assert.Equal(t, "1", got[2].value)
		assert.Equal(t, token.EndObject, got[3].kind)
	})

	t.Run("multiple properties require commas between them", func(t *testing.T) {
		got := readAll(t, `{"a": 1, "b": 2, "c": 3}`, Options{})
		var names []string
		for _, g := range got {
			if g.kind == token.PropertyName {
				names = append(names, g.value)
			}
		}
		assert.Equal(t, []string{"a", "b", "c"}, names)
	})

	t.Run("trailing comma rejected by default", func(t *testing.T) {
		r := NewReader(Options{})
		raw := []byte(`{"a": 1,}`)
		var lastErr error
		for {
			ok, err := r.Read(raw[r.TotalConsumed():], true)
			if err != nil {
				lastErr = err
				break
			}
			if !ok {
				break
			}
		}
		require.Error(t, lastErr)
		tErr, ok := lastErr.(*Error)
		require.True(t, ok)
		assert.Equal(t, TrailingCommaNotAllowed, tErr.Kind)
	})

	t.Run("trailing comma allowed when configured", func(t *testing.T) {
		got := readAll(t, `{"a": 1,}`, Options{AllowTrailingCommas: true})
		require.Len(t, got, 4)
		assert.Equal(t, token.EndObject, got[3].kind)
	})
}

func TestReader_Map(t *testing.T) {
	t.Run("multi-pair map keeps requiring an arrow for every pair", func(t *testing.T) {
		// Regression test: arrowState must re-arm after each value so the
		// second and third pairs are not mistaken for missing '=>'.
		got := readAll(t, `Map{"a" => 1, "b" => 2, "c" => 3}`, Options{})
		require.Len(t, got, 8) // Start + 3*(key+value) + End
		assert.Equal(t, token.StartMap, got[0].kind)
		assert.Equal(t, token.String, got[1].kind)
		assert.Equal(t, "a", got[1].value)
		assert.Equal(t, token.Number, got[2].kind)
		assert.Equal(t, token.String, got[3].kind)
		assert.Equal(t, "b", got[3].value)
		assert.Equal(t, token.String, got[5].kind)
		assert.Equal(t, "c", got[5].value)
		assert.Equal(t, token.EndMap, got[7].kind)
	})

	t.Run("short M{ prefix", func(t *testing.T) {
		got := readAll(t, `M{1 => 2}`, Options{})
		assert.Equal(t, token.StartMap, got[0].kind)
		assert.Equal(t, token.EndMap, got[3].kind)
	})

	t.Run("missing arrow is an error", func(t *testing.T) {
		_, _, err := driveToError(NewReader(Options{}), `Map{"a" 1}`)
		require.Error(t, err)
	})

	t.Run("container value re-arms the arrow via popContainer", func(t *testing.T) {
		got := readAll(t, `Map{"a" => [1, 2], "b" => 3}`, Options{})
		var keys []string
		for _, g := range got {
			if g.kind == token.String {
				keys = append(keys, g.value)
			}
		}
		assert.Equal(t, []string{"a", "b"}, keys)
	})
}

func driveToError(r *Reader, data string) (bool, []tok, error) {
	raw := []byte(data)
	var out []tok
	for {
		ok, err := r.Read(raw[r.TotalConsumed():], true)
		if err != nil {
			return false, out, err
		}
		if !ok {
			return true, out, nil
		}
		out = append(out, tok{kind: r.Kind(), value: string(r.Value())})
	}
}

func TestReader_SetAndSugaredSet(t *testing.T) {
	t.Run("explicit Set{ prefix", func(t *testing.T) {
		got := readAll(t, `Set{1, 2, 3}`, Options{})
		assert.Equal(t, token.StartSet, got[0].kind)
		assert.Equal(t, token.EndSet, got[len(got)-1].kind)
	})

	t.Run("short S{ prefix", func(t *testing.T) {
		got := readAll(t, `S{1, 2}`, Options{})
		assert.Equal(t, token.StartSet, got[0].kind)
	})

	t.Run("bare {v1, v2} in value position is a Set per the permissive grammar reading", func(t *testing.T) {
		got := readAll(t, `{1, 2}`, Options{})
		assert.Equal(t, token.StartSet, got[0].kind)
		assert.Equal(t, token.EndSet, got[len(got)-1].kind)
	})
}

func TestReader_NestedChildCount(t *testing.T) {
	// Regression test: an earlier draft held a *frame across a nested
	// container open, which could be invalidated by a containers slice
	// reallocation. Deeply nested scalars must all be seen.
	got := readAll(t, `[1, [2, 3, [4, 5, 6]], 7]`, Options{})
	var numbers []string
	for _, g := range got {
		if g.kind == token.Number {
			numbers = append(numbers, g.value)
		}
	}
	assert.Equal(t, []string{"1", "2", "3", "4", "5", "6", "7"}, numbers)
}

func TestReader_Tuple(t *testing.T) {
	got := readAll(t, `(1, "two", 3.0)`, Options{})
	assert.Equal(t, token.StartTuple, got[0].kind)
	assert.Equal(t, token.EndTuple, got[len(got)-1].kind)
}

func TestReader_Temporal(t *testing.T) {
	cases := []struct {
		name string
		in   string
		kind token.Kind
	}{
		{"date-time", `@2024-01-15T10:30:00Z`, token.RdnDateTime},
		{"date-only as year-digits", `@2024`, token.RdnDateTime},
		{"time-only", `@10:30:00`, token.RdnTimeOnly},
		{"duration", `@P1DT2H`, token.RdnDuration},
		{"unix seconds", `@1700000000`, token.RdnDateTime},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := readAll(t, c.in, Options{})
			require.Len(t, got, 1)
			assert.Equal(t, c.kind, got[0].kind)
		})
	}
}

func TestReader_RegexVsComment(t *testing.T) {
	t.Run("regex literal in value position", func(t *testing.T) {
		got := readAll(t, `[/abc/gi]`, Options{})
		require.Len(t, got, 3)
		assert.Equal(t, token.RdnRegExp, got[1].kind)
	})

	t.Run("line comment disallowed by default", func(t *testing.T) {
		r := NewReader(Options{})
		_, _, err := driveToError(r, "// hi\n1")
		require.Error(t, err)
	})

	t.Run("line comment allowed and surfaced", func(t *testing.T) {
		got := readAll(t, "// hi\n1", Options{CommentHandling: Allow})
		require.Len(t, got, 2)
		assert.Equal(t, token.Comment, got[0].kind)
		assert.Equal(t, token.Number, got[1].kind)
	})

	t.Run("block comment skipped silently", func(t *testing.T) {
		got := readAll(t, "/* hi */1", Options{CommentHandling: Skip})
		require.Len(t, got, 1)
		assert.Equal(t, token.Number, got[0].kind)
	})
}

func TestReader_Binary(t *testing.T) {
	t.Run("base64", func(t *testing.T) {
		got := readAll(t, `b"aGVsbG8="`, Options{})
		require.Len(t, got, 1)
		assert.Equal(t, token.RdnBinary, got[0].kind)
	})

	t.Run("hex", func(t *testing.T) {
		got := readAll(t, `x"68656c6c6f"`, Options{})
		require.Len(t, got, 1)
		assert.Equal(t, token.RdnBinary, got[0].kind)
	})
}

func TestReader_BigInteger(t *testing.T) {
	got := readAll(t, `123456789012345678901234567890n`, Options{})
	require.Len(t, got, 1)
	assert.Equal(t, token.BigInteger, got[0].kind)
}

func TestReader_FloatConstants(t *testing.T) {
	for _, lit := range []string{"NaN", "Infinity", "-Infinity"} {
		t.Run(lit, func(t *testing.T) {
			got := readAll(t, lit, Options{})
			require.Len(t, got, 1)
			assert.Equal(t, token.Number, got[0].kind)
			assert.Equal(t, lit, got[0].value)
		})
	}
}

func TestReader_DepthLimit(t *testing.T) {
	nested := ""
	for i := 0; i < 3; i++ {
		nested += "["
	}
	nested += "1"
	for i := 0; i < 3; i++ {
		nested += "]"
	}
	r := NewReader(Options{MaxDepth: 2})
	_, _, err := driveToError(r, nested)
	require.Error(t, err)
	tErr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, DepthTooLarge, tErr.Kind)
}

func TestReader_ResumableAcrossSegments(t *testing.T) {
	// A string literal split across three Read windows, each containing
	// only the newly-available bytes per the package's segment contract.
	r := NewReader(Options{})
	segments := []string{`"hel`, `lo wo`, `rld"`}
	var ok bool
	var err error
	for i, seg := range segments {
		ok, err = r.Read([]byte(seg), i == len(segments)-1)
		if err == ErrNeedMoreData {
			continue
		}
		require.NoError(t, err)
	}
	require.True(t, ok)
	assert.Equal(t, token.String, r.Kind())
	assert.Equal(t, "hello world", string(r.Value()))
	assert.True(t, r.HasValueSequence())
}

func TestReader_CheckpointRestore(t *testing.T) {
	// Checkpoint captures grammar position (container stack, bit-stack,
	// arrow state) only, not stream byte position - callers that need
	// full rollback must independently rewind their own cursor back to
	// the TotalConsumed() recorded alongside the checkpoint.
	r := NewReader(Options{})
	raw := []byte(`[1, 2]`)

	ok, err := r.Read(raw[r.TotalConsumed():], true)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, token.StartArray, r.Kind())
	require.Equal(t, 1, r.Depth())

	cp := r.Save()
	offset := r.TotalConsumed()

	ok, err = r.Read(raw[r.TotalConsumed():], true)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "1", string(r.Value()))

	r.Restore(cp)
	assert.Equal(t, 1, r.Depth())
	assert.Equal(t, token.Array, r.CurrentContainer())

	ok, err = r.Read(raw[offset:], true)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "1", string(r.Value()))
}
