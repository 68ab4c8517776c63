package writer

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func write(t *testing.T, opts Options, fn func(w *Writer)) string {
	t.Helper()
	var buf bytes.Buffer
	w := New(&buf, opts)
	fn(w)
	require.NoError(t, w.Err())
	require.NoError(t, w.Flush())
	return buf.String()
}

func TestWriter_Object(t *testing.T) {
	t.Run("minimized", func(t *testing.T) {
		out := write(t, Options{}, func(w *Writer) {
			w.WriteStartObject()
			w.WritePropertyName("a")
			w.WriteInt64(1)
			w.WritePropertyName("b")
			w.WriteString("two")
			w.WriteEndObject()
		})
		assert.Equal(t, `{"a":1,"b":"two"}`, out)
	})

	t.Run("indented", func(t *testing.T) {
		out := write(t, Options{Indent: "  "}, func(w *Writer) {
			w.WriteStartObject()
			w.WritePropertyName("a")
			w.WriteInt64(1)
			w.WriteEndObject()
		})
		assert.Equal(t, "{\n  \"a\": 1\n}", out)
	})

	t.Run("value before property name is a structural error", func(t *testing.T) {
		var buf bytes.Buffer
		w := New(&buf, Options{})
		w.WriteStartObject()
		w.WriteInt64(1)
		assert.Error(t, w.Err())
	})
}

func TestWriter_Array(t *testing.T) {
	out := write(t, Options{}, func(w *Writer) {
		w.WriteStartArray()
		w.WriteInt64(1)
		w.WriteInt64(2)
		w.WriteInt64(3)
		w.WriteEndArray()
	})
	assert.Equal(t, `[1,2,3]`, out)
}

func TestWriter_SetAndTuple(t *testing.T) {
	out := write(t, Options{}, func(w *Writer) {
		w.WriteStartSet()
		w.WriteInt64(1)
		w.WriteInt64(2)
		w.WriteEndSet()
	})
	assert.Equal(t, `Set{1,2}`, out)

	out = write(t, Options{}, func(w *Writer) {
		w.WriteStartTuple()
		w.WriteInt64(1)
		w.WriteString("x")
		w.WriteEndTuple()
	})
	assert.Equal(t, `(1,"x")`, out)
}

func TestWriter_Map(t *testing.T) {
	t.Run("minimized", func(t *testing.T) {
		out := write(t, Options{}, func(w *Writer) {
			w.WriteStartMap()
			w.WriteString("a")
			w.WriteMapArrow()
			w.WriteInt64(1)
			w.WriteString("b")
			w.WriteMapArrow()
			w.WriteInt64(2)
			w.WriteEndMap()
		})
		assert.Equal(t, `Map{"a"=>1,"b"=>2}`, out)
	})

	t.Run("indented", func(t *testing.T) {
		out := write(t, Options{Indent: "  "}, func(w *Writer) {
			w.WriteStartMap()
			w.WriteString("a")
			w.WriteMapArrow()
			w.WriteInt64(1)
			w.WriteString("b")
			w.WriteMapArrow()
			w.WriteInt64(2)
			w.WriteEndMap()
		})
		assert.Equal(t, "Map{\n  \"a\" => 1,\n  \"b\" => 2\n}", out)
	})
}

func TestWriter_MismatchedClose(t *testing.T) {
	var buf bytes.Buffer
	w := New(&buf, Options{})
	w.WriteStartArray()
	w.WriteEndObject()
	assert.Error(t, w.Err())
}

func TestWriter_BigIntAndFloatConstants(t *testing.T) {
	v, ok := new(big.Int).SetString("123456789012345678901234567890", 10)
	require.True(t, ok)
	out := write(t, Options{}, func(w *Writer) {
		w.WriteStartArray()
		w.WriteBigInt(v)
		w.WriteFloat64(nan())
		w.WriteFloat64(posInf())
		w.WriteFloat64(negInf())
		w.WriteEndArray()
	})
	assert.Equal(t, `[123456789012345678901234567890n,NaN,Infinity,-Infinity]`, out)
}

func nan() float64    { var z float64; return z / z }
func posInf() float64 { return maxFloat64() * 2 }
func negInf() float64 { return -maxFloat64() * 2 }

func TestWriter_BinaryHexVsBase64(t *testing.T) {
	out := write(t, Options{}, func(w *Writer) {
		w.WriteBinary([]byte("hello"))
	})
	assert.Equal(t, `b"aGVsbG8="`, out)

	out = write(t, Options{BinaryAsHex: true}, func(w *Writer) {
		w.WriteBinary([]byte("hello"))
	})
	assert.Equal(t, `x"68656c6c6f"`, out)
}

func TestWriter_TemporalAndRegex(t *testing.T) {
	out := write(t, Options{}, func(w *Writer) {
		w.WriteStartArray()
		w.WriteDateTime("2024-01-15T10:30:00Z")
		w.WriteDuration("P1DT2H")
		w.WriteRegExp("abc", "gi")
		w.WriteEndArray()
	})
	assert.Equal(t, `[@2024-01-15T10:30:00Z,@P1DT2H,/abc/gi]`, out)
}

func TestWriter_WriteQuotedEscaping(t *testing.T) {
	out := write(t, Options{}, func(w *Writer) {
		w.WriteString("line1\nline2\ttab\"quote\\back")
	})
	assert.Equal(t, `"line1\nline2\ttab\"quote\\back"`, out)
}
