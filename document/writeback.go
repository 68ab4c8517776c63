package document

import (
	"github.com/rdnfmt/rdn/token"
	"github.com/rdnfmt/rdn/writer"
)

// WriteTo re-emits the document from its row table through w, starting at
// row i (typically d.Root()). Every token is forwarded verbatim from the
// stored raw bytes; WriteTo never re-decodes or re-encodes a literal.
func (d *Document) WriteTo(w *writer.Writer, i int) error {
	_, err := d.writeRow(w, i)
	return err
}

func (d *Document) writeRow(w *writer.Writer, i int) (int, error) {
	row := d.Rows[i]
	switch row.Kind {
	case token.StartObject:
		w.WriteStartObject()
		return d.writeContainerBody(w, i)
	case token.StartArray:
		w.WriteStartArray()
		return d.writeContainerBody(w, i)
	case token.StartSet:
		w.WriteStartSet()
		return d.writeContainerBody(w, i)
	case token.StartMap:
		w.WriteStartMap()
		return d.writeContainerBody(w, i)
	case token.StartTuple:
		w.WriteStartTuple()
		return d.writeContainerBody(w, i)
	default:
		w.WriteTokenVerbatim(row.Kind, d.RawValue(i), row.BinaryIsHex)
		return i + 1, w.Err()
	}
}

func (d *Document) writeContainerBody(w *writer.Writer, i int) (int, error) {
	row := d.Rows[i]
	child := i + 1
	isMap := row.Kind == token.StartMap
	pos := 0 // Map only: even positions are keys, odd are values
	for child < row.EndRow {
		if d.Rows[child].Kind == token.PropertyName {
			w.WriteTokenVerbatim(token.PropertyName, d.RawValue(child), false)
			next, err := d.writeRow(w, child+1)
			if err != nil {
				return next, err
			}
			child = next
			continue
		}
		next, err := d.writeRow(w, child)
		if err != nil {
			return next, err
		}
		child = next
		if isMap {
			if pos%2 == 0 {
				w.WriteMapArrow()
				if err := w.Err(); err != nil {
					return child, err
				}
			}
			pos++
		}
	}
	switch row.Kind {
	case token.StartObject:
		w.WriteEndObject()
	case token.StartArray:
		w.WriteEndArray()
	case token.StartSet:
		w.WriteEndSet()
	case token.StartMap:
		w.WriteEndMap()
	case token.StartTuple:
		w.WriteEndTuple()
	}
	return row.EndRow + 1, w.Err()
}
