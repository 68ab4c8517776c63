package cli

import (
	"fmt"
	"strconv"

	"github.com/rdnfmt/rdn/document"
	"github.com/rdnfmt/rdn/internal/bigint"
	"github.com/rdnfmt/rdn/token"
)

// mapEntry renders an RDN map key/value pair for the json/yaml/repr cat
// formats. RDN map keys are arbitrary values, not just strings, so a Go
// map (which json/yaml would otherwise demand string keys for) can't
// always hold one losslessly; a slice of entries always can.
type mapEntry struct {
	Key   interface{} `yaml:"key"`
	Value interface{} `yaml:"value"`
}

// toInterface decodes the value rooted at row i into a plain Go value
// tree (map[string]interface{}, []interface{}, []mapEntry, string,
// float64, bool, nil, *big.Int), for re-serialization through
// encoding/json or yaml.v3. Temporal, regex, and binary literals have no
// native JSON/YAML shape, so they round-trip as their raw RDN source
// text.
func toInterface(d *document.Document, i int) (interface{}, int, error) {
	row := d.Rows[i]
	switch row.Kind {
	case token.StartObject:
		obj := make(map[string]interface{})
		child := i + 1
		for child < row.EndRow {
			if d.Rows[child].Kind != token.PropertyName {
				return nil, 0, fmt.Errorf("cli: malformed object at row %d", child)
			}
			name := string(d.RawValue(child))
			val, next, err := toInterface(d, child+1)
			if err != nil {
				return nil, 0, err
			}
			obj[name] = val
			child = next
		}
		return obj, row.EndRow + 1, nil

	case token.StartArray, token.StartSet, token.StartTuple:
		var items []interface{}
		child := i + 1
		for child < row.EndRow {
			val, next, err := toInterface(d, child)
			if err != nil {
				return nil, 0, err
			}
			items = append(items, val)
			child = next
		}
		return items, row.EndRow + 1, nil

	case token.StartMap:
		var entries []mapEntry
		child := i + 1
		for child < row.EndRow {
			key, next, err := toInterface(d, child)
			if err != nil {
				return nil, 0, err
			}
			val, next2, err := toInterface(d, next)
			if err != nil {
				return nil, 0, err
			}
			entries = append(entries, mapEntry{Key: key, Value: val})
			child = next2
		}
		return entries, row.EndRow + 1, nil

	case token.String:
		return string(d.RawValue(i)), i + 1, nil
	case token.Number:
		f, err := strconv.ParseFloat(string(d.RawValue(i)), 64)
		if err != nil {
			return nil, 0, fmt.Errorf("cli: invalid number %q: %w", d.RawValue(i), err)
		}
		return f, i + 1, nil
	case token.BigInteger:
		lit := string(d.RawValue(i))
		v, err := bigint.Parse(lit[:len(lit)-1]) // trailing 'n' stripped
		if err != nil {
			return nil, 0, err
		}
		return v, i + 1, nil
	case token.True:
		return true, i + 1, nil
	case token.False:
		return false, i + 1, nil
	case token.Null:
		return nil, i + 1, nil
	case token.RdnDateTime, token.RdnTimeOnly, token.RdnDuration:
		return "@" + string(d.RawValue(i)), i + 1, nil
	case token.RdnRegExp:
		return "/" + string(d.RawValue(i)), i + 1, nil
	case token.RdnBinary:
		prefix := "b\""
		if d.BinaryIsHex(i) {
			prefix = "x\""
		}
		return prefix + string(d.RawValue(i)) + "\"", i + 1, nil
	default:
		return nil, 0, fmt.Errorf("cli: unexpected row kind %s at %d", row.Kind, i)
	}
}
