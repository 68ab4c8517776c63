// Package token defines the closed enumerations shared by the tokenizer,
// writer, and document packages: token kinds and container kinds.
package token

// Kind is the closed set of token kinds the tokenizer can produce and the
// writer can emit. The zero value, None, never appears in a token stream
// produced by a successful Read; it is only used as a sentinel for
// "nothing read yet".
type Kind int

const (
	None Kind = iota

	StartObject
	EndObject
	StartArray
	EndArray
	StartSet
	EndSet
	StartMap
	EndMap
	StartTuple
	EndTuple

	PropertyName
	String
	Number
	BigInteger
	True
	False
	Null

	RdnDateTime
	RdnTimeOnly
	RdnDuration
	RdnRegExp
	RdnBinary

	Comment
)

func (k Kind) String() string {
	return kindNames[k]
}

func (k Kind) GoString() string {
	return kindNames[k]
}

var kindNames = map[Kind]string{
	None:         "None",
	StartObject:  "StartObject",
	EndObject:    "EndObject",
	StartArray:   "StartArray",
	EndArray:     "EndArray",
	StartSet:     "StartSet",
	EndSet:       "EndSet",
	StartMap:     "StartMap",
	EndMap:       "EndMap",
	StartTuple:   "StartTuple",
	EndTuple:     "EndTuple",
	PropertyName: "PropertyName",
	String:       "String",
	Number:       "Number",
	BigInteger:   "BigInteger",
	True:         "True",
	False:        "False",
	Null:         "Null",
	RdnDateTime:  "RdnDateTime",
	RdnTimeOnly:  "RdnTimeOnly",
	RdnDuration:  "RdnDuration",
	RdnRegExp:    "RdnRegExp",
	RdnBinary:    "RdnBinary",
	Comment:      "Comment",
}

func init() {
	// Mirrors the reference tokenizer's init-time completeness check: make
	// sure nobody adds a Kind constant without giving it a name.
	for k := None; k <= Comment; k++ {
		if kindNames[k] == "" {
			panic("token: kind missing from kindNames")
		}
	}
}

// Container is the enclosing context a token's depth is nested inside.
type Container int

const (
	Root Container = iota
	Object
	Array
	Set
	Map
	Tuple
)

func (c Container) String() string {
	return containerNames[c]
}

var containerNames = map[Container]string{
	Root:   "Root",
	Object: "Object",
	Array:  "Array",
	Set:    "Set",
	Map:    "Map",
	Tuple:  "Tuple",
}

// StartKindFor returns the Start* token kind that opens the given
// container, and EndKindFor the End* kind that closes it. Root has no
// start/end token; callers must not query it.
func StartKindFor(c Container) Kind {
	switch c {
	case Object:
		return StartObject
	case Array:
		return StartArray
	case Set:
		return StartSet
	case Map:
		return StartMap
	case Tuple:
		return StartTuple
	default:
		panic("token: no start kind for container " + c.String())
	}
}

func EndKindFor(c Container) Kind {
	switch c {
	case Object:
		return EndObject
	case Array:
		return EndArray
	case Set:
		return EndSet
	case Map:
		return EndMap
	case Tuple:
		return EndTuple
	default:
		panic("token: no end kind for container " + c.String())
	}
}
