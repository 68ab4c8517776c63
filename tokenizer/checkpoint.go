package tokenizer

// Checkpoint is a portable snapshot of a Reader's position in the
// grammar: container stack, bit-stack classification, and arrow state.
// It does not capture any token currently mid-scan (subState != stateNone)
// - callers that need to persist state across a process boundary should
// only snapshot between Read calls that returned a complete token, never
// after a NeedMoreData.
type Checkpoint struct {
	Containers []frame
	Bits       BitStack
	Arrows     arrowState
	Line, Col  int
	RootValues int
}

// Save captures the current grammar position. It panics if called while a
// token is mid-scan, since that state cannot be represented portably.
func (r *Reader) Save() Checkpoint {
	if r.subState != stateNone {
		panic("tokenizer: Save called with a partial token in flight")
	}
	return Checkpoint{
		Containers: append([]frame(nil), r.containers...),
		Bits:       r.bits.Clone(),
		Arrows:     r.arrows.clone(),
		Line:       r.line,
		Col:        r.col,
		RootValues: r.rootValuesSeen,
	}
}

// Restore puts the Reader back into the state a prior Save captured. Any
// value/span state is cleared, matching the freshly-dispatched state Save
// could only have been called from.
func (r *Reader) Restore(c Checkpoint) {
	r.containers = append([]frame(nil), c.Containers...)
	r.bits = c.Bits.Clone()
	r.arrows = c.Arrows.clone()
	r.line, r.col = c.Line, c.Col
	r.rootValuesSeen = c.RootValues
	r.subState = stateNone
	r.resetValue()
	r.done = false
}
