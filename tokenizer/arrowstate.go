package tokenizer

// arrowState tracks, per map depth, whether the next value-position token
// is a key (the arrow for this item has not yet been consumed) or a value
// (the arrow has been consumed). It uses the same fast-path-plus-spill
// shape as BitStack since it is indexed the same way, by depth.
//
// Transitions: opening a map, and completing a value inside it (a
// container value when it closes), arms the bit (next item is a key);
// completing a key disarms it, after which `=>` is consumed before the
// value is read.
type arrowState struct {
	fast  uint64
	spill []bool
}

func (a *arrowState) expectKey(depth int) bool {
	if depth < 64 {
		return a.fast&(uint64(1)<<uint(depth)) != 0
	}
	idx := depth - 64
	if idx >= len(a.spill) {
		return false
	}
	return a.spill[idx]
}

func (a *arrowState) arm(depth int) {
	a.set(depth, true)
}

func (a *arrowState) disarm(depth int) {
	a.set(depth, false)
}

func (a *arrowState) set(depth int, value bool) {
	if depth < 64 {
		if value {
			a.fast |= uint64(1) << uint(depth)
		} else {
			a.fast &^= uint64(1) << uint(depth)
		}
		return
	}
	idx := depth - 64
	for len(a.spill) <= idx {
		a.spill = append(a.spill, false)
	}
	a.spill[idx] = value
}

func (a *arrowState) clone() arrowState {
	c := arrowState{fast: a.fast}
	if len(a.spill) > 0 {
		c.spill = append([]bool(nil), a.spill...)
	}
	return c
}
