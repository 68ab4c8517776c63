package tokenizer

// resume continues a token whose scan began in an earlier Read call. Every
// resume* function treats window as starting fresh at index 0: all of the
// bytes consumed before the boundary already live in r.carry.
func (r *Reader) resume(window []byte, isFinal bool) (bool, error) {
	switch r.subState {
	case stateString:
		return r.resumeString(window, isFinal)
	case stateNumber:
		return r.resumeNumber(window, isFinal)
	case stateTemporal:
		return r.resumeTemporal(window, isFinal)
	case stateRegexPattern:
		return r.resumeRegexPattern(window, isFinal)
	case stateRegexFlags:
		return r.resumeRegexFlags(window, isFinal)
	case stateBinaryBody:
		return r.resumeBinaryBody(window, isFinal)
	case stateLineComment:
		return r.resumeLineComment(window, isFinal)
	case stateBlockComment:
		return r.resumeBlockComment(window, isFinal)
	default:
		panic("tokenizer: resume called with no partial token in flight")
	}
}
