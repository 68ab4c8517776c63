package tokenizer

import "github.com/rdnfmt/rdn/token"

// startLineComment handles a `//` comment. pos is the index of the first
// '/'. Returns (tokenReady, skippedInline, resumePos, err): when
// skippedInline is true the comment was fully consumed within window
// under CommentHandling Skip and the caller should keep dispatching from
// resumePos in the same window; otherwise the (tokenReady, err) pair is
// the call's final result.
func (r *Reader) startLineComment(window []byte, pos int, isFinal bool) (bool, bool, int, error) {
	if r.opts.CommentHandling == Disallow {
		return false, false, 0, newByteError(InvalidByte, r.pos(), window[pos], "comments are not allowed")
	}
	r.commentEmit = r.opts.CommentHandling == Allow
	bodyStart := pos + 2
	end, complete := scanLineCommentBody(window, bodyStart)
	if !complete {
		if isFinal {
			end = len(window)
		} else {
			r.advance(2 + (end - bodyStart))
			r.beginCarry(window[bodyStart:end])
			r.subState = stateLineComment
			return false, false, 0, ErrNeedMoreData
		}
	}
	r.advance(2 + (end - bodyStart))
	ready := r.finishComment(window, bodyStart, end)
	return ready, !ready, end, nil
}

func (r *Reader) startBlockComment(window []byte, pos int, isFinal bool) (bool, bool, int, error) {
	if r.opts.CommentHandling == Disallow {
		return false, false, 0, newByteError(InvalidByte, r.pos(), window[pos], "comments are not allowed")
	}
	r.commentEmit = r.opts.CommentHandling == Allow
	r.prevStar = false
	bodyStart := pos + 2
	end, complete := r.scanBlockCommentBody(window, bodyStart)
	if !complete {
		if isFinal {
			return false, false, 0, newError(UnexpectedEndOfData, r.pos(), "unexpected end of data: unterminated block comment")
		}
		r.advance(2 + (end - bodyStart))
		r.beginCarry(window[bodyStart:end])
		r.subState = stateBlockComment
		return false, false, 0, ErrNeedMoreData
	}
	r.advance(2 + (end - bodyStart))
	ready := r.finishComment(window, bodyStart, end-2)
	return ready, !ready, end, nil
}

// finishComment sets up the token (or discards it, per commentEmit) now
// that the full body [bodyStart:bodyEnd) is known; it does not touch
// position tracking, which callers have already advanced.
func (r *Reader) finishComment(window []byte, bodyStart, bodyEnd int) bool {
	if !r.commentEmit {
		r.resetValue()
		return false
	}
	value := window[bodyStart:bodyEnd]
	r.finishValue(value, len(value))
	r.kind = token.Comment
	r.prevKind = r.kind
	return true
}

func (r *Reader) resumeLineComment(window []byte, isFinal bool) (bool, error) {
	end, complete := scanLineCommentBody(window, 0)
	if !complete {
		if !isFinal {
			r.advance(end)
			r.beginCarry(window[:end])
			return false, ErrNeedMoreData
		}
		end = len(window)
	}
	r.advance(end)
	ready := r.finishComment(window, 0, end)
	r.subState = stateNone
	if !ready {
		return r.dispatch(window, end, isFinal)
	}
	return true, nil
}

func (r *Reader) resumeBlockComment(window []byte, isFinal bool) (bool, error) {
	end, complete := r.scanBlockCommentBody(window, 0)
	if !complete {
		if isFinal {
			r.subState = stateNone
			return false, newError(UnexpectedEndOfData, r.pos(), "unexpected end of data: unterminated block comment")
		}
		r.advance(end)
		r.beginCarry(window[:end])
		return false, ErrNeedMoreData
	}
	r.advance(end)
	ready := r.finishComment(window, 0, end-2)
	r.subState = stateNone
	if !ready {
		return r.dispatch(window, end, isFinal)
	}
	return true, nil
}

// scanLineCommentBody finds the terminating '\n', or end of window if
// none is present (a line comment legitimately ends at EOF).
func scanLineCommentBody(window []byte, pos int) (end int, complete bool) {
	i := pos
	for i < len(window) {
		if window[i] == '\n' {
			return i, true
		}
		i++
	}
	return i, false
}

// scanBlockCommentBody finds the terminating "*/", returning the index
// just past it.
func (r *Reader) scanBlockCommentBody(window []byte, pos int) (end int, complete bool) {
	i := pos
	for i < len(window) {
		b := window[i]
		if r.prevStar && b == '/' {
			return i + 1, true
		}
		r.prevStar = b == '*'
		i++
	}
	return i, false
}
