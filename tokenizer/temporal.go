package tokenizer

import (
	"github.com/rdnfmt/rdn/internal/rdnshared"
	"github.com/rdnfmt/rdn/token"
)

// startTemporal scans the body of an `@`-prefixed literal. pos points just
// past the '@', which is counted with the body when position tracking
// advances. None of the four temporal bodies (duration, time-only,
// date-time, unix timestamp) contain a delimiter byte, so the extent is
// found the same way as a number: scan to the next delimiter or EOF, then
// classify and parse the whole body at once.
func (r *Reader) startTemporal(window []byte, pos int, isFinal bool) (bool, error) {
	end, hit := scanNumberExtent(window, pos)
	if !hit {
		if isFinal {
			end = len(window)
		} else {
			r.advance(1 + (end - pos))
			r.beginCarry(window[pos:end])
			r.subState = stateTemporal
			return false, ErrNeedMoreData
		}
	}
	body := window[pos:end]
	kind, verr := classifyAndValidateTemporal(body)
	if verr != nil {
		verr.Pos = r.pos()
		return false, verr
	}
	r.advance(1 + (end - pos))
	r.finishValue(body, len(body))
	r.kind = kind
	r.prevKind = r.kind
	return true, nil
}

func (r *Reader) resumeTemporal(window []byte, isFinal bool) (bool, error) {
	end, hit := scanNumberExtent(window, 0)
	if !hit {
		if isFinal {
			end = len(window)
		} else {
			r.advance(end)
			r.beginCarry(window[:end])
			return false, ErrNeedMoreData
		}
	}
	r.advance(end)
	body := append(append([]byte(nil), r.carry...), window[:end]...)
	kind, verr := classifyAndValidateTemporal(body)
	r.subState = stateNone
	if verr != nil {
		verr.Pos = r.pos()
		return false, verr
	}
	r.finishValue(window[:end], end)
	r.kind = kind
	r.prevKind = r.kind
	return true, nil
}

func classifyAndValidateTemporal(body []byte) (token.Kind, *Error) {
	s := string(body)
	switch {
	case len(s) > 0 && s[0] == 'P':
		if _, err := rdnshared.ParseISODuration(s); err != nil {
			return 0, newError(InvalidDuration, Pos{}, err.Error())
		}
		return token.RdnDuration, nil
	case len(s) >= 3 && s[2] == ':':
		if _, err := rdnshared.ParseISOTimeOnly(s); err != nil {
			return 0, newError(InvalidDateTime, Pos{}, err.Error())
		}
		return token.RdnTimeOnly, nil
	case len(s) >= 5 && s[4] == '-':
		if _, err := rdnshared.ParseISODateTime(s); err != nil {
			return 0, newError(InvalidDateTime, Pos{}, err.Error())
		}
		return token.RdnDateTime, nil
	case isAllDigits(s):
		if len(s) == 4 {
			if _, err := rdnshared.ParseISODateTime(s); err != nil {
				return 0, newError(InvalidDateTime, Pos{}, err.Error())
			}
			return token.RdnDateTime, nil
		}
		if _, err := rdnshared.ParseUnixTimestamp(s); err != nil {
			return 0, newError(InvalidDateTime, Pos{}, err.Error())
		}
		return token.RdnDateTime, nil
	default:
		return 0, newError(InvalidDateTime, Pos{}, "unrecognized temporal literal")
	}
}

func isAllDigits(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !rdnshared.IsDigit(s[i]) {
			return false
		}
	}
	return true
}
