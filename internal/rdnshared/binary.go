package rdnshared

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
)

// DecodeBinary decodes the body of a binary literal (the bytes between
// the quotes), as either base64 (hex=false, b"...") or hex (hex=true,
// x"...").
func DecodeBinary(body []byte, isHex bool) ([]byte, error) {
	if isHex {
		out := make([]byte, hex.DecodedLen(len(body)))
		n, err := hex.Decode(out, body)
		if err != nil {
			return nil, fmt.Errorf("invalid hex binary literal: %w", err)
		}
		return out[:n], nil
	}
	out, err := base64.StdEncoding.DecodeString(string(body))
	if err != nil {
		return nil, fmt.Errorf("invalid base64 binary literal: %w", err)
	}
	return out, nil
}

// EncodeBinary is the writer-side counterpart of DecodeBinary.
func EncodeBinary(data []byte, isHex bool) []byte {
	if isHex {
		out := make([]byte, hex.EncodedLen(len(data)))
		hex.Encode(out, data)
		return out
	}
	return []byte(base64.StdEncoding.EncodeToString(data))
}
