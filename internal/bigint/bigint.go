// Package bigint wraps math/big for RDN's BigInteger literal (a plain
// integer body followed by a trailing n, e.g. 123456789012345678901n).
package bigint

import (
	"fmt"
	"math/big"
)

// Parse parses the digit body of a BigInteger literal (without the
// trailing n and without a leading +).
func Parse(body string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(body, 10)
	if !ok {
		return nil, fmt.Errorf("bigint: invalid integer literal %q", body)
	}
	return v, nil
}

// Format renders v as the digit body of a BigInteger literal; the
// caller appends the trailing n.
func Format(v *big.Int) string {
	return v.String()
}
