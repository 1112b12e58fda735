package encoder

import (
	"errors"
	"strconv"
	"strings"

	"github.com/rv32i-asm/rv32i-asm/symtab"
)

// parseLiteral parses a decimal or 0x-prefixed hexadecimal integer literal.
// It does not consult the label table; callers that accept label operands
// fall back to resolveLabelOrLiteral instead.
func parseLiteral(s string) (int64, bool) {
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	var v uint64
	var err error
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		v, err = strconv.ParseUint(s[2:], 16, 64)
	} else {
		v, err = strconv.ParseUint(s, 10, 64)
	}
	if err != nil || s == "" {
		return 0, false
	}
	n := int64(v)
	if neg {
		n = -n
	}
	return n, true
}

// isIdentifier reports whether s could name a label: non-empty and not a
// literal integer.
func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	_, ok := parseLiteral(s)
	return !ok
}

// resolveLabelOrLiteral resolves a J/B-format operand: either a literal
// integer, or an identifier looked up against the label table. unresolved
// is the non-empty label name when the identifier is valid but not yet
// defined (a forward reference the caller must record a fixup for); err is
// non-nil only for a structurally invalid identifier.
func resolveLabelOrLiteral(op string, labels *symtab.Table[uint16]) (value int64, unresolved string, err error) {
	if v, ok := parseLiteral(op); ok {
		return v, "", nil
	}
	addr, lerr := labels.Get(op)
	if lerr == nil {
		return int64(addr), "", nil
	}
	var symErr *symtab.Error
	if errors.As(lerr, &symErr) && symErr.Kind == symtab.NotFound {
		return 0, op, nil
	}
	return 0, "", errBadImmediate
}

// errBadImmediate is a sentinel translated to BadImmediate by the caller,
// which has the line number needed to build an AssembleError.
var errBadImmediate = errors.New("malformed immediate or label")
