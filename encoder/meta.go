package encoder

// parseOrg parses an org directive's single operand: the absolute
// address to resume emission at. A meta directive produces no Node; the
// caller applies the returned address to its current-address cursor.
func parseOrg(ops []string, line int) (uint16, error) {
	if err := requireOperands(ops, 1, line); err != nil {
		return 0, err
	}
	v, ok := parseLiteral(ops[0])
	if !ok || v < 0 || v > 0xFFFF {
		return 0, newErr(BadImmediate, line)
	}
	return uint16(v), nil
}
