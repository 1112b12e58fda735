package encoder

// regNum resolves a register operand to its number. Any failure — the name
// isn't alphanumeric, is too long, or simply isn't in the register
// dictionary — surfaces as UnknownRegister; the core doesn't distinguish
// those causes in its error surface.
func regNum(dict *Dictionary, name string, line int) (uint32, error) {
	n, err := dict.Registers.Get(name)
	if err != nil {
		return 0, newErr(UnknownRegister, line)
	}
	return n, nil
}

// requireOperands fails with WrongOperandCount unless ops has exactly want
// entries.
func requireOperands(ops []string, want int, line int) error {
	if len(ops) != want {
		return newErr(WrongOperandCount, line)
	}
	return nil
}

func fitsSigned(v int64, bits uint) bool {
	lo := -(int64(1) << (bits - 1))
	hi := (int64(1) << (bits - 1)) - 1
	return v >= lo && v <= hi
}

func maskBits(v int64, bits uint) uint32 {
	return uint32(v) & ((uint32(1) << bits) - 1)
}
