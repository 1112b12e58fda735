package encoder

import "github.com/rv32i-asm/rv32i-asm/isa"

// encodeIArith encodes an I-arith instruction: mnemonic rd, rs1, imm.
// The immediate is a signed 12-bit literal only; I-arith never takes a
// label operand.
func encodeIArith(tmpl isa.EncodingTemplate, ops []string, dict *Dictionary, line int) (uint32, error) {
	if err := requireOperands(ops, 3, line); err != nil {
		return 0, err
	}
	rd, err := regNum(dict, ops[0], line)
	if err != nil {
		return 0, err
	}
	rs1, err := regNum(dict, ops[1], line)
	if err != nil {
		return 0, err
	}
	imm, ok := parseLiteral(ops[2])
	if !ok {
		return 0, newErr(BadImmediate, line)
	}
	if !fitsSigned(imm, 12) {
		return 0, newErr(ImmediateOutOfRange, line)
	}
	word := tmpl.Base() | (rd&0x1F)<<7 | (rs1&0x1F)<<15 | maskBits(imm, 12)<<20
	return word, nil
}

// encodeILoad encodes an I-load instruction in its 3-field surface form:
// mnemonic rd, rs1, imm. Bit layout is identical to encodeIArith; the two
// are kept separate because the ISA table distinguishes them by opcode
// and a collaborator dispatching on Format may want to treat loads
// differently (e.g. alignment diagnostics) without touching arithmetic.
func encodeILoad(tmpl isa.EncodingTemplate, ops []string, dict *Dictionary, line int) (uint32, error) {
	return encodeIArith(tmpl, ops, dict, line)
}
