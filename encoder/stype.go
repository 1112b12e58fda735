package encoder

import "github.com/rv32i-asm/rv32i-asm/isa"

// encodeS encodes an S-format instruction: mnemonic rs2, rs1, imm. The
// 12-bit signed immediate is split across the instruction word: bits
// [4:0] land at word bit 7, bits [11:5] at word bit 25.
func encodeS(tmpl isa.EncodingTemplate, ops []string, dict *Dictionary, line int) (uint32, error) {
	if err := requireOperands(ops, 3, line); err != nil {
		return 0, err
	}
	rs2, err := regNum(dict, ops[0], line)
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
	u := maskBits(imm, 12)
	lo := u & 0x1F        // imm[4:0]
	hi := (u >> 5) & 0x7F // imm[11:5]
	word := tmpl.Base() | lo<<7 | (rs1&0x1F)<<15 | (rs2&0x1F)<<20 | hi<<25
	return word, nil
}
