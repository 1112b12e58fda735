package encoder

import "github.com/rv32i-asm/rv32i-asm/isa"

// encodeU encodes a U-format instruction: mnemonic rd, imm. imm supplies
// the upper 20 bits directly — the surface literal is shifted left 12 and
// masked onto bits [31:12], it is not itself a 20-bit field the assembler
// range-checks.
func encodeU(tmpl isa.EncodingTemplate, ops []string, dict *Dictionary, line int) (uint32, error) {
	if err := requireOperands(ops, 2, line); err != nil {
		return 0, err
	}
	rd, err := regNum(dict, ops[0], line)
	if err != nil {
		return 0, err
	}
	imm, ok := parseLiteral(ops[1])
	if !ok {
		return 0, newErr(BadImmediate, line)
	}
	upper := uint32(imm<<12) & 0xFFFFF000
	word := tmpl.Base() | (rd&0x1F)<<7 | upper
	return word, nil
}
