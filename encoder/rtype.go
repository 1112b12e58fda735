package encoder

import "github.com/rv32i-asm/rv32i-asm/isa"

// encodeR encodes an R-format instruction: mnemonic rd, rs1, rs2.
// rd<<7 | rs1<<15 | rs2<<20, OR'd onto the template's base.
func encodeR(tmpl isa.EncodingTemplate, ops []string, dict *Dictionary, line int) (uint32, error) {
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
	rs2, err := regNum(dict, ops[2], line)
	if err != nil {
		return 0, err
	}
	word := tmpl.Base() | (rd&0x1F)<<7 | (rs1&0x1F)<<15 | (rs2&0x1F)<<20
	return word, nil
}
