package encoder

import (
	"github.com/rv32i-asm/rv32i-asm/isa"
	"github.com/rv32i-asm/rv32i-asm/symtab"
)

// encodeB encodes a B-format instruction: mnemonic rs1, rs2, label. The
// target may be a forward-referenced label; when it is, encodeB returns
// the label name as unresolved so the caller can record a fixup and retry
// once every label is known. The offset is relative to the branch's own
// address; it is packed using the canonical RISC-V layout
// (imm[12|10:5|4:1|11] at word bits [31|30:25|11:8|7]), not the
// masked-then-shifted expression that miscomputes bit 10. RISC-V's
// byte-addressed even-offset rule doesn't apply here: in this
// assembler's word-addressing model a branch to the very next
// instruction has offset 1.
func encodeB(tmpl isa.EncodingTemplate, ops []string, pc uint32, dict *Dictionary, labels *symtab.Table[uint16], line int) (word uint32, unresolved string, err error) {
	if err := requireOperands(ops, 3, line); err != nil {
		return 0, "", err
	}
	rs1, err := regNum(dict, ops[0], line)
	if err != nil {
		return 0, "", err
	}
	rs2, err := regNum(dict, ops[1], line)
	if err != nil {
		return 0, "", err
	}
	target, name, rerr := resolveLabelOrLiteral(ops[2], labels)
	if rerr != nil {
		return 0, "", newErr(BadImmediate, line)
	}
	if name != "" {
		return 0, name, nil
	}
	offset := target - int64(pc)
	if !fitsSigned(offset, 13) {
		return 0, "", newErr(ImmediateOutOfRange, line)
	}
	u := maskBits(offset, 13)
	b11 := (u >> 11) & 0x1
	b4_1 := (u >> 1) & 0xF
	b10_5 := (u >> 5) & 0x3F
	b12 := (u >> 12) & 0x1
	word = tmpl.Base() | b11<<7 | b4_1<<8 | (rs1&0x1F)<<15 | (rs2&0x1F)<<20 | b10_5<<25 | b12<<31
	return word, "", nil
}
