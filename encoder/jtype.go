package encoder

import (
	"github.com/rv32i-asm/rv32i-asm/isa"
	"github.com/rv32i-asm/rv32i-asm/symtab"
)

// encodeJ encodes a J-format instruction: mnemonic rd, target. Like
// encodeB, a forward-referenced label is returned by name as unresolved
// for the caller to fix up later. The offset is relative to the jump's own
// address and is packed in the canonical RISC-V layout
// (imm[20|10:1|11|19:12] at word bits [31|30:21|20|19:12]). RISC-V's
// byte-addressed even-offset rule doesn't apply in this assembler's
// word-addressing model, where a jump to the very next instruction has
// offset 1.
func encodeJ(tmpl isa.EncodingTemplate, ops []string, pc uint32, dict *Dictionary, labels *symtab.Table[uint16], line int) (word uint32, unresolved string, err error) {
	if err := requireOperands(ops, 2, line); err != nil {
		return 0, "", err
	}
	rd, err := regNum(dict, ops[0], line)
	if err != nil {
		return 0, "", err
	}
	target, name, rerr := resolveLabelOrLiteral(ops[1], labels)
	if rerr != nil {
		return 0, "", newErr(BadImmediate, line)
	}
	if name != "" {
		return 0, name, nil
	}
	offset := target - int64(pc)
	if !fitsSigned(offset, 21) {
		return 0, "", newErr(ImmediateOutOfRange, line)
	}
	u := maskBits(offset, 21)
	b19_12 := (u >> 12) & 0xFF
	b11 := (u >> 11) & 0x1
	b10_1 := (u >> 1) & 0x3FF
	b20 := (u >> 20) & 0x1
	word = tmpl.Base() | (rd&0x1F)<<7 | b19_12<<12 | b11<<20 | b10_1<<21 | b20<<31
	return word, "", nil
}
