// Package isa describes the shape of the RV32I instruction dictionary: the
// encoding formats, the per-mnemonic template lists and the register ABI
// names the encoder consults. Populating the default RV32I tables is, per
// the assembler's external dictionary-load interface, a collaborator
// concern; this package supplies the concrete RV32I set so the assembler
// is runnable on its own, but any caller may build its own dictionary of
// the same shape and feed it to the encoder instead.
//
// nop and li are not entries here: they are syntactic sugar the encoder
// rewrites into primitive mnemonics (addi/lui) before dictionary lookup,
// since li's expansion depends on the size of its immediate operand rather
// than on a fixed template list.
package isa

// Format identifies which bit-layout routine an EncodingTemplate drives.
type Format int

const (
	R      Format = iota // mnemonic rd, rs1, rs2
	IArith               // mnemonic rd, rs1, imm (opcode != 0x03)
	ILoad                // mnemonic rd, rs1, imm (opcode == 0x03, 3-field surface form)
	S                    // mnemonic rs2, rs1, imm
	B                    // mnemonic rs1, rs2, label
	U                    // mnemonic rd, imm
	J                    // mnemonic rd, target
	Meta                 // assembler directive, e.g. org
)

func (f Format) String() string {
	switch f {
	case R:
		return "R"
	case IArith:
		return "I_arith"
	case ILoad:
		return "I_load"
	case S:
		return "S"
	case B:
		return "B"
	case U:
		return "U"
	case J:
		return "J"
	case Meta:
		return "META"
	default:
		return "UNKNOWN"
	}
}

// Directive identifies a META template's side effect.
type Directive int

const (
	// DirectiveNone marks a non-META template (Directive is unused).
	DirectiveNone Directive = iota
	// DirectiveOrg resets the current address to its operand.
	DirectiveOrg
)

// EncodingTemplate is the immutable opcode/funct3/funct7/format tuple
// attached to a mnemonic. A META template carries its directive id in
// Directive rather than Opcode.
type EncodingTemplate struct {
	Opcode    uint32
	Funct3    uint32
	Funct7    uint32
	Format    Format
	Directive Directive
}

// Base returns the bits every encoding of this template contributes before
// operand fields are OR'd in: opcode | (funct3<<12) | (funct7<<25).
func (t EncodingTemplate) Base() uint32 {
	return t.Opcode | (t.Funct3 << 12) | (t.Funct7 << 25)
}

// DictEntry is one (key, value) pair as supplied across the dictionary-load
// interface: an ordered sequence the caller inserts in order.
type DictEntry[V any] struct {
	Key   string
	Value V
}

// MnemonicEntry is the ordered list of encoding templates a mnemonic
// expands to. A length of 1 is a plain instruction; a length greater than
// 1 is a pseudo-instruction expanding to multiple machine words.
type MnemonicEntry = []EncodingTemplate

// RegisterEntry is a resolved register number in 0..31.
type RegisterEntry = uint32

func t(opcode, funct3, funct7 uint32, format Format) EncodingTemplate {
	return EncodingTemplate{Opcode: opcode, Funct3: funct3, Funct7: funct7, Format: format}
}

// DefaultRegisters returns the standard RV32I ABI register name -> number
// mapping (x0..x31 plus their ABI aliases), in insertion order, suitable
// for feeding straight into the dictionary-load interface.
func DefaultRegisters() []DictEntry[RegisterEntry] {
	entries := make([]DictEntry[RegisterEntry], 0, 64)
	for i := uint32(0); i < 32; i++ {
		entries = append(entries, DictEntry[RegisterEntry]{Key: xName(i), Value: i})
	}
	abi := []string{
		"zero", "ra", "sp", "gp", "tp",
		"t0", "t1", "t2",
		"s0", "s1",
		"a0", "a1", "a2", "a3", "a4", "a5", "a6", "a7",
		"s2", "s3", "s4", "s5", "s6", "s7", "s8", "s9", "s10", "s11",
		"t3", "t4", "t5", "t6",
	}
	for i, name := range abi {
		entries = append(entries, DictEntry[RegisterEntry]{Key: name, Value: uint32(i)})
	}
	return entries
}

func xName(n uint32) string {
	digits := []byte{'x'}
	if n >= 10 {
		digits = append(digits, byte('0'+n/10))
	}
	digits = append(digits, byte('0'+n%10))
	return string(digits)
}

// DefaultMnemonics returns the base RV32I mnemonic dictionary, in
// insertion order, suitable for feeding straight into the dictionary-load
// interface. It covers the R/I/S/B/U/J families plus the org meta-directive;
// the nop and li pseudo-instructions are not entries here (see
// encoder.Assembler, which expands them before dictionary lookup).
func DefaultMnemonics() []DictEntry[MnemonicEntry] {
	const (
		opR     = 0x33
		opIArith = 0x13
		opILoad = 0x03
		opS     = 0x23
		opB     = 0x63
		opLUI   = 0x37
		opAUIPC = 0x17
		opJAL   = 0x6F
		opJALR  = 0x67
	)
	entries := []DictEntry[MnemonicEntry]{
		// R-type
		{Key: "add", Value: MnemonicEntry{t(opR, 0x0, 0x00, R)}},
		{Key: "sub", Value: MnemonicEntry{t(opR, 0x0, 0x20, R)}},
		{Key: "sll", Value: MnemonicEntry{t(opR, 0x1, 0x00, R)}},
		{Key: "slt", Value: MnemonicEntry{t(opR, 0x2, 0x00, R)}},
		{Key: "sltu", Value: MnemonicEntry{t(opR, 0x3, 0x00, R)}},
		{Key: "xor", Value: MnemonicEntry{t(opR, 0x4, 0x00, R)}},
		{Key: "srl", Value: MnemonicEntry{t(opR, 0x5, 0x00, R)}},
		{Key: "sra", Value: MnemonicEntry{t(opR, 0x5, 0x20, R)}},
		{Key: "or", Value: MnemonicEntry{t(opR, 0x6, 0x00, R)}},
		{Key: "and", Value: MnemonicEntry{t(opR, 0x7, 0x00, R)}},

		// I-arith
		{Key: "addi", Value: MnemonicEntry{t(opIArith, 0x0, 0x00, IArith)}},
		{Key: "slti", Value: MnemonicEntry{t(opIArith, 0x2, 0x00, IArith)}},
		{Key: "sltiu", Value: MnemonicEntry{t(opIArith, 0x3, 0x00, IArith)}},
		{Key: "xori", Value: MnemonicEntry{t(opIArith, 0x4, 0x00, IArith)}},
		{Key: "ori", Value: MnemonicEntry{t(opIArith, 0x6, 0x00, IArith)}},
		{Key: "andi", Value: MnemonicEntry{t(opIArith, 0x7, 0x00, IArith)}},
		{Key: "slli", Value: MnemonicEntry{t(opIArith, 0x1, 0x00, IArith)}},
		{Key: "srli", Value: MnemonicEntry{t(opIArith, 0x5, 0x00, IArith)}},
		{Key: "srai", Value: MnemonicEntry{t(opIArith, 0x5, 0x20, IArith)}},
		{Key: "jalr", Value: MnemonicEntry{t(opJALR, 0x0, 0x00, IArith)}},

		// I-load
		{Key: "lb", Value: MnemonicEntry{t(opILoad, 0x0, 0x00, ILoad)}},
		{Key: "lh", Value: MnemonicEntry{t(opILoad, 0x1, 0x00, ILoad)}},
		{Key: "lw", Value: MnemonicEntry{t(opILoad, 0x2, 0x00, ILoad)}},
		{Key: "lbu", Value: MnemonicEntry{t(opILoad, 0x4, 0x00, ILoad)}},
		{Key: "lhu", Value: MnemonicEntry{t(opILoad, 0x5, 0x00, ILoad)}},

		// S-type
		{Key: "sb", Value: MnemonicEntry{t(opS, 0x0, 0x00, S)}},
		{Key: "sh", Value: MnemonicEntry{t(opS, 0x1, 0x00, S)}},
		{Key: "sw", Value: MnemonicEntry{t(opS, 0x2, 0x00, S)}},

		// B-type
		{Key: "beq", Value: MnemonicEntry{t(opB, 0x0, 0x00, B)}},
		{Key: "bne", Value: MnemonicEntry{t(opB, 0x1, 0x00, B)}},
		{Key: "blt", Value: MnemonicEntry{t(opB, 0x4, 0x00, B)}},
		{Key: "bge", Value: MnemonicEntry{t(opB, 0x5, 0x00, B)}},
		{Key: "bltu", Value: MnemonicEntry{t(opB, 0x6, 0x00, B)}},
		{Key: "bgeu", Value: MnemonicEntry{t(opB, 0x7, 0x00, B)}},

		// U-type
		{Key: "lui", Value: MnemonicEntry{t(opLUI, 0, 0, U)}},
		{Key: "auipc", Value: MnemonicEntry{t(opAUIPC, 0, 0, U)}},

		// J-type
		{Key: "jal", Value: MnemonicEntry{t(opJAL, 0, 0, J)}},

		// Meta-directive
		{Key: "org", Value: MnemonicEntry{{Format: Meta, Directive: DirectiveOrg}}},
	}
	return entries
}
