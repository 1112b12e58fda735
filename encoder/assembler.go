package encoder

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rv32i-asm/rv32i-asm/isa"
	"github.com/rv32i-asm/rv32i-asm/lexer"
	"github.com/rv32i-asm/rv32i-asm/symtab"
)

// addiTemplate and luiTemplate are the fixed encoding templates the nop and
// li pseudo-instructions expand to: nop and the single-word form of li are a
// plain addi, and the two-word form of li is a lui followed by an addi.
var (
	addiTemplate = isa.EncodingTemplate{Opcode: 0x13, Format: isa.IArith}
	luiTemplate  = isa.EncodingTemplate{Opcode: 0x37, Format: isa.U}
)

// fixup records a B/J-format line whose target label wasn't yet defined
// when it was first encoded, so it can be re-encoded once every label in
// the source has been seen.
type fixup struct {
	index int
	pc    uint32
	tmpl  isa.EncodingTemplate
	ops   []string
	line  int
}

// Assembler runs the translator over a sequence of source lines: it
// dispatches each mnemonic to its encoding routine, expands the nop and
// li pseudo-instructions, and tracks label addresses and address-advance
// in a single walk. Forward label references are recorded as fixups and
// resolved in a second pass over those fixups alone, which is observably
// equivalent to a full two-pass assembly (addresses never depend on a
// label defined later; only branch and jump immediates do).
type Assembler struct {
	Dict           *Dictionary
	Labels         *symtab.Table[uint16]
	WordAddressing bool

	addr    uint32
	pending []Node
	bFixups []fixup
	jFixups []fixup
}

// NewAssembler builds an assembler using dict for mnemonic/register
// lookup and labelBuckets buckets for its label table. wordAddressing
// selects whether the address cursor advances by 1 (word addressing) or
// 4 (byte addressing) per instruction. origin seeds the initial address,
// overridable mid-source by an org directive.
func NewAssembler(dict *Dictionary, labelBuckets uint32, wordAddressing bool, origin uint16) *Assembler {
	return &Assembler{
		Dict:           dict,
		Labels:         symtab.New[uint16](labelBuckets),
		WordAddressing: wordAddressing,
		addr:           uint32(origin),
	}
}

// Assemble runs the full translation over lines and returns a LineBuffer
// whose node queue holds the resulting machine words in source order. It
// stops at the first error, reporting the 1-based source line it
// occurred on.
func (a *Assembler) Assemble(lines []string) (*LineBuffer, error) {
	buf := NewLineBuffer()
	for _, l := range lines {
		buf.PushLine(l)
	}
	lineNo := 0
	for {
		line, ok := buf.PopLine()
		if !ok {
			break
		}
		lineNo++
		if err := a.processLine(line, lineNo); err != nil {
			return nil, err
		}
	}
	if err := a.resolveFixups(); err != nil {
		return nil, err
	}
	for _, n := range a.pending {
		buf.PushNode(n)
	}
	return buf, nil
}

func (a *Assembler) processLine(line string, lineNo int) error {
	fields := lexer.Lex(line)
	if len(fields) == 0 {
		return nil
	}
	if name, ok := lexer.IsLabel(fields); ok {
		if err := a.Labels.Insert(name, uint16(a.addr)); err != nil {
			return toAssembleErr(err, lineNo)
		}
		fields = fields[1:]
		if len(fields) == 0 {
			return nil
		}
	}

	mnemonic := strings.ToLower(fields[0])
	ops := fields[1:]

	switch mnemonic {
	case "nop":
		if err := requireOperands(ops, 0, lineNo); err != nil {
			return err
		}
		return a.emit(addiTemplate, []string{"x0", "x0", "0"}, lineNo)
	case "li":
		return a.emitLI(ops, lineNo)
	}

	entries, err := a.Dict.Mnemonics.Get(mnemonic)
	if err != nil {
		return newErr(UnknownMnemonic, lineNo)
	}
	for _, tmpl := range entries {
		if err := a.emit(tmpl, ops, lineNo); err != nil {
			return err
		}
	}
	return nil
}

// emitLI expands li rd, imm into a single addi when the literal fits in
// 12 signed bits, or a lui+addi pair otherwise. The pair is built so the
// addi's sign extension of its low 12 bits recombines exactly to imm:
// when those low bits would be negative, the upper half is bumped by one
// to compensate.
func (a *Assembler) emitLI(ops []string, lineNo int) error {
	if err := requireOperands(ops, 2, lineNo); err != nil {
		return err
	}
	rd := ops[0]
	imm, ok := parseLiteral(ops[1])
	if !ok {
		return newErr(BadImmediate, lineNo)
	}
	if fitsSigned(imm, 12) {
		return a.emit(addiTemplate, []string{rd, "x0", ops[1]}, lineNo)
	}
	upper := (imm >> 12) & 0xFFFFF
	lower := imm & 0xFFF
	if lower&0x800 != 0 {
		upper++
		lower -= 0x1000
	}
	if err := a.emit(luiTemplate, []string{rd, fmt.Sprint(upper)}, lineNo); err != nil {
		return err
	}
	return a.emit(addiTemplate, []string{rd, rd, fmt.Sprint(lower)}, lineNo)
}

func (a *Assembler) emit(tmpl isa.EncodingTemplate, ops []string, lineNo int) error {
	switch tmpl.Format {
	case isa.Meta:
		return a.emitMeta(tmpl, ops, lineNo)
	case isa.R:
		word, err := encodeR(tmpl, ops, a.Dict, lineNo)
		if err != nil {
			return err
		}
		a.pushWord(word)
		return nil
	case isa.IArith:
		word, err := encodeIArith(tmpl, ops, a.Dict, lineNo)
		if err != nil {
			return err
		}
		a.pushWord(word)
		return nil
	case isa.ILoad:
		word, err := encodeILoad(tmpl, ops, a.Dict, lineNo)
		if err != nil {
			return err
		}
		a.pushWord(word)
		return nil
	case isa.S:
		word, err := encodeS(tmpl, ops, a.Dict, lineNo)
		if err != nil {
			return err
		}
		a.pushWord(word)
		return nil
	case isa.U:
		word, err := encodeU(tmpl, ops, a.Dict, lineNo)
		if err != nil {
			return err
		}
		a.pushWord(word)
		return nil
	case isa.B:
		word, name, err := encodeB(tmpl, ops, a.addr, a.Dict, a.Labels, lineNo)
		if err != nil {
			return err
		}
		if name != "" {
			a.deferFixup(&a.bFixups, tmpl, ops, lineNo)
			return nil
		}
		a.pushWord(word)
		return nil
	case isa.J:
		word, name, err := encodeJ(tmpl, ops, a.addr, a.Dict, a.Labels, lineNo)
		if err != nil {
			return err
		}
		if name != "" {
			a.deferFixup(&a.jFixups, tmpl, ops, lineNo)
			return nil
		}
		a.pushWord(word)
		return nil
	default:
		return newErr(UnknownMnemonic, lineNo)
	}
}

func (a *Assembler) emitMeta(tmpl isa.EncodingTemplate, ops []string, lineNo int) error {
	switch tmpl.Directive {
	case isa.DirectiveOrg:
		addr, err := parseOrg(ops, lineNo)
		if err != nil {
			return err
		}
		a.addr = uint32(addr)
		return nil
	default:
		return newErr(UnknownMnemonic, lineNo)
	}
}

func (a *Assembler) deferFixup(list *[]fixup, tmpl isa.EncodingTemplate, ops []string, lineNo int) {
	idx := len(a.pending)
	a.pending = append(a.pending, Node{Word: 0, Address: uint16(a.addr)})
	*list = append(*list, fixup{index: idx, pc: a.addr, tmpl: tmpl, ops: ops, line: lineNo})
	a.advance()
}

func (a *Assembler) pushWord(word uint32) {
	a.pending = append(a.pending, Node{Word: word, Address: uint16(a.addr)})
	a.advance()
}

func (a *Assembler) advance() {
	if a.WordAddressing {
		a.addr++
	} else {
		a.addr += 4
	}
}

func (a *Assembler) resolveFixups() error {
	for _, f := range a.bFixups {
		word, name, err := encodeB(f.tmpl, f.ops, f.pc, a.Dict, a.Labels, f.line)
		if err != nil {
			return err
		}
		if name != "" {
			return newErr(UnresolvedLabel, f.line)
		}
		a.pending[f.index].Word = word
	}
	for _, f := range a.jFixups {
		word, name, err := encodeJ(f.tmpl, f.ops, f.pc, a.Dict, a.Labels, f.line)
		if err != nil {
			return err
		}
		if name != "" {
			return newErr(UnresolvedLabel, f.line)
		}
		a.pending[f.index].Word = word
	}
	return nil
}

func toAssembleErr(err error, line int) error {
	var symErr *symtab.Error
	if errors.As(err, &symErr) {
		switch symErr.Kind {
		case symtab.InvalidKey:
			return newErr(InvalidKey, line)
		case symtab.KeyTooLong:
			return newErr(KeyTooLong, line)
		}
	}
	return err
}
