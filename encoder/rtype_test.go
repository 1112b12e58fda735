package encoder

import (
	"testing"

	"github.com/rv32i-asm/rv32i-asm/isa"
)

func addTemplate() isa.EncodingTemplate {
	return isa.EncodingTemplate{Opcode: 0x33, Funct3: 0x0, Funct7: 0x00, Format: isa.R}
}

func TestEncodeR(t *testing.T) {
	dict, err := NewDefaultDictionary(64)
	if err != nil {
		t.Fatal(err)
	}
	word, err := encodeR(addTemplate(), []string{"x1", "x2", "x3"}, dict, 1)
	if err != nil {
		t.Fatal(err)
	}
	// add x1,x2,x3: rd=1<<7=0x80, rs1=2<<15=0x10000, rs2=3<<20=0x300000
	want := uint32(0x33) | 0x80 | 0x10000 | 0x300000
	if word != want {
		t.Fatalf("got %#010x, want %#010x", word, want)
	}
}

func TestEncodeRWrongOperandCount(t *testing.T) {
	dict, _ := NewDefaultDictionary(64)
	_, err := encodeR(addTemplate(), []string{"x1", "x2"}, dict, 1)
	assertKind(t, err, WrongOperandCount)
}

func TestEncodeRUnknownRegister(t *testing.T) {
	dict, _ := NewDefaultDictionary(64)
	_, err := encodeR(addTemplate(), []string{"x1", "x2", "bogus"}, dict, 1)
	assertKind(t, err, UnknownRegister)
}

func assertKind(t *testing.T, err error, kind ErrorKind) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error of kind %s, got nil", kind)
	}
	ae, ok := err.(*AssembleError)
	if !ok {
		t.Fatalf("expected *AssembleError, got %T", err)
	}
	if ae.Kind != kind {
		t.Fatalf("expected kind %s, got %s", kind, ae.Kind)
	}
}
