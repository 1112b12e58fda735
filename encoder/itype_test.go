package encoder

import (
	"testing"

	"github.com/rv32i-asm/rv32i-asm/isa"
)

func addiTmpl() isa.EncodingTemplate {
	return isa.EncodingTemplate{Opcode: 0x13, Funct3: 0x0, Funct7: 0x00, Format: isa.IArith}
}

func TestEncodeIArith(t *testing.T) {
	dict, _ := NewDefaultDictionary(64)
	word, err := encodeIArith(addiTmpl(), []string{"x1", "x2", "5"}, dict, 1)
	if err != nil {
		t.Fatal(err)
	}
	want := uint32(0x13) | (1 << 7) | (2 << 15) | (5 << 20)
	if word != want {
		t.Fatalf("got %#010x, want %#010x", word, want)
	}
}

func TestEncodeIArithNegativeImmediate(t *testing.T) {
	dict, _ := NewDefaultDictionary(64)
	word, err := encodeIArith(addiTmpl(), []string{"x1", "x0", "-1"}, dict, 1)
	if err != nil {
		t.Fatal(err)
	}
	// -1 as 12-bit two's complement is 0xFFF, shifted into bits [31:20]
	want := uint32(0x13) | (1 << 7) | (0xFFF << 20)
	if word != want {
		t.Fatalf("got %#010x, want %#010x", word, want)
	}
}

func TestEncodeIArithOutOfRange(t *testing.T) {
	dict, _ := NewDefaultDictionary(64)
	_, err := encodeIArith(addiTmpl(), []string{"x1", "x0", "4096"}, dict, 1)
	assertKind(t, err, ImmediateOutOfRange)
}

func TestEncodeILoadMatchesIArithLayout(t *testing.T) {
	dict, _ := NewDefaultDictionary(64)
	tmpl := isa.EncodingTemplate{Opcode: 0x03, Funct3: 0x2, Format: isa.ILoad}
	word, err := encodeILoad(tmpl, []string{"x5", "x6", "8"}, dict, 1)
	if err != nil {
		t.Fatal(err)
	}
	want := uint32(0x03) | (0x2 << 12) | (5 << 7) | (6 << 15) | (8 << 20)
	if word != want {
		t.Fatalf("got %#010x, want %#010x", word, want)
	}
}
