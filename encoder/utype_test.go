package encoder

import (
	"testing"

	"github.com/rv32i-asm/rv32i-asm/isa"
)

func luiTmpl() isa.EncodingTemplate {
	return isa.EncodingTemplate{Opcode: 0x37, Format: isa.U}
}

func TestEncodeU(t *testing.T) {
	dict, _ := NewDefaultDictionary(64)
	word, err := encodeU(luiTmpl(), []string{"x1", "0xABCDE"}, dict, 1)
	if err != nil {
		t.Fatal(err)
	}
	if word != 0xABCDE0B7 {
		t.Fatalf("got %#010x, want 0xABCDE0B7", word)
	}
}

func TestEncodeUWrongOperandCount(t *testing.T) {
	dict, _ := NewDefaultDictionary(64)
	_, err := encodeU(luiTmpl(), []string{"x1"}, dict, 1)
	assertKind(t, err, WrongOperandCount)
}
