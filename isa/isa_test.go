package isa_test

import (
	"testing"

	"github.com/rv32i-asm/rv32i-asm/isa"
)

func TestDefaultRegistersCoversX0ToX31(t *testing.T) {
	entries := isa.DefaultRegisters()
	seen := make(map[string]isa.RegisterEntry)
	for _, e := range entries {
		seen[e.Key] = e.Value
	}
	for i := uint32(0); i < 32; i++ {
		name := xRegName(i)
		v, ok := seen[name]
		if !ok {
			t.Fatalf("missing register %s", name)
		}
		if v != i {
			t.Errorf("%s: got %d, want %d", name, v, i)
		}
	}
	if seen["sp"] != 2 || seen["ra"] != 1 || seen["zero"] != 0 {
		t.Errorf("ABI aliases not mapped correctly: sp=%d ra=%d zero=%d", seen["sp"], seen["ra"], seen["zero"])
	}
}

func TestDefaultMnemonicsAddEncoding(t *testing.T) {
	for _, e := range isa.DefaultMnemonics() {
		if e.Key != "add" {
			continue
		}
		if len(e.Value) != 1 {
			t.Fatalf("add: expected single template, got %d", len(e.Value))
		}
		tmpl := e.Value[0]
		if tmpl.Format != isa.R {
			t.Errorf("add: expected R format, got %v", tmpl.Format)
		}
		if tmpl.Base() != 0x33 {
			t.Errorf("add: base = %#x, want 0x33", tmpl.Base())
		}
		return
	}
	t.Fatal("add mnemonic not found")
}

func TestOrgIsMeta(t *testing.T) {
	for _, e := range isa.DefaultMnemonics() {
		if e.Key != "org" {
			continue
		}
		if len(e.Value) != 1 || e.Value[0].Format != isa.Meta {
			t.Fatalf("org: expected single META template, got %+v", e.Value)
		}
		if e.Value[0].Directive != isa.DirectiveOrg {
			t.Errorf("org: expected DirectiveOrg, got %v", e.Value[0].Directive)
		}
		return
	}
	t.Fatal("org mnemonic not found")
}

func xRegName(n uint32) string {
	if n >= 10 {
		return string([]byte{'x', byte('0' + n/10), byte('0' + n%10)})
	}
	return string([]byte{'x', byte('0' + n)})
}
