package encoder

import (
	"github.com/rv32i-asm/rv32i-asm/isa"
	"github.com/rv32i-asm/rv32i-asm/symtab"
)

// Dictionary holds the two read-only-after-load tables the encoder
// consults while dispatching: mnemonic -> template list, and register name
// -> register number. It is built once via the dictionary-load interface
// (two ordered sequences of key/value pairs) and never mutated afterward.
type Dictionary struct {
	Mnemonics *symtab.Table[isa.MnemonicEntry]
	Registers *symtab.Table[isa.RegisterEntry]
}

// NewDictionary constructs an empty dictionary with the given bucket
// counts for its mnemonic and register tables.
func NewDictionary(mnemonicBuckets, registerBuckets uint32) *Dictionary {
	return &Dictionary{
		Mnemonics: symtab.New[isa.MnemonicEntry](mnemonicBuckets),
		Registers: symtab.New[isa.RegisterEntry](registerBuckets),
	}
}

// LoadMnemonics inserts entries into the mnemonic table in order.
func (d *Dictionary) LoadMnemonics(entries []isa.DictEntry[isa.MnemonicEntry]) error {
	for _, e := range entries {
		if err := d.Mnemonics.Insert(e.Key, e.Value); err != nil {
			return err
		}
	}
	return nil
}

// LoadRegisters inserts entries into the register table in order.
func (d *Dictionary) LoadRegisters(entries []isa.DictEntry[isa.RegisterEntry]) error {
	for _, e := range entries {
		if err := d.Registers.Insert(e.Key, e.Value); err != nil {
			return err
		}
	}
	return nil
}

// NewDefaultDictionary builds a dictionary populated with the standard
// RV32I mnemonic and register sets (isa.DefaultMnemonics /
// isa.DefaultRegisters), using bucketCount buckets for each table.
func NewDefaultDictionary(bucketCount uint32) (*Dictionary, error) {
	dict := NewDictionary(bucketCount, bucketCount)
	if err := dict.LoadMnemonics(isa.DefaultMnemonics()); err != nil {
		return nil, err
	}
	if err := dict.LoadRegisters(isa.DefaultRegisters()); err != nil {
		return nil, err
	}
	return dict, nil
}
