package symtab_test

import (
	"errors"
	"testing"

	"github.com/rv32i-asm/rv32i-asm/symtab"
)

func TestInsertThenGet(t *testing.T) {
	tbl := symtab.New[int](8)
	if err := tbl.Insert("x1", 1); err != nil {
		t.Fatalf("insert: %v", err)
	}
	got, err := tbl.Get("x1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != 1 {
		t.Errorf("got %d, want 1", got)
	}
}

func TestLastWriteWins(t *testing.T) {
	tbl := symtab.New[string](4)
	_ = tbl.Insert("loop", "first")
	_ = tbl.Insert("loop", "second")

	got, err := tbl.Get("loop")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != "second" {
		t.Errorf("got %q, want %q", got, "second")
	}
}

func TestNotFound(t *testing.T) {
	tbl := symtab.New[int](4)
	_, err := tbl.Get("missing")
	var symErr *symtab.Error
	if !errors.As(err, &symErr) || symErr.Kind != symtab.NotFound {
		t.Fatalf("expected NotFound, got %v", err)
	}
}

func TestInvalidKey(t *testing.T) {
	tbl := symtab.New[int](4)
	if err := tbl.Insert("bad key!", 1); err == nil {
		t.Fatal("expected error for non-alphanumeric key")
	}
	var symErr *symtab.Error
	if _, err := tbl.Get("bad key!"); !errors.As(err, &symErr) || symErr.Kind != symtab.InvalidKey {
		t.Errorf("expected InvalidKey, got %v", err)
	}
}

func TestKeyTooLong(t *testing.T) {
	tbl := symtab.New[int](4)
	long := "abcdefghijk" // 11 chars
	if err := tbl.Insert(long, 1); err == nil {
		t.Fatal("expected error for over-long key")
	}
	var symErr *symtab.Error
	if _, err := tbl.Get(long); !errors.As(err, &symErr) || symErr.Kind != symtab.KeyTooLong {
		t.Errorf("expected KeyTooLong, got %v", err)
	}
}

func TestHashPure(t *testing.T) {
	h1, err := symtab.Hash("addi")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	h2, _ := symtab.Hash("addi")
	if h1 != h2 {
		t.Errorf("hash not pure: %d != %d", h1, h2)
	}
}

func TestHashCaseInsensitive(t *testing.T) {
	h1, err := symtab.Hash("ADDI")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	h2, err := symtab.Hash("addi")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if h1 != h2 {
		t.Errorf("expected case-insensitive hash equality, got %d != %d", h1, h2)
	}
}

func TestBucketDistributionDoesNotLoseEntries(t *testing.T) {
	tbl := symtab.New[int](2) // deliberately small, forces collisions
	keys := []string{"x0", "x1", "x2", "x3", "x4", "x5", "ra", "sp", "gp", "tp"}
	for i, k := range keys {
		if err := tbl.Insert(k, i); err != nil {
			t.Fatalf("insert %q: %v", k, err)
		}
	}
	for i, k := range keys {
		got, err := tbl.Get(k)
		if err != nil {
			t.Fatalf("get %q: %v", k, err)
		}
		if got != i {
			t.Errorf("key %q: got %d, want %d", k, got, i)
		}
	}
}
