// Package lexer splits one line of RV32I assembly source into fields.
//
// A line is stripped of its comment (everything at and after the first
// '#'), then split on commas, spaces and tabs; empty fragments are
// discarded. The result is either empty (a blank or comment-only line), a
// label declaration (first field ends in ':'), or an instruction mnemonic
// followed by its operands.
package lexer

import "strings"

// Lex returns the non-empty fields of line after stripping its comment.
func Lex(line string) []string {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}

	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	return fields
}

// IsLabel reports whether fields begins with a label declaration (a field
// ending in ':') and returns the label text with the colon stripped.
func IsLabel(fields []string) (string, bool) {
	if len(fields) == 0 {
		return "", false
	}
	first := fields[0]
	if len(first) < 2 || first[len(first)-1] != ':' {
		return "", false
	}
	return first[:len(first)-1], true
}
