// Package bytecls classifies input bytes into the classes the grammar
// transition tables are indexed by. The classes are deliberately coarse:
// a table cell exists per class, not per byte, so only bytes the grammar
// actually distinguishes get a class of their own. That is also why the
// letters of the "HTTP/" literal are split out of Upper.
package bytecls

import (
	ascii "github.com/scott-ainsworth/go-ascii"
)

type Class uint8

const (
	UpperH Class = iota + 1
	UpperT
	UpperP
	// Upper is any uppercase ASCII letter except H, T and P.
	Upper
	Lower
	Digit
	Space
	Tab
	CR
	LF
	Colon
	Dot
	Slash
	// Visible is any printable, non-space byte not covered by the classes
	// above.
	Visible
	Control
)

// Count is the number of table columns, including the zero sentinel.
const Count = int(Control) + 1

var table = buildTable()

// Of returns the class of c.
func Of(c byte) Class {
	return table[c]
}

func buildTable() (t [256]Class) {
	for i := 0; i < 256; i++ {
		c := byte(i)

		switch c {
		case 'H':
			t[i] = UpperH
		case 'T':
			t[i] = UpperT
		case 'P':
			t[i] = UpperP
		case ' ':
			t[i] = Space
		case '\t':
			t[i] = Tab
		case '\r':
			t[i] = CR
		case '\n':
			t[i] = LF
		case ':':
			t[i] = Colon
		case '.':
			t[i] = Dot
		case '/':
			t[i] = Slash
		default:
			switch {
			case c >= 0x80:
				// Non-ASCII octets aren't controls, so they behave like any
				// other opaque visible byte: fine in a URI or a header value,
				// meaningless everywhere else.
				t[i] = Visible
			case ascii.IsUpper(c):
				t[i] = Upper
			case ascii.IsLower(c):
				t[i] = Lower
			case ascii.IsDigit(c):
				t[i] = Digit
			case ascii.IsPrint(c):
				t[i] = Visible
			default:
				t[i] = Control
			}
		}
	}

	return t
}
