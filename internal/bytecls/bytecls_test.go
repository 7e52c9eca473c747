package bytecls

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOf(t *testing.T) {
	samples := map[byte]Class{
		'H':  UpperH,
		'T':  UpperT,
		'P':  UpperP,
		'G':  Upper,
		'z':  Lower,
		'7':  Digit,
		' ':  Space,
		'\t': Tab,
		'\r': CR,
		'\n': LF,
		':':  Colon,
		'.':  Dot,
		'/':  Slash,
		'-':  Visible,
		'%':  Visible,
		0x00: Control,
		0x7f: Control,
		0xc3: Visible,
	}

	for char, want := range samples {
		require.Equal(t, want, Of(char), "byte %q", char)
	}
}
