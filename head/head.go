// Package head assembles parsed message heads out of the raw byte ranges
// the wire parsers report. It owns everything the parsers deliberately
// don't: token copies that survive chunk boundaries, header storage and
// status code conversion.
package head

import (
	"bytes"

	"github.com/indigo-web/httpwire/kv"
)

// Request is an assembled request head. Its strings alias the assembler's
// token buffer and stay valid until the assembler is reset.
type Request struct {
	Method  string
	URI     string
	Proto   string
	Headers *kv.Storage
}

// Response is an assembled response head. Its strings alias the assembler's
// token buffer and stay valid until the assembler is reset.
type Response struct {
	Proto   string
	Code    int
	Status  string
	Headers *kv.Storage
}

// chopDelim drops the n delimiter bytes the parser consumed along with the
// token: one for a space, two for a CRLF.
func chopDelim(token []byte, n int) []byte {
	return token[:len(token)-n]
}

// splitHeaderLine cuts a full "key: value\r\n" line into its key and value.
// The grammar guarantees the colon and the trailing CRLF are in place.
func splitHeaderLine(line []byte) (key, value []byte) {
	colon := bytes.IndexByte(line, ':')
	key, value = line[:colon], chopDelim(line[colon+1:], 2)

	return key, trimPrefixSpaces(value)
}

func trimPrefixSpaces(b []byte) []byte {
	for i, char := range b {
		if char != ' ' {
			return b[i:]
		}
	}

	return b[:0]
}

// parseCode converts the three status digits. The parser has already
// enforced that these are digits and nothing else.
func parseCode(digits []byte) (code int) {
	for _, char := range digits {
		code = code*10 + int(char-'0')
	}

	return code
}
