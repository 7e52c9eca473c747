package request

import (
	"github.com/indigo-web/httpwire/internal/bytecls"
)

// transitions maps (current state, input byte class) to the next state.
// A zero cell means the byte is a grammar violation in that position.
var transitions = buildTransitions()

func buildTransitions() (t [stateCount][bytecls.Count]State) {
	set := func(s, next State, classes ...bytecls.Class) {
		for _, class := range classes {
			t[s][class] = next
		}
	}

	uppers := []bytecls.Class{
		bytecls.UpperH, bytecls.UpperT, bytecls.UpperP, bytecls.Upper,
	}
	// Anything visible may appear in a request target. Controls, space and
	// tab may not, which leaves their cells zero.
	target := append([]bytecls.Class{
		bytecls.Lower, bytecls.Digit, bytecls.Colon, bytecls.Dot,
		bytecls.Slash, bytecls.Visible,
	}, uppers...)
	// Header field names: everything up to the terminating colon except
	// separators and controls.
	fieldName := append([]bytecls.Class{
		bytecls.Lower, bytecls.Digit, bytecls.Dot, bytecls.Slash,
		bytecls.Visible,
	}, uppers...)
	// Header field values admit arbitrary octets up to the CRLF. Space is
	// kept out of the list on purpose: right after the colon it still
	// belongs to the optional padding, not to the value.
	fieldValue := append([]bytecls.Class{
		bytecls.Lower, bytecls.Digit, bytecls.Colon, bytecls.Dot,
		bytecls.Slash, bytecls.Visible, bytecls.Tab, bytecls.Control,
	}, uppers...)

	set(eStart, eMethod, uppers...)
	set(eMethod, eMethod, uppers...)
	set(eMethod, MethodDone, bytecls.Space)

	set(MethodDone, eURI, target...)
	set(eURI, eURI, target...)
	set(eURI, URIDone, bytecls.Space)

	set(URIDone, eVersionH, bytecls.UpperH)
	set(eVersionH, eVersionHT, bytecls.UpperT)
	set(eVersionHT, eVersionHTT, bytecls.UpperT)
	set(eVersionHTT, eVersionHTTP, bytecls.UpperP)
	set(eVersionHTTP, eVersionSlash, bytecls.Slash)
	set(eVersionSlash, eVersionMajor, bytecls.Digit)
	set(eVersionMajor, eVersionMajor, bytecls.Digit)
	set(eVersionMajor, eVersionDot, bytecls.Dot)
	set(eVersionDot, eVersionMinor, bytecls.Digit)
	set(eVersionMinor, eVersionMinor, bytecls.Digit)
	set(eVersionMinor, eVersionCR, bytecls.CR)
	set(eVersionCR, VersionDone, bytecls.LF)

	set(VersionDone, eHeaderKey, fieldName...)
	set(VersionDone, eHeadersEndCR, bytecls.CR)
	set(eHeaderKey, eHeaderKey, fieldName...)
	set(eHeaderKey, eHeaderColon, bytecls.Colon)
	set(eHeaderColon, eHeaderColon, bytecls.Space)
	set(eHeaderColon, eHeaderValue, fieldValue...)
	set(eHeaderColon, eHeaderValueCR, bytecls.CR)
	set(eHeaderValue, eHeaderValue, fieldValue...)
	set(eHeaderValue, eHeaderValue, bytecls.Space)
	set(eHeaderValue, eHeaderValueCR, bytecls.CR)
	set(eHeaderValueCR, HeaderLineDone, bytecls.LF)
	set(HeaderLineDone, eHeaderKey, fieldName...)
	set(HeaderLineDone, eHeadersEndCR, bytecls.CR)
	set(eHeadersEndCR, HeadersDone, bytecls.LF)

	return t
}
