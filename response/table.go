package response

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
	// Header field names: everything up to the terminating colon except
	// separators and controls.
	fieldName := append([]bytecls.Class{
		bytecls.Lower, bytecls.Digit, bytecls.Dot, bytecls.Slash,
		bytecls.Visible,
	}, uppers...)
	// The status message and header values admit arbitrary octets up to the
	// CRLF. Space stays out of the list: after a header colon it is still
	// the optional padding, and the rows that do admit it say so explicitly.
	text := append([]bytecls.Class{
		bytecls.Lower, bytecls.Digit, bytecls.Colon, bytecls.Dot,
		bytecls.Slash, bytecls.Visible, bytecls.Tab, bytecls.Control,
	}, uppers...)

	set(eStart, eVersionH, bytecls.UpperH)
	set(eVersionH, eVersionHT, bytecls.UpperT)
	set(eVersionHT, eVersionHTT, bytecls.UpperT)
	set(eVersionHTT, eVersionHTTP, bytecls.UpperP)
	set(eVersionHTTP, eVersionSlash, bytecls.Slash)
	set(eVersionSlash, eVersionMajor, bytecls.Digit)
	set(eVersionMajor, eVersionMajor, bytecls.Digit)
	set(eVersionMajor, eVersionDot, bytecls.Dot)
	set(eVersionDot, eVersionMinor, bytecls.Digit)
	set(eVersionMinor, eVersionMinor, bytecls.Digit)
	set(eVersionMinor, VersionDone, bytecls.Space)

	set(VersionDone, eStatusCode1, bytecls.Digit)
	set(eStatusCode1, eStatusCode2, bytecls.Digit)
	set(eStatusCode2, eStatusCode3, bytecls.Digit)
	set(eStatusCode3, StatusDone, bytecls.Space)

	set(StatusDone, eStatusMessage, text...)
	set(StatusDone, eStatusMessage, bytecls.Space)
	set(StatusDone, eStatusMessageCR, bytecls.CR)
	set(eStatusMessage, eStatusMessage, text...)
	set(eStatusMessage, eStatusMessage, bytecls.Space)
	set(eStatusMessage, eStatusMessageCR, bytecls.CR)
	set(eStatusMessageCR, StatusMessageDone, bytecls.LF)

	set(StatusMessageDone, eHeaderKey, fieldName...)
	set(StatusMessageDone, eHeadersEndCR, bytecls.CR)
	set(eHeaderKey, eHeaderKey, fieldName...)
	set(eHeaderKey, eHeaderColon, bytecls.Colon)
	set(eHeaderColon, eHeaderColon, bytecls.Space)
	set(eHeaderColon, eHeaderValue, text...)
	set(eHeaderColon, eHeaderValueCR, bytecls.CR)
	set(eHeaderValue, eHeaderValue, text...)
	set(eHeaderValue, eHeaderValue, bytecls.Space)
	set(eHeaderValue, eHeaderValueCR, bytecls.CR)
	set(eHeaderValueCR, HeaderLineDone, bytecls.LF)
	set(HeaderLineDone, eHeaderKey, fieldName...)
	set(HeaderLineDone, eHeadersEndCR, bytecls.CR)
	set(eHeadersEndCR, HeadersDone, bytecls.LF)

	return t
}
