package response

// State is a position inside the status-line-plus-headers grammar. Exported
// values are checkpoints ParseUntil can be asked to reach; e-prefixed ones
// are internal sub-states. Declaration order is the in-message order, with
// the header-line states re-entered once per header field.
type State uint8

const (
	eStart State = iota + 1
	eVersionH
	eVersionHT
	eVersionHTT
	eVersionHTTP
	eVersionSlash
	eVersionMajor
	eVersionDot
	eVersionMinor
	// VersionDone is reached once the space terminating the "HTTP/x.y"
	// token is consumed.
	VersionDone
	eStatusCode1
	eStatusCode2
	eStatusCode3
	// StatusDone is reached once the space terminating the three status
	// digits is consumed. The digits stay digits: converting them to an
	// integer is the caller's job.
	StatusDone
	eStatusMessage
	eStatusMessageCR
	// StatusMessageDone is reached once the CRLF terminating the (possibly
	// empty) status message is consumed.
	StatusMessageDone
	eHeaderKey
	eHeaderColon
	eHeaderValue
	eHeaderValueCR
	// HeaderLineDone is reached once the CRLF of a single header field is
	// consumed. It is repeatable: targeting it again continues with the
	// next field.
	HeaderLineDone
	eHeadersEndCR
	// HeadersDone is reached once the bare CRLF terminating the whole
	// header block is consumed.
	HeadersDone
)

const stateCount = int(HeadersDone) + 1

var stateNames = [stateCount]string{
	eStart:            "start",
	eVersionH:         "version-h",
	eVersionHT:        "version-ht",
	eVersionHTT:       "version-htt",
	eVersionHTTP:      "version-http",
	eVersionSlash:     "version-slash",
	eVersionMajor:     "version-major",
	eVersionDot:       "version-dot",
	eVersionMinor:     "version-minor",
	VersionDone:       "version-done",
	eStatusCode1:      "status-code-1",
	eStatusCode2:      "status-code-2",
	eStatusCode3:      "status-code-3",
	StatusDone:        "status-done",
	eStatusMessage:    "status-message",
	eStatusMessageCR:  "status-message-cr",
	StatusMessageDone: "status-message-done",
	eHeaderKey:        "header-key",
	eHeaderColon:      "header-colon",
	eHeaderValue:      "header-value",
	eHeaderValueCR:    "header-value-cr",
	HeaderLineDone:    "header-line-done",
	eHeadersEndCR:     "headers-end-cr",
	HeadersDone:       "headers-done",
}

func (s State) String() string {
	if int(s) < len(stateNames) && len(stateNames[s]) > 0 {
		return stateNames[s]
	}

	return "unknown"
}
