package request

// State is a position inside the request-head grammar. Exported values are
// checkpoints ParseUntil can be asked to reach; e-prefixed ones are internal
// sub-states a parser passes through on the way. The declaration order is
// the order states are reached in within a single message, except that the
// header-line states are re-entered once per header field.
type State uint8

const (
	eStart State = iota + 1
	eMethod
	// MethodDone is reached once the space terminating the method token
	// is consumed.
	MethodDone
	eURI
	// URIDone is reached once the space terminating the request target
	// is consumed.
	URIDone
	eVersionH
	eVersionHT
	eVersionHTT
	eVersionHTTP
	eVersionSlash
	eVersionMajor
	eVersionDot
	eVersionMinor
	eVersionCR
	// VersionDone is reached once the CRLF terminating the request line
	// is consumed.
	VersionDone
	eHeaderKey
	eHeaderColon
	eHeaderValue
	eHeaderValueCR
	// HeaderLineDone is reached once the CRLF of a single header field is
	// consumed. Unlike the other checkpoints it is repeatable: targeting it
	// again continues with the next field.
	HeaderLineDone
	eHeadersEndCR
	// HeadersDone is reached once the bare CRLF terminating the whole
	// header block is consumed.
	HeadersDone
)

const stateCount = int(HeadersDone) + 1

var stateNames = [stateCount]string{
	eStart:         "start",
	eMethod:        "method",
	MethodDone:     "method-done",
	eURI:           "uri",
	URIDone:        "uri-done",
	eVersionH:      "version-h",
	eVersionHT:     "version-ht",
	eVersionHTT:    "version-htt",
	eVersionHTTP:   "version-http",
	eVersionSlash:  "version-slash",
	eVersionMajor:  "version-major",
	eVersionDot:    "version-dot",
	eVersionMinor:  "version-minor",
	eVersionCR:     "version-cr",
	VersionDone:    "version-done",
	eHeaderKey:     "header-key",
	eHeaderColon:   "header-colon",
	eHeaderValue:   "header-value",
	eHeaderValueCR: "header-value-cr",
	HeaderLineDone: "header-line-done",
	eHeadersEndCR:  "headers-end-cr",
	HeadersDone:    "headers-done",
}

func (s State) String() string {
	if int(s) < len(stateNames) && len(stateNames[s]) > 0 {
		return stateNames[s]
	}

	return "unknown"
}
