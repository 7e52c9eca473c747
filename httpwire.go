// Package httpwire implements an incremental, restartable parser for the
// head of HTTP/1 messages: request line, status line and header fields.
// It is shared by the client and the server sides, which instantiate
// request.Parser and response.Parser respectively.
//
// The parser operates strictly over in-memory byte chunks supplied by the
// owning connection and never blocks: once the given input is exhausted,
// it returns Pending and resumes from the exact same byte on the next call.
// Message boundaries therefore don't need to be aligned with transport
// reads in any way.
package httpwire

// Result is the outcome of a single ParseUntil call. There are always three
// of them, and a caller is supposed to branch on all three: treating Pending
// as a failure is a caller defect.
type Result uint8

const (
	// Pending signalizes that the input was exhausted before the target
	// checkpoint was reached or a violation was found. It is not an error,
	// but a request for a continuation chunk.
	Pending Result = iota + 1
	// Accepted signalizes that the target checkpoint was reached.
	Accepted
	// Rejected signalizes a grammar violation. The parser stays poisoned
	// until it is explicitly reset, so a retry without a reset cannot
	// accidentally succeed.
	Rejected
)

func (r Result) String() string {
	switch r {
	case Pending:
		return "pending"
	case Accepted:
		return "accepted"
	case Rejected:
		return "rejected"
	default:
		return "unknown"
	}
}
