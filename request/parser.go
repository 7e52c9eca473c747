// Package request implements the request-line-plus-headers side of the
// incremental head parser.
package request

import (
	"github.com/indigo-web/httpwire"
	"github.com/indigo-web/httpwire/internal/bytecls"
)

// Parser is an incremental recognizer of the request head grammar:
//
//	request-line = METHOD SP REQUEST-URI SP "HTTP/" 1*DIGIT "." 1*DIGIT CRLF
//	header-line  = token ":" *SP value CRLF
//	header-block = *header-line CRLF
//
// The parser never owns input bytes. It advances over whatever chunk is
// given to it, keeps only its grammar position between the calls, and the
// ranges it returns alias the caller's chunk. One connection owns exactly
// one Parser and must feed it in-order, non-overlapping chunks; the Parser
// itself does no synchronization.
type Parser struct {
	state    State
	poisoned bool
}

func New() *Parser {
	return &Parser{state: eStart}
}

// NewAt returns a parser pre-positioned at the given checkpoint, for
// resuming a message whose earlier segments were recognized elsewhere.
func NewAt(checkpoint State) *Parser {
	return &Parser{state: checkpoint}
}

// ParseUntil advances the automaton over data until the target checkpoint
// is entered, a grammar violation is found, or data is exhausted, whichever
// comes first. The returned range is the sub-slice of data that was
// examined: up to and including the checkpoint delimiter on Accepted, up to
// and including the offending byte on Rejected, and all of data on Pending.
//
// Targeting a checkpoint behind the current position is a caller contract
// violation; Reset or ResetTo first.
func (p *Parser) ParseUntil(target State, data []byte) (httpwire.Result, []byte) {
	if p.poisoned {
		return httpwire.Rejected, data[:0]
	}

	for i := 0; i < len(data); i++ {
		next := transitions[p.state][bytecls.Of(data[i])]
		if next == 0 {
			p.poisoned = true

			return httpwire.Rejected, data[:i+1]
		}

		p.state = next
		if next == target {
			return httpwire.Accepted, data[:i+1]
		}
	}

	return httpwire.Pending, data
}

// Reset returns the parser to the message-start state, readying it for the
// next message on a persistent connection.
func (p *Parser) Reset() {
	p.state = eStart
	p.poisoned = false
}

// ResetTo repositions the parser directly at the given checkpoint without
// replaying any input.
func (p *Parser) ResetTo(checkpoint State) {
	p.state = checkpoint
	p.poisoned = false
}

// State reports the current grammar position. Diagnostics only: reading it
// has no parsing effect.
func (p *Parser) State() State {
	return p.state
}
