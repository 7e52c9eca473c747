package head

import (
	"github.com/indigo-web/httpwire"
	"github.com/indigo-web/httpwire/kv"
	"github.com/indigo-web/httpwire/request"
	"github.com/indigo-web/utils/buffer"
	"github.com/indigo-web/utils/uf"
)

// stage is what an assembler waits for next. Both assemblers share the
// enumeration and walk their own subset of it.
type stage uint8

const (
	sMethod stage = iota + 1
	sURI
	sVersion
	sCode
	sStatus
	sHeaderLine
	sTerminator
	sDone
)

// RequestAssembler owns one request.Parser and drives it checkpoint by
// checkpoint, turning the byte ranges it reports into an assembled Request.
// Exactly one connection feeds an assembler, in order, chunk by chunk.
type RequestAssembler struct {
	parser *request.Parser
	buff   buffer.Buffer[byte]
	head   Request
	stage  stage
}

func NewRequestAssembler(s Settings) *RequestAssembler {
	s = prepare(s)

	return &RequestAssembler{
		parser: request.New(),
		buff:   *buffer.NewBuffer[byte](0, s.TokenSpace),
		head:   Request{Headers: kv.NewPrealloc(s.HeadersPrealloc)},
		stage:  sMethod,
	}
}

// Feed consumes the next chunk. Once the whole head is assembled it reports
// done=true together with the unconsumed remainder of the chunk (the body,
// or the next message on the wire). A non-nil error is sticky until Reset.
func (a *RequestAssembler) Feed(data []byte) (done bool, rest []byte, err error) {
	for len(data) > 0 {
		switch a.stage {
		case sMethod:
			token, err := a.advance(request.MethodDone, &data, ErrBadRequestLine)
			if err != nil {
				return false, nil, err
			}
			if token == nil {
				break
			}

			a.head.Method = uf.B2S(chopDelim(token, 1))
			a.stage = sURI
		case sURI:
			token, err := a.advance(request.URIDone, &data, ErrBadRequestLine)
			if err != nil {
				return false, nil, err
			}
			if token == nil {
				break
			}

			a.head.URI = uf.B2S(chopDelim(token, 1))
			a.stage = sVersion
		case sVersion:
			token, err := a.advance(request.VersionDone, &data, ErrBadRequestLine)
			if err != nil {
				return false, nil, err
			}
			if token == nil {
				break
			}

			a.head.Proto = uf.B2S(chopDelim(token, 2))
			a.stage = sHeaderLine
		case sHeaderLine:
			// A line starting with CR can only be the blank line closing
			// the block. The boundary check matters: after a Pending return
			// the chunk may resume mid-line, where a CR means something
			// entirely different.
			if data[0] == '\r' && a.atLineBoundary() {
				a.stage = sTerminator
				continue
			}

			token, err := a.advance(request.HeaderLineDone, &data, ErrBadHeader)
			if err != nil {
				return false, nil, err
			}
			if token == nil {
				break
			}

			key, value := splitHeaderLine(token)
			a.head.Headers.Add(uf.B2S(key), uf.B2S(value))
		case sTerminator:
			token, err := a.advance(request.HeadersDone, &data, ErrBadHeader)
			if err != nil {
				return false, nil, err
			}
			if token == nil {
				break
			}

			a.stage = sDone

			return true, data, nil
		case sDone:
			return true, data, nil
		}
	}

	return a.stage == sDone, data, nil
}

// Head returns the assembled request. Valid once Feed reported done and
// until the next Reset.
func (a *RequestAssembler) Head() Request {
	return a.head
}

// Reset re-arms the assembler and its parser for the next message.
func (a *RequestAssembler) Reset() {
	a.parser.Reset()
	a.buff.Clear()
	a.head.Headers.Clear()
	a.head.Method, a.head.URI, a.head.Proto = "", "", ""
	a.stage = sMethod
}

func (a *RequestAssembler) atLineBoundary() bool {
	state := a.parser.State()

	return state == request.VersionDone || state == request.HeaderLineDone
}

// advance runs the parser towards target over *data, accumulating the
// examined bytes. It hands out the finished token on Accepted and nil on
// Pending, in which case *data is guaranteed to be drained.
func (a *RequestAssembler) advance(
	target request.State, data *[]byte, onReject error,
) (token []byte, err error) {
	result, consumed := a.parser.ParseUntil(target, *data)
	*data = (*data)[len(consumed):]

	switch result {
	case httpwire.Pending, httpwire.Accepted:
		if !a.buff.Append(consumed...) {
			return nil, ErrHeadTooLarge
		}
	default:
		return nil, onReject
	}

	if result == httpwire.Accepted {
		return a.buff.Finish(), nil
	}

	return nil, nil
}
