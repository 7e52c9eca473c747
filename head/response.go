package head

import (
	"github.com/indigo-web/httpwire"
	"github.com/indigo-web/httpwire/kv"
	"github.com/indigo-web/httpwire/response"
	"github.com/indigo-web/utils/buffer"
	"github.com/indigo-web/utils/uf"
)

// ResponseAssembler owns one response.Parser and drives it checkpoint by
// checkpoint, turning the byte ranges it reports into an assembled
// Response. Exactly one connection feeds an assembler, in order, chunk by
// chunk.
type ResponseAssembler struct {
	parser *response.Parser
	buff   buffer.Buffer[byte]
	head   Response
	stage  stage
}

func NewResponseAssembler(s Settings) *ResponseAssembler {
	s = prepare(s)

	return &ResponseAssembler{
		parser: response.New(),
		buff:   *buffer.NewBuffer[byte](0, s.TokenSpace),
		head:   Response{Headers: kv.NewPrealloc(s.HeadersPrealloc)},
		stage:  sVersion,
	}
}

// Feed consumes the next chunk. Once the whole head is assembled it reports
// done=true together with the unconsumed remainder of the chunk (the body,
// or the next message on the wire). A non-nil error is sticky until Reset.
func (a *ResponseAssembler) Feed(data []byte) (done bool, rest []byte, err error) {
	for len(data) > 0 {
		switch a.stage {
		case sVersion:
			token, err := a.advance(response.VersionDone, &data, ErrBadStatusLine)
			if err != nil {
				return false, nil, err
			}
			if token == nil {
				break
			}

			a.head.Proto = uf.B2S(chopDelim(token, 1))
			a.stage = sCode
		case sCode:
			token, err := a.advance(response.StatusDone, &data, ErrBadStatusLine)
			if err != nil {
				return false, nil, err
			}
			if token == nil {
				break
			}

			a.head.Code = parseCode(chopDelim(token, 1))
			a.stage = sStatus
		case sStatus:
			token, err := a.advance(response.StatusMessageDone, &data, ErrBadStatusLine)
			if err != nil {
				return false, nil, err
			}
			if token == nil {
				break
			}

			a.head.Status = uf.B2S(chopDelim(token, 2))
			a.stage = sHeaderLine
		case sHeaderLine:
			// See RequestAssembler.Feed: the CR is the block terminator
			// only at a line boundary.
			if data[0] == '\r' && a.atLineBoundary() {
				a.stage = sTerminator
				continue
			}

			token, err := a.advance(response.HeaderLineDone, &data, ErrBadHeader)
			if err != nil {
				return false, nil, err
			}
			if token == nil {
				break
			}

			key, value := splitHeaderLine(token)
			a.head.Headers.Add(uf.B2S(key), uf.B2S(value))
		case sTerminator:
			token, err := a.advance(response.HeadersDone, &data, ErrBadHeader)
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

// Head returns the assembled response. Valid once Feed reported done and
// until the next Reset.
func (a *ResponseAssembler) Head() Response {
	return a.head
}

// Reset re-arms the assembler and its parser for the next message.
func (a *ResponseAssembler) Reset() {
	a.parser.Reset()
	a.buff.Clear()
	a.head.Headers.Clear()
	a.head.Proto, a.head.Status = "", ""
	a.head.Code = 0
	a.stage = sVersion
}

func (a *ResponseAssembler) atLineBoundary() bool {
	state := a.parser.State()

	return state == response.StatusMessageDone || state == response.HeaderLineDone
}

// advance runs the parser towards target over *data, accumulating the
// examined bytes. It hands out the finished token on Accepted and nil on
// Pending, in which case *data is guaranteed to be drained.
func (a *ResponseAssembler) advance(
	target response.State, data *[]byte, onReject error,
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
