package head

import "errors"

var (
	ErrBadRequestLine = errors.New("malformed request line")
	ErrBadStatusLine  = errors.New("malformed status line")
	ErrBadHeader      = errors.New("malformed header field")
	ErrHeadTooLarge   = errors.New("message head exceeds the token space limit")
)
