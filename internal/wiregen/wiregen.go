// Package wiregen generates syntactically valid wire messages for tests.
package wiregen

import (
	"strconv"

	"github.com/dchest/uniuri"
)

type Header struct {
	Key, Value string
}

// Headers returns n headers with random names and values. uniuri sticks to
// alphanumerics, which are legal in both positions.
func Headers(n int) []Header {
	hdrs := make([]Header, n)
	for i := range hdrs {
		hdrs[i] = Header{Key: uniuri.New(), Value: uniuri.NewLen(32)}
	}

	return hdrs
}

func HeadersBlock(hdrs []Header) (buff []byte) {
	for _, h := range hdrs {
		buff = append(buff, h.Key+": "+h.Value+"\r\n"...)
	}

	return buff
}

// Request renders a complete request head.
func Request(method, uri string, hdrs []Header) (request []byte) {
	request = append(request, method+" "+uri+" HTTP/1.1\r\n"...)
	request = append(request, HeadersBlock(hdrs)...)

	return append(request, '\r', '\n')
}

// Response renders a complete response head.
func Response(code int, message string, hdrs []Header) (response []byte) {
	response = append(response, "HTTP/1.1 "+strconv.Itoa(code)+" "+message+"\r\n"...)
	response = append(response, HeadersBlock(hdrs)...)

	return append(response, '\r', '\n')
}
