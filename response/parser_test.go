package response

import (
	"testing"

	"github.com/indigo-web/httpwire"
	"github.com/indigo-web/httpwire/internal/wiregen"
	"github.com/stretchr/testify/require"
)

func splitIntoParts(data []byte, n int) (parts [][]byte) {
	for i := 0; i < len(data); i += n {
		end := i + n
		if end > len(data) {
			end = len(data)
		}

		parts = append(parts, data[i:end])
	}

	return parts
}

func parseInParts(t *testing.T, p *Parser, target State, data []byte, n int) (got []byte) {
	parts := splitIntoParts(data, n)

	for i, part := range parts {
		result, consumed := p.ParseUntil(target, part)
		got = append(got, consumed...)

		if i < len(parts)-1 {
			require.Equal(t, httpwire.Pending, result)
			require.Equal(t, len(part), len(consumed))
		} else {
			require.Equal(t, httpwire.Accepted, result)
		}
	}

	return got
}

func TestParseVersion(t *testing.T) {
	t.Run("ordinary versions", func(t *testing.T) {
		p := New()

		for _, version := range []string{"HTTP/1.0 ", "HTTP/1.1 ", "HTTP/0.9 "} {
			p.Reset()
			result, consumed := p.ParseUntil(VersionDone, []byte(version))
			require.Equal(t, httpwire.Accepted, result, version)
			require.Equal(t, version, string(consumed))
			require.Equal(t, VersionDone, p.State())
		}
	})

	t.Run("missing slash", func(t *testing.T) {
		p := New()
		result, consumed := p.ParseUntil(VersionDone, []byte("HTTP 1.0"))
		require.Equal(t, httpwire.Rejected, result)
		require.Equal(t, "HTTP ", string(consumed))
	})

	t.Run("multi-digit version", func(t *testing.T) {
		p := New()
		result, consumed := p.ParseUntil(VersionDone, []byte("HTTP/12.34 "))
		require.Equal(t, httpwire.Accepted, result)
		require.Equal(t, "HTTP/12.34 ", string(consumed))
	})
}

func TestParseStatusCode(t *testing.T) {
	t.Run("three digits", func(t *testing.T) {
		p := NewAt(VersionDone)
		result, consumed := p.ParseUntil(StatusDone, []byte("200 "))
		require.Equal(t, httpwire.Accepted, result)
		require.Equal(t, "200 ", string(consumed))
	})

	t.Run("garbage after the digits", func(t *testing.T) {
		p := NewAt(VersionDone)
		result, consumed := p.ParseUntil(StatusDone, []byte("200x "))
		require.Equal(t, httpwire.Rejected, result)
		require.Equal(t, "200x", string(consumed))
	})

	t.Run("too few digits", func(t *testing.T) {
		p := NewAt(VersionDone)
		result, _ := p.ParseUntil(StatusDone, []byte("20 "))
		require.Equal(t, httpwire.Rejected, result)
	})
}

func TestParseStatusMessage(t *testing.T) {
	t.Run("message with trailing data", func(t *testing.T) {
		p := NewAt(StatusDone)
		data := []byte("OK\r\nServer: Foo")
		result, consumed := p.ParseUntil(StatusMessageDone, data)
		require.Equal(t, httpwire.Accepted, result)
		require.Equal(t, "OK\r\n", string(consumed))
		require.Equal(t, "Server: Foo", string(data[len(consumed):]))
	})

	t.Run("empty message", func(t *testing.T) {
		p := NewAt(StatusDone)
		result, consumed := p.ParseUntil(StatusMessageDone, []byte("\r\n"))
		require.Equal(t, httpwire.Accepted, result)
		require.Equal(t, "\r\n", string(consumed))
	})

	t.Run("message with spaces", func(t *testing.T) {
		p := NewAt(StatusDone)
		result, consumed := p.ParseUntil(StatusMessageDone, []byte("Internal Server Error\r\n"))
		require.Equal(t, httpwire.Accepted, result)
		require.Equal(t, "Internal Server Error\r\n", string(consumed))
	})
}

func TestParseHeaderLines(t *testing.T) {
	t.Run("two lines without resets", func(t *testing.T) {
		p := NewAt(StatusMessageDone)
		data := []byte("Server: Foo\r\nContent-Type: application/json\r\n\r\n")

		result, first := p.ParseUntil(HeaderLineDone, data)
		require.Equal(t, httpwire.Accepted, result)
		require.Equal(t, "Server: Foo\r\n", string(first))

		data = data[len(first):]
		result, second := p.ParseUntil(HeaderLineDone, data)
		require.Equal(t, httpwire.Accepted, result)
		require.Equal(t, "Content-Type: application/json\r\n", string(second))
		require.NotEqual(t, string(first), string(second))

		data = data[len(second):]
		result, _ = p.ParseUntil(HeadersDone, data)
		require.Equal(t, httpwire.Accepted, result)
	})

	t.Run("reset between lines", func(t *testing.T) {
		p := NewAt(StatusMessageDone)
		data := []byte("Server: Foo\r\nConnection: close\r\n\r\n")

		result, consumed := p.ParseUntil(HeaderLineDone, data)
		require.Equal(t, httpwire.Accepted, result)

		p.ResetTo(StatusMessageDone)
		data = data[len(consumed):]
		result, consumed = p.ParseUntil(HeaderLineDone, data)
		require.Equal(t, httpwire.Accepted, result)
		require.Equal(t, "Connection: close\r\n", string(consumed))
	})

	t.Run("whole head at once", func(t *testing.T) {
		p := New()
		data := []byte("HTTP/1.1 404 Not Found\r\nServer: Foo\r\n\r\n")
		result, consumed := p.ParseUntil(HeadersDone, data)
		require.Equal(t, httpwire.Accepted, result)
		require.Equal(t, string(data), string(consumed))
	})
}

func TestChunkSizeIndependence(t *testing.T) {
	message := wiregen.Response(200, "OK", wiregen.Headers(5))

	p := New()
	for n := 1; n <= len(message); n++ {
		p.Reset()
		got := parseInParts(t, p, HeadersDone, message, n)
		require.Equal(t, string(message), string(got), "split size %d", n)
	}
}

func TestPoison(t *testing.T) {
	p := NewAt(VersionDone)
	result, _ := p.ParseUntil(StatusDone, []byte("200x "))
	require.Equal(t, httpwire.Rejected, result)

	result, consumed := p.ParseUntil(StatusDone, []byte("200 "))
	require.Equal(t, httpwire.Rejected, result)
	require.Empty(t, consumed)

	p.ResetTo(VersionDone)
	result, _ = p.ParseUntil(StatusDone, []byte("200 "))
	require.Equal(t, httpwire.Accepted, result)
}
