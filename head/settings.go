package head

type Settings struct {
	// TokenSpace bounds the memory occupied by the accumulated tokens of a
	// single message head: method, URI, version, status message and every
	// header line all land in one buffer. Exceeding it fails the message,
	// not the connection.
	TokenSpace int
	// HeadersPrealloc is the number of header pairs to reserve seats for.
	HeadersPrealloc int
}

func DefaultSettings() Settings {
	return Settings{
		TokenSpace:      16384,
		HeadersPrealloc: 16,
	}
}

// prepare replaces unset fields with their defaults, so the zero Settings
// value stays usable.
func prepare(s Settings) Settings {
	defaults := DefaultSettings()

	if s.TokenSpace == 0 {
		s.TokenSpace = defaults.TokenSpace
	}
	if s.HeadersPrealloc == 0 {
		s.HeadersPrealloc = defaults.HeadersPrealloc
	}

	return s
}
