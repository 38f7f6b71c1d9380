package domain

import "unicode/utf8"

// span is a half-open byte range [start, end) within a document's content.
type span struct {
	start int
	end   int
}

// tokenSpans returns the byte ranges of identifier-like tokens (letter,
// digit, or underscore runs) in content. Offsets are UTF-8 byte offsets, so
// they line up with the positions requests carry on the wire.
func tokenSpans(content string) []span {
	var spans []span

	start := -1

	for i := 0; i < len(content); {
		r, size := utf8.DecodeRuneInString(content[i:])

		if isTokenRune(r) {
			if start < 0 {
				start = i
			}
		} else if start >= 0 {
			spans = append(spans, span{start: start, end: i})
			start = -1
		}

		i += size
	}

	if start >= 0 {
		spans = append(spans, span{start: start, end: len(content)})
	}

	return spans
}

func isTokenRune(r rune) bool {
	switch {
	case r == '_':
		return true
	case r >= '0' && r <= '9':
		return true
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		return true
	case r >= utf8.RuneSelf:
		// Multi-byte runes count as identifier characters; Swift permits
		// non-ASCII identifiers and string content, and the probes must land
		// on their byte boundaries either way.
		return r != utf8.RuneError
	}

	return false
}
