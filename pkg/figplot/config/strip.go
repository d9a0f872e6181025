package config

import "errors"

// ErrUnterminatedComment is returned by Strip for a "/*" without a closing "*/".
var ErrUnterminatedComment = errors.New("unterminated block comment")

// Strip removes "//" line comments, "/* */" block comments and commas that
// directly precede a closing '}' or ']'. Removed bytes are replaced with
// spaces (newlines are kept) so byte offsets and line numbers in the result
// still point into the original document. Comment markers inside string
// literals are left alone.
func Strip(src []byte) ([]byte, error) {
	out := make([]byte, len(src))
	copy(out, src)

	if err := blankComments(out); err != nil {
		return nil, err
	}
	dropTrailingCommas(out)
	return out, nil
}

func blankComments(b []byte) error {
	for i := 0; i < len(b); i++ {
		switch {
		case b[i] == '"':
			i = skipString(b, i)
		case b[i] == '/' && i+1 < len(b) && b[i+1] == '/':
			for ; i < len(b) && b[i] != '\n'; i++ {
				if b[i] != '\r' {
					b[i] = ' '
				}
			}
		case b[i] == '/' && i+1 < len(b) && b[i+1] == '*':
			start := i
			b[i], b[i+1] = ' ', ' '
			i += 2
			for ; i < len(b); i++ {
				if b[i] == '*' && i+1 < len(b) && b[i+1] == '/' {
					b[i], b[i+1] = ' ', ' '
					i++
					break
				}
				if b[i] != '\n' && b[i] != '\r' {
					b[i] = ' '
				}
			}
			if i >= len(b) {
				return &ParseError{Offset: int64(start), Err: ErrUnterminatedComment}
			}
		}
	}
	return nil
}

func dropTrailingCommas(b []byte) {
	for i := 0; i < len(b); i++ {
		switch b[i] {
		case '"':
			i = skipString(b, i)
		case ',':
			j := i + 1
			for j < len(b) && isSpace(b[j]) {
				j++
			}
			if j < len(b) && (b[j] == '}' || b[j] == ']') {
				b[i] = ' '
			}
		}
	}
}

// skipString returns the index of the closing quote of the string literal
// opening at b[i], or the last index when the literal is unterminated.
func skipString(b []byte, i int) int {
	for i++; i < len(b); i++ {
		switch b[i] {
		case '\\':
			i++
		case '"':
			return i
		}
	}
	return len(b) - 1
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
