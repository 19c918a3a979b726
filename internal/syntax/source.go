package syntax

import (
	"io"
	"unicode/utf8"
)

// source is a rune reader over an in-memory buffer that tracks line and
// column of the current character.
type source struct {
	buf  []byte
	offs int // byte offset of the next rune

	filename string
	line     uint32
	col      uint32

	ch  rune  // current character, -1 at EOF
	err error // read error, if any
}

// init reads all of src and positions the reader on the first character.
// A read error leaves the reader at EOF and is reported by Err.
func (s *source) init(filename string, src io.Reader) {
	s.filename = filename
	s.line = 1
	s.col = 0
	s.ch = -1

	s.buf, s.err = io.ReadAll(src)
	if s.err != nil {
		s.buf = nil
	}
	s.nextch()
}

// nextch advances to the next character.
// (line, col) always describe s.ch after nextch returns.
func (s *source) nextch() {
	if s.ch == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}

	if s.offs >= len(s.buf) {
		s.ch = -1
		return
	}

	r, width := utf8.DecodeRune(s.buf[s.offs:])
	s.ch = r
	s.offs += width
}

// peek returns the character after s.ch without consuming it.
func (s *source) peek() rune {
	if s.offs >= len(s.buf) {
		return -1
	}
	r, _ := utf8.DecodeRune(s.buf[s.offs:])
	return r
}

// pos returns the position of the current character.
func (s *source) pos() Pos {
	return NewPos(s.filename, s.line, s.col)
}

// Err returns the error encountered while reading the source, if any.
func (s *source) Err() error {
	return s.err
}

func isLetter(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || r == '_'
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// lower returns the lowercase version of an ASCII letter; other runes are
// returned with bit 0x20 set, which never turns a non-letter into 'e'.
func lower(r rune) rune {
	return ('a' - 'A') | r
}

func isWhitespace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r' || r == '\n' || r == '\f' || r == '\v'
}
