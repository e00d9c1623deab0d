package token

import (
	"bytes"
	"io"
	"slices"
	"strings"
)

// LineSource buffers an io.Reader and hands it out one line at a time.
// Peeking tops up the buffer but never moves the read cursor, so the
// line count only advances on ReadLine.
type LineSource struct {
	reader io.Reader

	buf []byte
	pos int   // read cursor within buf
	err error // sticky reader error; io.EOF once the input is exhausted

	line       int // lines consumed so far
	bufferSize int
}

const defaultBufferSize = 4096

// NewLineSource creates a LineSource reading from r.
func NewLineSource(r io.Reader) *LineSource {
	return &LineSource{
		reader:     r,
		bufferSize: defaultBufferSize,
	}
}

// ReadLine returns the next line with its line terminator removed. A final
// line without a newline is returned as is; after that ReadLine returns
// io.EOF, or the error the reader failed with.
func (s *LineSource) ReadLine() (string, error) {
	n, nl := s.scanLine()
	if !nl && n == 0 {
		return "", s.readErr()
	}
	line := string(s.buf[s.pos : s.pos+n])
	s.pos += n
	if nl {
		s.pos++
	}
	s.line++
	return strings.TrimSuffix(line, "\r"), nil
}

// PeekLine returns the next line without consuming it.
func (s *LineSource) PeekLine() (string, error) {
	n, nl := s.scanLine()
	if !nl && n == 0 {
		return "", s.readErr()
	}
	return strings.TrimSuffix(string(s.buf[s.pos:s.pos+n]), "\r"), nil
}

// Peek returns up to n bytes following the read cursor without consuming
// them. Fewer than n bytes are returned only at the end of the input; that
// is not an error.
func (s *LineSource) Peek(n int) (string, error) {
	if n < 0 {
		return "", ErrPeekNegative
	}
	s.fill(n)
	k := min(n, len(s.buf)-s.pos)
	res := string(s.buf[s.pos : s.pos+k])
	if k < n && s.err != nil && s.err != io.EOF {
		return res, s.err
	}
	return res, nil
}

// LineNumber returns the number of lines consumed so far.
func (s *LineSource) LineNumber() int {
	return s.line
}

// AtEOF reports whether all input has been consumed.
func (s *LineSource) AtEOF() bool {
	s.fill(1)
	return s.pos == len(s.buf) && s.err != nil
}

func (s *LineSource) readErr() error {
	if s.err == nil {
		return io.EOF
	}
	return s.err
}

// scanLine finds the end of the line at the cursor, reading more input as
// needed. It returns the length of the line content and whether it is
// terminated by a newline.
func (s *LineSource) scanLine() (int, bool) {
	i := 0
	for {
		if j := bytes.IndexByte(s.buf[s.pos+i:], '\n'); j >= 0 {
			return i + j, true
		}
		i = len(s.buf) - s.pos
		if s.err != nil {
			return i, false
		}
		s.fill(i + 1)
	}
}

// fill reads until at least n bytes are buffered past the cursor or the
// reader fails.
func (s *LineSource) fill(n int) {
	for len(s.buf)-s.pos < n && s.err == nil {
		s.compact()
		if cap(s.buf)-len(s.buf) < s.bufferSize {
			s.buf = slices.Grow(s.buf, s.bufferSize)
		}
		m, err := s.reader.Read(s.buf[len(s.buf):cap(s.buf)])
		s.buf = s.buf[:len(s.buf)+m]
		if err != nil {
			s.err = err
		}
	}
}

func (s *LineSource) compact() {
	if s.pos == 0 || s.pos < len(s.buf)/2 {
		return
	}
	n := copy(s.buf, s.buf[s.pos:])
	s.buf = s.buf[:n]
	s.pos = 0
}
