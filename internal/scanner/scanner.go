package scanner

// Pos is a position in the input.  Line and Col start at 0.
type Pos struct {
	Line int
	Col  int
}

// A Scanner is a cursor over an in-memory input.  It keeps track of the
// line and column of the current position and can record a token, i.e. the
// bytes read between a call to StartToken and a call to EndToken.  A
// recorded token can be abandoned with Rewind, which moves the cursor back
// to where the token started.
type Scanner struct {
	buf []byte

	// Current position in buf
	// 0 <= currentIndex <= len(buf)
	currentIndex int

	// Records lineno and colno of current position
	currentPos Pos

	// Position in buf of the currently recorded token.
	// -1 means not recording a token
	// tokenStartIndex <= currentIndex
	tokenStartIndex int
	tokenStartPos   Pos
}

func NewScanner(buf []byte) *Scanner {
	return &Scanner{
		buf:             buf,
		tokenStartIndex: -1,
	}
}

// Read returns the byte at the current position and advances past it.  If
// the end of input is reached, ok is false.
func (s *Scanner) Read() (b byte, ok bool) {
	if s.currentIndex >= len(s.buf) {
		return 0, false
	}
	b = s.buf[s.currentIndex]
	s.currentIndex++
	switch {
	case b == '\n':
		s.currentPos.Line++
		s.currentPos.Col = 0
	case !isContinuation(b):
		s.currentPos.Col++
	}
	return b, true
}

// Peek returns the byte at the current position without advancing.
func (s *Scanner) Peek() (b byte, ok bool) {
	if s.currentIndex >= len(s.buf) {
		return 0, false
	}
	return s.buf[s.currentIndex], true
}

// Rest returns the unread part of the input.  The returned slice must not be
// modified.
func (s *Scanner) Rest() []byte {
	return s.buf[s.currentIndex:]
}

// Skip advances n bytes, which must not contain a new line.
func (s *Scanner) Skip(n int) {
	for _, b := range s.buf[s.currentIndex : s.currentIndex+n] {
		if !isContinuation(b) {
			s.currentPos.Col++
		}
	}
	s.currentIndex += n
}

// SkipSpace advances past any white space.
func (s *Scanner) SkipSpace() {
	for s.currentIndex < len(s.buf) && IsSpace(s.buf[s.currentIndex]) {
		s.Read()
	}
}

// AtEOF is true when all the input has been read.
func (s *Scanner) AtEOF() bool {
	return s.currentIndex >= len(s.buf)
}

func (s *Scanner) CurrentPos() Pos {
	return s.currentPos
}

func (s *Scanner) StartToken() Pos {
	if s.tokenStartIndex >= 0 {
		panic("already in record mode")
	}
	s.tokenStartIndex = s.currentIndex
	s.tokenStartPos = s.currentPos
	return s.currentPos
}

// EndToken stops recording and returns the bytes read since StartToken.  The
// returned slice shares memory with the input.
func (s *Scanner) EndToken() []byte {
	if s.tokenStartIndex < 0 {
		panic("not in record mode")
	}
	tokBytes := s.buf[s.tokenStartIndex:s.currentIndex:s.currentIndex]
	s.tokenStartIndex = -1
	return tokBytes
}

// Rewind moves the cursor back to the start of the token being recorded.
// Recording carries on from there.
func (s *Scanner) Rewind() {
	if s.tokenStartIndex < 0 {
		panic("not in record mode")
	}
	s.currentIndex = s.tokenStartIndex
	s.currentPos = s.tokenStartPos
}

func isContinuation(b byte) bool {
	return b&0xC0 == 0x80
}
