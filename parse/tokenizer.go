package parse

// Tokenizer design from text/template, adapted to a synchronous, in-place,
// allocation-free scanner: no goroutine, no channel, and item payloads are
// slices into the caller's own buffer rather than copied strings.

// TokenKind identifies the kind of a scanned token.
type TokenKind int

const (
	tokenEOF TokenKind = iota
	tokenOpen
	tokenClose
	tokenDivider
	tokenItem
)

// Sentinel bytes substituted for the \? and \* wildcard escapes. Chosen to
// be invalid as normal printable text.
const (
	WildOne byte = 0x01 // \?
	WildAny byte = 0x02 // \*
)

// token is a single lexeme. value is only meaningful when kind is
// tokenItem; it is a slice directly into the tokenizer's input buffer
// (possibly shortened in place by escape collapsing) and is NOT
// NUL-terminated. offset is the byte position in the input where the
// token began, kept for diagnostics.
type token struct {
	kind   TokenKind
	value  []byte
	offset int
}

// stream reads tokens from a mutable byte buffer. It owns no heap memory:
// item values are slices of data, and escape collapsing happens by
// overwriting bytes already present in data.
type stream struct {
	data  []byte
	index int
}

// open binds a token stream to the given buffer, starting at offset 0. The
// stream does not copy data; in-place escape collapsing mutates it.
func open(data []byte) stream {
	return stream{data: data}
}

// close zeroes the stream view. It does not free or alter the underlying
// buffer.
func (s *stream) close() {
	s.data = nil
	s.index = 0
}

func (s *stream) peekByte(offset int) int {
	if s.index+offset < len(s.data) {
		return int(s.data[s.index+offset])
	}
	return -1
}

func (s *stream) advance() {
	s.index++
}

func isSpace(ch int) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n'
}

// pop consumes bytes until the next token boundary and returns the token.
// Once EOF is produced, further calls keep producing EOF.
func (s *stream) pop() token {
	for {
		ch := s.peekByte(0)

		if isSpace(ch) {
			s.advance()
			continue
		}

		offset := s.index

		switch ch {
		case '[':
			s.advance()
			return token{kind: tokenOpen, offset: offset}
		case ']':
			s.advance()
			return token{kind: tokenClose, offset: offset}
		case '|':
			s.advance()
			if s.peekByte(0) == '|' {
				s.skipLineComment()
				continue
			}
			return token{kind: tokenDivider, offset: offset}
		case -1:
			return token{kind: tokenEOF, offset: offset}
		default:
			return s.scanItem(offset)
		}
	}
}

// skipLineComment discards bytes through the next \r, \n, or EOF. The
// first '|' of the "||" prefix has already been consumed; the second is
// discarded here along with the rest of the line.
func (s *stream) skipLineComment() {
	for {
		ch := s.peekByte(0)
		s.advance()
		if ch == '\n' || ch == '\r' || ch == -1 {
			return
		}
	}
}

// translateEscape implements the two-byte escape substitution table from
// spec.md §4.1.
func translateEscape(code byte) byte {
	switch code {
	case 'n':
		return '\n'
	case 'r':
		return '\r'
	case 't':
		return '\t'
	case 's':
		return ' '
	case '?':
		return WildOne
	case '*':
		return WildAny
	default:
		return code
	}
}

func isItemTerminator(ch int) bool {
	return isSpace(ch) || ch == -1 || ch == '[' || ch == ']' || ch == '|'
}

// scanItem scans a word item starting at the stream's current position,
// collapsing escape sequences in place. It implements the algorithm from
// spec.md §4.1: a fast path copies nothing as long as no escape has been
// seen; on the first '\' a write cursor trails the read cursor and every
// subsequent byte is shifted left by the accumulated gap.
func (s *stream) scanItem(offset int) token {
	start := s.index
	write := start
	shifting := false

	for {
		ch := s.peekByte(0)
		if isItemTerminator(ch) {
			break
		}

		if ch == '\\' {
			s.advance()
			escCh := s.peekByte(0)
			if escCh == -1 {
				break
			}
			s.data[write] = translateEscape(byte(escCh))
			shifting = true
			write++
			s.advance()
			continue
		}

		if shifting {
			s.data[write] = byte(ch)
		}
		write++
		s.advance()
	}

	return token{kind: tokenItem, value: s.data[start:write], offset: offset}
}
