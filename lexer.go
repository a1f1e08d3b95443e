// lexer.go — line scanner and one-token-pushback source for MFL.
//
// What this file does
// -------------------
// Turns one line of REPL input into a flat []Token, then serves those tokens
// through a Scanner that supports exactly one token of pushback. The parser
// (parser.go) never touches the raw source; it only sees tagged tokens.
//
// Token kinds are tagged at scan time (INTEGER vs ID vs keyword vs operator)
// so the parser can match on TokenType instead of comparing raw text.
//
// Pushback discipline
// -------------------
// The Scanner holds at most one pushed-back token. The parser's peek pattern
// is always read-then-PushBack, never two PushBacks in a row; a second
// outstanding pushback is an internal bug and panics rather than silently
// reordering the stream.
package mfl

import (
	"fmt"
	"strconv"
)

// TokenType represents the kind of token.
type TokenType int

const (
	// Special
	EOF TokenType = iota
	ILLEGAL

	// Literals & identifiers
	INTEGER
	ID

	// Keywords
	FUNC
	IF
	THEN
	ELSE

	// Operators
	PLUS
	MINUS
	MULT
	DIV
	ASSIGN // "="
	EQ     // "=="
	NEQ    // "!="
	LESS
	LESS_EQ
	GREATER
	GREATER_EQ

	// Punctuation
	LROUND // "("
	RROUND // ")"
	LCURLY // "{"
	RCURLY // "}"
	COLON  // ":" (command marker)
)

// Token is a lexical token with optional literal value.
type Token struct {
	Type    TokenType
	Lexeme  string      // raw text slice
	Literal interface{} // int64 for INTEGER
	Line    int
	Col     int
}

// IsEOF reports whether t marks the end of the input line.
func (t Token) IsEOF() bool { return t.Type == EOF }

// keywords map
var keywords = map[string]TokenType{
	"func": FUNC,
	"if":   IF,
	"then": THEN,
	"else": ELSE,
}

// ----- errors -----

type LexError struct {
	Line int
	Col  int
	Msg  string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("LEXICAL ERROR at %d:%d: %s", e.Line, e.Col, e.Msg)
}

// ----- lexer -----

// Lexer scans an MFL source line into tokens.
type Lexer struct {
	src    string
	start  int // start index of current token
	cur    int // current index
	line   int // 1-based
	col    int // 0-based column within line
	tokens []Token

	tokStartLine int
	tokStartCol  int
}

// NewLexer creates a new lexer for the given source.
func NewLexer(src string) *Lexer {
	return &Lexer{
		src:  src,
		line: 1,
		col:  0,
	}
}

func (l *Lexer) isAtEnd() bool { return l.cur >= len(l.src) }

func (l *Lexer) peek() (byte, bool) {
	if l.isAtEnd() {
		return 0, false
	}
	return l.src[l.cur], true
}

func (l *Lexer) advance() (byte, bool) {
	if l.isAtEnd() {
		return 0, false
	}
	ch := l.src[l.cur]
	l.cur++
	if ch == '\n' {
		l.line++
		l.col = 0
	} else {
		l.col++
	}
	return ch, true
}

func (l *Lexer) match(want byte) bool {
	if ch, ok := l.peek(); ok && ch == want {
		l.advance()
		return true
	}
	return false
}

func (l *Lexer) addToken(tt TokenType, lit interface{}) {
	l.tokens = append(l.tokens, Token{
		Type:    tt,
		Lexeme:  l.src[l.start:l.cur],
		Literal: lit,
		Line:    l.tokStartLine,
		Col:     l.tokStartCol,
	})
	l.start = l.cur
}

func (l *Lexer) skipWhitespace() {
	for !l.isAtEnd() {
		ch, _ := l.peek()
		switch ch {
		case ' ', '\r', '\n', '\t':
			l.advance()
			l.start = l.cur
		default:
			return
		}
	}
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
func isAlpha(b byte) bool { return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b == '_' }
func isAlphaNum(b byte) bool {
	return isAlpha(b) || isDigit(b)
}

func (l *Lexer) err(msg string) error {
	return &LexError{Line: l.tokStartLine, Col: l.tokStartCol, Msg: msg}
}

func (l *Lexer) scanInteger() error {
	for {
		ch, ok := l.peek()
		if !ok || !isDigit(ch) {
			break
		}
		l.advance()
	}
	text := l.src[l.start:l.cur]
	n, perr := strconv.ParseInt(text, 10, 64)
	if perr != nil {
		return l.err(fmt.Sprintf("integer literal out of range: %s", text))
	}
	l.addToken(INTEGER, n)
	return nil
}

func (l *Lexer) scanWord() {
	for {
		ch, ok := l.peek()
		if !ok || !isAlphaNum(ch) {
			break
		}
		l.advance()
	}
	word := l.src[l.start:l.cur]
	if tt, ok := keywords[word]; ok {
		l.addToken(tt, nil)
		return
	}
	l.addToken(ID, nil)
}

// Scan tokenizes the whole source and returns the token slice (without a
// trailing EOF token; the Scanner synthesizes EOF on exhaustion).
func (l *Lexer) Scan() ([]Token, error) {
	for {
		l.skipWhitespace()
		if l.isAtEnd() {
			return l.tokens, nil
		}
		l.tokStartLine = l.line
		l.tokStartCol = l.col

		ch, _ := l.advance()
		switch {
		case isDigit(ch):
			if err := l.scanInteger(); err != nil {
				return nil, err
			}
		case isAlpha(ch):
			l.scanWord()
		default:
			switch ch {
			case '+':
				l.addToken(PLUS, nil)
			case '-':
				l.addToken(MINUS, nil)
			case '*':
				l.addToken(MULT, nil)
			case '/':
				l.addToken(DIV, nil)
			case '=':
				if l.match('=') {
					l.addToken(EQ, nil)
				} else {
					l.addToken(ASSIGN, nil)
				}
			case '!':
				if l.match('=') {
					l.addToken(NEQ, nil)
				} else {
					return nil, l.err("unexpected character '!'")
				}
			case '<':
				if l.match('=') {
					l.addToken(LESS_EQ, nil)
				} else {
					l.addToken(LESS, nil)
				}
			case '>':
				if l.match('=') {
					l.addToken(GREATER_EQ, nil)
				} else {
					l.addToken(GREATER, nil)
				}
			case '(':
				l.addToken(LROUND, nil)
			case ')':
				l.addToken(RROUND, nil)
			case '{':
				l.addToken(LCURLY, nil)
			case ':':
				l.addToken(COLON, nil)
			case '}':
				l.addToken(RCURLY, nil)
			default:
				return nil, l.err(fmt.Sprintf("unexpected character %q", string(ch)))
			}
		}
	}
}

// ----- token source -----

// TokenSource is the parser-facing view of the scanner: pull one token at a
// time, push at most one back. Tests instrument this to check the pushback
// invariant.
type TokenSource interface {
	// NextToken returns the next token, or an EOF token once the line is
	// exhausted (EOF repeats forever).
	NextToken() Token
	// PushBack returns the most recently read token to the source. At most
	// one pushback may be outstanding.
	PushBack(tok Token)
}

// Scanner serves a scanned token slice with one slot of pushback.
type Scanner struct {
	toks    []Token
	i       int
	saved   Token
	hasSave bool
	line    int // position just past the last served token, for EOF reporting
	col     int
}

// NewScanner tokenizes src and returns a Scanner over the result.
func NewScanner(src string) (*Scanner, error) {
	toks, err := NewLexer(src).Scan()
	if err != nil {
		return nil, err
	}
	return &Scanner{toks: toks, line: 1}, nil
}

func (s *Scanner) NextToken() Token {
	if s.hasSave {
		s.hasSave = false
		return s.saved
	}
	if s.i >= len(s.toks) {
		return Token{Type: EOF, Line: s.line, Col: s.col}
	}
	tok := s.toks[s.i]
	s.i++
	s.line = tok.Line
	s.col = tok.Col + len(tok.Lexeme)
	return tok
}

func (s *Scanner) PushBack(tok Token) {
	if s.hasSave {
		panic("mfl: second pushback without an intervening read")
	}
	s.saved = tok
	s.hasSave = true
}
