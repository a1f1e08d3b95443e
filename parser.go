// parser.go — recursive-descent parser for MFL lines.
//
// OVERVIEW
// --------
// One REPL line is either a command (":define", ":load", or an opaque
// ":word") or a plain expression. The expression grammar is parsed by a
// small tower of mutually recursive routines, tightest-binding last:
//
//	expression -> term (('+'|'-') expression)?
//	term       -> call (('*'|'/') term)?
//	call       -> atom ('(' expression ')')?
//	atom       -> INTEGER | ID | '(' expression ')' | func-literal | if-exp
//
// Each level parses its operand, reads one more token, and either consumes
// it (operator at this level) or pushes it back for the enclosing level.
// Precedence is the routine hierarchy itself: term never sees '+', atom
// never sees '*'. There is never more than one pushed-back token.
//
// Associativity: the right operand of '+'/'-' ('*'/'/') recurses into the
// same level rather than looping, so operator chains nest to the right:
// "1 + 2 + 3" parses as (1 + (2 + 3)). That is the language's fixed,
// documented behavior and parser_test.go locks it in.
//
// Commands:
//
//	:define <id> <op> <expr>   — assignment-shaped CompoundExp(op, id, expr)
//	:load ...                  — placeholder identifier; loading is a stub
//	:<word>                    — opaque IdentifierExp for the caller
//
// Errors abort the current line at the point of detection; there is no
// resynchronization and no partial tree. The parser never prints.
package mfl

import "fmt"

// DiagKind tags the failure classes a parse can produce.
type DiagKind int

const (
	// DiagIllegalTerm — no atom-level alternative matches, a delimiter is
	// not the expected one, or tokens remain after a complete expression.
	DiagIllegalTerm DiagKind = iota
	// DiagMalformedConditional — a required 'then'/'else' piece of an
	// if-expression is missing.
	DiagMalformedConditional
	// DiagMalformedCommand — a recognized command is missing its trailing
	// tokens.
	DiagMalformedCommand
)

// ParseError is a syntax error with a 1-based line and 0-based column.
type ParseError struct {
	Kind DiagKind
	Line int
	Col  int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("PARSE ERROR at %d:%d: %s", e.Line, e.Col+1, e.Msg)
}

////////////////////////////////////////////////////////////////////////////////
//                                  PUBLIC API
////////////////////////////////////////////////////////////////////////////////

// ParseLine tokenizes one line of input and parses it into an expression
// tree. The error, when non-nil, is a *LexError or *ParseError.
func ParseLine(src string) (Exp, error) {
	sc, err := NewScanner(src)
	if err != nil {
		return nil, err
	}
	return Parse(sc)
}

// Parse reads one line's worth of tokens from ts and builds its tree.
// Command lines are dispatched on the leading ':'; anything else parses as
// a plain expression, after which a leftover token is a syntax error.
func Parse(ts TokenSource) (Exp, error) {
	p := &parser{ts: ts}

	cmd, err := p.commandToken()
	if err != nil {
		return nil, err
	}
	if cmd != "" {
		return p.command(cmd)
	}

	exp, err := p.expression()
	if err != nil {
		return nil, err
	}
	if err := p.endOfLine(); err != nil {
		return nil, err
	}
	return exp, nil
}

// ParseExpression parses a single expression from ts at the outermost
// precedence level, leaving any terminating token pushed back.
func ParseExpression(ts TokenSource) (Exp, error) {
	p := &parser{ts: ts}
	return p.expression()
}

//// END_OF_PUBLIC

////////////////////////////////////////////////////////////////////////////////
///////////////////////////// PRIVATE IMPLEMENTATION ///////////////////////////
////////////////////////////////////////////////////////////////////////////////

type parser struct {
	ts TokenSource
}

func (p *parser) errAt(kind DiagKind, tok Token, msg string) *ParseError {
	return &ParseError{Kind: kind, Line: tok.Line, Col: tok.Col, Msg: msg}
}

// expect consumes one token and checks it is of kind tt. Delimiters are
// always validated; a mismatch aborts instead of desynchronizing the stream.
func (p *parser) expect(tt TokenType, kind DiagKind, msg string) (Token, error) {
	tok := p.ts.NextToken()
	if tok.Type != tt {
		if tok.IsEOF() {
			return Token{}, p.errAt(kind, tok, msg+", got end of input")
		}
		return Token{}, p.errAt(kind, tok, fmt.Sprintf("%s, got %q", msg, tok.Lexeme))
	}
	return tok, nil
}

// endOfLine asserts the line has no tokens left.
func (p *parser) endOfLine() error {
	tok := p.ts.NextToken()
	if !tok.IsEOF() {
		return p.errAt(DiagIllegalTerm, tok, fmt.Sprintf("unexpected %q after expression", tok.Lexeme))
	}
	return nil
}

// ─────────────────────────── command dispatch ───────────────────────────

// commandToken peeks the line's first token. A leading ':' merges with the
// following word into a full command keyword (":define"); any other first
// token is pushed back and cmd is "".
func (p *parser) commandToken() (string, error) {
	tok := p.ts.NextToken()
	if tok.Type != COLON {
		if !tok.IsEOF() {
			p.ts.PushBack(tok)
		}
		return "", nil
	}
	word := p.ts.NextToken()
	if word.Type != ID && !isKeywordToken(word.Type) {
		return "", p.errAt(DiagMalformedCommand, word, "expected command word after ':'")
	}
	return ":" + word.Lexeme, nil
}

func isKeywordToken(tt TokenType) bool {
	switch tt {
	case FUNC, IF, THEN, ELSE:
		return true
	}
	return false
}

// command builds the top-level tree for a ':'-prefixed line.
func (p *parser) command(cmd string) (Exp, error) {
	switch cmd {
	case ":define":
		id, err := p.expect(ID, DiagMalformedCommand, "expected identifier after :define")
		if err != nil {
			return nil, err
		}
		op := p.ts.NextToken()
		if op.IsEOF() {
			return nil, p.errAt(DiagMalformedCommand, op, "expected operator in :define")
		}
		val, err := p.expression()
		if err != nil {
			return nil, err
		}
		if err := p.endOfLine(); err != nil {
			return nil, err
		}
		return NewCompoundExp(op.Lexeme, NewIdentifierExp(id.Lexeme), val), nil
	case ":load":
		// File loading is a stub: hand back a marker identifier and ignore
		// whatever follows on the line.
		p.drain()
		return NewIdentifierExp(":load"), nil
	default:
		// Opaque command: downstream decides what it means. The rest of the
		// line is not parsed.
		p.drain()
		return NewIdentifierExp(cmd), nil
	}
}

func (p *parser) drain() {
	for !p.ts.NextToken().IsEOF() {
	}
}

// ─────────────────────────── expression levels ──────────────────────────

// expression is the outermost level: additive operators over terms.
func (p *parser) expression() (Exp, error) {
	exp, err := p.term()
	if err != nil {
		return nil, err
	}
	tok := p.ts.NextToken()
	if tok.Type == PLUS || tok.Type == MINUS {
		rhs, err := p.expression()
		if err != nil {
			return nil, err
		}
		return NewCompoundExp(tok.Lexeme, exp, rhs), nil
	}
	if !tok.IsEOF() {
		p.ts.PushBack(tok)
	}
	return exp, nil
}

// term binds multiplicative operators over call results.
func (p *parser) term() (Exp, error) {
	exp, err := p.call()
	if err != nil {
		return nil, err
	}
	tok := p.ts.NextToken()
	if tok.Type == MULT || tok.Type == DIV {
		rhs, err := p.term()
		if err != nil {
			return nil, err
		}
		return NewCompoundExp(tok.Lexeme, exp, rhs), nil
	}
	if !tok.IsEOF() {
		p.ts.PushBack(tok)
	}
	return exp, nil
}

// call recognizes a single postfix application: atom '(' expression ')'.
func (p *parser) call() (Exp, error) {
	exp, err := p.atom()
	if err != nil {
		return nil, err
	}
	tok := p.ts.NextToken()
	if tok.Type == LROUND {
		arg, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(RROUND, DiagIllegalTerm, "expected ')' after call argument"); err != nil {
			return nil, err
		}
		return NewCallExp(exp, arg), nil
	}
	if !tok.IsEOF() {
		p.ts.PushBack(tok)
	}
	return exp, nil
}

// atom parses the tightest-binding forms. The leading token alone selects
// the alternative; anything unmatched is an illegal term.
func (p *parser) atom() (Exp, error) {
	tok := p.ts.NextToken()
	switch tok.Type {
	case INTEGER:
		return NewIntegerExp(tok.Literal.(int64)), nil
	case ID:
		return NewIdentifierExp(tok.Lexeme), nil
	case LROUND:
		exp, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(RROUND, DiagIllegalTerm, "expected ')' to close group"); err != nil {
			return nil, err
		}
		return exp, nil
	case FUNC:
		return p.funcLiteral()
	case IF:
		return p.conditional()
	case EOF:
		return nil, p.errAt(DiagIllegalTerm, tok, "unexpected end of input in expression")
	default:
		return nil, p.errAt(DiagIllegalTerm, tok, fmt.Sprintf("illegal term %q in expression", tok.Lexeme))
	}
}

// ───────────────────────────── sub-parsers ──────────────────────────────

// funcLiteral parses the remainder of: func '(' param ')' '{' expression '}'.
// Exactly one parameter; every delimiter is checked.
func (p *parser) funcLiteral() (Exp, error) {
	if _, err := p.expect(LROUND, DiagIllegalTerm, "expected '(' after 'func'"); err != nil {
		return nil, err
	}
	param, err := p.expect(ID, DiagIllegalTerm, "expected parameter name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(RROUND, DiagIllegalTerm, "expected ')' after parameter"); err != nil {
		return nil, err
	}
	if _, err := p.expect(LCURLY, DiagIllegalTerm, "expected '{' before function body"); err != nil {
		return nil, err
	}
	body, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(RCURLY, DiagIllegalTerm, "expected '}' after function body"); err != nil {
		return nil, err
	}
	return NewFuncExp(param.Lexeme, body), nil
}

// conditional parses the remainder of:
// if expression relop expression then expression else expression.
// The relop is any single token; it is recorded raw and judged at eval time.
func (p *parser) conditional() (Exp, error) {
	lhs, err := p.expression()
	if err != nil {
		return nil, err
	}
	relop := p.ts.NextToken()
	if relop.IsEOF() {
		return nil, p.errAt(DiagMalformedConditional, relop, "syntax error in 'if' expression: missing relational operator")
	}
	rhs, err := p.expression()
	if err != nil {
		return nil, retagIfTruncated(err, "incomplete condition")
	}
	if _, err := p.expect(THEN, DiagMalformedConditional, "syntax error in 'if' expression: expected 'then'"); err != nil {
		return nil, err
	}
	then, err := p.expression()
	if err != nil {
		return nil, retagIfTruncated(err, "missing 'then' branch")
	}
	if _, err := p.expect(ELSE, DiagMalformedConditional, "syntax error in 'if' expression: expected 'else'"); err != nil {
		return nil, err
	}
	els, err := p.expression()
	if err != nil {
		return nil, retagIfTruncated(err, "missing 'else' branch")
	}
	return NewIfExp(lhs, relop.Lexeme, rhs, then, els), nil
}

// retagIfTruncated reclassifies a ran-out-of-tokens failure inside an 'if'
// as a malformed conditional, which is what the user actually wrote.
func retagIfTruncated(err error, what string) error {
	pe, ok := err.(*ParseError)
	if !ok || pe.Kind != DiagIllegalTerm {
		return err
	}
	if pe.Msg != "unexpected end of input in expression" {
		return err
	}
	return &ParseError{
		Kind: DiagMalformedConditional,
		Line: pe.Line,
		Col:  pe.Col,
		Msg:  "syntax error in 'if' expression: " + what,
	}
}
