package lexer

import (
	"strconv"

	"minim/internal/diag"
	"minim/internal/source"
	"minim/internal/token"
)

// Options configures lexer construction.
type Options struct {
	Reporter diag.Reporter
}

// Lexer scans one file into tokens. Lexical errors are reported and
// recovered from; lexing always reaches EOF.
type Lexer struct {
	file     *source.File
	cursor   Cursor
	reporter diag.Reporter
	look     *token.Token // one-token lookahead buffer
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:     file,
		cursor:   NewCursor(file),
		reporter: opts.Reporter,
	}
}

// Next returns the next significant token. After EOF it always returns EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	lx.skipTrivia()

	if lx.cursor.EOF() {
		return token.Token{
			Kind: token.EOF,
			Span: lx.cursor.SpanFrom(lx.cursor.Mark()),
		}
	}

	ch := lx.cursor.Peek()
	switch {
	case isIdentStart(ch):
		return lx.scanIdentOrKeyword()
	case isDigit(ch):
		return lx.scanNumber()
	case ch == '"':
		return lx.scanString()
	default:
		return lx.scanOperatorOrPunct()
	}
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// skipTrivia consumes whitespace, // line comments, and /* */ block
// comments. An unterminated block comment is reported once.
func (lx *Lexer) skipTrivia() {
	for !lx.cursor.EOF() {
		ch := lx.cursor.Peek()
		switch {
		case ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r':
			lx.cursor.Bump()

		case ch == '/':
			_, b1, ok := lx.cursor.Peek2()
			if !ok {
				return
			}
			switch b1 {
			case '/':
				for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
					lx.cursor.Bump()
				}
			case '*':
				lx.skipBlockComment()
			default:
				return
			}

		default:
			return
		}
	}
}

func (lx *Lexer) skipBlockComment() {
	mark := lx.cursor.Mark()
	lx.cursor.Bump() // '/'
	lx.cursor.Bump() // '*'
	for {
		if lx.cursor.EOF() {
			lx.report(diag.LexUnterminatedComment, lx.cursor.SpanFrom(mark), "unterminated block comment")
			return
		}
		if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '*' && b1 == '/' {
			lx.cursor.Bump()
			lx.cursor.Bump()
			return
		}
		lx.cursor.Bump()
	}
}

func (lx *Lexer) scanIdentOrKeyword() token.Token {
	mark := lx.cursor.Mark()
	for !lx.cursor.EOF() && isIdentContinue(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	span := lx.cursor.SpanFrom(mark)
	text := string(lx.file.Content[span.Start:span.End])

	if kind, ok := token.LookupKeyword(text); ok {
		return token.Token{Kind: kind, Span: span, Text: text}
	}
	return token.Token{Kind: token.Ident, Span: span, Text: text}
}

func (lx *Lexer) scanNumber() token.Token {
	mark := lx.cursor.Mark()
	for !lx.cursor.EOF() && isDigit(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	span := lx.cursor.SpanFrom(mark)
	text := string(lx.file.Content[span.Start:span.End])

	if _, err := strconv.ParseInt(text, 10, 32); err != nil {
		lx.report(diag.LexIntOverflow, span, "integer literal out of range")
	}
	return token.Token{Kind: token.IntLit, Span: span, Text: text}
}

func (lx *Lexer) scanString() token.Token {
	mark := lx.cursor.Mark()
	lx.cursor.Bump() // opening quote
	for {
		if lx.cursor.EOF() || lx.cursor.Peek() == '\n' {
			span := lx.cursor.SpanFrom(mark)
			lx.report(diag.LexUnterminatedString, span, "unterminated string literal")
			return token.Token{Kind: token.StringLit, Span: span, Text: string(lx.file.Content[span.Start:span.End])}
		}
		ch := lx.cursor.Bump()
		if ch == '\\' {
			esc := lx.cursor.Peek()
			switch esc {
			case 'n', 't', '"', '\\', '\'', '?':
				lx.cursor.Bump()
			default:
				span := lx.cursor.SpanFrom(mark)
				lx.report(diag.LexBadEscape, span, "bad escape sequence")
				if !lx.cursor.EOF() {
					lx.cursor.Bump()
				}
			}
			continue
		}
		if ch == '"' {
			span := lx.cursor.SpanFrom(mark)
			return token.Token{Kind: token.StringLit, Span: span, Text: string(lx.file.Content[span.Start:span.End])}
		}
	}
}

func (lx *Lexer) scanOperatorOrPunct() token.Token {
	mark := lx.cursor.Mark()
	ch := lx.cursor.Bump()

	kind := token.Invalid
	switch ch {
	case '(':
		kind = token.LParen
	case ')':
		kind = token.RParen
	case '{':
		kind = token.LBrace
	case '}':
		kind = token.RBrace
	case ';':
		kind = token.Semicolon
	case ',':
		kind = token.Comma
	case '.':
		kind = token.Dot
	case '*':
		kind = token.Star
	case '/':
		kind = token.Slash
	case '+':
		kind = token.Plus
		if lx.cursor.Peek() == '+' {
			lx.cursor.Bump()
			kind = token.PlusPlus
		}
	case '-':
		kind = token.Minus
		if lx.cursor.Peek() == '-' {
			lx.cursor.Bump()
			kind = token.MinusMinus
		}
	case '=':
		kind = token.Assign
		if lx.cursor.Peek() == '=' {
			lx.cursor.Bump()
			kind = token.EqEq
		}
	case '!':
		kind = token.Bang
		if lx.cursor.Peek() == '=' {
			lx.cursor.Bump()
			kind = token.BangEq
		}
	case '<':
		kind = token.Lt
		switch lx.cursor.Peek() {
		case '<':
			lx.cursor.Bump()
			kind = token.Shl
		case '=':
			lx.cursor.Bump()
			kind = token.LtEq
		}
	case '>':
		kind = token.Gt
		switch lx.cursor.Peek() {
		case '>':
			lx.cursor.Bump()
			kind = token.Shr
		case '=':
			lx.cursor.Bump()
			kind = token.GtEq
		}
	case '&':
		if lx.cursor.Peek() == '&' {
			lx.cursor.Bump()
			kind = token.AndAnd
		}
	case '|':
		if lx.cursor.Peek() == '|' {
			lx.cursor.Bump()
			kind = token.OrOr
		}
	}

	span := lx.cursor.SpanFrom(mark)
	text := string(lx.file.Content[span.Start:span.End])
	if kind == token.Invalid {
		lx.report(diag.LexUnknownChar, span, "unknown character '"+text+"'")
	}
	return token.Token{Kind: kind, Span: span, Text: text}
}

func (lx *Lexer) report(code diag.Code, span source.Span, msg string) {
	if lx.reporter == nil {
		return
	}
	diag.ReportError(lx.reporter, code, span, msg).Emit()
}

func isIdentStart(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIdentContinue(b byte) bool {
	return isIdentStart(b) || isDigit(b)
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
