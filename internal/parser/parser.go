// Package parser builds the arena AST from a token stream.
//
// Unlike the semantic phase, a syntax error here is fatal: the first one
// is reported through the diag.Reporter and parsing stops with ErrSyntax.
// No tree is produced past a syntax error, so the driver never runs name
// analysis on a broken parse.
package parser

import (
	"errors"
	"fmt"

	"minim/internal/ast"
	"minim/internal/diag"
	"minim/internal/lexer"
	"minim/internal/source"
	"minim/internal/token"
)

// ErrSyntax marks a fatal parse failure. The diagnostic with the precise
// location was already emitted through the reporter.
var ErrSyntax = errors.New("syntax error")

// Parser holds the state of one parse.
type Parser struct {
	lx       *lexer.Lexer
	builder  *ast.Builder
	strings  *source.Interner
	reporter diag.Reporter
	tok      token.Token
}

// Options configures parser construction.
type Options struct {
	Reporter diag.Reporter
	Strings  *source.Interner
}

// New creates a parser over file. If opts.Strings is nil a fresh interner
// is allocated.
func New(file *source.File, builder *ast.Builder, opts Options) *Parser {
	strings := opts.Strings
	if strings == nil {
		strings = source.NewInterner()
	}
	p := &Parser{
		lx:       lexer.New(file, lexer.Options{Reporter: opts.Reporter}),
		builder:  builder,
		strings:  strings,
		reporter: opts.Reporter,
	}
	p.advance()
	return p
}

// Strings returns the interner used for identifier names.
func (p *Parser) Strings() *source.Interner {
	return p.strings
}

// ParseProgram parses the whole file into a program root.
func (p *Parser) ParseProgram() (ast.ProgramID, error) {
	start := p.tok.Span

	var decls []ast.DeclID
	for p.tok.Kind != token.EOF {
		decl, err := p.parseDecl()
		if err != nil {
			return ast.NoProgramID, err
		}
		decls = append(decls, decl)
	}

	span := start.Cover(p.tok.Span)
	return p.builder.Programs.New(span, decls), nil
}

func (p *Parser) advance() {
	p.tok = p.lx.Next()
}

// expect consumes the current token if it matches kind, otherwise fails
// with the given code.
func (p *Parser) expect(kind token.Kind, code diag.Code) (token.Token, error) {
	if p.tok.Kind != kind {
		return token.Token{}, p.fail(code, p.tok.Span, fmt.Sprintf("%s, found '%s'", code.Title(), p.tok.Text))
	}
	tok := p.tok
	p.advance()
	return tok, nil
}

// fail reports the first (and only) syntax diagnostic and returns the
// fatal parse error.
func (p *Parser) fail(code diag.Code, span source.Span, msg string) error {
	if p.reporter != nil {
		diag.ReportError(p.reporter, code, span, msg).Emit()
	}
	return fmt.Errorf("%s: %w", msg, ErrSyntax)
}

// parseIdent consumes an identifier and allocates its expression node.
func (p *Parser) parseIdentExpr() (ast.ExprID, error) {
	tok, err := p.expect(token.Ident, diag.SynExpectIdent)
	if err != nil {
		return ast.NoExprID, err
	}
	return p.builder.Exprs.NewIdent(tok.Span, p.strings.Intern(tok.Text)), nil
}
