package parser

import (
	"minim/internal/ast"
	"minim/internal/diag"
	"minim/internal/source"
	"minim/internal/token"
)

type structDeclMode uint8

const (
	allowStructDecl structDeclMode = iota
	// instanceOnly applies inside bodies and field lists, where a new
	// struct type cannot be declared.
	instanceOnly
)

// parseDecl parses one top-level declaration: a variable, a function, or
// a struct type.
func (p *Parser) parseDecl() (ast.DeclID, error) {
	if p.tok.Kind == token.KwStruct {
		return p.parseStructLeadDecl(allowStructDecl)
	}
	return p.parseTypedDecl()
}

// parseStructLeadDecl handles both forms that start with 'struct':
//
//	struct id { fields } ;   (type declaration)
//	struct id id ;           (instance variable)
func (p *Parser) parseStructLeadDecl(mode structDeclMode) (ast.DeclID, error) {
	structTok := p.tok
	p.advance()

	nameTok, err := p.expect(token.Ident, diag.SynExpectIdent)
	if err != nil {
		return ast.NoDeclID, err
	}
	nameID := p.strings.Intern(nameTok.Text)

	switch p.tok.Kind {
	case token.LBrace:
		if mode == instanceOnly {
			return ast.NoDeclID, p.fail(diag.SynUnexpectedToken, p.tok.Span, "struct declarations are only allowed at top level")
		}
		return p.parseStructFields(structTok.Span, nameID, nameTok.Span)

	case token.Ident:
		varTok := p.tok
		p.advance()
		semi, err := p.expect(token.Semicolon, diag.SynExpectSemicolon)
		if err != nil {
			return ast.NoDeclID, err
		}
		typeID := p.builder.Types.NewStruct(structTok.Span.Cover(nameTok.Span), nameID, nameTok.Span)
		return p.builder.Decls.NewVar(structTok.Span.Cover(semi.Span), ast.VarDeclData{
			Type:     typeID,
			Name:     p.strings.Intern(varTok.Text),
			NameSpan: varTok.Span,
		}), nil

	default:
		return ast.NoDeclID, p.fail(diag.SynExpectIdent, p.tok.Span, "expected identifier or '{' after struct name")
	}
}

// parseStructFields parses '{ varDeclList } ;' after 'struct id'.
func (p *Parser) parseStructFields(start source.Span, name source.StringID, nameSpan source.Span) (ast.DeclID, error) {
	if _, err := p.expect(token.LBrace, diag.SynExpectLBrace); err != nil {
		return ast.NoDeclID, err
	}

	var fields []ast.DeclID
	for p.tok.Kind != token.RBrace {
		if p.tok.Kind == token.EOF {
			return ast.NoDeclID, p.fail(diag.SynExpectRBrace, p.tok.Span, "expected '}' to close struct body")
		}
		field, err := p.parseVarDecl()
		if err != nil {
			return ast.NoDeclID, err
		}
		fields = append(fields, field)
	}
	p.advance() // '}'

	semi, err := p.expect(token.Semicolon, diag.SynExpectSemicolon)
	if err != nil {
		return ast.NoDeclID, err
	}

	return p.builder.Decls.NewStruct(start.Cover(semi.Span), ast.StructDeclData{
		Name:     name,
		NameSpan: nameSpan,
		Fields:   fields,
	}), nil
}

// parseTypedDecl parses a declaration that starts with a primitive type:
// either 'type id ;' or 'type id ( formals ) { body }'.
func (p *Parser) parseTypedDecl() (ast.DeclID, error) {
	typeID, typeSpan, err := p.parsePrimitiveType()
	if err != nil {
		return ast.NoDeclID, err
	}

	nameTok, err := p.expect(token.Ident, diag.SynExpectIdent)
	if err != nil {
		return ast.NoDeclID, err
	}
	nameID := p.strings.Intern(nameTok.Text)

	switch p.tok.Kind {
	case token.Semicolon:
		semi := p.tok
		p.advance()
		return p.builder.Decls.NewVar(typeSpan.Cover(semi.Span), ast.VarDeclData{
			Type:     typeID,
			Name:     nameID,
			NameSpan: nameTok.Span,
		}), nil

	case token.LParen:
		return p.parseFnRest(typeID, typeSpan, nameID, nameTok.Span)

	default:
		return ast.NoDeclID, p.fail(diag.SynExpectSemicolon, p.tok.Span, "expected ';' or '(' after declared name")
	}
}

// parseVarDecl parses a variable declaration inside a body or struct
// field list (functions and struct type declarations are not allowed
// there).
func (p *Parser) parseVarDecl() (ast.DeclID, error) {
	if p.tok.Kind == token.KwStruct {
		return p.parseStructLeadDecl(instanceOnly)
	}

	typeID, typeSpan, err := p.parsePrimitiveType()
	if err != nil {
		return ast.NoDeclID, err
	}
	nameTok, err := p.expect(token.Ident, diag.SynExpectIdent)
	if err != nil {
		return ast.NoDeclID, err
	}
	semi, err := p.expect(token.Semicolon, diag.SynExpectSemicolon)
	if err != nil {
		return ast.NoDeclID, err
	}
	return p.builder.Decls.NewVar(typeSpan.Cover(semi.Span), ast.VarDeclData{
		Type:     typeID,
		Name:     p.strings.Intern(nameTok.Text),
		NameSpan: nameTok.Span,
	}), nil
}

// parsePrimitiveType parses int, bool, or void.
func (p *Parser) parsePrimitiveType() (ast.TypeID, source.Span, error) {
	var kind ast.TypeKind
	switch p.tok.Kind {
	case token.KwInt:
		kind = ast.TypeInt
	case token.KwBool:
		kind = ast.TypeBool
	case token.KwVoid:
		kind = ast.TypeVoid
	default:
		return ast.NoTypeID, p.tok.Span, p.fail(diag.SynExpectType, p.tok.Span, "expected type, found '"+p.tok.Text+"'")
	}
	span := p.tok.Span
	p.advance()
	return p.builder.Types.New(kind, span), span, nil
}

// parseFormalType parses a formal parameter's type: a primitive or a
// struct type name.
func (p *Parser) parseFormalType() (ast.TypeID, source.Span, error) {
	if p.tok.Kind != token.KwStruct {
		return p.parsePrimitiveType()
	}
	structTok := p.tok
	p.advance()
	nameTok, err := p.expect(token.Ident, diag.SynExpectIdent)
	if err != nil {
		return ast.NoTypeID, structTok.Span, err
	}
	span := structTok.Span.Cover(nameTok.Span)
	return p.builder.Types.NewStruct(span, p.strings.Intern(nameTok.Text), nameTok.Span), span, nil
}

// parseFnRest parses '( formals ) { body }' for a function whose return
// type and name were already consumed.
func (p *Parser) parseFnRest(retType ast.TypeID, start source.Span, name source.StringID, nameSpan source.Span) (ast.DeclID, error) {
	p.advance() // '('

	var formals []ast.DeclID
	if p.tok.Kind != token.RParen {
		for {
			formal, err := p.parseFormal()
			if err != nil {
				return ast.NoDeclID, err
			}
			formals = append(formals, formal)
			if p.tok.Kind != token.Comma {
				break
			}
			p.advance()
		}
	}
	if _, err := p.expect(token.RParen, diag.SynExpectRParen); err != nil {
		return ast.NoDeclID, err
	}

	bodyDecls, bodyStmts, endSpan, err := p.parseBlock()
	if err != nil {
		return ast.NoDeclID, err
	}

	return p.builder.Decls.NewFn(start.Cover(endSpan), ast.FnDeclData{
		ReturnType: retType,
		Name:       name,
		NameSpan:   nameSpan,
		Formals:    formals,
		BodyDecls:  bodyDecls,
		BodyStmts:  bodyStmts,
	}), nil
}

// parseFormal parses one 'type id' formal parameter.
func (p *Parser) parseFormal() (ast.DeclID, error) {
	typeID, typeSpan, err := p.parseFormalType()
	if err != nil {
		return ast.NoDeclID, err
	}
	nameTok, err := p.expect(token.Ident, diag.SynExpectIdent)
	if err != nil {
		return ast.NoDeclID, err
	}
	return p.builder.Decls.NewFormal(typeSpan.Cover(nameTok.Span), ast.FormalDeclData{
		Type:     typeID,
		Name:     p.strings.Intern(nameTok.Text),
		NameSpan: nameTok.Span,
	}), nil
}

// parseBlock parses '{ varDeclList stmtList }' and returns the two lists
// plus the closing brace span. Declarations precede statements, per the
// grammar.
func (p *Parser) parseBlock() ([]ast.DeclID, []ast.StmtID, source.Span, error) {
	if _, err := p.expect(token.LBrace, diag.SynExpectLBrace); err != nil {
		return nil, nil, p.tok.Span, err
	}

	var decls []ast.DeclID
	for p.tok.IsType() {
		// 'struct id {' cannot appear here; parseVarDecl rejects it.
		decl, err := p.parseVarDecl()
		if err != nil {
			return nil, nil, p.tok.Span, err
		}
		decls = append(decls, decl)
	}

	var stmts []ast.StmtID
	for p.tok.Kind != token.RBrace {
		if p.tok.Kind == token.EOF {
			return nil, nil, p.tok.Span, p.fail(diag.SynExpectRBrace, p.tok.Span, "expected '}' to close block")
		}
		stmt, err := p.parseStmt()
		if err != nil {
			return nil, nil, p.tok.Span, err
		}
		stmts = append(stmts, stmt)
	}
	end := p.tok.Span
	p.advance() // '}'

	return decls, stmts, end, nil
}
