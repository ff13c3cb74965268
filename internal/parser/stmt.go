package parser

import (
	"minim/internal/ast"
	"minim/internal/diag"
	"minim/internal/token"
)

// parseStmt parses one statement.
func (p *Parser) parseStmt() (ast.StmtID, error) {
	switch p.tok.Kind {
	case token.KwIf:
		return p.parseIf()
	case token.KwWhile:
		return p.parseWhile()
	case token.KwReturn:
		return p.parseReturn()
	case token.KwInput:
		return p.parseRead()
	case token.KwDisp:
		return p.parseWrite()
	case token.Ident:
		return p.parseLocStmt()
	default:
		return ast.NoStmtID, p.fail(diag.SynUnexpectedToken, p.tok.Span, "expected statement, found '"+p.tok.Text+"'")
	}
}

// parseLocStmt parses the statements that start with a location:
// assignment, ++/--, and call statements.
func (p *Parser) parseLocStmt() (ast.StmtID, error) {
	start := p.tok.Span
	loc, err := p.parseLoc()
	if err != nil {
		return ast.NoStmtID, err
	}

	switch p.tok.Kind {
	case token.Assign:
		p.advance()
		rhs, err := p.parseExpr()
		if err != nil {
			return ast.NoStmtID, err
		}
		semi, err := p.expect(token.Semicolon, diag.SynExpectSemicolon)
		if err != nil {
			return ast.NoStmtID, err
		}
		span := start.Cover(semi.Span)
		assign := p.builder.Exprs.NewAssign(start.Cover(p.builder.Exprs.Get(rhs).Span), loc, rhs)
		return p.builder.Stmts.NewSimple(ast.StmtAssign, span, assign), nil

	case token.PlusPlus, token.MinusMinus:
		kind := ast.StmtPostInc
		if p.tok.Kind == token.MinusMinus {
			kind = ast.StmtPostDec
		}
		p.advance()
		semi, err := p.expect(token.Semicolon, diag.SynExpectSemicolon)
		if err != nil {
			return ast.NoStmtID, err
		}
		return p.builder.Stmts.NewSimple(kind, start.Cover(semi.Span), loc), nil

	case token.LParen:
		// Call statements require a plain identifier callee.
		if p.builder.Exprs.Get(loc).Kind != ast.ExprIdent {
			return ast.NoStmtID, p.fail(diag.SynUnexpectedToken, p.tok.Span, "only a function name can be called")
		}
		call, err := p.parseCallRest(loc)
		if err != nil {
			return ast.NoStmtID, err
		}
		semi, err := p.expect(token.Semicolon, diag.SynExpectSemicolon)
		if err != nil {
			return ast.NoStmtID, err
		}
		return p.builder.Stmts.NewSimple(ast.StmtCall, start.Cover(semi.Span), call), nil

	default:
		return ast.NoStmtID, p.fail(diag.SynUnexpectedToken, p.tok.Span, "expected '=', '++', '--', or '(' after location")
	}
}

func (p *Parser) parseIf() (ast.StmtID, error) {
	start := p.tok.Span
	p.advance() // 'if'

	cond, err := p.parseParenExpr()
	if err != nil {
		return ast.NoStmtID, err
	}

	thenDecls, thenStmts, endSpan, err := p.parseBlock()
	if err != nil {
		return ast.NoStmtID, err
	}

	data := ast.StmtIfData{
		Cond:      cond,
		ThenDecls: thenDecls,
		ThenStmts: thenStmts,
	}

	if p.tok.Kind != token.KwElse {
		return p.builder.Stmts.NewIf(start.Cover(endSpan), data, false), nil
	}
	p.advance() // 'else'

	elseDecls, elseStmts, endSpan, err := p.parseBlock()
	if err != nil {
		return ast.NoStmtID, err
	}
	data.ElseDecls = elseDecls
	data.ElseStmts = elseStmts
	return p.builder.Stmts.NewIf(start.Cover(endSpan), data, true), nil
}

func (p *Parser) parseWhile() (ast.StmtID, error) {
	start := p.tok.Span
	p.advance() // 'while'

	cond, err := p.parseParenExpr()
	if err != nil {
		return ast.NoStmtID, err
	}
	decls, stmts, endSpan, err := p.parseBlock()
	if err != nil {
		return ast.NoStmtID, err
	}
	return p.builder.Stmts.NewWhile(start.Cover(endSpan), ast.StmtWhileData{
		Cond:  cond,
		Decls: decls,
		Stmts: stmts,
	}), nil
}

func (p *Parser) parseReturn() (ast.StmtID, error) {
	start := p.tok.Span
	p.advance() // 'return'

	expr := ast.NoExprID
	if p.tok.Kind != token.Semicolon {
		var err error
		expr, err = p.parseExpr()
		if err != nil {
			return ast.NoStmtID, err
		}
	}
	semi, err := p.expect(token.Semicolon, diag.SynExpectSemicolon)
	if err != nil {
		return ast.NoStmtID, err
	}
	return p.builder.Stmts.NewSimple(ast.StmtReturn, start.Cover(semi.Span), expr), nil
}

// parseRead parses 'input >> loc ;'.
func (p *Parser) parseRead() (ast.StmtID, error) {
	start := p.tok.Span
	p.advance() // 'input'

	if _, err := p.expect(token.Shr, diag.SynUnexpectedToken); err != nil {
		return ast.NoStmtID, err
	}
	loc, err := p.parseLoc()
	if err != nil {
		return ast.NoStmtID, err
	}
	semi, err := p.expect(token.Semicolon, diag.SynExpectSemicolon)
	if err != nil {
		return ast.NoStmtID, err
	}
	return p.builder.Stmts.NewSimple(ast.StmtRead, start.Cover(semi.Span), loc), nil
}

// parseWrite parses 'disp << exp ;'.
func (p *Parser) parseWrite() (ast.StmtID, error) {
	start := p.tok.Span
	p.advance() // 'disp'

	if _, err := p.expect(token.Shl, diag.SynUnexpectedToken); err != nil {
		return ast.NoStmtID, err
	}
	expr, err := p.parseExpr()
	if err != nil {
		return ast.NoStmtID, err
	}
	semi, err := p.expect(token.Semicolon, diag.SynExpectSemicolon)
	if err != nil {
		return ast.NoStmtID, err
	}
	return p.builder.Stmts.NewSimple(ast.StmtWrite, start.Cover(semi.Span), expr), nil
}

func (p *Parser) parseParenExpr() (ast.ExprID, error) {
	if _, err := p.expect(token.LParen, diag.SynExpectLParen); err != nil {
		return ast.NoExprID, err
	}
	expr, err := p.parseExpr()
	if err != nil {
		return ast.NoExprID, err
	}
	if _, err := p.expect(token.RParen, diag.SynExpectRParen); err != nil {
		return ast.NoExprID, err
	}
	return expr, nil
}
