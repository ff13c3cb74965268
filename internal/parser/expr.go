package parser

import (
	"strconv"

	"minim/internal/ast"
	"minim/internal/diag"
	"minim/internal/token"
)

// Expression precedence, lowest first: assignment, ||, &&, equality and
// relational, additive, multiplicative, unary, primary.

// parseExpr parses a full expression. Assignment is right-associative
// and its target must be a location.
func (p *Parser) parseExpr() (ast.ExprID, error) {
	lhs, err := p.parseOr()
	if err != nil {
		return ast.NoExprID, err
	}
	if p.tok.Kind != token.Assign {
		return lhs, nil
	}

	if !p.isLoc(lhs) {
		return ast.NoExprID, p.fail(diag.SynBadAssignTarget, p.builder.Exprs.Get(lhs).Span, "assignment target must be a location")
	}
	p.advance() // '='
	rhs, err := p.parseExpr()
	if err != nil {
		return ast.NoExprID, err
	}
	span := p.builder.Exprs.Get(lhs).Span.Cover(p.builder.Exprs.Get(rhs).Span)
	return p.builder.Exprs.NewAssign(span, lhs, rhs), nil
}

func (p *Parser) isLoc(id ast.ExprID) bool {
	switch p.builder.Exprs.Get(id).Kind {
	case ast.ExprIdent, ast.ExprDot:
		return true
	default:
		return false
	}
}

func (p *Parser) parseOr() (ast.ExprID, error) {
	lhs, err := p.parseAnd()
	if err != nil {
		return ast.NoExprID, err
	}
	for p.tok.Kind == token.OrOr {
		p.advance()
		rhs, err := p.parseAnd()
		if err != nil {
			return ast.NoExprID, err
		}
		lhs = p.newBinary(ast.BinaryOr, lhs, rhs)
	}
	return lhs, nil
}

func (p *Parser) parseAnd() (ast.ExprID, error) {
	lhs, err := p.parseRelational()
	if err != nil {
		return ast.NoExprID, err
	}
	for p.tok.Kind == token.AndAnd {
		p.advance()
		rhs, err := p.parseRelational()
		if err != nil {
			return ast.NoExprID, err
		}
		lhs = p.newBinary(ast.BinaryAnd, lhs, rhs)
	}
	return lhs, nil
}

// parseRelational covers == != < > <= >= at one precedence level.
func (p *Parser) parseRelational() (ast.ExprID, error) {
	lhs, err := p.parseAdditive()
	if err != nil {
		return ast.NoExprID, err
	}
	for {
		var op ast.BinaryOp
		switch p.tok.Kind {
		case token.EqEq:
			op = ast.BinaryEq
		case token.BangEq:
			op = ast.BinaryNotEq
		case token.Lt:
			op = ast.BinaryLess
		case token.Gt:
			op = ast.BinaryGreater
		case token.LtEq:
			op = ast.BinaryLessEq
		case token.GtEq:
			op = ast.BinaryGreaterEq
		default:
			return lhs, nil
		}
		p.advance()
		rhs, err := p.parseAdditive()
		if err != nil {
			return ast.NoExprID, err
		}
		lhs = p.newBinary(op, lhs, rhs)
	}
}

func (p *Parser) parseAdditive() (ast.ExprID, error) {
	lhs, err := p.parseMultiplicative()
	if err != nil {
		return ast.NoExprID, err
	}
	for p.tok.Kind == token.Plus || p.tok.Kind == token.Minus {
		op := ast.BinaryAdd
		if p.tok.Kind == token.Minus {
			op = ast.BinarySub
		}
		p.advance()
		rhs, err := p.parseMultiplicative()
		if err != nil {
			return ast.NoExprID, err
		}
		lhs = p.newBinary(op, lhs, rhs)
	}
	return lhs, nil
}

func (p *Parser) parseMultiplicative() (ast.ExprID, error) {
	lhs, err := p.parseUnary()
	if err != nil {
		return ast.NoExprID, err
	}
	for p.tok.Kind == token.Star || p.tok.Kind == token.Slash {
		op := ast.BinaryMul
		if p.tok.Kind == token.Slash {
			op = ast.BinaryDiv
		}
		p.advance()
		rhs, err := p.parseUnary()
		if err != nil {
			return ast.NoExprID, err
		}
		lhs = p.newBinary(op, lhs, rhs)
	}
	return lhs, nil
}

func (p *Parser) parseUnary() (ast.ExprID, error) {
	switch p.tok.Kind {
	case token.Minus, token.Bang:
		op := ast.UnaryNeg
		if p.tok.Kind == token.Bang {
			op = ast.UnaryNot
		}
		start := p.tok.Span
		p.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return ast.NoExprID, err
		}
		span := start.Cover(p.builder.Exprs.Get(operand).Span)
		return p.builder.Exprs.NewUnary(span, op, operand), nil
	default:
		return p.parsePrimary()
	}
}

func (p *Parser) parsePrimary() (ast.ExprID, error) {
	switch p.tok.Kind {
	case token.IntLit:
		tok := p.tok
		p.advance()
		// Overflow was already diagnosed by the lexer; saturate here.
		value, err := strconv.ParseInt(tok.Text, 10, 32)
		if err != nil {
			value = int64(^uint32(0) >> 1)
		}
		return p.builder.Exprs.NewIntLit(tok.Span, value), nil

	case token.StringLit:
		tok := p.tok
		p.advance()
		return p.builder.Exprs.NewStrLit(tok.Span, p.strings.Intern(tok.Text)), nil

	case token.KwTrue:
		tok := p.tok
		p.advance()
		return p.builder.Exprs.NewBool(tok.Span, true), nil

	case token.KwFalse:
		tok := p.tok
		p.advance()
		return p.builder.Exprs.NewBool(tok.Span, false), nil

	case token.LParen:
		return p.parseParenExpr()

	case token.Ident:
		return p.parseLocOrCall()

	default:
		return ast.NoExprID, p.fail(diag.SynExpectExpr, p.tok.Span, "expected expression, found '"+p.tok.Text+"'")
	}
}

// parseLoc parses 'id (. id)*'.
func (p *Parser) parseLoc() (ast.ExprID, error) {
	loc, err := p.parseIdentExpr()
	if err != nil {
		return ast.NoExprID, err
	}
	for p.tok.Kind == token.Dot {
		p.advance()
		field, err := p.parseIdentExpr()
		if err != nil {
			return ast.NoExprID, err
		}
		span := p.builder.Exprs.Get(loc).Span.Cover(p.builder.Exprs.Get(field).Span)
		loc = p.builder.Exprs.NewDot(span, loc, field)
	}
	return loc, nil
}

// parseLocOrCall parses a location or a call expression, both of which
// start with an identifier. Calls are not locations: no dot may follow.
func (p *Parser) parseLocOrCall() (ast.ExprID, error) {
	ident, err := p.parseIdentExpr()
	if err != nil {
		return ast.NoExprID, err
	}
	if p.tok.Kind == token.LParen {
		return p.parseCallRest(ident)
	}

	loc := ident
	for p.tok.Kind == token.Dot {
		p.advance()
		field, err := p.parseIdentExpr()
		if err != nil {
			return ast.NoExprID, err
		}
		span := p.builder.Exprs.Get(loc).Span.Cover(p.builder.Exprs.Get(field).Span)
		loc = p.builder.Exprs.NewDot(span, loc, field)
	}
	return loc, nil
}

// parseCallRest parses '( actuals )' after the callee identifier.
func (p *Parser) parseCallRest(callee ast.ExprID) (ast.ExprID, error) {
	p.advance() // '('

	var args []ast.ExprID
	if p.tok.Kind != token.RParen {
		for {
			arg, err := p.parseExpr()
			if err != nil {
				return ast.NoExprID, err
			}
			args = append(args, arg)
			if p.tok.Kind != token.Comma {
				break
			}
			p.advance()
		}
	}
	rparen, err := p.expect(token.RParen, diag.SynExpectRParen)
	if err != nil {
		return ast.NoExprID, err
	}

	span := p.builder.Exprs.Get(callee).Span.Cover(rparen.Span)
	return p.builder.Exprs.NewCall(span, callee, args), nil
}

func (p *Parser) newBinary(op ast.BinaryOp, lhs, rhs ast.ExprID) ast.ExprID {
	span := p.builder.Exprs.Get(lhs).Span.Cover(p.builder.Exprs.Get(rhs).Span)
	return p.builder.Exprs.NewBinary(span, op, lhs, rhs)
}
