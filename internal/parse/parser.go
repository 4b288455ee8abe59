// Package parse is the recursive-descent parser taking the token stream
// produced by internal/lexer to the AST defined by internal/ast
// (spec.md §3.3). Operator precedence, loosest to tightest: `||`, `&&`,
// comparisons, `..` range, additive (`+ -`), multiplicative (`* / %`).
package parse

import (
	"github.com/eZanmoto/seed/internal/ast"
	"github.com/eZanmoto/seed/internal/lexer"
	"github.com/eZanmoto/seed/internal/token"
	"github.com/eZanmoto/seed/internal/verror"
)

// Parse tokenizes and parses src into a top-level block of statements.
func Parse(src string) (*ast.Block, *verror.Error) {
	toks, err := lexer.Tokenize(src)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	stmts, err := p.parseStmts(token.EOF)
	if err != nil {
		return nil, err
	}
	if !p.check(token.EOF) {
		t := p.peek()
		return nil, verror.NewSyntax(verror.IDInvalidSyntax, t.Line, t.Col, "unexpected '"+t.Lexeme+"'")
	}
	return &ast.Block{Stmts: stmts}, nil
}

type parser struct {
	toks []token.Token
	pos  int
}

func (p *parser) peek() token.Token {
	return p.toks[p.pos]
}

func (p *parser) peekAt(n int) token.Token {
	idx := p.pos + n
	if idx >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[idx]
}

func (p *parser) check(k token.Kind) bool {
	return p.peek().Kind == k
}

func (p *parser) advance() token.Token {
	t := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

func (p *parser) expect(k token.Kind) (token.Token, *verror.Error) {
	if !p.check(k) {
		t := p.peek()
		if t.Kind == token.EOF {
			switch k {
			case token.RBrace:
				return t, verror.NewSyntax(verror.IDUnclosedBlock, t.Line, t.Col)
			case token.RParen:
				return t, verror.NewSyntax(verror.IDUnclosedParen, t.Line, t.Col)
			default:
				return t, verror.NewSyntax(verror.IDUnexpectedEOF, t.Line, t.Col)
			}
		}
		return t, verror.NewSyntax(verror.IDInvalidSyntax, t.Line, t.Col, "expected "+k.String()+", got '"+t.Lexeme+"'")
	}
	return p.advance(), nil
}

func basePos(t token.Token) ast.Base {
	return ast.Base{Pos: ast.Pos{Line: t.Line, Col: t.Col}}
}

// --- Statements -----------------------------------------------------------

func (p *parser) parseStmts(end token.Kind) ([]ast.Stmt, *verror.Error) {
	var stmts []ast.Stmt
	for !p.check(end) && !p.check(token.EOF) {
		s, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, s)
	}
	return stmts, nil
}

func (p *parser) parseBlock() (*ast.Block, *verror.Error) {
	start, err := p.expect(token.LBrace)
	if err != nil {
		return nil, err
	}
	stmts, err := p.parseStmts(token.RBrace)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RBrace); err != nil {
		return nil, err
	}
	return &ast.Block{Base: basePos(start), Stmts: stmts}, nil
}

func (p *parser) parseStmt() (ast.Stmt, *verror.Error) {
	switch p.peek().Kind {
	case token.LBrace:
		return p.parseBlock()
	case token.KwIf:
		return p.parseIf()
	case token.KwWhile:
		return p.parseWhile()
	case token.KwFor:
		return p.parseFor()
	case token.KwFn:
		return p.parseFuncDecl()
	case token.KwBreak:
		t := p.advance()
		if _, err := p.expect(token.Semicolon); err != nil {
			return nil, err
		}
		return &ast.Break{Base: basePos(t)}, nil
	case token.KwContinue:
		t := p.advance()
		if _, err := p.expect(token.Semicolon); err != nil {
			return nil, err
		}
		return &ast.Continue{Base: basePos(t)}, nil
	case token.KwReturn:
		return p.parseReturn()
	default:
		return p.parseSimpleStmt()
	}
}

func (p *parser) parseIf() (ast.Stmt, *verror.Error) {
	start := p.advance() // 'if'
	var branches []ast.IfBranch
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	branches = append(branches, ast.IfBranch{Cond: cond, Body: body})

	var elseBlock *ast.Block
	for p.check(token.KwElse) {
		p.advance()
		if p.check(token.KwIf) {
			p.advance()
			c, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			b, err := p.parseBlock()
			if err != nil {
				return nil, err
			}
			branches = append(branches, ast.IfBranch{Cond: c, Body: b})
			continue
		}
		b, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		elseBlock = b
		break
	}

	return &ast.If{Base: basePos(start), Branches: branches, Else: elseBlock}, nil
}

func (p *parser) parseWhile() (ast.Stmt, *verror.Error) {
	start := p.advance() // 'while'
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.While{Base: basePos(start), Cond: cond, Body: body}, nil
}

func (p *parser) parseFor() (ast.Stmt, *verror.Error) {
	start := p.advance() // 'for'
	pattern, err := p.parsePatternTarget()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.KwIn); err != nil {
		return nil, err
	}
	iter, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.For{Base: basePos(start), Pattern: pattern, Iter: iter, Body: body}, nil
}

func (p *parser) parseFuncDecl() (ast.Stmt, *verror.Error) {
	start := p.advance() // 'fn'
	name, err := p.expect(token.Ident)
	if err != nil {
		return nil, err
	}
	params, collect, err := p.parseParams()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.FuncDecl{Base: basePos(start), Name: name.Lexeme, Params: params, Collect: collect, Body: body}, nil
}

func (p *parser) parseReturn() (ast.Stmt, *verror.Error) {
	start := p.advance() // 'return'
	var x ast.Expr
	if !p.check(token.Semicolon) {
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		x = e
	}
	if _, err := p.expect(token.Semicolon); err != nil {
		return nil, err
	}
	return &ast.Return{Base: basePos(start), X: x}, nil
}

// parseSimpleStmt parses ExprStmt, Declare, Assign, and OpAssign, which all
// begin with an ordinary expression (possibly a list/object pattern
// literal) and are disambiguated by the operator that follows it.
func (p *parser) parseSimpleStmt() (ast.Stmt, *verror.Error) {
	startTok := p.peek()
	lhs, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	switch p.peek().Kind {
	case token.Declare:
		p.advance()
		rhs, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.Semicolon); err != nil {
			return nil, err
		}
		return &ast.Declare{Base: basePos(startTok), LHS: lhs, RHS: rhs}, nil

	case token.Assign:
		p.advance()
		rhs, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.Semicolon); err != nil {
			return nil, err
		}
		return &ast.Assign{Base: basePos(startTok), LHS: lhs, RHS: rhs}, nil

	case token.PlusEq, token.MinusEq, token.StarEq, token.SlashEq, token.PercentEq:
		opTok := p.advance()
		rhs, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.Semicolon); err != nil {
			return nil, err
		}
		return &ast.OpAssign{Base: basePos(startTok), LHS: lhs, Op: opAssignBase(opTok.Kind), RHS: rhs}, nil

	default:
		if _, err := p.expect(token.Semicolon); err != nil {
			return nil, err
		}
		return &ast.ExprStmt{Base: basePos(startTok), X: lhs}, nil
	}
}

func opAssignBase(k token.Kind) string {
	switch k {
	case token.PlusEq:
		return "+"
	case token.MinusEq:
		return "-"
	case token.StarEq:
		return "*"
	case token.SlashEq:
		return "/"
	case token.PercentEq:
		return "%"
	}
	return "?"
}

// parsePatternTarget parses a `for` loop's binding target: an identifier,
// `_`, or a nested list/object pattern. It reuses the same list/object
// literal grammar as general expressions (see parseListLit/parseObjectLit)
// since both accept the `..name` collect form.
func (p *parser) parsePatternTarget() (ast.Expr, *verror.Error) {
	return p.parsePrimary()
}

// --- Expressions, precedence climbing (loosest to tightest) --------------

func (p *parser) parseExpr() (ast.Expr, *verror.Error) {
	r, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if r.spread {
		return nil, verror.NewSyntax(verror.IDInvalidSyntax, r.x.Position().Line, r.x.Position().Col, "'..' spread is only valid in a list literal or call argument")
	}
	return r.x, nil
}

// exprResult carries the postfix-spread flag (spec.md §4.3.4: `xs..`)
// up through the precedence chain so only the topmost relevant caller
// (list-literal items, call arguments) needs to see it.
type exprResult struct {
	x      ast.Expr
	spread bool
}

func (p *parser) parseOr() (exprResult, *verror.Error) {
	lhs, err := p.parseAnd()
	if err != nil {
		return exprResult{}, err
	}
	for p.check(token.OrOr) {
		if lhs.spread {
			return exprResult{}, p.spreadMisuseErr(lhs.x)
		}
		opTok := p.advance()
		rhs, err := p.parseAnd()
		if err != nil {
			return exprResult{}, err
		}
		if rhs.spread {
			return exprResult{}, p.spreadMisuseErr(rhs.x)
		}
		lhs = exprResult{x: &ast.BinaryOp{Base: basePos(opTok), Op: "||", LHS: lhs.x, RHS: rhs.x}}
	}
	return lhs, nil
}

func (p *parser) parseAnd() (exprResult, *verror.Error) {
	lhs, err := p.parseComparison()
	if err != nil {
		return exprResult{}, err
	}
	for p.check(token.AndAnd) {
		if lhs.spread {
			return exprResult{}, p.spreadMisuseErr(lhs.x)
		}
		opTok := p.advance()
		rhs, err := p.parseComparison()
		if err != nil {
			return exprResult{}, err
		}
		if rhs.spread {
			return exprResult{}, p.spreadMisuseErr(rhs.x)
		}
		lhs = exprResult{x: &ast.BinaryOp{Base: basePos(opTok), Op: "&&", LHS: lhs.x, RHS: rhs.x}}
	}
	return lhs, nil
}

var comparisonOps = map[token.Kind]string{
	token.EqEq:   "==",
	token.NotEq:  "!=",
	token.EqEqEq: "===",
	token.Lt:     "<",
	token.Le:     "<=",
	token.Gt:     ">",
	token.Ge:     ">=",
}

func (p *parser) parseComparison() (exprResult, *verror.Error) {
	lhs, err := p.parseRange()
	if err != nil {
		return exprResult{}, err
	}
	for {
		op, ok := comparisonOps[p.peek().Kind]
		if !ok {
			break
		}
		if lhs.spread {
			return exprResult{}, p.spreadMisuseErr(lhs.x)
		}
		opTok := p.advance()
		rhs, err := p.parseRange()
		if err != nil {
			return exprResult{}, err
		}
		if rhs.spread {
			return exprResult{}, p.spreadMisuseErr(rhs.x)
		}
		lhs = exprResult{x: &ast.BinaryOp{Base: basePos(opTok), Op: op, LHS: lhs.x, RHS: rhs.x}}
	}
	return lhs, nil
}

// parseRange handles `a..b` and disambiguates it from a postfix spread
// marker `xs..` by checking whether the token after `..` can start an
// expression; if it cannot (comma, `]`, `)`), `..` is a spread suffix.
func (p *parser) parseRange() (exprResult, *verror.Error) {
	lhs, err := p.parseAdditive()
	if err != nil {
		return exprResult{}, err
	}
	if !p.check(token.DotDot) {
		return exprResult{x: lhs}, nil
	}
	if p.spreadTerminatorFollows() {
		p.advance()
		return exprResult{x: lhs, spread: true}, nil
	}
	opTok := p.advance()
	rhs, err := p.parseAdditive()
	if err != nil {
		return exprResult{}, err
	}
	return exprResult{x: &ast.Range{Base: basePos(opTok), Start: lhs, End: rhs}}, nil
}

func (p *parser) spreadTerminatorFollows() bool {
	switch p.peekAt(1).Kind {
	case token.Comma, token.RBracket, token.RParen:
		return true
	default:
		return false
	}
}

func (p *parser) spreadMisuseErr(x ast.Expr) *verror.Error {
	pos := x.Position()
	return verror.NewSyntax(verror.IDInvalidSyntax, pos.Line, pos.Col, "'..' spread is only valid in a list literal or call argument")
}

func (p *parser) parseAdditive() (ast.Expr, *verror.Error) {
	lhs, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for p.check(token.Plus) || p.check(token.Minus) {
		opTok := p.advance()
		rhs, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		lhs = &ast.BinaryOp{Base: basePos(opTok), Op: opTok.Lexeme, LHS: lhs, RHS: rhs}
	}
	return lhs, nil
}

func (p *parser) parseMultiplicative() (ast.Expr, *verror.Error) {
	lhs, err := p.parsePostfix()
	if err != nil {
		return nil, err
	}
	for p.check(token.Star) || p.check(token.Slash) || p.check(token.Percent) {
		opTok := p.advance()
		rhs, err := p.parsePostfix()
		if err != nil {
			return nil, err
		}
		lhs = &ast.BinaryOp{Base: basePos(opTok), Op: opTok.Lexeme, LHS: lhs, RHS: rhs}
	}
	return lhs, nil
}

// parsePostfix handles call, index, range-index, and property-access
// chains applied to a primary expression: `a.b(1)[2]`.
func (p *parser) parsePostfix() (ast.Expr, *verror.Error) {
	x, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for {
		switch p.peek().Kind {
		case token.Dot:
			dotTok := p.advance()
			name, err := p.expect(token.Ident)
			if err != nil {
				return nil, err
			}
			x = &ast.PropAccess{Base: basePos(dotTok), X: x, Name: name.Lexeme, TypeProp: false}

		case token.Arrow:
			arrowTok := p.advance()
			name, err := p.expect(token.Ident)
			if err != nil {
				return nil, err
			}
			x = &ast.PropAccess{Base: basePos(arrowTok), X: x, Name: name.Lexeme, TypeProp: true}

		case token.LParen:
			parenTok := p.advance()
			args, err := p.parseCallArgs()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(token.RParen); err != nil {
				return nil, err
			}
			x = &ast.Call{Base: basePos(parenTok), Fn: x, Args: args}

		case token.LBracket:
			x, err = p.parseIndexOrRange(x)
			if err != nil {
				return nil, err
			}

		default:
			return x, nil
		}
	}
}

func (p *parser) parseIndexOrRange(x ast.Expr) (ast.Expr, *verror.Error) {
	start := p.advance() // '['

	if p.check(token.Colon) {
		p.advance()
		var end ast.Expr
		if !p.check(token.RBracket) {
			e, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			end = e
		}
		if _, err := p.expect(token.RBracket); err != nil {
			return nil, err
		}
		return &ast.RangeIndex{Base: basePos(start), X: x, Start: nil, End: end}, nil
	}

	first, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if p.check(token.Colon) {
		p.advance()
		var end ast.Expr
		if !p.check(token.RBracket) {
			e, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			end = e
		}
		if _, err := p.expect(token.RBracket); err != nil {
			return nil, err
		}
		return &ast.RangeIndex{Base: basePos(start), X: x, Start: first, End: end}, nil
	}

	if _, err := p.expect(token.RBracket); err != nil {
		return nil, err
	}
	return &ast.Index{Base: basePos(start), X: x, Loc: first}, nil
}

func (p *parser) parseCallArgs() ([]ast.ListItem, *verror.Error) {
	var items []ast.ListItem
	if p.check(token.RParen) {
		return items, nil
	}
	for {
		x, spread, err := p.parseItem()
		if err != nil {
			return nil, err
		}
		items = append(items, ast.ListItem{X: x, IsSpread: spread})
		if !p.check(token.Comma) {
			break
		}
		p.advance()
		if p.check(token.RParen) {
			break
		}
	}
	return items, nil
}

func (p *parser) parseItem() (ast.Expr, bool, *verror.Error) {
	r, err := p.parseOr()
	if err != nil {
		return nil, false, err
	}
	return r.x, r.spread, nil
}

// --- Primary expressions ----------------------------------------------------

func (p *parser) parsePrimary() (ast.Expr, *verror.Error) {
	t := p.peek()
	switch t.Kind {
	case token.KwNull:
		p.advance()
		return &ast.NullLit{Base: basePos(t)}, nil

	case token.KwTrue:
		p.advance()
		return &ast.BoolLit{Base: basePos(t), Value: true}, nil

	case token.KwFalse:
		p.advance()
		return &ast.BoolLit{Base: basePos(t), Value: false}, nil

	case token.Int:
		p.advance()
		n, err := parseIntLexeme(t)
		if err != nil {
			return nil, err
		}
		return &ast.IntLit{Base: basePos(t), Value: n}, nil

	case token.Str:
		p.advance()
		return &ast.StrLit{Base: basePos(t), Value: t.Lexeme}, nil

	case token.Underscore:
		p.advance()
		return &ast.Underscore{Base: basePos(t)}, nil

	case token.Ident:
		p.advance()
		return &ast.Var{Base: basePos(t), Name: t.Lexeme}, nil

	case token.KwFn:
		return p.parseFuncLit()

	case token.LParen:
		p.advance()
		x, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RParen); err != nil {
			return nil, err
		}
		return x, nil

	case token.LBracket:
		return p.parseListLit()

	case token.LBrace:
		return p.parseObjectLit()

	default:
		if t.Kind == token.EOF {
			return nil, verror.NewSyntax(verror.IDUnexpectedEOF, t.Line, t.Col)
		}
		return nil, verror.NewSyntax(verror.IDInvalidSyntax, t.Line, t.Col, "unexpected '"+t.Lexeme+"'")
	}
}

func (p *parser) parseFuncLit() (ast.Expr, *verror.Error) {
	start := p.advance() // 'fn'
	params, collect, err := p.parseParams()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.FuncLit{Base: basePos(start), Params: params, Collect: collect, Body: body}, nil
}

func (p *parser) parseParams() ([]string, string, *verror.Error) {
	if _, err := p.expect(token.LParen); err != nil {
		return nil, "", err
	}
	var params []string
	var collect string
	for !p.check(token.RParen) {
		if p.check(token.DotDot) {
			p.advance()
			name, err := p.expect(token.Ident)
			if err != nil {
				return nil, "", err
			}
			collect = name.Lexeme
			break
		}
		name, err := p.expect(token.Ident)
		if err != nil {
			return nil, "", err
		}
		params = append(params, name.Lexeme)
		if !p.check(token.Comma) {
			break
		}
		p.advance()
	}
	if _, err := p.expect(token.RParen); err != nil {
		return nil, "", err
	}
	return params, collect, nil
}

// parseListLit parses `[...]`, serving double duty as a list literal
// (items optionally postfix-spread `expr..`) and a list destructure
// pattern (a trailing `..name` collect capture), matching spec.md §4.3.4:
// the two forms share the same bracket grammar and AST shape, the
// difference is only meaningful when the evaluator treats the node as an
// l-value pattern versus an r-value expression.
func (p *parser) parseListLit() (ast.Expr, *verror.Error) {
	start := p.advance() // '['
	var items []ast.ListItem
	var collect string
	for !p.check(token.RBracket) {
		if p.check(token.DotDot) {
			p.advance()
			name, err := p.expect(token.Ident)
			if err != nil {
				return nil, err
			}
			collect = name.Lexeme
			break
		}
		x, spread, err := p.parseItem()
		if err != nil {
			return nil, err
		}
		items = append(items, ast.ListItem{X: x, IsSpread: spread})
		if !p.check(token.Comma) {
			break
		}
		p.advance()
	}
	if _, err := p.expect(token.RBracket); err != nil {
		return nil, err
	}
	return &ast.ListLit{Base: basePos(start), Items: items, Collect: collect}, nil
}

// parseObjectLit parses `{...}`: bareword or computed keys, shorthand
// `{a}`, spread `..expr` entries, and (in pattern position) a trailing
// `..name` collect capture — the same dual-purpose grammar as
// parseListLit.
func (p *parser) parseObjectLit() (ast.Expr, *verror.Error) {
	start := p.advance() // '{'
	var props []ast.Prop
	var collect string
	for !p.check(token.RBrace) {
		if p.check(token.DotDot) {
			nxt := p.peekAt(1)
			if nxt.Kind == token.Ident {
				p.advance()
				name, err := p.expect(token.Ident)
				if err != nil {
					return nil, err
				}
				collect = name.Lexeme
				break
			}
			p.advance()
			x, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			props = append(props, ast.Prop{IsSpread: true, Value: x})
			if !p.check(token.Comma) {
				break
			}
			p.advance()
			continue
		}

		prop, err := p.parseProp()
		if err != nil {
			return nil, err
		}
		props = append(props, prop)
		if !p.check(token.Comma) {
			break
		}
		p.advance()
	}
	if _, err := p.expect(token.RBrace); err != nil {
		return nil, err
	}
	return &ast.ObjectLit{Base: basePos(start), Props: props, Collect: collect}, nil
}

func (p *parser) parseProp() (ast.Prop, *verror.Error) {
	if p.check(token.LBracket) {
		p.advance()
		keyExpr, err := p.parseExpr()
		if err != nil {
			return ast.Prop{}, err
		}
		if _, err := p.expect(token.RBracket); err != nil {
			return ast.Prop{}, err
		}
		if _, err := p.expect(token.Colon); err != nil {
			return ast.Prop{}, err
		}
		val, err := p.parseExpr()
		if err != nil {
			return ast.Prop{}, err
		}
		return ast.Prop{KeyExpr: keyExpr, Value: val}, nil
	}

	if p.check(token.Str) {
		keyTok := p.advance()
		if _, err := p.expect(token.Colon); err != nil {
			return ast.Prop{}, err
		}
		val, err := p.parseExpr()
		if err != nil {
			return ast.Prop{}, err
		}
		return ast.Prop{Key: keyTok.Lexeme, Value: val}, nil
	}

	nameTok, err := p.expect(token.Ident)
	if err != nil {
		return ast.Prop{}, err
	}
	if p.check(token.Colon) {
		p.advance()
		val, err := p.parseExpr()
		if err != nil {
			return ast.Prop{}, err
		}
		return ast.Prop{Key: nameTok.Lexeme, Value: val}, nil
	}
	return ast.Prop{Key: nameTok.Lexeme, Value: &ast.Var{Base: basePos(nameTok), Name: nameTok.Lexeme}}, nil
}

func parseIntLexeme(t token.Token) (int64, *verror.Error) {
	var n int64
	for i := 0; i < len(t.Lexeme); i++ {
		d := t.Lexeme[i] - '0'
		prev := n
		n = n*10 + int64(d)
		if n < prev {
			return 0, verror.NewSyntax(verror.IDInvalidNumber, t.Line, t.Col, t.Lexeme)
		}
	}
	return n, nil
}
