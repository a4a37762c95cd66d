package syntax

import (
	"github.com/erhanbaris/karamel-sub001/errs"
	"github.com/erhanbaris/karamel-sub001/tokenizer"
)

// parseLines parses consecutive statements indented by exactly indent.
func (p *Parser) parseLines(indent int) (*Block, error) {
	saved := p.indent
	p.indent = indent
	defer func() {
		p.indent = saved
	}()

	block := &Block{
		Pos: p.here(),
	}
	first := true
	for {
		lineIndent, at, ok := p.scanLine()
		if !ok {
			break
		}
		if lineIndent < indent {
			break
		}
		if lineIndent > indent {
			token := p.tokens[at]
			return nil, errs.New(errs.IndentationIssue, token.Line, token.Start)
		}
		p.index = at
		if first {
			block.Pos = p.here()
			first = false
		}

		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		block.Items = append(block.Items, stmt)

		if !p.atLineEnd() {
			return nil, p.errorHere(errs.ExpectedNewLine)
		}
	}
	return block, nil
}

// parseBody parses the block following a colon, inline or indented.
func (p *Parser) parseBody() (*Block, error) {
	if !p.matchOperator(tokenizer.OpColonMark) {
		return nil, p.errorHere(errs.ColonMarkMissing)
	}

	if !p.atLineEnd() {
		pos := p.here()
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		return &Block{
			Pos:   pos,
			Items: []Node{stmt},
		}, nil
	}

	lineIndent, _, ok := p.scanLine()
	if !ok || lineIndent <= p.indent {
		return nil, p.errorHere(errs.FunctionConditionBodyNotFound)
	}
	return p.parseLines(lineIndent)
}

func (p *Parser) parseStatement() (Node, error) {
	token, ok := p.peek()
	if !ok {
		return nil, p.errorHere(errs.SyntaxError)
	}

	switch token.Kind {
	case tokenizer.KeywordFn:
		return p.parseFunction()
	case tokenizer.KeywordIf:
		p.advance()
		cond, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if cond == nil {
			return nil, endOf(token)
		}
		return p.parseIf(posOf(token), cond)
	case tokenizer.KeywordLoop:
		return p.parseWhile()
	case tokenizer.KeywordEndless:
		p.advance()
		body, err := p.parseLoopBody()
		if err != nil {
			return nil, err
		}
		return &EndlessLoop{
			Pos:  posOf(token),
			Body: body,
		}, nil
	case tokenizer.KeywordBreak, tokenizer.KeywordContinue:
		if p.loops == 0 {
			return nil, errs.New(errs.BreakAndContinueBelongToLoops, token.Line, token.Start)
		}
		p.advance()
		if token.Kind == tokenizer.KeywordBreak {
			return &Break{Pos: posOf(token)}, nil
		}
		return &Continue{Pos: posOf(token)}, nil
	case tokenizer.KeywordReturn:
		return p.parseReturn()
	case tokenizer.KeywordElse:
		return nil, errs.Newf(errs.SyntaxError, token.Line, token.Start, "else without if")
	}

	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if expr == nil {
		return nil, errs.Newf(errs.SyntaxError, token.Line, token.Start, "unexpected %s", token.Kind)
	}

	if p.isKeyword(tokenizer.KeywordIf) {
		p.advance()
		return p.parseIf(expr.Position(), expr)
	}

	if next, ok := p.peek(); ok {
		if op, isAssign := assignmentOperators[next.Kind]; isAssign {
			return p.parseAssignment(expr, next, op)
		}
	}

	markStatement(expr)
	return expr, nil
}

var assignmentOperators = map[tokenizer.TokenKind]Operator{
	tokenizer.OpAssign:               OpAssign,
	tokenizer.OpAssignAddition:       OpAssignAddition,
	tokenizer.OpAssignSubtraction:    OpAssignSubtraction,
	tokenizer.OpAssignMultiplication: OpAssignMultiplication,
	tokenizer.OpAssignDivision:       OpAssignDivision,
}

// markStatement flags a statement level call or unary whose value is unused.
func markStatement(node Node) {
	switch n := node.(type) {
	case *FuncCall:
		n.AssignToTemp = false
	case *PrefixUnary:
		if n.Op == OpIncrement || n.Op == OpDecrement {
			n.AssignToTemp = false
		}
	case *SuffixUnary:
		n.AssignToTemp = false
	}
}

func (p *Parser) parseAssignment(target Node, opToken tokenizer.Token, op Operator) (Node, error) {
	switch target.(type) {
	case *Symbol, *Indexer:
	default:
		pos := target.Position()
		return nil, errs.New(errs.InvalidAssignmentTarget, pos.Line, pos.Column)
	}
	p.advance()
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if expr == nil {
		return nil, endOf(opToken)
	}
	return &Assignment{
		Pos:    target.Position(),
		Target: target,
		Op:     op,
		Expr:   expr,
	}, nil
}

func (p *Parser) parseIf(pos Pos, cond Node) (Node, error) {
	body, err := p.parseBody()
	if err != nil {
		return nil, err
	}
	node := &If{
		Pos:       pos,
		Condition: cond,
		Body:      body,
	}

	lineIndent, at, ok := p.scanLine()
	if !ok || lineIndent != p.indent || p.tokens[at].Kind != tokenizer.KeywordElse {
		return node, nil
	}
	p.index = at
	elseToken := p.advance()

	if p.isOperator(tokenizer.OpColonMark) {
		node.Else, err = p.parseBody()
		if err != nil {
			return nil, err
		}
		return node, nil
	}

	// else if: "değilse koşul ise:" or "değilse eğer koşul:"
	p.matchKeyword(tokenizer.KeywordIf)
	elseCond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if elseCond == nil {
		return nil, p.errorHere(errs.ColonMarkMissing)
	}
	p.matchKeyword(tokenizer.KeywordIf)
	node.Else, err = p.parseIf(posOf(elseToken), elseCond)
	if err != nil {
		return nil, err
	}
	return node, nil
}

func (p *Parser) matchKeyword(keyword tokenizer.Keyword) bool {
	if p.isKeyword(keyword) {
		p.index++
		return true
	}
	return false
}

func (p *Parser) parseWhile() (Node, error) {
	token := p.advance()
	if p.isOperator(tokenizer.OpColonMark) {
		body, err := p.parseLoopBody()
		if err != nil {
			return nil, err
		}
		return &EndlessLoop{
			Pos:  posOf(token),
			Body: body,
		}, nil
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if cond == nil {
		return nil, endOf(token)
	}
	body, err := p.parseLoopBody()
	if err != nil {
		return nil, err
	}
	return &WhileLoop{
		Pos:       posOf(token),
		Condition: cond,
		Body:      body,
	}, nil
}

func (p *Parser) parseLoopBody() (*Block, error) {
	p.loops++
	defer func() {
		p.loops--
	}()
	return p.parseBody()
}

func (p *Parser) parseReturn() (Node, error) {
	token := p.advance()
	if !p.inFunction {
		return nil, errs.New(errs.ReturnMustBeUsedInFunction, token.Line, token.Start)
	}
	node := &Return{
		Pos:  posOf(token),
		Expr: &None{Pos: posOf(token)},
	}
	if p.atLineEnd() {
		return node, nil
	}
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if expr != nil {
		node.Expr = expr
	}
	return node, nil
}

func (p *Parser) parseFunction() (Node, error) {
	fnToken := p.advance()

	nameToken, ok := p.peek()
	name, isSymbol := nameToken.Kind.(tokenizer.Symbol)
	if !ok || !isSymbol {
		return nil, p.errorHere(errs.FunctionNameNotDefined)
	}
	p.advance()

	if !p.matchOperator(tokenizer.OpLeftParentheses) {
		return nil, p.errorHere(errs.FunctionCallSyntaxNotValid)
	}
	p.depth++
	params, err := p.parseParams()
	p.depth--
	if err != nil {
		return nil, err
	}

	savedLoops, savedInFunction := p.loops, p.inFunction
	p.loops, p.inFunction = 0, true
	body, err := p.parseBody()
	p.loops, p.inFunction = savedLoops, savedInFunction
	if err != nil {
		return nil, err
	}

	if n := len(body.Items); n == 0 {
		body.Items = append(body.Items, &Return{Pos: body.Pos, Expr: &None{Pos: body.Pos}})
	} else if _, ok := body.Items[n-1].(*Return); !ok {
		pos := body.Items[n-1].Position()
		body.Items = append(body.Items, &Return{Pos: pos, Expr: &None{Pos: pos}})
	}

	return &FunctionDefinition{
		Pos:    posOf(fnToken),
		Name:   string(name),
		Params: params,
		Body:   body,
	}, nil
}

func (p *Parser) parseParams() ([]string, error) {
	var params []string
	seen := make(map[string]bool)
	if p.matchOperator(tokenizer.OpRightParentheses) {
		return params, nil
	}
	for {
		token, ok := p.peek()
		if !ok {
			return nil, p.errorHere(errs.RightParenthesesMissing)
		}
		name, isSymbol := token.Kind.(tokenizer.Symbol)
		if !isSymbol {
			return nil, errs.New(errs.FunctionCallSyntaxNotValid, token.Line, token.Start)
		}
		if seen[string(name)] {
			return nil, errs.Newf(errs.DuplicateDefinition, token.Line, token.Start, "parameter %s", name)
		}
		seen[string(name)] = true
		params = append(params, string(name))
		p.advance()

		if p.matchOperator(tokenizer.OpRightParentheses) {
			return params, nil
		}
		if !p.matchOperator(tokenizer.OpComma) {
			return nil, p.errorHere(errs.RightParenthesesMissing)
		}
	}
}
