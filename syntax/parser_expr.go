package syntax

import (
	"github.com/erhanbaris/karamel-sub001/errs"
	"github.com/erhanbaris/karamel-sub001/primitives"
	"github.com/erhanbaris/karamel-sub001/tokenizer"
)

// parseExpression returns a nil node when no expression starts here.
func (p *Parser) parseExpression() (Node, error) {
	return p.parseOr()
}

type binaryLevel struct {
	ops     map[tokenizer.TokenKind]Operator
	control bool
}

var (
	orLevel = binaryLevel{
		ops: map[tokenizer.TokenKind]Operator{
			tokenizer.KeywordOr: OpOr,
			tokenizer.OpOr:      OpOr,
		},
		control: true,
	}
	andLevel = binaryLevel{
		ops: map[tokenizer.TokenKind]Operator{
			tokenizer.KeywordAnd: OpAnd,
			tokenizer.OpAnd:      OpAnd,
		},
		control: true,
	}
	equalityLevel = binaryLevel{
		ops: map[tokenizer.TokenKind]Operator{
			tokenizer.OpEqual:    OpEqual,
			tokenizer.OpNotEqual: OpNotEqual,
		},
		control: true,
	}
	relationalLevel = binaryLevel{
		ops: map[tokenizer.TokenKind]Operator{
			tokenizer.OpLessThan:         OpLessThan,
			tokenizer.OpLessEqualThan:    OpLessEqualThan,
			tokenizer.OpGreaterThan:      OpGreaterThan,
			tokenizer.OpGreaterEqualThan: OpGreaterEqualThan,
		},
		control: true,
	}
	additiveLevel = binaryLevel{
		ops: map[tokenizer.TokenKind]Operator{
			tokenizer.OpAddition:    OpAddition,
			tokenizer.OpSubtraction: OpSubtraction,
		},
	}
	multiplicativeLevel = binaryLevel{
		ops: map[tokenizer.TokenKind]Operator{
			tokenizer.OpMultiplication: OpMultiplication,
			tokenizer.OpDivision:       OpDivision,
			tokenizer.OpModulo:         OpModulo,
			tokenizer.KeywordModulo:    OpModulo,
		},
	}
)

func (p *Parser) parseOr() (Node, error) {
	return p.parseLevel(orLevel, p.parseAnd)
}

func (p *Parser) parseAnd() (Node, error) {
	return p.parseLevel(andLevel, p.parseEquality)
}

func (p *Parser) parseEquality() (Node, error) {
	return p.parseLevel(equalityLevel, p.parseRelational)
}

func (p *Parser) parseRelational() (Node, error) {
	return p.parseLevel(relationalLevel, p.parseAdditive)
}

func (p *Parser) parseAdditive() (Node, error) {
	return p.parseLevel(additiveLevel, p.parseMultiplicative)
}

func (p *Parser) parseMultiplicative() (Node, error) {
	return p.parseLevel(multiplicativeLevel, p.parseUnary)
}

// parseLevel parses a left associative chain of one precedence level.
func (p *Parser) parseLevel(level binaryLevel, next func() (Node, error)) (Node, error) {
	left, err := next()
	if err != nil || left == nil {
		return left, err
	}
	for {
		token, ok := p.peek()
		if !ok {
			return left, nil
		}
		op, isOp := level.ops[token.Kind]
		if !isOp {
			return left, nil
		}
		p.advance()

		right, err := next()
		if err != nil {
			return nil, err
		}
		if right == nil {
			return nil, endOf(token)
		}
		markTemp(left)
		markTemp(right)
		if level.control {
			left = &Control{
				Pos:   left.Position(),
				Left:  left,
				Op:    op,
				Right: right,
			}
		} else {
			left = &Binary{
				Pos:   left.Position(),
				Left:  left,
				Op:    op,
				Right: right,
			}
		}
	}
}

// markTemp flags a node whose value feeds a larger expression.
func markTemp(node Node) {
	switch n := node.(type) {
	case *FuncCall:
		n.AssignToTemp = true
	case *PrefixUnary:
		n.AssignToTemp = true
	case *SuffixUnary:
		n.AssignToTemp = true
	}
}

func (p *Parser) parseUnary() (Node, error) {
	token, ok := p.peek()
	if !ok {
		return nil, nil
	}

	var op Operator
	switch token.Kind {
	case tokenizer.OpSubtraction:
		op = OpNegate
	case tokenizer.OpAddition:
		op = OpPlus
	case tokenizer.OpNot, tokenizer.KeywordNot:
		op = OpNot
	case tokenizer.OpIncrement:
		op = OpIncrement
	case tokenizer.OpDecrement:
		op = OpDecrement
	default:
		return p.parsePostfix()
	}
	p.advance()

	operand, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	if operand == nil {
		return nil, endOf(token)
	}
	pos := posOf(token)

	switch op {
	case OpNegate, OpPlus:
		if lit, ok := operand.(*Primitive); ok {
			num, isNumber := lit.Value.(primitives.Number)
			if !isNumber {
				return nil, errs.New(errs.UnaryWorksWithNumber, token.Line, token.Start)
			}
			if op == OpNegate {
				num = -num
			}
			return &Primitive{
				Pos:   pos,
				Value: num,
			}, nil
		}
		if op == OpPlus {
			return operand, nil
		}
	case OpIncrement, OpDecrement:
		if _, ok := operand.(*Symbol); !ok {
			return nil, errs.New(errs.InvalidUnaryOperation, token.Line, token.Start)
		}
	}

	markTemp(operand)
	return &PrefixUnary{
		Pos:          pos,
		Op:           op,
		Expr:         operand,
		AssignToTemp: true,
	}, nil
}

func (p *Parser) parsePostfix() (Node, error) {
	node, err := p.parsePrimary()
	if err != nil || node == nil {
		return node, err
	}

	for {
		token, ok := p.peek()
		if !ok {
			return node, nil
		}
		switch token.Kind {

		case tokenizer.OpLeftParentheses:
			switch node.(type) {
			case *Symbol, *ModulePath:
			default:
				return nil, errs.New(errs.FunctionCallSyntaxNotValid, token.Line, token.Start)
			}
			p.advance()
			args, err := p.parseArgs()
			if err != nil {
				return nil, err
			}
			node = &FuncCall{
				Pos:          node.Position(),
				Callee:       node,
				Args:         args,
				AssignToTemp: true,
			}

		case tokenizer.OpSquareBracketStart:
			p.advance()
			p.depth++
			index, err := p.parseExpression()
			if err != nil {
				p.depth--
				return nil, err
			}
			if index == nil {
				p.depth--
				return nil, p.errorHere(errs.SyntaxError)
			}
			closed := p.matchOperator(tokenizer.OpSquareBracketEnd)
			p.depth--
			if !closed {
				return nil, p.errorHere(errs.ArrayNotClosed)
			}
			markTemp(index)
			markTemp(node)
			node = &Indexer{
				Pos:   node.Position(),
				Body:  node,
				Index: index,
			}

		case tokenizer.OpIncrement, tokenizer.OpDecrement:
			if _, ok := node.(*Symbol); !ok {
				return nil, errs.New(errs.InvalidUnaryOperation, token.Line, token.Start)
			}
			p.advance()
			op := OpIncrement
			if token.Kind == tokenizer.OpDecrement {
				op = OpDecrement
			}
			node = &SuffixUnary{
				Pos:          node.Position(),
				Op:           op,
				Expr:         node,
				AssignToTemp: true,
			}

		default:
			return node, nil
		}
	}
}

func (p *Parser) parseArgs() ([]Node, error) {
	p.depth++
	defer func() {
		p.depth--
	}()

	var args []Node
	if p.matchOperator(tokenizer.OpRightParentheses) {
		return args, nil
	}
	for {
		if p.isOperator(tokenizer.OpComma) {
			return nil, p.errorHere(errs.FunctionCallSyntaxNotValid)
		}
		arg, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if arg == nil {
			if p.isOperator(tokenizer.OpRightParentheses) {
				return nil, p.errorHere(errs.FunctionCallSyntaxNotValid)
			}
			return nil, p.errorHere(errs.RightParenthesesMissing)
		}
		markTemp(arg)
		args = append(args, arg)

		if p.matchOperator(tokenizer.OpRightParentheses) {
			return args, nil
		}
		if !p.matchOperator(tokenizer.OpComma) {
			return nil, p.errorHere(errs.RightParenthesesMissing)
		}
	}
}

func (p *Parser) parsePrimary() (Node, error) {
	token, ok := p.peek()
	if !ok {
		return nil, nil
	}
	pos := posOf(token)

	switch kind := token.Kind.(type) {

	case tokenizer.Integer:
		p.advance()
		return &Primitive{Pos: pos, Value: primitives.Number(kind)}, nil

	case tokenizer.Double:
		p.advance()
		return &Primitive{Pos: pos, Value: primitives.Number(kind)}, nil

	case tokenizer.Text:
		p.advance()
		return &Primitive{Pos: pos, Value: primitives.Text(kind)}, nil

	case tokenizer.Atom:
		p.advance()
		return &Primitive{Pos: pos, Value: primitives.NewAtom(string(kind))}, nil

	case tokenizer.Symbol:
		p.advance()
		return p.parseSymbol(pos, string(kind))

	case tokenizer.Keyword:
		switch kind {
		case tokenizer.KeywordTrue:
			p.advance()
			return &Primitive{Pos: pos, Value: primitives.Bool(true)}, nil
		case tokenizer.KeywordFalse:
			p.advance()
			return &Primitive{Pos: pos, Value: primitives.Bool(false)}, nil
		case tokenizer.KeywordEmpty:
			p.advance()
			return &Primitive{Pos: pos, Value: primitives.Empty{}}, nil
		}

	case tokenizer.Operator:
		switch kind {
		case tokenizer.OpLeftParentheses:
			p.advance()
			return p.parseGroup(token)
		case tokenizer.OpSquareBracketStart:
			p.advance()
			return p.parseList(pos)
		case tokenizer.OpCurveBracketStart:
			p.advance()
			return p.parseDict(pos)
		}
	}

	return nil, nil
}

func (p *Parser) parseSymbol(pos Pos, name string) (Node, error) {
	if !p.isOperator(tokenizer.OpDot) {
		return &Symbol{Pos: pos, Name: name}, nil
	}
	path := []string{name}
	for p.matchOperator(tokenizer.OpDot) {
		token, ok := p.peek()
		part, isSymbol := token.Kind.(tokenizer.Symbol)
		if !ok || !isSymbol {
			return nil, p.errorHere(errs.SyntaxError)
		}
		p.advance()
		path = append(path, string(part))
	}
	return &ModulePath{Pos: pos, Path: path}, nil
}

func (p *Parser) parseGroup(open tokenizer.Token) (Node, error) {
	p.depth++
	expr, err := p.parseExpression()
	if err != nil {
		p.depth--
		return nil, err
	}
	if expr == nil {
		p.depth--
		return nil, endOf(open)
	}
	closed := p.matchOperator(tokenizer.OpRightParentheses)
	p.depth--
	if !closed {
		return nil, p.errorHere(errs.RightParenthesesMissing)
	}
	return expr, nil
}

func (p *Parser) parseList(pos Pos) (Node, error) {
	p.depth++
	defer func() {
		p.depth--
	}()

	list := &List{Pos: pos}
	if p.matchOperator(tokenizer.OpSquareBracketEnd) {
		return list, nil
	}
	for {
		item, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if item == nil {
			if p.isOperator(tokenizer.OpComma) {
				return nil, p.errorHere(errs.SyntaxError)
			}
			return nil, p.errorHere(errs.ArrayNotClosed)
		}
		markTemp(item)
		list.Items = append(list.Items, item)

		if p.matchOperator(tokenizer.OpSquareBracketEnd) {
			return list, nil
		}
		if !p.matchOperator(tokenizer.OpComma) {
			return nil, p.errorHere(errs.ArrayNotClosed)
		}
	}
}

func (p *Parser) parseDict(pos Pos) (Node, error) {
	p.depth++
	defer func() {
		p.depth--
	}()

	dict := &Dict{Pos: pos}
	if p.matchOperator(tokenizer.OpCurveBracketEnd) {
		return dict, nil
	}
	seen := make(map[string]int)
	for {
		token, ok := p.peek()
		if !ok {
			return nil, p.errorHere(errs.DictNotClosed)
		}
		key, isText := token.Kind.(tokenizer.Text)
		if !isText {
			return nil, errs.New(errs.ArgumentMustBeText, token.Line, token.Start)
		}
		p.advance()
		if !p.matchOperator(tokenizer.OpColonMark) {
			return nil, p.errorHere(errs.ColonMarkMissing)
		}
		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if value == nil {
			return nil, p.errorHere(errs.RightSideOfExpressionNotFound)
		}
		markTemp(value)
		if i, ok := seen[string(key)]; ok {
			dict.Entries[i].Value = value
		} else {
			seen[string(key)] = len(dict.Entries)
			dict.Entries = append(dict.Entries, DictEntry{
				Key:   string(key),
				Value: value,
			})
		}

		if p.matchOperator(tokenizer.OpCurveBracketEnd) {
			return dict, nil
		}
		if !p.matchOperator(tokenizer.OpComma) {
			return nil, p.errorHere(errs.DictNotClosed)
		}
	}
}
