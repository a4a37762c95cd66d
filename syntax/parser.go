package syntax

import (
	"github.com/erhanbaris/karamel-sub001/errs"
	"github.com/erhanbaris/karamel-sub001/tokenizer"
)

type Parser struct {
	tokens []tokenizer.Token
	index  int

	// indentation of the block being parsed
	indent int
	// bracket nesting; newlines are insignificant inside brackets
	depth int
	// enclosing loops of the innermost function body
	loops      int
	inFunction bool
}

func NewParser(tokens []tokenizer.Token) *Parser {
	return &Parser{
		tokens: tokens,
	}
}

func Parse(tokens []tokenizer.Token) (*Block, error) {
	return NewParser(tokens).Parse()
}

func ParseString(source string) (*Block, error) {
	tokens, err := tokenizer.Tokenize(source)
	if err != nil {
		return nil, err
	}
	return Parse(tokens)
}

func (p *Parser) Parse() (*Block, error) {
	block, err := p.parseLines(0)
	if err != nil {
		return nil, err
	}
	if indent, at, ok := p.scanLine(); ok {
		token := p.tokens[at]
		if indent > 0 {
			return nil, errs.New(errs.IndentationIssue, token.Line, token.Start)
		}
		return nil, errs.Newf(errs.SyntaxError, token.Line, token.Start, "unexpected %s", token.Kind)
	}
	return block, nil
}

// scanLine finds the first meaningful token of the next non-blank line
// without consuming anything.
func (p *Parser) scanLine() (indent int, at int, ok bool) {
	indent = -1
	for i := p.index; i < len(p.tokens); i++ {
		switch k := p.tokens[i].Kind.(type) {
		case tokenizer.NewLine:
			indent = int(k)
		case tokenizer.Whitespace:
			if p.tokens[i].Start == 0 {
				indent = int(k)
			}
		default:
			if indent < 0 {
				indent = p.lineIndentAt(i)
			}
			return indent, i, true
		}
	}
	return 0, len(p.tokens), false
}

// lineIndentAt reports the indentation of the line holding token i.
func (p *Parser) lineIndentAt(i int) int {
	for j := i - 1; j >= 0; j-- {
		switch k := p.tokens[j].Kind.(type) {
		case tokenizer.NewLine:
			return int(k)
		case tokenizer.Whitespace:
			if p.tokens[j].Start == 0 {
				return int(k)
			}
		}
	}
	return 0
}

func (p *Parser) eof() bool {
	p.skipBlanks()
	return p.index >= len(p.tokens)
}

// skipBlanks skips whitespace, and newlines too when inside brackets.
func (p *Parser) skipBlanks() {
	for p.index < len(p.tokens) {
		switch p.tokens[p.index].Kind.(type) {
		case tokenizer.Whitespace:
			p.index++
		case tokenizer.NewLine:
			if p.depth == 0 {
				return
			}
			p.index++
		default:
			return
		}
	}
}

func (p *Parser) peek() (tokenizer.Token, bool) {
	p.skipBlanks()
	if p.index >= len(p.tokens) {
		return tokenizer.Token{}, false
	}
	return p.tokens[p.index], true
}

func (p *Parser) advance() tokenizer.Token {
	token := p.tokens[p.index]
	p.index++
	return token
}

func (p *Parser) isOperator(op tokenizer.Operator) bool {
	token, ok := p.peek()
	return ok && token.Kind == op
}

func (p *Parser) isKeyword(keyword tokenizer.Keyword) bool {
	token, ok := p.peek()
	return ok && token.Kind == keyword
}

func (p *Parser) matchOperator(op tokenizer.Operator) bool {
	if p.isOperator(op) {
		p.index++
		return true
	}
	return false
}

// atLineEnd reports whether only a newline or the end of input follows.
func (p *Parser) atLineEnd() bool {
	token, ok := p.peek()
	if !ok {
		return true
	}
	_, isNewLine := token.Kind.(tokenizer.NewLine)
	return isNewLine
}

// here is the position of the next token, or the end of the last one.
// At a line end it is the end of the last meaningful token.
func (p *Parser) here() Pos {
	token, ok := p.peek()
	if ok {
		if _, isNewLine := token.Kind.(tokenizer.NewLine); !isNewLine {
			return Pos{Line: token.Line, Column: token.Start}
		}
	}
	for i := p.index - 1; i >= 0; i-- {
		switch p.tokens[i].Kind.(type) {
		case tokenizer.Whitespace, tokenizer.NewLine:
			continue
		}
		return Pos{Line: p.tokens[i].Line, Column: p.tokens[i].End}
	}
	return Pos{}
}

func (p *Parser) errorHere(kind errs.Kind) error {
	pos := p.here()
	return errs.New(kind, pos.Line, pos.Column)
}

func posOf(token tokenizer.Token) Pos {
	return Pos{Line: token.Line, Column: token.Start}
}

func endOf(token tokenizer.Token) *errs.Error {
	return errs.New(errs.RightSideOfExpressionNotFound, token.Line, token.End)
}
