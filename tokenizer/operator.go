package tokenizer

type Operator uint8

const (
	OpInvalid Operator = iota
	OpAddition
	OpSubtraction
	OpMultiplication
	OpDivision
	OpModulo
	OpIncrement
	OpDecrement
	OpAssign
	OpAssignAddition
	OpAssignSubtraction
	OpAssignMultiplication
	OpAssignDivision
	OpEqual
	OpNotEqual
	OpNot
	OpLessThan
	OpLessEqualThan
	OpGreaterThan
	OpGreaterEqualThan
	OpAnd
	OpOr
	OpLeftParentheses
	OpRightParentheses
	OpSquareBracketStart
	OpSquareBracketEnd
	OpCurveBracketStart
	OpCurveBracketEnd
	OpComma
	OpColonMark
	OpDot
)

func (Operator) tokenKind() {}

var operatorTexts = [...]string{
	OpInvalid:              "?",
	OpAddition:             "+",
	OpSubtraction:          "-",
	OpMultiplication:       "*",
	OpDivision:             "/",
	OpModulo:               "%",
	OpIncrement:            "++",
	OpDecrement:            "--",
	OpAssign:               "=",
	OpAssignAddition:       "+=",
	OpAssignSubtraction:    "-=",
	OpAssignMultiplication: "*=",
	OpAssignDivision:       "/=",
	OpEqual:                "==",
	OpNotEqual:             "!=",
	OpNot:                  "!",
	OpLessThan:             "<",
	OpLessEqualThan:        "<=",
	OpGreaterThan:          ">",
	OpGreaterEqualThan:     ">=",
	OpAnd:                  "&&",
	OpOr:                   "||",
	OpLeftParentheses:      "(",
	OpRightParentheses:     ")",
	OpSquareBracketStart:   "[",
	OpSquareBracketEnd:     "]",
	OpCurveBracketStart:    "{",
	OpCurveBracketEnd:      "}",
	OpComma:                ",",
	OpColonMark:            ":",
	OpDot:                  ".",
}

func (o Operator) String() string {
	if int(o) < len(operatorTexts) {
		return operatorTexts[o]
	}
	return "?"
}

var twoCharOperators = map[[2]rune]Operator{
	{'+', '+'}: OpIncrement,
	{'-', '-'}: OpDecrement,
	{'+', '='}: OpAssignAddition,
	{'-', '='}: OpAssignSubtraction,
	{'*', '='}: OpAssignMultiplication,
	{'/', '='}: OpAssignDivision,
	{'=', '='}: OpEqual,
	{'!', '='}: OpNotEqual,
	{'<', '='}: OpLessEqualThan,
	{'>', '='}: OpGreaterEqualThan,
	{'&', '&'}: OpAnd,
	{'|', '|'}: OpOr,
}

var oneCharOperators = map[rune]Operator{
	'+': OpAddition,
	'-': OpSubtraction,
	'*': OpMultiplication,
	'/': OpDivision,
	'%': OpModulo,
	'=': OpAssign,
	'!': OpNot,
	'<': OpLessThan,
	'>': OpGreaterThan,
	'(': OpLeftParentheses,
	')': OpRightParentheses,
	'[': OpSquareBracketStart,
	']': OpSquareBracketEnd,
	'{': OpCurveBracketStart,
	'}': OpCurveBracketEnd,
	',': OpComma,
	':': OpColonMark,
	'.': OpDot,
}
