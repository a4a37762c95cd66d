package syntax

type Operator uint8

const (
	OpInvalid Operator = iota

	// arithmetic, lowered to Binary
	OpAddition
	OpSubtraction
	OpMultiplication
	OpDivision
	OpModulo

	// comparison and logic, lowered to Control
	OpEqual
	OpNotEqual
	OpGreaterThan
	OpGreaterEqualThan
	OpLessThan
	OpLessEqualThan
	OpAnd
	OpOr

	// unary
	OpIncrement
	OpDecrement
	OpNot
	OpNegate
	OpPlus

	// assignment
	OpAssign
	OpAssignAddition
	OpAssignSubtraction
	OpAssignMultiplication
	OpAssignDivision
)

var operatorTexts = [...]string{
	OpInvalid:              "?",
	OpAddition:             "+",
	OpSubtraction:          "-",
	OpMultiplication:       "*",
	OpDivision:             "/",
	OpModulo:               "mod",
	OpEqual:                "==",
	OpNotEqual:             "!=",
	OpGreaterThan:          ">",
	OpGreaterEqualThan:     ">=",
	OpLessThan:             "<",
	OpLessEqualThan:        "<=",
	OpAnd:                  "ve",
	OpOr:                   "veya",
	OpIncrement:            "++",
	OpDecrement:            "--",
	OpNot:                  "değil",
	OpNegate:               "-",
	OpPlus:                 "+",
	OpAssign:               "=",
	OpAssignAddition:       "+=",
	OpAssignSubtraction:    "-=",
	OpAssignMultiplication: "*=",
	OpAssignDivision:       "/=",
}

func (o Operator) String() string {
	if int(o) < len(operatorTexts) {
		return operatorTexts[o]
	}
	return "?"
}

// Arithmetic returns the binary operator an assignment operator applies.
func (o Operator) Arithmetic() Operator {
	switch o {
	case OpAssignAddition:
		return OpAddition
	case OpAssignSubtraction:
		return OpSubtraction
	case OpAssignMultiplication:
		return OpMultiplication
	case OpAssignDivision:
		return OpDivision
	}
	return OpInvalid
}
