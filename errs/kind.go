package errs

type Kind uint8

const (
	KindInvalid Kind = iota

	// lexical
	MissingStringDelimiter
	SyntaxError

	// structural
	ColonMarkMissing
	RightParenthesesMissing
	ArrayNotClosed
	DictNotClosed
	ArgumentMustBeText
	FunctionNameNotDefined
	FunctionConditionBodyNotFound
	RightSideOfExpressionNotFound
	IndentationIssue
	ExpectedNewLine
	InvalidAssignmentTarget
	FunctionCallSyntaxNotValid

	// contextual
	BreakAndContinueBelongToLoops
	ReturnMustBeUsedInFunction
	UnaryWorksWithNumber
	InvalidUnaryOperation

	// resolution
	UnresolvedSymbol
	DuplicateDefinition
	ArgumentCountMismatch

	// runtime
	StackUnderflow
	InvalidJumpTarget
	StackOverflow
	NotCallable
	TypeMismatch
	IndexOutOfRange
	InvalidSlot
)

var kindNames = [...]string{
	KindInvalid:                   "Invalid",
	MissingStringDelimiter:        "MissingStringDelimiter",
	SyntaxError:                   "SyntaxError",
	ColonMarkMissing:              "ColonMarkMissing",
	RightParenthesesMissing:       "RightParenthesesMissing",
	ArrayNotClosed:                "ArrayNotClosed",
	DictNotClosed:                 "DictNotClosed",
	ArgumentMustBeText:            "ArgumentMustBeText",
	FunctionNameNotDefined:        "FunctionNameNotDefined",
	FunctionConditionBodyNotFound: "FunctionConditionBodyNotFound",
	RightSideOfExpressionNotFound: "RightSideOfExpressionNotFound",
	IndentationIssue:              "IndentationIssue",
	ExpectedNewLine:               "ExpectedNewLine",
	InvalidAssignmentTarget:       "InvalidAssignmentTarget",
	FunctionCallSyntaxNotValid:    "FunctionCallSyntaxNotValid",
	BreakAndContinueBelongToLoops: "BreakAndContinueBelongToLoops",
	ReturnMustBeUsedInFunction:    "ReturnMustBeUsedInFunction",
	UnaryWorksWithNumber:          "UnaryWorksWithNumber",
	InvalidUnaryOperation:         "InvalidUnaryOperation",
	UnresolvedSymbol:              "UnresolvedSymbol",
	DuplicateDefinition:           "DuplicateDefinition",
	ArgumentCountMismatch:         "ArgumentCountMismatch",
	StackUnderflow:                "StackUnderflow",
	InvalidJumpTarget:             "InvalidJumpTarget",
	StackOverflow:                 "StackOverflow",
	NotCallable:                   "NotCallable",
	TypeMismatch:                  "TypeMismatch",
	IndexOutOfRange:               "IndexOutOfRange",
	InvalidSlot:                   "InvalidSlot",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Invalid"
}

// Error makes a bare Kind usable as an errors.Is target.
func (k Kind) Error() string {
	return k.String()
}

// ParseKind maps a kind name back to its value.
func ParseKind(name string) (Kind, bool) {
	for i, n := range kindNames {
		if n == name {
			return Kind(i), true
		}
	}
	return KindInvalid, false
}

// Fatal reports whether a runtime error of this kind stops execution.
func (k Kind) Fatal() bool {
	switch k {
	case StackUnderflow, InvalidJumpTarget, StackOverflow, InvalidSlot:
		return true
	}
	return false
}
