package conformance

// Suite is one YAML file of cases.
type Suite struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Cases       []Case `yaml:"cases"`
}

// Case is a program and what running it must produce. Unset expectations
// are not checked.
type Case struct {
	Name   string      `yaml:"name"`
	Source string      `yaml:"source"`
	Input  string      `yaml:"input,omitempty"`
	Skip   string      `yaml:"skip,omitempty"`
	Expect Expectation `yaml:"expect"`
}

type Expectation struct {
	// Top is the value left on top of the stack.
	Top *Value `yaml:"top,omitempty"`
	// Stack is the whole final stack, bottom first.
	Stack  []Value          `yaml:"stack,omitempty"`
	Memory map[string]Value `yaml:"memory,omitempty"`
	Output *string          `yaml:"output,omitempty"`
	// Error is an error kind name such as SyntaxError.
	Error  string `yaml:"error,omitempty"`
	Line   *int   `yaml:"line,omitempty"`
	Column *int   `yaml:"column,omitempty"`
}
