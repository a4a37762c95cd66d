package primitives

// FunctionReference points either at a compiled function body or at a
// native function registered by name.
type FunctionReference struct {
	Name    string
	Native  bool
	Entry   int
	Storage int
	Arity   int
}

func (*FunctionReference) Kind() Kind { return KindFunction }
func (*FunctionReference) private()   {}

func (f *FunctionReference) String() string {
	return "<fonksiyon " + f.Name + ">"
}
