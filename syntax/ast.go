package syntax

import (
	"strings"

	"github.com/erhanbaris/karamel-sub001/primitives"
)

type Pos struct {
	Line   int
	Column int
}

func (p Pos) Position() Pos {
	return p
}

// Node is one AST variant. Each node exclusively owns its children.
type Node interface {
	Position() Pos
	String() string
	node()
}

type Primitive struct {
	Pos
	Value primitives.Primitive
}

type Symbol struct {
	Pos
	Name string
}

// ModulePath is a dotted reference to a native function, like io.writeline.
type ModulePath struct {
	Pos
	Path []string
}

type Binary struct {
	Pos
	Left  Node
	Op    Operator
	Right Node
}

type Control struct {
	Pos
	Left  Node
	Op    Operator
	Right Node
}

type Assignment struct {
	Pos
	Target Node
	Op     Operator
	Expr   Node
}

type Block struct {
	Pos
	Items []Node
}

type FunctionDefinition struct {
	Pos
	Name   string
	Params []string
	Body   *Block
}

type FuncCall struct {
	Pos
	Callee       Node
	Args         []Node
	AssignToTemp bool
}

type List struct {
	Pos
	Items []Node
}

type DictEntry struct {
	Key   string
	Value Node
}

type Dict struct {
	Pos
	Entries []DictEntry
}

type PrefixUnary struct {
	Pos
	Op           Operator
	Expr         Node
	AssignToTemp bool
}

type SuffixUnary struct {
	Pos
	Op           Operator
	Expr         Node
	AssignToTemp bool
}

type Indexer struct {
	Pos
	Body  Node
	Index Node
}

// If holds an optional Else which is a *Block or a chained *If.
type If struct {
	Pos
	Condition Node
	Body      *Block
	Else      Node
}

type Return struct {
	Pos
	Expr Node
}

type Break struct {
	Pos
}

type Continue struct {
	Pos
}

type EndlessLoop struct {
	Pos
	Body *Block
}

type WhileLoop struct {
	Pos
	Condition Node
	Body      *Block
}

type None struct {
	Pos
}

func (*Primitive) node()          {}
func (*Symbol) node()             {}
func (*ModulePath) node()         {}
func (*Binary) node()             {}
func (*Control) node()            {}
func (*Assignment) node()         {}
func (*Block) node()              {}
func (*FunctionDefinition) node() {}
func (*FuncCall) node()           {}
func (*List) node()               {}
func (*Dict) node()               {}
func (*PrefixUnary) node()        {}
func (*SuffixUnary) node()        {}
func (*Indexer) node()            {}
func (*If) node()                 {}
func (*Return) node()             {}
func (*Break) node()              {}
func (*Continue) node()           {}
func (*EndlessLoop) node()        {}
func (*WhileLoop) node()          {}
func (*None) node()               {}

func (m *ModulePath) Name() string {
	return strings.Join(m.Path, ".")
}
