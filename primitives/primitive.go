package primitives

type Kind uint8

const (
	KindEmpty Kind = iota
	KindNumber
	KindBool
	KindText
	KindAtom
	KindList
	KindDict
	KindFunction
)

var kindNames = [...]string{
	KindEmpty:    "boş",
	KindNumber:   "sayı",
	KindBool:     "bool",
	KindText:     "yazı",
	KindAtom:     "atom",
	KindList:     "liste",
	KindDict:     "sözlük",
	KindFunction: "fonksiyon",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "?"
}

// Primitive is a language value. Text, lists and dicts are shared by reference.
type Primitive interface {
	Kind() Kind
	String() string
	private()
}

type Number float64

func (Number) Kind() Kind { return KindNumber }
func (Number) private()   {}

type Bool bool

func (Bool) Kind() Kind { return KindBool }
func (Bool) private()   {}

type Text string

func (Text) Kind() Kind { return KindText }
func (Text) private()   {}

type Empty struct{}

func (Empty) Kind() Kind { return KindEmpty }
func (Empty) private()   {}

var (
	_ Primitive = Number(0)
	_ Primitive = Bool(false)
	_ Primitive = Text("")
	_ Primitive = Empty{}
	_ Primitive = Atom{}
	_ Primitive = new(List)
	_ Primitive = new(Dict)
	_ Primitive = new(FunctionReference)
)

// OrEmpty maps nil to Empty.
func OrEmpty(p Primitive) Primitive {
	if p == nil {
		return Empty{}
	}
	return p
}

// IsIntegral reports whether n has no fractional part.
func (n Number) IsIntegral() bool {
	f := float64(n)
	return f == float64(int64(f))
}
