package primitives

import "hash/fnv"

type Atom struct {
	ID   uint64
	Name string
}

func NewAtom(name string) Atom {
	h := fnv.New64a()
	h.Write([]byte(name))
	return Atom{
		ID:   h.Sum64(),
		Name: name,
	}
}

func (Atom) Kind() Kind { return KindAtom }
func (Atom) private()   {}

func (a Atom) String() string {
	return ":" + a.Name
}
