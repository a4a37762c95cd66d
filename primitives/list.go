package primitives

import "strings"

type List struct {
	Items []Primitive
}

func NewList(items ...Primitive) *List {
	return &List{
		Items: items,
	}
}

func (*List) Kind() Kind { return KindList }
func (*List) private()   {}

func (l *List) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, item := range l.Items {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(Quote(item))
	}
	sb.WriteString("]")
	return sb.String()
}

func (l *List) Len() int {
	return len(l.Items)
}

// Index resolves negative indices from the end.
func (l *List) Index(i int) (int, bool) {
	if i < 0 {
		i += len(l.Items)
	}
	if i < 0 || i >= len(l.Items) {
		return 0, false
	}
	return i, true
}
