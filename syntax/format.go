package syntax

import (
	"strings"

	"github.com/erhanbaris/karamel-sub001/primitives"
)

func (p *Primitive) String() string {
	return primitives.Quote(p.Value)
}

func (s *Symbol) String() string {
	return s.Name
}

func (m *ModulePath) String() string {
	return m.Name()
}

func (b *Binary) String() string {
	return "(" + b.Left.String() + " " + b.Op.String() + " " + b.Right.String() + ")"
}

func (c *Control) String() string {
	return "(" + c.Left.String() + " " + c.Op.String() + " " + c.Right.String() + ")"
}

func (a *Assignment) String() string {
	return a.Target.String() + " " + a.Op.String() + " " + a.Expr.String()
}

func (b *Block) String() string {
	parts := make([]string, 0, len(b.Items))
	for _, item := range b.Items {
		parts = append(parts, item.String())
	}
	return "{" + strings.Join(parts, "; ") + "}"
}

func (f *FunctionDefinition) String() string {
	return "fonk " + f.Name + "(" + strings.Join(f.Params, ", ") + ") " + f.Body.String()
}

func joinNodes(nodes []Node) string {
	parts := make([]string, 0, len(nodes))
	for _, n := range nodes {
		parts = append(parts, n.String())
	}
	return strings.Join(parts, ", ")
}

func (f *FuncCall) String() string {
	return f.Callee.String() + "(" + joinNodes(f.Args) + ")"
}

func (l *List) String() string {
	return "[" + joinNodes(l.Items) + "]"
}

func (d *Dict) String() string {
	parts := make([]string, 0, len(d.Entries))
	for _, e := range d.Entries {
		parts = append(parts, primitives.Quote(primitives.Text(e.Key))+": "+e.Value.String())
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func (u *PrefixUnary) String() string {
	if u.Op == OpNot {
		return "(değil " + u.Expr.String() + ")"
	}
	return "(" + u.Op.String() + u.Expr.String() + ")"
}

func (u *SuffixUnary) String() string {
	return "(" + u.Expr.String() + u.Op.String() + ")"
}

func (i *Indexer) String() string {
	return i.Body.String() + "[" + i.Index.String() + "]"
}

func (i *If) String() string {
	s := "ise " + i.Condition.String() + " " + i.Body.String()
	if i.Else != nil {
		s += " değilse " + i.Else.String()
	}
	return s
}

func (r *Return) String() string {
	if r.Expr == nil {
		return "döndür"
	}
	return "döndür " + r.Expr.String()
}

func (*Break) String() string {
	return "kır"
}

func (*Continue) String() string {
	return "devam"
}

func (l *EndlessLoop) String() string {
	return "sonsuz " + l.Body.String()
}

func (l *WhileLoop) String() string {
	return "döngü " + l.Condition.String() + " " + l.Body.String()
}

func (*None) String() string {
	return "boş"
}
