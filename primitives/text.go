package primitives

import (
	"math"
	"strconv"
)

const (
	TrueText  = "doğru"
	FalseText = "yanlış"
	EmptyText = "boş"
)

func (n Number) String() string {
	f := float64(n)
	switch {
	case math.IsInf(f, 1):
		return "sonsuz"
	case math.IsInf(f, -1):
		return "-sonsuz"
	case math.IsNaN(f):
		return "NaN"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func (b Bool) String() string {
	if b {
		return TrueText
	}
	return FalseText
}

func (t Text) String() string {
	return string(t)
}

func (Empty) String() string {
	return EmptyText
}

// Quote renders p the way it appears inside a list or dict.
func Quote(p Primitive) string {
	if t, ok := p.(Text); ok {
		return strconv.Quote(string(t))
	}
	return OrEmpty(p).String()
}
