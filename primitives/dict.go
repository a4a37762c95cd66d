package primitives

import (
	"strconv"
	"strings"
)

// Dict is an insertion ordered map with text keys.
type Dict struct {
	keys   []string
	values map[string]Primitive
}

func NewDict() *Dict {
	return &Dict{
		values: make(map[string]Primitive),
	}
}

func (*Dict) Kind() Kind { return KindDict }
func (*Dict) private()   {}

func (d *Dict) Set(key string, value Primitive) {
	if _, ok := d.values[key]; !ok {
		d.keys = append(d.keys, key)
	}
	d.values[key] = value
}

func (d *Dict) Get(key string) (Primitive, bool) {
	v, ok := d.values[key]
	return v, ok
}

func (d *Dict) Delete(key string) {
	if _, ok := d.values[key]; !ok {
		return
	}
	delete(d.values, key)
	for i, k := range d.keys {
		if k == key {
			d.keys = append(d.keys[:i], d.keys[i+1:]...)
			break
		}
	}
}

func (d *Dict) Keys() []string {
	return d.keys
}

func (d *Dict) Len() int {
	return len(d.keys)
}

func (d *Dict) String() string {
	var sb strings.Builder
	sb.WriteString("{")
	for i, key := range d.keys {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Quote(key))
		sb.WriteString(": ")
		sb.WriteString(Quote(d.values[key]))
	}
	sb.WriteString("}")
	return sb.String()
}
