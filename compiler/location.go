package compiler

import (
	"encoding/binary"
	"fmt"
)

// Debug enables internal consistency checks on jump locations.
var Debug = false

// Location is a handle into Locations.
type Location int

// OpcodeLocation is a jump target that may not be known yet. Every operand
// emitted against it is recorded and rewritten once the target is set.
type OpcodeLocation struct {
	Target   int
	Resolved bool
	Uses     []int
}

// Locations is the arena of every location of one compilation.
type Locations struct {
	items []OpcodeLocation
}

func (l *Locations) New() Location {
	l.items = append(l.items, OpcodeLocation{})
	return Location(len(l.items) - 1)
}

func (l *Locations) Get(loc Location) *OpcodeLocation {
	return &l.items[loc]
}

func (l *Locations) Len() int {
	return len(l.items)
}

// Use records a u16 operand at offset that refers to loc. The operand is
// written immediately when the target is already known.
func (l *Locations) Use(code []byte, loc Location, offset int) {
	item := &l.items[loc]
	item.Uses = append(item.Uses, offset)
	if item.Resolved {
		binary.LittleEndian.PutUint16(code[offset:], uint16(item.Target))
	}
}

// Set resolves loc and patches every recorded use site.
func (l *Locations) Set(code []byte, loc Location, target int) {
	item := &l.items[loc]
	item.Target = target
	item.Resolved = true
	for _, offset := range item.Uses {
		binary.LittleEndian.PutUint16(code[offset:], uint16(target))
	}
}

// Unresolved returns the locations that have use sites but no target.
func (l *Locations) Unresolved() []Location {
	var ret []Location
	for i, item := range l.items {
		if !item.Resolved && len(item.Uses) > 0 {
			ret = append(ret, Location(i))
		}
	}
	return ret
}

type LocationGroup struct {
	locations []Location
}

func (g *LocationGroup) Add(loc Location) {
	g.locations = append(g.locations, loc)
}

func (g *LocationGroup) Len() int {
	return len(g.locations)
}

// Set resolves every location in the group to target.
func (g *LocationGroup) Set(l *Locations, code []byte, target int) {
	for _, loc := range g.locations {
		l.Set(code, loc, target)
	}
}

// Clear empties the group. All locations must be resolved by then.
func (g *LocationGroup) Clear(l *Locations) {
	if Debug {
		for _, loc := range g.locations {
			if !l.Get(loc).Resolved {
				panic(fmt.Sprintf("location %d cleared while unresolved", loc))
			}
		}
	}
	g.locations = g.locations[:0]
}

// LoopItem collects the jumps of one loop being compiled.
type LoopItem struct {
	Breaks    LocationGroup
	Continues LocationGroup
}
