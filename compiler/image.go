package compiler

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/erhanbaris/karamel-sub001/primitives"
	"github.com/fxamacker/cbor/v2"
	"github.com/reusee/e5"
)

var wrap = e5.Wrap.With(e5.WrapStacktrace)

// ImageVersion is bumped whenever the image layout changes.
const ImageVersion = 1

var imageEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("compiler: cbor enc mode: %v", err))
	}
	imageEncMode = em
}

// Image is the serialized form of a compiled Context.
type Image struct {
	Version   int             `cbor:"1,keyasint"`
	Opcodes   []byte          `cbor:"2,keyasint"`
	Storages  []imageStorage  `cbor:"3,keyasint"`
	Functions []imageFunction `cbor:"4,keyasint"`
}

type imageStorage struct {
	Name      string       `cbor:"1,keyasint"`
	Arity     int          `cbor:"2,keyasint"`
	Constants []imageValue `cbor:"3,keyasint"`
	Variables []string     `cbor:"4,keyasint"`
}

type imageFunction struct {
	Name    string `cbor:"1,keyasint"`
	Entry   int    `cbor:"2,keyasint"`
	Storage int    `cbor:"3,keyasint"`
	Arity   int    `cbor:"4,keyasint"`
}

type imageValue struct {
	Kind   primitives.Kind `cbor:"1,keyasint"`
	Number float64         `cbor:"2,keyasint,omitempty"`
	Text   string          `cbor:"3,keyasint,omitempty"`
	Bool   bool            `cbor:"4,keyasint,omitempty"`
	Native bool            `cbor:"5,keyasint,omitempty"`
}

func encodeValue(p primitives.Primitive) (imageValue, error) {
	switch v := p.(type) {
	case primitives.Empty:
		return imageValue{Kind: primitives.KindEmpty}, nil
	case primitives.Number:
		return imageValue{Kind: primitives.KindNumber, Number: float64(v)}, nil
	case primitives.Bool:
		return imageValue{Kind: primitives.KindBool, Bool: bool(v)}, nil
	case primitives.Text:
		return imageValue{Kind: primitives.KindText, Text: string(v)}, nil
	case primitives.Atom:
		return imageValue{Kind: primitives.KindAtom, Text: v.Name}, nil
	case *primitives.FunctionReference:
		return imageValue{Kind: primitives.KindFunction, Text: v.Name, Native: v.Native}, nil
	}
	return imageValue{}, fmt.Errorf("constant %s cannot be stored in an image", p)
}

// MarshalImage encodes a compiled unit with canonical CBOR.
func MarshalImage(unit *Context) ([]byte, error) {
	image := Image{
		Version: ImageVersion,
		Opcodes: unit.Opcodes,
	}
	for _, s := range unit.Storages {
		is := imageStorage{
			Name:      s.Name,
			Arity:     s.Arity,
			Variables: s.Variables(),
		}
		for _, c := range s.Constants() {
			v, err := encodeValue(c)
			if err != nil {
				return nil, wrap(err)
			}
			is.Constants = append(is.Constants, v)
		}
		image.Storages = append(image.Storages, is)
	}
	for _, ref := range unit.Functions {
		image.Functions = append(image.Functions, imageFunction{
			Name:    ref.Name,
			Entry:   ref.Entry,
			Storage: ref.Storage,
			Arity:   ref.Arity,
		})
	}
	slices.SortFunc(image.Functions, func(a, b imageFunction) int {
		return cmp.Compare(a.Name, b.Name)
	})
	bs, err := imageEncMode.Marshal(image)
	if err != nil {
		return nil, wrap(err)
	}
	return bs, nil
}

// UnmarshalImage decodes an image into a runnable Context.
func UnmarshalImage(data []byte, natives Natives) (*Context, error) {
	var image Image
	if err := cbor.Unmarshal(data, &image); err != nil {
		return nil, wrap(fmt.Errorf("unmarshal image: %w", err))
	}
	if image.Version != ImageVersion {
		return nil, wrap(fmt.Errorf("image version %d not supported", image.Version))
	}

	unit := NewContext(natives)
	unit.Opcodes = image.Opcodes
	for _, f := range image.Functions {
		unit.Functions[f.Name] = &primitives.FunctionReference{
			Name:    f.Name,
			Entry:   f.Entry,
			Storage: f.Storage,
			Arity:   f.Arity,
		}
	}

	for i, is := range image.Storages {
		s := &Storage{
			Index:    i,
			Name:     is.Name,
			Arity:    is.Arity,
			constMap: make(map[any]int),
			slots:    make(map[string]int),
		}
		for _, v := range is.Constants {
			p, key, err := unit.decodeValue(v)
			if err != nil {
				return nil, wrap(err)
			}
			s.constMap[key] = len(s.constants)
			s.constants = append(s.constants, p)
		}
		for _, name := range is.Variables {
			s.slots[name] = len(s.constants) + len(s.variables)
			s.variables = append(s.variables, name)
		}
		s.memory = s.InitialMemory()
		unit.Storages = append(unit.Storages, s)
	}
	return unit, nil
}

func (c *Context) decodeValue(v imageValue) (primitives.Primitive, any, error) {
	var p primitives.Primitive
	switch v.Kind {
	case primitives.KindEmpty:
		p = primitives.Empty{}
	case primitives.KindNumber:
		p = primitives.Number(v.Number)
	case primitives.KindBool:
		p = primitives.Bool(v.Bool)
	case primitives.KindText:
		p = primitives.Text(v.Text)
	case primitives.KindAtom:
		p = primitives.NewAtom(v.Text)
	case primitives.KindFunction:
		if v.Native {
			key, ref, ok := c.resolveNative(v.Text)
			if !ok {
				return nil, nil, fmt.Errorf("native function %s not registered", v.Text)
			}
			return ref, key, nil
		}
		ref, ok := c.Functions[v.Text]
		if !ok {
			return nil, nil, fmt.Errorf("function %s missing from image", v.Text)
		}
		return ref, functionKey{name: v.Text}, nil
	default:
		return nil, nil, fmt.Errorf("bad constant kind %d", v.Kind)
	}
	return p, p, nil
}
