package configs

import (
	"iter"
	"os"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/reusee/e5"
)

var wrap = e5.Wrap.With(e5.WrapStacktrace)

// Loader reads CUE files lazily on first lookup. Earlier paths take
// precedence over later ones.
type Loader struct {
	paths    []string
	getRoots func() ([]root, error)
}

type root struct {
	path  string
	value cue.Value
}

func NewLoader(paths []string, schemaSrc string) Loader {
	return Loader{
		paths: paths,
		getRoots: sync.OnceValues(func() ([]root, error) {
			return loadRoots(paths, schemaSrc)
		}),
	}
}

func loadRoots(paths []string, schemaSrc string) (ret []root, err error) {
	ctx := cuecontext.New()

	var schema cue.Value
	if schemaSrc != "" {
		schema = ctx.CompileString("close({" + schemaSrc + "})")
		if err := schema.Err(); err != nil {
			return nil, wrap(err)
		}
	}

	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, wrap(err)
		}
		value := ctx.CompileBytes(content, cue.Filename(path))
		if err := value.Err(); err != nil {
			return nil, wrap(err)
		}
		if schema.Exists() {
			if err := schema.Unify(value).Validate(); err != nil {
				return nil, wrap(err)
			}
		}
		ret = append(ret, root{
			path:  path,
			value: value,
		})
	}
	return
}

func (l Loader) Paths() []string {
	return l.paths
}

// IterCueValues yields the value at path from every file defining it.
func (l Loader) IterCueValues(path string) iter.Seq2[*cue.Value, error] {
	return func(yield func(*cue.Value, error) bool) {
		if l.getRoots == nil {
			return
		}
		roots, err := l.getRoots()
		if err != nil {
			yield(nil, err)
			return
		}
		cuePath := cue.ParsePath(path)
		for _, r := range roots {
			value := r.value.LookupPath(cuePath)
			if value.Err() != nil || !value.Exists() {
				continue
			}
			if !yield(&value, nil) {
				return
			}
		}
	}
}

// AssignFirst decodes the first value found at path into target.
func (l Loader) AssignFirst(path string, target any) error {
	for value, err := range l.IterCueValues(path) {
		if err != nil {
			return err
		}
		if err := value.Decode(target); err != nil {
			return wrap(err)
		}
		return nil
	}
	return ErrValueNotFound
}
