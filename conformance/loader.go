package conformance

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"
)

// LoadedCase is a case together with the file and suite it came from.
type LoadedCase struct {
	File  string
	Suite string
	Case  Case
}

// LoadFile decodes one suite, rejecting unknown fields.
func LoadFile(path string) (*Suite, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	decoder := yaml.NewDecoder(bytes.NewReader(content))
	decoder.KnownFields(true)
	var suite Suite
	if err := decoder.Decode(&suite); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if suite.Name == "" {
		suite.Name = filepath.Base(path)
	}
	return &suite, nil
}

// LoadDir loads every .yaml file under dir in lexical path order.
func LoadDir(dir string) ([]LoadedCase, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !entry.IsDir() && filepath.Ext(path) == ".yaml" {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	slices.Sort(paths)

	var ret []LoadedCase
	for _, path := range paths {
		suite, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			rel = path
		}
		for _, c := range suite.Cases {
			ret = append(ret, LoadedCase{
				File:  rel,
				Suite: suite.Name,
				Case:  c,
			})
		}
	}
	return ret, nil
}
