// Package unitdef loads quantity kinds from YAML unit definition files.
package unitdef

import (
	"errors"
	"fmt"
	"io/fs"
	stdpath "path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sahidursuman/measured/internal/domain/unit"
	"github.com/sahidursuman/measured/internal/log"
	"github.com/sahidursuman/measured/internal/measurable"
)

// Definition errors
var (
	ErrNoQuantities = errors.New("no quantities defined")
	ErrMissingName  = errors.New("quantity name is required")
	ErrMissingBase  = errors.New("base unit is required")
)

// File is the root structure of a unit definition file
type File struct {
	Quantities []Definition `yaml:"quantities"`
}

// Definition declares one quantity kind
type Definition struct {
	Name  string    `yaml:"name"`  // e.g., "Weight"
	Base  UnitDef   `yaml:"base"`  // base unit, factor 1
	Units []UnitDef `yaml:"units"` // in declaration order
}

// UnitDef declares one unit. Value is empty for the base unit and
// "<amount> <unit>" otherwise, e.g. "1000 g".
type UnitDef struct {
	Name    string   `yaml:"name"`
	Value   string   `yaml:"value"`
	Aliases []string `yaml:"aliases"`
}

// Parse decodes a definition file without building any kind.
func Parse(data []byte) ([]Definition, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse unit definitions: %w", err)
	}
	if len(file.Quantities) == 0 {
		return nil, ErrNoQuantities
	}
	for i, def := range file.Quantities {
		if strings.TrimSpace(def.Name) == "" {
			return nil, fmt.Errorf("quantity #%d: %w", i+1, ErrMissingName)
		}
		if strings.TrimSpace(def.Base.Name) == "" {
			return nil, fmt.Errorf("quantity %s: %w", def.Name, ErrMissingBase)
		}
	}
	return file.Quantities, nil
}

// Define declares the definition's units on b
func (d Definition) Define(b *unit.Builder) {
	b.Base(d.Base.Name, d.Base.Aliases...)
	for _, u := range d.Units {
		b.Unit(u.Name, u.Value, u.Aliases...)
	}
}

// Kind returns a lazily built kind for the definition
func (d Definition) Kind(opts ...measurable.KindOption) *measurable.Kind {
	return measurable.NewKind(d.Name, d.Define, opts...)
}

// Build returns the kinds declared in data, with every unit registry
// already built so broken definitions fail here rather than on first use.
func Build(data []byte, opts ...measurable.KindOption) ([]*measurable.Kind, error) {
	defs, err := Parse(data)
	if err != nil {
		return nil, err
	}
	kinds := make([]*measurable.Kind, 0, len(defs))
	for _, def := range defs {
		k := def.Kind(opts...)
		if _, err := k.Registry(); err != nil {
			return nil, fmt.Errorf("quantity %s: %w", def.Name, err)
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}

// LoadFile reads and builds the kinds declared in path.
func LoadFile(fsys fs.FS, path string, opts ...measurable.KindOption) ([]*measurable.Kind, error) {
	content, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	kinds, err := Build(content, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Debug(log.CatUnitDef, "loaded unit definitions", "path", path, "kinds", len(kinds))
	return kinds, nil
}

// LoadDir loads every *.yaml and *.yml file directly under dir, in name
// order. Subdirectories are not scanned.
func LoadDir(fsys fs.FS, dir string, opts ...measurable.KindOption) ([]*measurable.Kind, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", dir, err)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	var all []*measurable.Kind
	for _, entry := range entries {
		if entry.IsDir() || !IsDefinitionFile(entry.Name()) {
			continue
		}
		// fs.FS paths always use forward slashes
		kinds, err := LoadFile(fsys, stdpath.Join(dir, entry.Name()), opts...)
		if err != nil {
			return nil, err
		}
		all = append(all, kinds...)
	}
	return all, nil
}

// IsDefinitionFile reports whether name has a YAML extension
func IsDefinitionFile(name string) bool {
	switch strings.ToLower(stdpath.Ext(name)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
