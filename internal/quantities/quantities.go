// Package quantities ships the built-in Weight and Length kinds.
package quantities

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/sahidursuman/measured/internal/measurable"
	"github.com/sahidursuman/measured/internal/unitdef"
)

//go:embed quantities.yaml
var definitions []byte

// Built-in kind names
const (
	Weight = "Weight"
	Length = "Length"
)

var (
	once     sync.Once
	builtins []*measurable.Kind
	loadErr  error
)

// Kinds returns the shared built-in kinds at the default precision.
// They are parsed once per process.
func Kinds() ([]*measurable.Kind, error) {
	once.Do(func() {
		builtins, loadErr = New()
	})
	return builtins, loadErr
}

// New parses fresh built-in kinds, distinct from Kinds().
func New(opts ...measurable.KindOption) ([]*measurable.Kind, error) {
	kinds, err := unitdef.Build(definitions, opts...)
	if err != nil {
		return nil, fmt.Errorf("built-in quantities: %w", err)
	}
	return kinds, nil
}

// Register adds the shared built-in kinds to catalog. Calling it again is a
// no-op. With options, fresh kinds are registered instead and a second call
// fails with measurable.ErrDuplicateKind.
func Register(catalog *measurable.Catalog, opts ...measurable.KindOption) error {
	kinds, err := Kinds()
	if len(opts) > 0 {
		kinds, err = New(opts...)
	}
	if err != nil {
		return err
	}
	for _, k := range kinds {
		if err := catalog.Register(k); err != nil {
			return err
		}
	}
	return nil
}

// Definitions returns the embedded definition file
func Definitions() []byte {
	return definitions
}
