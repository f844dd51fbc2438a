package unit

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sahidursuman/measured/internal/domain/value"
)

// Builder errors
var (
	ErrInvalidDefinition = errors.New(`unit definition must look like "<amount> <unit>" or "<p>/<q> <unit>"`)
)

// Builder provides a fluent API for declaring the units of a kind.
// The first error encountered is kept and reported by Build; later calls
// become no-ops.
type Builder struct {
	registry *Registry
	err      error
}

// NewBuilder creates a builder over a fresh registry
func NewBuilder() *Builder {
	return &Builder{
		registry: NewRegistry(),
	}
}

// Base declares the base unit
func (b *Builder) Base(name string, aliases ...string) *Builder {
	if b.err != nil {
		return b
	}
	b.err = b.registry.Register(name, aliases, true, value.One().Ratio())
	return b
}

// Unit declares a unit by an amount of a previously declared unit,
// e.g. Unit("kg", "1000 g", "kilogram") or Unit("ice", "2/3 fireball"). The referenced unit need not be
// the base; its factor is folded in so the stored factor stays relative to
// the base.
func (b *Builder) Unit(name, definition string, aliases ...string) *Builder {
	if b.err != nil {
		return b
	}
	factor, err := b.resolveDefinition(definition)
	if err != nil {
		b.err = fmt.Errorf("unit %s: %w", name, err)
		return b
	}
	b.err = b.registry.Register(name, aliases, false, factor)
	return b
}

// Factor declares a unit directly by its factor relative to the base
func (b *Builder) Factor(name string, factor value.Ratio, aliases ...string) *Builder {
	if b.err != nil {
		return b
	}
	b.err = b.registry.Register(name, aliases, false, factor)
	return b
}

// Err returns the first error recorded so far
func (b *Builder) Err() error {
	return b.err
}

// Build seals and returns the registry
func (b *Builder) Build() (*Registry, error) {
	if b.err != nil {
		return nil, b.err
	}
	if err := b.registry.Seal(); err != nil {
		return nil, err
	}
	return b.registry, nil
}

func (b *Builder) resolveDefinition(definition string) (value.Ratio, error) {
	fields := strings.Fields(definition)
	if len(fields) != 2 {
		return value.Ratio{}, fmt.Errorf("%w: %q", ErrInvalidDefinition, definition)
	}
	amount, err := value.ParseRatio(fields[0])
	if err != nil {
		return value.Ratio{}, fmt.Errorf("%w: %q", ErrInvalidDefinition, definition)
	}
	ref, err := b.registry.Resolve(fields[1])
	if err != nil {
		return value.Ratio{}, err
	}
	return amount.Mul(ref.Factor()), nil
}
