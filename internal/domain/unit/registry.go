package unit

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/sahidursuman/measured/internal/domain/value"
)

// Registry errors
var (
	ErrUnknownUnit   = errors.New("unknown unit")
	ErrBlankName     = errors.New("unit name cannot be blank")
	ErrBlankAlias    = errors.New("unit alias cannot be blank")
	ErrDuplicateName = errors.New("unit name or alias already registered")
	ErrMultipleBase  = errors.New("registry already has a base unit")
	ErrNoBaseUnit    = errors.New("registry has no base unit")
	ErrInvalidFactor = errors.New("unit factor must be positive")
	ErrSealed        = errors.New("registry is sealed")
)

// Registry holds the units of one quantity kind
type Registry struct {
	mu     sync.RWMutex
	units  []*Unit          // declaration order
	byName map[string]*Unit // normalized name or alias -> unit
	base   *Unit
	sealed bool

	// computed at Seal
	names    []string
	allNames []string
}

// NewRegistry creates a new empty registry
func NewRegistry() *Registry {
	return &Registry{
		units:  make([]*Unit, 0),
		byName: make(map[string]*Unit),
	}
}

// Register adds a unit. The base unit's factor is always 1 regardless of
// the factor passed in. Aliases repeating the canonical name, or each other,
// are dropped rather than rejected.
func (r *Registry) Register(name string, aliases []string, isBase bool, factor value.Ratio) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sealed {
		return ErrSealed
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return ErrBlankName
	}
	if isBase && r.base != nil {
		return fmt.Errorf("%w: %s, cannot add %s", ErrMultipleBase, r.base.name, name)
	}
	if isBase {
		factor = value.One().Ratio()
	} else if factor.Sign() <= 0 {
		return fmt.Errorf("%w: %s = %s", ErrInvalidFactor, name, factor)
	}

	// Collect the keys this unit claims, checking collisions against the
	// registry before mutating anything.
	keys := []string{Normalize(name)}
	kept := make([]string, 0, len(aliases))
	seen := map[string]bool{keys[0]: true}
	for _, alias := range aliases {
		alias = strings.TrimSpace(alias)
		if alias == "" {
			return fmt.Errorf("%w: unit %s", ErrBlankAlias, name)
		}
		key := Normalize(alias)
		if seen[key] {
			continue
		}
		seen[key] = true
		keys = append(keys, key)
		kept = append(kept, alias)
	}
	for _, key := range keys {
		if existing, ok := r.byName[key]; ok {
			return fmt.Errorf("%w: %q is taken by %s", ErrDuplicateName, key, existing.name)
		}
	}

	u := newUnit(name, kept, isBase, factor)
	for _, key := range keys {
		r.byName[key] = u
	}
	r.units = append(r.units, u)
	if isBase {
		r.base = u
	}
	return nil
}

// Seal freezes the registry. It fails if no base unit was registered.
// Sealing twice is a no-op.
func (r *Registry) Seal() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sealed {
		return nil
	}
	if r.base == nil {
		return ErrNoBaseUnit
	}

	names := make([]string, 0, len(r.units))
	all := make([]string, 0, len(r.byName))
	for _, u := range r.units {
		names = append(names, u.name)
		all = append(all, u.Names()...)
	}
	r.names = sortedUnique(names)
	r.allNames = sortedUnique(all)
	r.sealed = true
	return nil
}

// Sealed reports whether Seal has succeeded
func (r *Registry) Sealed() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sealed
}

// Resolve returns the unit registered under a canonical name or alias
func (r *Registry) Resolve(nameOrAlias string) (*Unit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if u, ok := r.byName[Normalize(nameOrAlias)]; ok {
		return u, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownUnit, nameOrAlias)
}

// IsValid reports whether name resolves
func (r *Registry) IsValid(name string) bool {
	_, err := r.Resolve(name)
	return err == nil
}

// Base returns the base unit, or nil before one is registered
func (r *Registry) Base() *Unit {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.base
}

// List returns all units in declaration order
func (r *Registry) List() []*Unit {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Unit, len(r.units))
	copy(out, r.units)
	return out
}

// Units returns the canonical names, sorted alphabetically
func (r *Registry) Units() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.sealed {
		return append([]string(nil), r.names...)
	}
	names := make([]string, 0, len(r.units))
	for _, u := range r.units {
		names = append(names, u.name)
	}
	return sortedUnique(names)
}

// UnitsWithAliases returns canonical names and aliases, sorted alphabetically
func (r *Registry) UnitsWithAliases() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.sealed {
		return append([]string(nil), r.allNames...)
	}
	all := make([]string, 0, len(r.byName))
	for _, u := range r.units {
		all = append(all, u.Names()...)
	}
	return sortedUnique(all)
}

func sortedUnique(in []string) []string {
	set := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if set[s] {
			continue
		}
		set[s] = true
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
