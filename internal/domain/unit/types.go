package unit

import (
	"strings"

	"github.com/sahidursuman/measured/internal/domain/value"
)

// Unit is a registered unit of measure
type Unit struct {
	name    string        // e.g., "kg"
	aliases []string      // e.g., ["kilogram", "kilograms"]
	base    bool          // true for the registry's single base unit
	factor  value.Ratio // base units in one of this unit
}

// newUnit creates a unit (used by Registry.Register)
func newUnit(name string, aliases []string, base bool, factor value.Ratio) *Unit {
	return &Unit{
		name:    name,
		aliases: aliases,
		base:    base,
		factor:  factor,
	}
}

// Name returns the canonical name
func (u *Unit) Name() string {
	return u.name
}

// Aliases returns the alternate names, in declaration order
func (u *Unit) Aliases() []string {
	out := make([]string, len(u.aliases))
	copy(out, u.aliases)
	return out
}

// IsBase reports whether this is the registry's base unit
func (u *Unit) IsBase() bool {
	return u.base
}

// Factor returns how many base units make up one of this unit
func (u *Unit) Factor() value.Ratio {
	return u.factor
}

// Names returns the canonical name followed by the aliases
func (u *Unit) Names() []string {
	return append([]string{u.name}, u.aliases...)
}

func (u *Unit) String() string {
	return u.name
}

// Normalize is the lookup key for a unit name or alias.
func Normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
