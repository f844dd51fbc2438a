package unit

// Provider defines read-only access to a sealed unit registry.
// The conversion resolver and the measurable kinds depend on this interface
// rather than on *Registry so tests can substitute small fakes.
type Provider interface {
	// Resolve returns the unit registered under a canonical name or alias.
	// Lookup ignores case and surrounding whitespace.
	// Returns ErrUnknownUnit if nothing matches.
	Resolve(nameOrAlias string) (*Unit, error)

	// Base returns the base unit.
	Base() *Unit

	// Units returns the canonical unit names, sorted and de-duplicated.
	Units() []string

	// UnitsWithAliases returns every canonical name and alias, sorted and de-duplicated.
	UnitsWithAliases() []string

	// IsValid reports whether name resolves. It never fails.
	IsValid(name string) bool
}

// Compile-time check that Registry implements Provider.
var _ Provider = (*Registry)(nil)
