// Package measurable implements quantity kinds and the measurable values
// built from them.
//
// A Kind is a quantity type such as Weight or Length. It owns exactly one
// unit registry, built lazily on first use under a sync.Once and immutable
// afterwards, plus the conversion resolver over that registry. A Measurable
// is an exact decimal amount paired with a unit of its Kind.
//
//	weight := measurable.NewKind("Weight", func(b *unit.Builder) {
//		b.Base("g", "gram", "grams").
//			Unit("kg", "1000 g", "kilogram", "kilograms")
//	})
//
//	m, err := weight.New("1.5", "kilograms") // 1.5 kg
//	g, err := m.ConvertTo("g")               // 1500 g
//
// Construction is validated eagerly: a Measurable either exists with a
// resolved unit or was never returned. ConvertTo is pure; ConvertInPlace is
// the only mutation.
//
// Comparison against bare numbers is restricted to zero, the additive
// identity in every unit. Comparing against any other bare number is an
// error because its unit would be ambiguous.
//
// Kinds may be published in a process-wide catalog (Register, Lookup) so
// that declarative sources and the command line can find them by name.
package measurable
