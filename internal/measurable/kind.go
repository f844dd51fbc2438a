package measurable

import (
	"fmt"
	"strings"
	"sync"
	"unicode"

	"github.com/sahidursuman/measured/internal/domain/conversion"
	"github.com/sahidursuman/measured/internal/domain/unit"
	"github.com/sahidursuman/measured/internal/domain/value"
	"github.com/sahidursuman/measured/internal/log"
)

// DefineFunc declares the units of a kind.
type DefineFunc func(b *unit.Builder)

// Kind is a quantity type. Its registry is built once, on first use.
type Kind struct {
	name      string
	define    DefineFunc
	precision int32

	once     sync.Once
	registry *unit.Registry
	resolver *conversion.Resolver
	err      error
}

// KindOption configures a Kind (Functional Option Pattern)
type KindOption func(*Kind)

// WithPrecision sets the fractional digits kept when a converted amount has
// no finite decimal expansion.
func WithPrecision(precision int32) KindOption {
	return func(k *Kind) {
		if precision > 0 {
			k.precision = precision
		}
	}
}

// NewKind creates a quantity kind. define runs at most once, the first time
// the kind is used.
func NewKind(name string, define DefineFunc, opts ...KindOption) *Kind {
	k := &Kind{
		name:      strings.TrimSpace(name),
		define:    define,
		precision: value.DefaultPrecision,
	}
	for _, opt := range opts {
		opt(k)
	}
	return k
}

// Name returns the kind name as declared, e.g. "Weight"
func (k *Kind) Name() string {
	return k.name
}

// HumanizedName returns a lower-cased, space separated label derived from
// the name: "VeryComplexThing" becomes "very complex thing". Namespace
// prefixes ("Example::Thing", "example.Thing") are dropped.
func (k *Kind) HumanizedName() string {
	return Humanize(k.name)
}

func (k *Kind) String() string {
	return k.name
}

// Registry returns the sealed unit registry, building it on first call
func (k *Kind) Registry() (*unit.Registry, error) {
	if err := k.load(); err != nil {
		return nil, err
	}
	return k.registry, nil
}

// Resolver returns the conversion resolver, building the registry on first call
func (k *Kind) Resolver() (*conversion.Resolver, error) {
	if err := k.load(); err != nil {
		return nil, err
	}
	return k.resolver, nil
}

// Units returns the sorted canonical unit names. A kind whose definition
// failed has no units.
func (k *Kind) Units() []string {
	if k.load() != nil {
		return nil
	}
	return k.registry.Units()
}

// UnitsWithAliases returns the sorted canonical names and aliases
func (k *Kind) UnitsWithAliases() []string {
	if k.load() != nil {
		return nil
	}
	return k.registry.UnitsWithAliases()
}

// IsValidUnit reports whether name is a unit or alias of this kind
func (k *Kind) IsValidUnit(name string) bool {
	if k.load() != nil {
		return false
	}
	return k.registry.IsValid(name)
}

// BaseUnit returns the canonical name of the base unit
func (k *Kind) BaseUnit() (string, error) {
	if err := k.load(); err != nil {
		return "", err
	}
	return k.registry.Base().Name(), nil
}

func (k *Kind) load() error {
	k.once.Do(func() {
		reg, err := k.build()
		if err != nil {
			k.err = fmt.Errorf("kind %s: %w", k.name, err)
			log.ErrorErr(log.CatRegistry, "unit registry build failed", err, "kind", k.name)
			return
		}
		k.registry = reg
		k.resolver = conversion.NewResolver(reg, conversion.WithPrecision(k.precision))
		log.Debug(log.CatRegistry, "unit registry sealed",
			"kind", k.name, "base", reg.Base().Name(), "units", len(reg.Units()))
	})
	return k.err
}

// build runs define. A panic inside define becomes an error so the kind
// stays unusable rather than half-built.
func (k *Kind) build() (reg *unit.Registry, err error) {
	defer func() {
		if r := recover(); r != nil {
			reg, err = nil, fmt.Errorf("%w: %v", ErrDefinitionPanic, r)
		}
	}()
	b := unit.NewBuilder()
	if k.define != nil {
		k.define(b)
	}
	return b.Build()
}

// Humanize turns a type-style name into a lower-case label.
func Humanize(name string) string {
	if i := strings.LastIndex(name, "::"); i >= 0 {
		name = name[i+2:]
	}
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}

	runes := []rune(strings.TrimSpace(name))
	var b strings.Builder
	for i, r := range runes {
		if r == '_' || r == '-' || unicode.IsSpace(r) {
			if b.Len() > 0 && !strings.HasSuffix(b.String(), " ") {
				b.WriteByte(' ')
			}
			continue
		}
		if i > 0 && unicode.IsUpper(r) && b.Len() > 0 && !strings.HasSuffix(b.String(), " ") {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				b.WriteByte(' ')
			}
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return strings.TrimSpace(b.String())
}
