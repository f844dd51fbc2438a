// Package conversion derives the factor between any two units of a registry.
//
// Registries form a star anchored at the base unit, so every derived factor
// is factor(from)/factor(to) with both operands read straight from the
// registry; nothing is chained through other non-base units. Factors are
// exact fractions and are memoized per (from, to) pair for the life of the
// Resolver. Rounding happens once, when a converted amount with no finite
// decimal expansion is turned back into a Decimal.
package conversion

import (
	"github.com/sahidursuman/measured/internal/cachemanager"
	"github.com/sahidursuman/measured/internal/domain/unit"
	"github.com/sahidursuman/measured/internal/domain/value"
	"github.com/sahidursuman/measured/internal/log"
)

// Resolver computes conversion factors within one sealed registry
type Resolver struct {
	units     unit.Provider
	precision int32
	cache     cachemanager.CacheManager[string, value.Ratio]
	factors   *cachemanager.ReadThroughCache[string, value.Ratio, pair]
}

type pair struct {
	from *unit.Unit
	to   *unit.Unit
}

// Option configures a Resolver (Functional Option Pattern)
type Option func(*Resolver)

// WithPrecision sets the fractional digits kept when a converted amount
// does not terminate
func WithPrecision(precision int32) Option {
	return func(r *Resolver) {
		if precision > 0 {
			r.precision = precision
		}
	}
}

// WithCache replaces the default in-memory memo store
func WithCache(cache cachemanager.CacheManager[string, value.Ratio]) Option {
	return func(r *Resolver) {
		if cache != nil {
			r.cache = cache
		}
	}
}

// NewResolver creates a resolver over units, which should be sealed
func NewResolver(units unit.Provider, opts ...Option) *Resolver {
	r := &Resolver{
		units:     units,
		precision: value.DefaultPrecision,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.cache == nil {
		r.cache = cachemanager.NewInMemoryCacheManager[string, value.Ratio](
			"conversion-factors", cachemanager.NoExpiration, cachemanager.DefaultCleanupInterval)
	}
	r.factors = cachemanager.NewReadThroughCache[string, value.Ratio, pair](
		r.cache, r.derive, cachemanager.NoExpiration, false)
	return r
}

// Precision returns the fractional digits kept by Convert
func (r *Resolver) Precision() int32 {
	return r.precision
}

// Factor returns f such that an amount in from, multiplied by f, is the
// same amount expressed in to. Identity pairs yield exactly 1.
func (r *Resolver) Factor(from, to string) (value.Ratio, error) {
	src, dst, err := r.pair(from, to)
	if err != nil {
		return value.Ratio{}, err
	}
	return r.factor(src, dst)
}

// Exact expresses q, an amount in from, in to without rounding.
func (r *Resolver) Exact(q value.Ratio, from, to string) (value.Ratio, error) {
	src, dst, err := r.pair(from, to)
	if err != nil {
		return value.Ratio{}, err
	}
	return r.exact(q, src, dst)
}

// Convert expresses v, an amount in from, in to. Converting to the same
// unit returns v untouched. A result with no finite decimal expansion is
// rounded to Precision fractional digits.
func (r *Resolver) Convert(v value.Decimal, from, to string) (value.Decimal, error) {
	src, dst, err := r.pair(from, to)
	if err != nil {
		return value.Decimal{}, err
	}
	if src == dst {
		return v, nil
	}
	q, err := r.exact(v.Ratio(), src, dst)
	if err != nil {
		return value.Decimal{}, err
	}
	return q.Decimal(r.precision), nil
}

func (r *Resolver) pair(from, to string) (*unit.Unit, *unit.Unit, error) {
	src, err := r.units.Resolve(from)
	if err != nil {
		return nil, nil, err
	}
	dst, err := r.units.Resolve(to)
	if err != nil {
		return nil, nil, err
	}
	return src, dst, nil
}

func (r *Resolver) exact(q value.Ratio, src, dst *unit.Unit) (value.Ratio, error) {
	if src == dst {
		return q, nil
	}
	f, err := r.factor(src, dst)
	if err != nil {
		return value.Ratio{}, err
	}
	return q.Mul(f), nil
}

func (r *Resolver) factor(src, dst *unit.Unit) (value.Ratio, error) {
	if src == dst {
		return value.One().Ratio(), nil
	}
	return r.factors.Get(cacheKey(src, dst), pair{from: src, to: dst})
}

// derive computes an uncached factor through the base unit.
func (r *Resolver) derive(p pair) (value.Ratio, error) {
	log.Debug(log.CatConvert, "deriving factor", "from", p.from.Name(), "to", p.to.Name())
	if p.to.IsBase() {
		return p.from.Factor(), nil
	}
	return p.from.Factor().Quo(p.to.Factor())
}

func cacheKey(src, dst *unit.Unit) string {
	return src.Name() + "->" + dst.Name()
}
