package measurable

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sahidursuman/measured/internal/domain/unit"
	"github.com/sahidursuman/measured/internal/domain/value"
)

// Measurable is an exact amount in a unit of one Kind.
// Obtain one through Kind.New; the zero value is not usable.
//
// A converted Measurable remembers the exact fraction it came from, so
// comparisons and conversions back to the original unit never drift even
// when Value had to be rounded for display.
type Measurable struct {
	kind  *Kind
	value value.Decimal
	exact value.Ratio
	unit  *unit.Unit
}

// New validates value and unitName and returns a Measurable of kind k.
//
// value may be any Go integer or float, a decimal string, a
// decimal.Decimal or a value.Decimal. Checks run in this order: nil value,
// blank value, blank unit, unknown unit, unparseable value.
func (k *Kind) New(v any, unitName string) (*Measurable, error) {
	if value.IsNil(v) {
		return nil, ErrNilValue
	}
	if value.IsBlank(v) {
		return nil, ErrBlankValue
	}
	if strings.TrimSpace(unitName) == "" {
		return nil, ErrBlankUnit
	}

	u, err := k.resolve(unitName)
	if err != nil {
		return nil, err
	}

	amount, err := value.Parse(v)
	if err != nil {
		return nil, &UnitError{msg: fmt.Sprintf("Unit value %v is not a number", v), err: err}
	}

	return &Measurable{kind: k, value: amount, exact: amount.Ratio(), unit: u}, nil
}

// MustNew is like New but panics on error. Intended for literals.
func (k *Kind) MustNew(v any, unitName string) *Measurable {
	m, err := k.New(v, unitName)
	if err != nil {
		panic(err)
	}
	return m
}

func (k *Kind) resolve(unitName string) (*unit.Unit, error) {
	reg, err := k.Registry()
	if err != nil {
		return nil, err
	}
	u, err := reg.Resolve(unitName)
	if err != nil {
		return nil, &UnitError{msg: fmt.Sprintf("Invalid unit %q for %s", strings.TrimSpace(unitName), k.name), err: err}
	}
	return u, nil
}

// Kind returns the quantity kind
func (m *Measurable) Kind() *Kind {
	return m.kind
}

// Value returns the amount. After a conversion with no finite decimal
// expansion it is rounded to the kind's precision.
func (m *Measurable) Value() value.Decimal {
	return m.value
}

// Unit returns the canonical unit name, even when built from an alias
func (m *Measurable) Unit() string {
	return m.unit.Name()
}

// ConvertTo returns the amount expressed in target. Converting to the
// current unit (or one of its aliases) returns the receiver itself.
// The receiver is never modified.
func (m *Measurable) ConvertTo(target string) (*Measurable, error) {
	u, amount, exact, err := m.converted(target)
	if err != nil {
		return nil, err
	}
	if u == m.unit {
		return m, nil
	}
	return &Measurable{kind: m.kind, value: amount, exact: exact, unit: u}, nil
}

// ConvertInPlace converts the receiver to target and returns it.
// On error the receiver is left unchanged.
func (m *Measurable) ConvertInPlace(target string) (*Measurable, error) {
	u, amount, exact, err := m.converted(target)
	if err != nil {
		return nil, err
	}
	m.value = amount
	m.exact = exact
	m.unit = u
	return m, nil
}

func (m *Measurable) converted(target string) (*unit.Unit, value.Decimal, value.Ratio, error) {
	if strings.TrimSpace(target) == "" {
		return nil, value.Decimal{}, value.Ratio{}, ErrBlankUnit
	}
	u, err := m.kind.resolve(target)
	if err != nil {
		return nil, value.Decimal{}, value.Ratio{}, err
	}
	if u == m.unit {
		return u, m.value, m.exact, nil
	}
	resolver, err := m.kind.Resolver()
	if err != nil {
		return nil, value.Decimal{}, value.Ratio{}, err
	}
	exact, err := resolver.Exact(m.exact, m.unit.Name(), u.Name())
	if err != nil {
		return nil, value.Decimal{}, value.Ratio{}, err
	}
	return u, exact.Decimal(resolver.Precision()), exact, nil
}

// Compare returns -1, 0 or 1 as m is less than, equal to or greater than
// other. Both amounts are compared exactly, whatever their units.
func (m *Measurable) Compare(other *Measurable) (int, error) {
	if other == nil {
		return 0, ErrNilMeasurable
	}
	if other.kind != m.kind {
		return 0, fmt.Errorf("%w: %s and %s", ErrIncompatibleKind, m.kind.name, other.kind.name)
	}
	resolver, err := m.kind.Resolver()
	if err != nil {
		return 0, err
	}
	theirs, err := resolver.Exact(other.exact, other.unit.Name(), m.unit.Name())
	if err != nil {
		return 0, err
	}
	return m.exact.Cmp(theirs), nil
}

// CompareLiteral compares m against a bare number. Only zero is allowed,
// since zero is the same amount in every unit; anything else fails with
// ErrNonZeroLiteral.
func (m *Measurable) CompareLiteral(n any) (int, error) {
	lit, err := value.Parse(n)
	if err != nil {
		return 0, err
	}
	if !lit.IsZero() {
		return 0, fmt.Errorf("%w: got %s", ErrNonZeroLiteral, lit)
	}
	return m.exact.Sign(), nil
}

// Equal reports whether both are the same kind and the same amount after
// conversion. Measurables of different kinds are never equal.
func (m *Measurable) Equal(other *Measurable) bool {
	c, err := m.Compare(other)
	return err == nil && c == 0
}

// EqualLiteral reports whether n is zero and m is zero.
func (m *Measurable) EqualLiteral(n any) bool {
	c, err := m.CompareLiteral(n)
	return err == nil && c == 0
}

// LessThan reports m < other. Incomparable values are never less.
func (m *Measurable) LessThan(other *Measurable) bool {
	c, err := m.Compare(other)
	return err == nil && c < 0
}

// GreaterThan reports m > other. Incomparable values are never greater.
func (m *Measurable) GreaterThan(other *Measurable) bool {
	c, err := m.Compare(other)
	return err == nil && c > 0
}

// IsZero reports whether the amount is zero
func (m *Measurable) IsZero() bool {
	return m.exact.IsZero()
}

// String renders "<value> <unit>", e.g. "1.234 magic_missile"
func (m *Measurable) String() string {
	return m.value.String() + " " + m.unit.Name()
}

// GoString renders "#<Kind: <value> <unit>>" for %#v
func (m *Measurable) GoString() string {
	return fmt.Sprintf("#<%s: %s>", m.kind.name, m.String())
}

type measurableJSON struct {
	Kind  string `json:"kind"`
	Value string `json:"value"`
	Unit  string `json:"unit"`
}

// MarshalJSON encodes the kind, the exact value as a string and the
// canonical unit.
func (m *Measurable) MarshalJSON() ([]byte, error) {
	return json.Marshal(measurableJSON{
		Kind:  m.kind.name,
		Value: m.value.String(),
		Unit:  m.unit.Name(),
	})
}

// UnmarshalJSON decodes the MarshalJSON form, resolving the kind through
// the process-wide catalog.
func (m *Measurable) UnmarshalJSON(data []byte) error {
	var raw measurableJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	k, err := Lookup(raw.Kind)
	if err != nil {
		return err
	}
	parsed, err := k.New(raw.Value, raw.Unit)
	if err != nil {
		return err
	}
	*m = *parsed
	return nil
}
