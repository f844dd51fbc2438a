// Package value implements the exact decimal magnitude carried by every
// measurable quantity.
//
// Stored magnitudes are never backed by binary floating point. Floats handed
// to Parse are first rendered to their shortest round-trip text and that text
// is parsed, so 9.1234572342342 is stored with exactly the digits a person
// would write.
package value

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultPrecision is the number of fractional digits kept when a Ratio
// with no finite decimal expansion is rounded.
const DefaultPrecision int32 = 34

// Value errors
var (
	ErrInvalidValue   = errors.New("invalid decimal value")
	ErrDivisionByZero = errors.New("division by zero")
)

// Decimal is an arbitrary-precision base-10 number.
// The zero value is 0 and ready to use.
type Decimal struct {
	d decimal.Decimal
}

// Zero returns 0.
func Zero() Decimal {
	return Decimal{d: decimal.Zero}
}

// One returns 1.
func One() Decimal {
	return Decimal{d: decimal.NewFromInt(1)}
}

// FromDecimal wraps a shopspring decimal.
func FromDecimal(d decimal.Decimal) Decimal {
	return Decimal{d: d}
}

// Parse converts src into a Decimal.
//
// Supported sources are the Go integer types, float32, float64, decimal
// strings, decimal.Decimal and Decimal. Nil, blank strings, non-numeric
// strings, NaN and infinities fail with ErrInvalidValue.
func Parse(src any) (Decimal, error) {
	switch v := src.(type) {
	case nil:
		return Decimal{}, fmt.Errorf("%w: nil", ErrInvalidValue)
	case Decimal:
		return v, nil
	case *Decimal:
		if v == nil {
			return Decimal{}, fmt.Errorf("%w: nil", ErrInvalidValue)
		}
		return *v, nil
	case decimal.Decimal:
		return Decimal{d: v}, nil
	case int:
		return Decimal{d: decimal.NewFromInt(int64(v))}, nil
	case int8:
		return Decimal{d: decimal.NewFromInt(int64(v))}, nil
	case int16:
		return Decimal{d: decimal.NewFromInt(int64(v))}, nil
	case int32:
		return Decimal{d: decimal.NewFromInt(int64(v))}, nil
	case int64:
		return Decimal{d: decimal.NewFromInt(v)}, nil
	case uint:
		return parseText(strconv.FormatUint(uint64(v), 10))
	case uint8:
		return Decimal{d: decimal.NewFromInt(int64(v))}, nil
	case uint16:
		return Decimal{d: decimal.NewFromInt(int64(v))}, nil
	case uint32:
		return Decimal{d: decimal.NewFromInt(int64(v))}, nil
	case uint64:
		return parseText(strconv.FormatUint(v, 10))
	case float32:
		return parseFloat(float64(v), 32)
	case float64:
		return parseFloat(v, 64)
	case string:
		return parseText(v)
	default:
		return Decimal{}, fmt.Errorf("%w: unsupported type %T", ErrInvalidValue, src)
	}
}

// MustParse is like Parse but panics on error. Intended for literals.
func MustParse(src any) Decimal {
	d, err := Parse(src)
	if err != nil {
		panic(err)
	}
	return d
}

// IsNil reports whether src is nil or a nil pointer, such as a
// (*Decimal)(nil) boxed in an interface.
func IsNil(src any) bool {
	if src == nil {
		return true
	}
	rv := reflect.ValueOf(src)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice:
		return rv.IsNil()
	}
	return false
}

// IsBlank reports whether src is a string made only of whitespace.
func IsBlank(src any) bool {
	s, ok := src.(string)
	return ok && strings.TrimSpace(s) == ""
}

func parseFloat(f float64, bitSize int) (Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Decimal{}, fmt.Errorf("%w: %v", ErrInvalidValue, f)
	}
	return parseText(strconv.FormatFloat(f, 'f', -1, bitSize))
}

func parseText(s string) (Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Decimal{}, fmt.Errorf("%w: blank", ErrInvalidValue)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Decimal{}, fmt.Errorf("%w: %q", ErrInvalidValue, s)
	}
	return Decimal{d: d}, nil
}

// Decimal returns the underlying shopspring decimal.
func (d Decimal) Decimal() decimal.Decimal {
	return d.d
}

// Cmp returns -1, 0 or 1 as d is less than, equal to or greater than o.
func (d Decimal) Cmp(o Decimal) int {
	return d.d.Cmp(o.d)
}

// CmpLiteral parses n and compares d against it.
func (d Decimal) CmpLiteral(n any) (int, error) {
	o, err := Parse(n)
	if err != nil {
		return 0, err
	}
	return d.Cmp(o), nil
}

// Equal reports numeric equality; 1.0 equals 1.
func (d Decimal) Equal(o Decimal) bool {
	return d.d.Equal(o.d)
}

func (d Decimal) LessThan(o Decimal) bool {
	return d.d.LessThan(o.d)
}

func (d Decimal) GreaterThan(o Decimal) bool {
	return d.d.GreaterThan(o.d)
}

// Sign returns -1, 0 or 1.
func (d Decimal) Sign() int {
	return d.d.Sign()
}

func (d Decimal) IsZero() bool {
	return d.d.IsZero()
}

func (d Decimal) Neg() Decimal {
	return Decimal{d: d.d.Neg()}
}

// Mul returns d * o. Multiplication is always exact.
func (d Decimal) Mul(o Decimal) Decimal {
	return Decimal{d: d.d.Mul(o.d)}
}

// String renders the canonical text: no exponent, no trailing zeros.
func (d Decimal) String() string {
	return d.d.String()
}

// MarshalText implements encoding.TextMarshaler.
func (d Decimal) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Decimal) UnmarshalText(text []byte) error {
	parsed, err := parseText(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// trim drops trailing fractional zeros left behind by rounding so that
// equal quotients share one representation.
func trim(d decimal.Decimal) decimal.Decimal {
	if d.Exponent() >= 0 {
		return d
	}
	t, err := decimal.NewFromString(d.String())
	if err != nil {
		return d
	}
	return t
}
