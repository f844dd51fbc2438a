package value

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidRatio is returned for text that is neither "p/q" nor a decimal.
var ErrInvalidRatio = errors.New("invalid ratio")

// Ratio is an exact fraction of two decimals. Unit factors and conversion
// factors are ratios, so composing them never rounds. Rounding happens once,
// in Decimal, and only when the fraction has no finite decimal expansion.
//
// A Ratio is immutable. The zero value is 0.
type Ratio struct {
	r *big.Rat
}

// Ratio returns d as an exact fraction.
func (d Decimal) Ratio() Ratio {
	return Ratio{r: d.d.Rat()}
}

// NewRatio returns num/den.
func NewRatio(num, den Decimal) (Ratio, error) {
	if den.IsZero() {
		return Ratio{}, ErrDivisionByZero
	}
	return Ratio{r: new(big.Rat).Quo(num.d.Rat(), den.d.Rat())}, nil
}

// ParseRatio reads "p/q", with p and q decimals, or a plain decimal.
func ParseRatio(s string) (Ratio, error) {
	num, den, fraction := strings.Cut(strings.TrimSpace(s), "/")
	n, err := parseText(num)
	if err != nil {
		return Ratio{}, fmt.Errorf("%w: %q", ErrInvalidRatio, s)
	}
	if !fraction {
		return n.Ratio(), nil
	}
	d, err := parseText(den)
	if err != nil {
		return Ratio{}, fmt.Errorf("%w: %q", ErrInvalidRatio, s)
	}
	q, err := NewRatio(n, d)
	if err != nil {
		return Ratio{}, fmt.Errorf("%w: %q: %w", ErrInvalidRatio, s, err)
	}
	return q, nil
}

// MustParseRatio is like ParseRatio but panics on error.
func MustParseRatio(s string) Ratio {
	q, err := ParseRatio(s)
	if err != nil {
		panic(err)
	}
	return q
}

func (q Ratio) rat() *big.Rat {
	if q.r == nil {
		return new(big.Rat)
	}
	return q.r
}

// Mul returns q * o.
func (q Ratio) Mul(o Ratio) Ratio {
	return Ratio{r: new(big.Rat).Mul(q.rat(), o.rat())}
}

// Quo returns q / o.
func (q Ratio) Quo(o Ratio) (Ratio, error) {
	if o.Sign() == 0 {
		return Ratio{}, ErrDivisionByZero
	}
	return Ratio{r: new(big.Rat).Quo(q.rat(), o.rat())}, nil
}

// Cmp returns -1, 0 or 1 as q is less than, equal to or greater than o.
func (q Ratio) Cmp(o Ratio) int {
	return q.rat().Cmp(o.rat())
}

func (q Ratio) Equal(o Ratio) bool {
	return q.Cmp(o) == 0
}

func (q Ratio) Sign() int {
	return q.rat().Sign()
}

func (q Ratio) IsZero() bool {
	return q.Sign() == 0
}

// Exact returns q as a Decimal when its decimal expansion is finite.
func (q Ratio) Exact() (Decimal, bool) {
	r := q.rat()
	places, ok := terminatingPlaces(r.Denom())
	if !ok {
		return Decimal{}, false
	}
	return Decimal{d: trim(decimal.NewFromBigRat(r, places))}, true
}

// Decimal returns q exactly when its expansion is finite, otherwise rounded
// half away from zero to precision fractional digits.
func (q Ratio) Decimal(precision int32) Decimal {
	if d, ok := q.Exact(); ok {
		return d
	}
	return Decimal{d: trim(decimal.NewFromBigRat(q.rat(), precision))}
}

// String renders a finite expansion as a decimal and anything else as
// "p/q", e.g. "0.125" or "1/3".
func (q Ratio) String() string {
	if d, ok := q.Exact(); ok {
		return d.String()
	}
	return q.rat().RatString()
}

// terminatingPlaces reports whether a reduced fraction with denominator den
// has a finite decimal expansion, and how many fractional digits it needs.
func terminatingPlaces(den *big.Int) (int32, bool) {
	d := new(big.Int).Set(den)
	var twos, fives int32
	for d.Sign() > 0 && d.Bit(0) == 0 {
		d.Rsh(d, 1)
		twos++
	}
	five := big.NewInt(5)
	quo, rem := new(big.Int), new(big.Int)
	for d.Sign() > 0 {
		quo.QuoRem(d, five, rem)
		if rem.Sign() != 0 {
			break
		}
		d.Set(quo)
		fives++
	}
	return max(twos, fives), d.IsInt64() && d.Int64() == 1
}
