package model

import (
	"fmt"
	"math/big"
	"strings"
)

// Duration is an exact rational number of beat units. It wraps big.Rat but
// never exposes it, so no caller can mutate a shared rational. The zero value
// is 0 beats, which is a valid sum/offset but never a valid event duration.
type Duration struct {
	r *big.Rat
}

func NewDuration(num, den int64) (Duration, error) {
	if den == 0 {
		return Duration{}, fmt.Errorf("%w: denominator is zero", ErrInvalidDuration)
	}
	r := big.NewRat(num, den)
	if r.Sign() <= 0 {
		return Duration{}, fmt.Errorf("%w: %v/%v is not positive", ErrInvalidDuration, num, den)
	}
	return Duration{r: r}, nil
}

func MustDuration(num, den int64) Duration {
	d, err := NewDuration(num, den)
	if err != nil {
		panic(err)
	}
	return d
}

// Beats is shorthand for a whole number of beats.
func Beats(n int64) Duration {
	return MustDuration(n, 1)
}

// ParseDuration reads "3/2" or "2".
func ParseDuration(s string) (Duration, error) {
	s = strings.TrimSpace(s)
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return Duration{}, fmt.Errorf("%w: cannot parse %q", ErrInvalidDuration, s)
	}
	if r.Sign() <= 0 {
		return Duration{}, fmt.Errorf("%w: %q is not positive", ErrInvalidDuration, s)
	}
	return Duration{r: r}, nil
}

// DurationFromRat copies r. Used by callers that already work in big.Rat,
// e.g. offsets, where zero is allowed.
func DurationFromRat(r *big.Rat) Duration {
	return Duration{r: new(big.Rat).Set(r)}
}

func (d Duration) rat() *big.Rat {
	if d.r == nil {
		return new(big.Rat)
	}
	return d.r
}

// Rat returns a copy of the underlying rational.
func (d Duration) Rat() *big.Rat {
	return new(big.Rat).Set(d.rat())
}

func (d Duration) Add(other Duration) Duration {
	return Duration{r: new(big.Rat).Add(d.rat(), other.rat())}
}

// Scale multiplies by an arbitrary rational factor. The caller is responsible
// for factor validity; transforms guard with ErrInvalidFactor first.
func (d Duration) Scale(factor *big.Rat) Duration {
	return Duration{r: new(big.Rat).Mul(d.rat(), factor)}
}

func (d Duration) Cmp(other Duration) int {
	return d.rat().Cmp(other.rat())
}

func (d Duration) Equal(other Duration) bool {
	return d.Cmp(other) == 0
}

func (d Duration) Sign() int {
	return d.rat().Sign()
}

func (d Duration) Float64() float64 {
	f, _ := d.rat().Float64()
	return f
}

// String renders "3/2" for fractions and "2" for integers.
func (d Duration) String() string {
	return d.rat().RatString()
}

func maxDuration(a, b Duration) Duration {
	if a.Cmp(b) >= 0 {
		return a
	}
	return b
}
