package values

import (
	"fmt"
	"strconv"
)

// Kind identifies which variant of the Value tagged union is populated.
type Kind byte

const (
	KindReal Kind = iota
	KindString
)

// Value is the GSL runtime value: either a Real or an owned string. There is
// no third variant and no implicit promotion between the two — operators
// that mix them fail with InvalidOperandsBinary/Unary (see package gml).
type Value struct {
	kind Kind
	real Real
	str  string
}

// Zero is the default Value, used wherever the original engine writes
// `Default::default()` (uninitialized reads under the zero-fill policy,
// fresh argument slots, a fresh context's return value).
var Zero = Value{kind: KindReal, real: 0}

// NewReal constructs a numeric Value.
func NewReal(r Real) Value { return Value{kind: KindReal, real: r} }

// NewFloat is a convenience wrapper around NewReal.
func NewFloat(f float64) Value { return NewReal(Real(f)) }

// NewInt wraps an integer as a real-valued Value (GSL has no integer type).
func NewInt(i int32) Value { return NewReal(Real(float64(i))) }

// NewBool encodes a boolean the way GSL does: 1.0 for true, 0.0 for false.
func NewBool(b bool) Value { return NewReal(RealFromBool(b)) }

// NewString constructs a string Value.
func NewString(s string) Value { return Value{kind: KindString, str: s} }

func (v Value) IsReal() bool   { return v.kind == KindReal }
func (v Value) IsString() bool { return v.kind == KindString }

// Real returns the numeric payload; callers must check IsReal first (it
// returns 0 for a string Value rather than panicking, since many call sites
// coerce optimistically and recover via IsTruthy/ToInt32 instead).
func (v Value) Real() Real {
	if v.kind != KindReal {
		return 0
	}
	return v.real
}

// Str returns the string payload; callers must check IsString first.
func (v Value) Str() string {
	if v.kind != KindString {
		return ""
	}
	return v.str
}

// TypeName reports the GSL-visible type name, used in error formatting.
func (v Value) TypeName() string {
	if v.kind == KindString {
		return "string"
	}
	return "real"
}

// IsTruthy implements GSL's condition semantics. Only reals participate;
// a string used as a condition is simply not true (GM8 scripts never do
// this in practice, and the reference engine never raises an error for it
// either).
func (v Value) IsTruthy() bool {
	if v.kind != KindReal {
		return false
	}
	return v.real.Truthy()
}

// ToInt32 performs the round-then-truncate coercion used for array indices,
// `with`/`repeat` targets and counts, and instance-id comparisons. A string
// Value coerces to 0, matching the reference engine's infallible
// Value -> i32 conversion.
func (v Value) ToInt32() int32 {
	if v.kind != KindReal {
		return 0
	}
	return v.real.Round()
}

// String renders the value for diagnostics (error messages, debug dumps).
func (v Value) String() string {
	if v.kind == KindString {
		return v.str
	}
	f := float64(v.real)
	if f == float64(int64(f)) && f < 1e15 && f > -1e15 {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// GoString gives a debug-friendly representation (quoted strings).
func (v Value) GoString() string {
	if v.kind == KindString {
		return fmt.Sprintf("%q", v.str)
	}
	return v.String()
}

// AlmostEquals implements tolerance-based equality over whole Values, as
// used by Switch-case matching. Mixed-type comparisons are always unequal
// rather than an error here; the `==` operator itself (gml.Equal) instead
// rejects mixed types with InvalidOperandsBinary.
func (v Value) AlmostEquals(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	if v.kind == KindString {
		return v.str == other.str
	}
	return v.real.AlmostEquals(other.real)
}

// Identical is a stricter, exact equality for callers that must not
// tolerate the `==` fuzz. (Bbox staleness detection in package gml compares
// the Real payloads with `!=` directly rather than calling this.)
func (v Value) Identical(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	if v.kind == KindString {
		return v.str == other.str
	}
	return v.real == other.real
}
