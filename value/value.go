/*
File    : loxwalk/value/value.go

Package value implements the runtime Value tagged sum: Number | String |
Boolean | Nil | Callable, plus equality/truthiness/display rules.
*/
package value

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind tags which Value variant is held.
type Kind int

const (
	NumberKind Kind = iota
	StringKind
	BooleanKind
	NilKind
	CallableKind
)

// EqualityTolerance is the absolute tolerance used for Number equality.
const EqualityTolerance = 1e-10

// Value is any runtime value the evaluator produces or consumes.
type Value struct {
	kind     Kind
	number   float64
	text     string
	boolean  bool
	callable Callable
}

func Number(n float64) Value  { return Value{kind: NumberKind, number: n} }
func String(s string) Value   { return Value{kind: StringKind, text: s} }
func Boolean(b bool) Value    { return Value{kind: BooleanKind, boolean: b} }
func Nil() Value              { return Value{kind: NilKind} }
func NewCallable(c Callable) Value { return Value{kind: CallableKind, callable: c} }

func (v Value) Kind() Kind { return v.kind }

func (v Value) IsNumber() bool   { return v.kind == NumberKind }
func (v Value) IsString() bool   { return v.kind == StringKind }
func (v Value) IsBoolean() bool  { return v.kind == BooleanKind }
func (v Value) IsNil() bool      { return v.kind == NilKind }
func (v Value) IsCallable() bool { return v.kind == CallableKind }

// AsNumber returns 0 if v is not a Number; callers must check IsNumber
// first (the evaluator always does, producing a type-mismatch diagnostic
// instead).
func (v Value) AsNumber() float64 { return v.number }
func (v Value) AsString() string  { return v.text }
func (v Value) AsBoolean() bool   { return v.boolean }
func (v Value) AsCallable() Callable { return v.callable }

// Truthy reports whether v counts as true in a boolean context: Nil and
// Boolean(false) are falsy, everything else truthy.
func (v Value) Truthy() bool {
	switch v.kind {
	case NilKind:
		return false
	case BooleanKind:
		return v.boolean
	default:
		return true
	}
}

// Equal reports whether v and other hold the same value. Equality between
// distinct kinds is always false (Nil = Nil excepted, which is same-kind);
// Number compares within EqualityTolerance; String/Boolean compare
// structurally.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case NumberKind:
		diff := v.number - other.number
		if diff < 0 {
			diff = -diff
		}
		return diff <= EqualityTolerance
	case StringKind:
		return v.text == other.text
	case BooleanKind:
		return v.boolean == other.boolean
	case NilKind:
		return true
	case CallableKind:
		return v.callable == other.callable
	}
	return false
}

// Display renders a Value's human-readable display form.
func (v Value) Display() string {
	switch v.kind {
	case NumberKind:
		return formatNumber(v.number)
	case StringKind:
		return v.text
	case BooleanKind:
		if v.boolean {
			return "true"
		}
		return "false"
	case NilKind:
		return "nil"
	case CallableKind:
		return v.callable.String()
	}
	return "<unknown>"
}

// Debug renders a Value's debug form, used by the dbg native. Strings are
// quoted; every other kind matches Display.
func (v Value) Debug() string {
	if v.kind == StringKind {
		return strconv.Quote(v.text)
	}
	return v.Display()
}

// formatNumber renders a float64 in its natural decimal form with no
// trailing zeros.
func formatNumber(n float64) string {
	s := strconv.FormatFloat(n, 'f', -1, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	return s
}

func (v Value) String() string {
	return fmt.Sprintf("Value(%s)", v.Display())
}
