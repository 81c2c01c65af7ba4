// Package beliefs implements the symbolic world-state tuples ("beliefs") an
// agent reasons over, the satisfiability-test pattern language actions and
// goals describe them with, and the per-agent BeliefSet collection with its
// expiry/uniqueness/source-bucket semantics.
package beliefs

// FieldKind enumerates the shapes an OrderedField/EqField predicate can
// take. The zero value, FieldIgnore, is the identity — every field defaults
// to "don't care" unless a builder constructor sets it otherwise.
type FieldKind uint8

const (
	FieldIgnore FieldKind = iota
	FieldExactly
	FieldNotExactly
	FieldIn
	FieldNotIn
	FieldGreaterThan
	FieldGreaterThanOrEqual
	FieldLessThan
	FieldLessThanOrEqual
	FieldLambda
)

// Ordered is the set of field types that support GreaterThan/LessThan-family
// predicates: numeric values, ticks, and the opaque integer-backed ids.
type Ordered interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64 | ~string
}

// OrderedField is a predicate over an Ordered field. Its zero value is
// Ignore, so struct literals for per-variant test builders need only set
// the fields they care about.
type OrderedField[T Ordered] struct {
	kind   FieldKind
	value  T
	values []T
	lambda func(T) bool
}

func Ignore[T Ordered]() OrderedField[T] { return OrderedField[T]{} }

func Exactly[T Ordered](v T) OrderedField[T] {
	return OrderedField[T]{kind: FieldExactly, value: v}
}

func NotExactly[T Ordered](v T) OrderedField[T] {
	return OrderedField[T]{kind: FieldNotExactly, value: v}
}

func In[T Ordered](vs ...T) OrderedField[T] {
	return OrderedField[T]{kind: FieldIn, values: vs}
}

func NotIn[T Ordered](vs ...T) OrderedField[T] {
	return OrderedField[T]{kind: FieldNotIn, values: vs}
}

func GreaterThan[T Ordered](v T) OrderedField[T] {
	return OrderedField[T]{kind: FieldGreaterThan, value: v}
}

func GreaterThanOrEqual[T Ordered](v T) OrderedField[T] {
	return OrderedField[T]{kind: FieldGreaterThanOrEqual, value: v}
}

func LessThan[T Ordered](v T) OrderedField[T] {
	return OrderedField[T]{kind: FieldLessThan, value: v}
}

func LessThanOrEqual[T Ordered](v T) OrderedField[T] {
	return OrderedField[T]{kind: FieldLessThanOrEqual, value: v}
}

func Lambda[T Ordered](fn func(T) bool) OrderedField[T] {
	return OrderedField[T]{kind: FieldLambda, lambda: fn}
}

// SatisfiedBy evaluates the predicate against a concrete field value.
func (f OrderedField[T]) SatisfiedBy(v T) bool {
	switch f.kind {
	case FieldIgnore:
		return true
	case FieldExactly:
		return v == f.value
	case FieldNotExactly:
		return v != f.value
	case FieldIn:
		for _, x := range f.values {
			if v == x {
				return true
			}
		}
		return false
	case FieldNotIn:
		for _, x := range f.values {
			if v == x {
				return false
			}
		}
		return true
	case FieldGreaterThan:
		return v > f.value
	case FieldGreaterThanOrEqual:
		return v >= f.value
	case FieldLessThan:
		return v < f.value
	case FieldLessThanOrEqual:
		return v <= f.value
	case FieldLambda:
		return f.lambda(v)
	default:
		return false
	}
}

// EqField is a predicate over a field type with no natural ordering (a
// Vec3 position, a bool flag): it supports equality-family and lambda
// matching only. Its zero value is also Ignore.
type EqField[T comparable] struct {
	kind   FieldKind
	value  T
	values []T
	lambda func(T) bool
}

func IgnoreEq[T comparable]() EqField[T] { return EqField[T]{} }

func ExactlyEq[T comparable](v T) EqField[T] {
	return EqField[T]{kind: FieldExactly, value: v}
}

func NotExactlyEq[T comparable](v T) EqField[T] {
	return EqField[T]{kind: FieldNotExactly, value: v}
}

func InEq[T comparable](vs ...T) EqField[T] {
	return EqField[T]{kind: FieldIn, values: vs}
}

func NotInEq[T comparable](vs ...T) EqField[T] {
	return EqField[T]{kind: FieldNotIn, values: vs}
}

func LambdaEq[T comparable](fn func(T) bool) EqField[T] {
	return EqField[T]{kind: FieldLambda, lambda: fn}
}

func (f EqField[T]) SatisfiedBy(v T) bool {
	switch f.kind {
	case FieldIgnore:
		return true
	case FieldExactly:
		return v == f.value
	case FieldNotExactly:
		return v != f.value
	case FieldIn:
		for _, x := range f.values {
			if v == x {
				return true
			}
		}
		return false
	case FieldNotIn:
		for _, x := range f.values {
			if v == x {
				return false
			}
		}
		return true
	case FieldLambda:
		return f.lambda(v)
	default:
		return false
	}
}

// SatisfiabilityTest is a predicate over a Belief: it must first agree the
// belief is the right variant, then test its fields. A concrete Belief value
// is itself a valid SatisfiabilityTest (exact equality) — see each variant's
// IsSameVariant/SatisfiedBy methods in belief.go.
type SatisfiabilityTest interface {
	IsSameVariant(Belief) bool
	SatisfiedBy(Belief) bool
}

// Uniqueness exposes the subset-of-fields identity key: two beliefs with
// equal UniqueKey (and equal Kind) describe the same
// proposition about the world, so a newer one replaces an older one in a
// BeliefSet source bucket. A key of 0 means "no identifying key" — such a
// belief never replaces, and is never replaced by, any other.
type Uniqueness interface {
	UniqueKey() uint64
}
