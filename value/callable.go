package value

// Callable is implemented by both Native and User callables (package
// callable). Kept as an interface here, rather than a concrete struct, so
// that value has no dependency on environment or ast — those live
// downstream in package callable.
type Callable interface {
	Arity() int
	String() string
}
