/*
File    : loxwalk/environment/environment.go

Package environment implements the scope chain: a single mapping from
identifier to Value plus an optional shared parent. Deliberately exposes
no Copy() method — a closure's captured environment must be a shared,
mutated-in-place handle, never copied, so a mutation in an enclosing
scope after a closure captures it stays visible to that closure (see
DESIGN.md).
*/
package environment

import (
	"fmt"

	"github.com/gomix-labs/loxwalk/value"
)

// Environment is one scope in the chain. A *Environment is a shared
// handle: multiple children, and any number of closures, may point at the
// same *Environment, and Go's garbage collector keeps it alive exactly as
// long as something does.
type Environment struct {
	values map[string]value.Value
	parent *Environment
}

// New creates a root environment with no parent (the global scope).
func New() *Environment {
	return &Environment{values: make(map[string]value.Value)}
}

// NewChild creates a scope whose parent is env.
func (env *Environment) NewChild() *Environment {
	return &Environment{values: make(map[string]value.Value), parent: env}
}

// Define always writes into the innermost (this) scope. Redefinition is
// allowed and overwrites.
func (env *Environment) Define(name string, v value.Value) {
	env.values[name] = v
}

// Get returns the value bound to name in the nearest enclosing scope, or
// an error if name is undefined anywhere in the chain.
func (env *Environment) Get(name string) (value.Value, error) {
	for e := env; e != nil; e = e.parent {
		if v, ok := e.values[name]; ok {
			return v, nil
		}
	}
	return value.Nil(), fmt.Errorf("undefined variable '%s'", name)
}

// Assign writes v to the nearest enclosing scope already containing name,
// mutating that scope in place. It fails if name is undefined anywhere in
// the chain — assignment never implicitly defines a new binding.
func (env *Environment) Assign(name string, v value.Value) error {
	for e := env; e != nil; e = e.parent {
		if _, ok := e.values[name]; ok {
			e.values[name] = v
			return nil
		}
	}
	return fmt.Errorf("undefined variable '%s'", name)
}
