/*
File    : loxwalk/callable/callable.go

Package callable implements the two Callable variants: Native, a Go
function exposed to interpreted code, and User, a user-defined function
value.
*/
package callable

import (
	"fmt"
	"strings"

	"github.com/gomix-labs/loxwalk/ast"
	"github.com/gomix-labs/loxwalk/environment"
	"github.com/gomix-labs/loxwalk/value"
)

// Native wraps a Go function exposed to interpreted code. Native
// callables receive already-evaluated arguments and cannot raise a
// return signal.
type Native struct {
	Name       string
	ArityCount int
	Fn         func(args []value.Value) (value.Value, error)
}

func (n *Native) Arity() int     { return n.ArityCount }
func (n *Native) String() string { return fmt.Sprintf("<native fn %s>", n.Name) }

// Call invokes the native function. The interp package calls this after
// verifying arity.
func (n *Native) Call(args []value.Value) (value.Value, error) {
	return n.Fn(args)
}

// User is a user-defined callable: its Closure is the environment at the
// point of definition, shared (not copied) so mutations to the enclosing
// scope after definition remain visible.
type User struct {
	Name    string
	Params  []string
	Body    []ast.Stmt
	Closure *environment.Environment
}

func (u *User) Arity() int { return len(u.Params) }

func (u *User) String() string {
	name := u.Name
	if name == "" {
		name = "anonymous"
	}
	return fmt.Sprintf("<fn %s(%s)>", name, strings.Join(u.Params, ", "))
}
