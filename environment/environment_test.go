package environment

import (
	"testing"

	"github.com/gomix-labs/loxwalk/value"
	"github.com/stretchr/testify/assert"
)

func TestDefineAndGet(t *testing.T) {
	env := New()
	env.Define("x", value.Number(10))
	v, err := env.Get("x")
	assert.NoError(t, err)
	assert.Equal(t, 10.0, v.AsNumber())
}

func TestGetUndefinedIsError(t *testing.T) {
	env := New()
	_, err := env.Get("missing")
	assert.Error(t, err)
}

func TestAssignWritesToNearestEnclosingScope(t *testing.T) {
	parent := New()
	parent.Define("x", value.Number(1))
	child := parent.NewChild()

	err := child.Assign("x", value.Number(2))
	assert.NoError(t, err)

	v, _ := parent.Get("x")
	assert.Equal(t, 2.0, v.AsNumber(), "assign must mutate the parent scope in place")
}

func TestAssignToUndefinedFails(t *testing.T) {
	env := New()
	err := env.Assign("missing", value.Number(1))
	assert.Error(t, err)
}

func TestChildSharesParentAcrossMultipleHandles(t *testing.T) {
	parent := New()
	parent.Define("shared", value.Number(1))
	childA := parent.NewChild()
	childB := parent.NewChild()

	parent.Define("shared", value.Number(2))

	va, _ := childA.Get("shared")
	vb, _ := childB.Get("shared")
	assert.Equal(t, 2.0, va.AsNumber())
	assert.Equal(t, 2.0, vb.AsNumber())
}

func TestDefineRedefinitionInSameScopeOverwrites(t *testing.T) {
	env := New()
	env.Define("x", value.Number(1))
	env.Define("x", value.Number(2))
	v, _ := env.Get("x")
	assert.Equal(t, 2.0, v.AsNumber())
}
