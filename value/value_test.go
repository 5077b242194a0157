package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqualityAcrossKindsIsFalse(t *testing.T) {
	assert.False(t, Number(0).Equal(String("0")))
	assert.False(t, Boolean(false).Equal(Nil()))
}

func TestNilEqualsNil(t *testing.T) {
	assert.True(t, Nil().Equal(Nil()))
}

func TestNumericEqualityToleratesFloatingPointDrift(t *testing.T) {
	assert.True(t, Number(0.1+0.2).Equal(Number(0.3)))
}

func TestNumericEqualityRejectsRealDifferences(t *testing.T) {
	assert.False(t, Number(1).Equal(Number(2)))
}

func TestTruthiness(t *testing.T) {
	assert.False(t, Nil().Truthy())
	assert.False(t, Boolean(false).Truthy())
	assert.True(t, Boolean(true).Truthy())
	assert.True(t, Number(0).Truthy())
	assert.True(t, String("").Truthy())
}

func TestDisplayFormNumberHasNoTrailingZeros(t *testing.T) {
	assert.Equal(t, "7", Number(7).Display())
	assert.Equal(t, "3.14", Number(3.14).Display())
	assert.Equal(t, "0.5", Number(0.5).Display())
}

func TestDisplayFormOtherKinds(t *testing.T) {
	assert.Equal(t, "true", Boolean(true).Display())
	assert.Equal(t, "false", Boolean(false).Display())
	assert.Equal(t, "nil", Nil().Display())
	assert.Equal(t, "hello", String("hello").Display())
}
