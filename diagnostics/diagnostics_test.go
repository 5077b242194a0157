package diagnostics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatSingularPlural(t *testing.T) {
	r := Report{Phase: Parse}
	r.Add(New("unexpected token", 3, 7))
	out := r.Format()
	assert.Contains(t, out, "Parsing produced 1 error:")
	assert.Contains(t, out, "ERROR: unexpected token => line 3 | column 7")

	r.Add(New("another problem", 4, 1))
	out = r.Format()
	assert.Contains(t, out, "Parsing produced 2 errors:")
}

func TestDiagnosticWithoutCoordinates(t *testing.T) {
	d := Without("return outside function")
	assert.Equal(t, "return outside function", d.String())
}

func TestHasErrors(t *testing.T) {
	r := Report{Phase: Lex}
	assert.False(t, r.HasErrors())
	r.Add(New("bad char", 1, 1))
	assert.True(t, r.HasErrors())
}
