package config

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMessageNamesSourceEntityAndRule(t *testing.T) {
	err := ReferenceErrorf("commands.hcl", `phase "phase:a"`, "self dependency %q is not a registered phase", "phase:b")
	assert.Equal(t, `commands.hcl: reference error: phase "phase:a": self dependency "phase:b" is not a registered phase`, err.Error())
}

func TestErrorMessageWithoutEntity(t *testing.T) {
	err := SchemaErrorf("doc.hcl", "", "failed to parse document")
	assert.Equal(t, "doc.hcl: schema error: failed to parse document", err.Error())
}

func TestErrorKindsAreDistinguishable(t *testing.T) {
	tests := []struct {
		err  error
		kind ErrorKind
	}{
		{StructuralErrorf("s", "e", "x"), ErrorKindStructural},
		{ReferenceErrorf("s", "e", "x"), ErrorKindReference},
		{CycleErrorf("s", "e", "x"), ErrorKindCycle},
		{SemanticErrorf("s", "e", "x"), ErrorKindSemantic},
		{SchemaErrorf("s", "e", "x"), ErrorKindSchema},
	}
	for _, tt := range tests {
		var cfgErr *Error
		require.True(t, errors.As(tt.err, &cfgErr))
		assert.Equal(t, tt.kind, cfgErr.Kind)
	}
}

func TestErrorSurvivesWrapping(t *testing.T) {
	inner := SemanticErrorf("doc.hcl", `parameter "--x"`, "parameter is not associated with any command or phase")
	wrapped := fmt.Errorf("failed to compile configuration: %w", inner)

	var cfgErr *Error
	require.True(t, errors.As(wrapped, &cfgErr))
	assert.Equal(t, ErrorKindSemantic, cfgErr.Kind)
	assert.Equal(t, `parameter "--x"`, cfgErr.Entity)
}

func TestErrorKindString(t *testing.T) {
	assert.Equal(t, "structural", ErrorKindStructural.String())
	assert.Equal(t, "schema", ErrorKindSchema.String())
	assert.Equal(t, "unknown", ErrorKind(99).String())
}
