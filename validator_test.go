package quickdirective

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationLimits_Defaults(t *testing.T) {
	var limits ValidationLimits
	assert.Equal(t, DefaultMaxRecursionDepth, limits.recursionDepth())
	assert.Equal(t, runtime.GOMAXPROCS(0), limits.concurrency())

	limits = ValidationLimits{MaxRecursionDepth: 7, MaxConcurrency: 2}
	assert.Equal(t, 7, limits.recursionDepth())
	assert.Equal(t, 2, limits.concurrency())

	limits = ValidationLimits{MaxRecursionDepth: -1, MaxConcurrency: -1}
	assert.Equal(t, DefaultMaxRecursionDepth, limits.recursionDepth())
	assert.Equal(t, runtime.GOMAXPROCS(0), limits.concurrency())
}

func TestValidator_ZeroValue(t *testing.T) {
	var v Validator
	assert.NotNil(t, v.logger())

	schema := NewSchema()
	diags := &DiagnosticList{}
	v.ValidateSchema(diags, schema)
	assert.True(t, diags.IsEmpty(), diags.String())
}

func TestSchemaMode(t *testing.T) {
	schema := NewSchema()

	s, ok := WithSchema(schema).Schema()
	assert.True(t, ok)
	assert.Same(t, schema, s)

	s, ok = DocumentOnly().Schema()
	assert.False(t, ok)
	assert.Nil(t, s)

	// A nil schema is the same as no schema.
	_, ok = WithSchema(nil).Schema()
	assert.False(t, ok)
}
