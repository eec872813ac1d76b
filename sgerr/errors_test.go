package sgerr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/viant/solgraph/sgerr"
)

func TestNewFormatsMessage(t *testing.T) {
	err := sgerr.New(sgerr.Malformed, "vertex %s missing %s", "v1", "lhs")
	assert.Equal(t, sgerr.Malformed, err.Kind)
	assert.Equal(t, "vertex v1 missing lhs", err.Message)
	assert.Equal(t, "solgraph error (MalformedAST): vertex v1 missing lhs", err.Error())
}

// TestIsFatalOnlyMissingVertex covers the scope distinction: MissingVertex
// aborts a whole analysis run, the other kinds are recovered per-function
// or inline by the caller.
func TestIsFatalOnlyMissingVertex(t *testing.T) {
	assert.True(t, sgerr.MissingVertex.IsFatal())
	assert.False(t, sgerr.Malformed.IsFatal())
	assert.False(t, sgerr.Unresolved.IsFatal())
	assert.False(t, sgerr.UnknownKind.IsFatal())
}

func TestErrorSatisfiesErrorInterface(t *testing.T) {
	var err error = sgerr.New(sgerr.UnknownKind, "shape %d", 7)
	assert.ErrorContains(t, err, "UnknownKind")
	assert.ErrorContains(t, err, "shape 7")
}
