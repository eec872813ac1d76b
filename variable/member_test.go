package variable_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/viant/solgraph/variable"
)

func TestMemberEqual(t *testing.T) {
	assert.True(t, variable.NewReference("decl1").Equal(variable.NewReference("decl1")))
	assert.False(t, variable.NewReference("decl1").Equal(variable.NewReference("decl2")))
	assert.True(t, variable.NewIndexAccess().Equal(variable.NewIndexAccess()))
	assert.True(t, variable.NewGlobal("msg").Equal(variable.NewGlobal("msg")))
	assert.False(t, variable.NewGlobal("msg").Equal(variable.NewGlobal("tx")))
	assert.False(t, variable.NewReference("decl1").Equal(variable.NewGlobal("decl1")))
}

func TestMemberSegment(t *testing.T) {
	assert.Equal(t, "$", variable.NewIndexAccess().Segment("ignored"))
	assert.Equal(t, "a", variable.NewReference("decl1").Segment("a"))
}
