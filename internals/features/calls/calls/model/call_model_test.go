// file: internals/features/calls/calls/model/call_model_test.go
package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsHardPolicy(t *testing.T) {
	assert.True(t, IsHardPolicy("hard:same-department"))
	assert.True(t, IsHardPolicy("  HARD:same-campus "))
	assert.False(t, IsHardPolicy("same-department"))
	assert.False(t, IsHardPolicy(""))
}

func TestPolicyRule(t *testing.T) {
	assert.Equal(t, "same-department", PolicyRule("hard:same-department"))
	assert.Equal(t, "same-campus", PolicyRule(" Same-Campus "))
	assert.Equal(t, "same-department", PolicyRule("same-department"))
}
