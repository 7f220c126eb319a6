// file: internals/features/evaluators/directory/service/directory_service_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluatorViewAvailable(t *testing.T) {
	v := EvaluatorView{CurrentLoad: 3, MaxCapacity: 4}
	assert.True(t, v.Available())

	v.CurrentLoad = 4
	assert.False(t, v.Available())

	v.CurrentLoad = 5 // over-assigned (capacity diturunkan admin)
	assert.False(t, v.Available())
}

func TestEvaluatorViewUtilization(t *testing.T) {
	v := EvaluatorView{CurrentLoad: 2, MaxCapacity: 4}
	assert.InDelta(t, 0.5, v.Utilization(), 0.001)

	v.MaxCapacity = 0
	assert.Zero(t, v.Utilization())
}
