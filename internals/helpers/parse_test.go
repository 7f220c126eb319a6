// file: internals/helpers/parse_test.go
package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAtoiOr(t *testing.T) {
	assert.Equal(t, 7, AtoiOr(1, "7"))
	assert.Equal(t, 7, AtoiOr(1, "  7  "))
	assert.Equal(t, 1, AtoiOr(1, ""))
	assert.Equal(t, 1, AtoiOr(1, "abc"))
	assert.Equal(t, -2, AtoiOr(1, "-2"), "nilai negatif dinormalisasi pemanggil, bukan di sini")
}
