package values_test

import (
	"testing"

	"github.com/quintans/linkstack/internal/lib/values"
	"github.com/stretchr/testify/assert"
)

func TestToMap(t *testing.T) {
	m := values.ToMap([]any{"op", "pop", "shared", 1, 3, "dangling"})

	assert.Equal(t, values.M{"op": "pop", "shared": 1, "!BADKEY": "dangling"}, m)
}

func TestToStr(t *testing.T) {
	assert.Empty(t, values.ToStr(nil))

	s := values.ToStr(values.M{
		"shared":    2,
		"exclusive": true,
		"op":        "iter",
		"values":    []int{3, 2, 1},
	})
	assert.Equal(t, "(exclusive=true; op=iter; shared=2; values=[3,2,1])", s)
}
