package fails_test

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/quintans/faults"
	"github.com/quintans/linkstack/internal/lib/fails"
	"github.com/stretchr/testify/assert"
)

func TestValuerError(t *testing.T) {
	err := errors.New("stack is borrowed")
	err2 := fails.NewWithErr(err, "borrow check", "shared", 1)
	err = faults.Errorf("push: %w", err2)
	err2 = fails.NewWithErr(err, "walk", "op", "push")

	buf := new(bytes.Buffer)
	fmt.Fprintf(buf, "%v", err2)
	assert.Equal(t, "walk (op=push): push: borrow check (shared=1): stack is borrowed", buf.String())

	assert.Equal(t, map[string]any{"shared": 1, "op": "push"}, err2.Values())
}

func TestWithValues(t *testing.T) {
	err := fails.New("value is not a number", "index", 2).WithValues("value", `"x"`, "exclusive", false)

	assert.Equal(t, `value is not a number (exclusive=false; index=2; value="x")`, err.Error())
}

func TestBadKey(t *testing.T) {
	err := fails.New("depth cannot be negative", 7)

	assert.Equal(t, map[string]any{"!BADKEY": 7}, err.Values())
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("stack was moved")
	err := fmt.Errorf("peek: %w", fails.NewWithErr(cause, "borrow check"))

	assert.ErrorIs(t, err, cause)
	var valuer fails.Valuer
	assert.ErrorAs(t, err, &valuer)
	assert.Empty(t, valuer.Values())
}

func TestValuesPrecedence(t *testing.T) {
	inner := fails.New("borrow check", "op", "iter", "shared", 2)
	outer := fails.NewWithErr(inner, "walk", "op", "push")

	assert.Equal(t, map[string]any{"op": "push", "shared": 2}, outer.Values())
}
