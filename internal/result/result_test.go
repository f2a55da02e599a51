package result

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOk(t *testing.T) {
	res := Ok(42)

	assert.True(t, res.IsSuccess())
	assert.Equal(t, 42, res.Value)
	assert.Nil(t, res.Err)
}

func TestFail(t *testing.T) {
	res := Fail[string](KindNotFound, "Wallet not found or deleted")

	require.False(t, res.IsSuccess())
	assert.Equal(t, KindNotFound, res.Err.Kind)
	assert.Equal(t, "Wallet not found or deleted", res.Err.Message)
	assert.Equal(t, "", res.Value)
}

func TestFailErr(t *testing.T) {
	src := &Error{Kind: KindInvalidInput, Message: "Invalid input"}
	res := FailErr[int](src)

	require.False(t, res.IsSuccess())
	assert.Same(t, src, res.Err)
	assert.EqualError(t, res.Err, "Invalid input")
}
