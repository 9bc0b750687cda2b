package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapPreservesCode(t *testing.T) {
	base := ReadError("/tmp/data.csv", stderrors.New("disk gone"))
	wrapped := Wrap(base, "loading evaluation input")

	assert.True(t, IsAppError(wrapped))
	assert.Equal(t, CodeReadError, GetCode(wrapped))
	assert.Contains(t, wrapped.Error(), "loading evaluation input")
}

func TestWrapNilIsNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, "nothing"))
	assert.Nil(t, Wrapf(nil, "nothing %d", 1))
}

func TestWrapForeignErrorGetsInternalCode(t *testing.T) {
	err := Wrap(stderrors.New("boom"), "context")
	assert.Equal(t, CodeInternalError, GetCode(err))
}

func TestGetCodeUnknown(t *testing.T) {
	assert.Equal(t, "UNKNOWN", GetCode(stderrors.New("plain")))
}

func TestUnwrapChain(t *testing.T) {
	cause := stderrors.New("root cause")
	err := ReadError("x", cause)
	assert.True(t, stderrors.Is(err, cause))
}

func TestConfigInvalid(t *testing.T) {
	err := ConfigInvalid("weights must be non-negative")
	assert.Equal(t, CodeConfigInvalid, GetCode(err))
}
