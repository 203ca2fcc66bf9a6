package code

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrIs(t *testing.T) {
	err := SubstanceNotFound.WithMsgf("no %s", "water")
	assert.ErrorIs(t, err, SubstanceNotFound)
	assert.NotErrorIs(t, err, TemperatureOutOfRange)
	assert.Equal(t, "substance not found: no water", err.Error())

	wrapped := fmt.Errorf("lookup: %w", err)
	assert.ErrorIs(t, wrapped, SubstanceNotFound)
	assert.Equal(t, SubstanceNotFound, Of(wrapped))
}

func TestWithErrUnwraps(t *testing.T) {
	cause := errors.New("connection refused")
	err := QueryRecordErr.WithErr(cause)
	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, QueryRecordErr)
}

func TestOf(t *testing.T) {
	assert.Equal(t, Success, Of(nil))
	assert.Equal(t, AntoineDomainErr, Of(AntoineDomainErr))
	assert.Equal(t, UnDefineErr, Of(errors.New("plain")))
}

func TestString(t *testing.T) {
	assert.Equal(t, "parameter error", ParamErr.String())
	assert.Equal(t, "error code 42", ErrCode(42).String())
}
