package seoaudit_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/seoaudit"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := seoaudit.Errorf(seoaudit.ENOTFOUND, "record %q not found", "test")

	assert.Equal(t, seoaudit.ENOTFOUND, seoaudit.ErrorCode(err))
	assert.Equal(t, "record \"test\" not found", seoaudit.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, seoaudit.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, seoaudit.EINTERNAL, seoaudit.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, seoaudit.ErrorMessage(nil))
}

func TestErrorMessage_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Internal error.", seoaudit.ErrorMessage(errors.New("boom")))
}
