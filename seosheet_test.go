package seosheet_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/seosheet"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := seosheet.Errorf(seosheet.ENOTFOUND, "spreadsheet %q not found", "abc")

	assert.Equal(t, seosheet.ENOTFOUND, seosheet.ErrorCode(err))
	assert.Equal(t, "spreadsheet \"abc\" not found", seosheet.ErrorMessage(err))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("opening sheet: %w", seosheet.Errorf(seosheet.EUNAUTHORIZED, "bad credentials"))

	assert.Equal(t, seosheet.EUNAUTHORIZED, seosheet.ErrorCode(err))
	assert.Equal(t, "bad credentials", seosheet.ErrorMessage(err))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	err := errors.New("boom")

	assert.Equal(t, seosheet.EINTERNAL, seosheet.ErrorCode(err))
	assert.Equal(t, "Internal error.", seosheet.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, seosheet.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, seosheet.ErrorMessage(nil))
}
