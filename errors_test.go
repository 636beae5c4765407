package satlist_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/satlist/satlist"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := satlist.Errorf(satlist.EPROTOCOL, "HTTP %d for %s", 503, "https://example.com")

	assert.Equal(t, satlist.EPROTOCOL, satlist.ErrorCode(err))
	assert.Equal(t, "HTTP 503 for https://example.com", satlist.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, satlist.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, satlist.EINTERNAL, satlist.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, satlist.ErrorMessage(nil))
}
