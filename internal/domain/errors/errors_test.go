package errors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppErrorError(t *testing.T) {
	e := NewAppError(http.StatusBadRequest, "ERR_BAD_REQUEST", "message only", nil)
	assert.Equal(t, "message only", e.Error())

	wrapped := NewAppError(http.StatusBadRequest, "ERR_BAD_REQUEST", "ignored", ErrInvalidInput)
	assert.Equal(t, ErrInvalidInput.Error(), wrapped.Error())
}

func TestAppErrorUnwrap(t *testing.T) {
	e := NotReady("no bank account on file")
	assert.True(t, errors.Is(e, ErrNotReady))
	assert.Equal(t, http.StatusUnprocessableEntity, e.Status)
	assert.Equal(t, "ERR_NOT_READY", e.Code)
}

func TestConstructors(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, NotFound("x").Status)
	assert.Equal(t, http.StatusBadRequest, BadRequest("x").Status)
	assert.Equal(t, http.StatusUnauthorized, Unauthorized("x").Status)
	assert.Equal(t, http.StatusForbidden, Forbidden("x").Status)
	assert.Equal(t, http.StatusInternalServerError, InternalError(ErrNotFound).Status)
	assert.True(t, errors.Is(InternalError(ErrNotFound), ErrNotFound))
}
