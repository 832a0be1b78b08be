package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	origin := errors.New("connection refused")
	err := NewUpstream("failed to create travel course", origin)

	assert.Equal(t, "failed to create travel course: connection refused", err.Error())
	assert.ErrorIs(t, err, origin)
	assert.Equal(t, "course not found", NewNotFoundOrForbidden("course not found").Error())
}

func TestKindOf_Wrapped(t *testing.T) {
	err := fmt.Errorf("update course: %w", NewNotFoundOrForbidden("course not found"))

	assert.Equal(t, NotFoundOrForbidden, KindOf(err))
	assert.True(t, Is(err, NotFoundOrForbidden))
	assert.False(t, Is(err, ValidationFailure))
	assert.False(t, Is(nil, ValidationFailure))
	assert.Equal(t, Kind(""), KindOf(errors.New("plain")))
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{NewUnauthenticated(), http.StatusUnauthorized},
		{NewNotFoundOrForbidden("x"), http.StatusNotFound},
		{NewValidation("x"), http.StatusBadRequest},
		{NewUpstream("x", nil), http.StatusBadGateway},
		{NewPartialWrite("x", nil), http.StatusInternalServerError},
		{errors.New("plain"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, HTTPStatus(tt.err), tt.err.Error())
	}
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "title is required", Message(NewValidation("title is required")))
	assert.Equal(t, "failed to load", Message(NewUpstream("failed to load", errors.New("secret dsn"))))
	assert.Equal(t, "internal server error", Message(errors.New("plain")))
}
