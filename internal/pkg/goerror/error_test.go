package goerror

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewServer(cause)

	var gerr *Error
	require.ErrorAs(t, err, &gerr)

	assert.Equal(t, TypeServer, gerr.Type())
	assert.Equal(t, CodeInternal, gerr.Code())
	assert.Equal(t, http.StatusInternalServerError, gerr.StatusCode())
	assert.Equal(t, "Internal server error", gerr.Msg())
	assert.ErrorIs(t, err, cause)
}

func TestNewBusiness(t *testing.T) {
	tests := []struct {
		name       string
		code       Code
		wantStatus int
	}{
		{name: "not found", code: CodeNotFound, wantStatus: http.StatusNotFound},
		{name: "conflict", code: CodeConflict, wantStatus: http.StatusConflict},
		{name: "too many requests", code: CodeTooManyRequest, wantStatus: http.StatusTooManyRequests},
		{name: "timeout", code: CodeTimeout, wantStatus: http.StatusRequestTimeout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewBusiness("boom", tt.code)

			var gerr *Error
			require.ErrorAs(t, err, &gerr)

			assert.Equal(t, TypeBusiness, gerr.Type())
			assert.Equal(t, tt.code, gerr.Code())
			assert.Equal(t, tt.wantStatus, gerr.StatusCode())
			assert.Equal(t, "boom", gerr.Error())
		})
	}
}

func TestNewInvalidInput(t *testing.T) {
	err := NewInvalidInput(nil, "placa", "placa must be at most 7 characters")

	var gerr *Error
	require.ErrorAs(t, err, &gerr)

	assert.Equal(t, TypeValidation, gerr.Type())
	assert.Equal(t, CodeInvalidInput, gerr.Code())
	assert.Equal(t, http.StatusBadRequest, gerr.StatusCode())
	assert.Equal(t, map[string]string{"placa": "placa must be at most 7 characters"}, gerr.Fields())
}

func TestNewInvalidInput_OddPairs(t *testing.T) {
	err := NewInvalidInput(nil, "placa")

	var gerr *Error
	require.ErrorAs(t, err, &gerr)

	assert.Equal(t, CodeInvalidFormat, gerr.Code())
	assert.Equal(t, http.StatusBadRequest, gerr.StatusCode())
}

func TestNewInvalidFormat(t *testing.T) {
	var gerr *Error

	require.ErrorAs(t, NewInvalidFormat(), &gerr)
	assert.Equal(t, "Invalid request body", gerr.Msg())
	assert.Equal(t, http.StatusBadRequest, gerr.StatusCode())

	require.ErrorAs(t, NewInvalidFormat("id must be numeric"), &gerr)
	assert.Equal(t, "id must be numeric", gerr.Msg())
}
