package domain

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomainError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *DomainError
		expected string
	}{
		{
			name:     "error without details",
			err:      NewDomainError("MU-TEST-1000", PrefixErr, "test message"),
			expected: "ERR test message",
		},
		{
			name:     "error with details",
			err:      NewDomainError("MU-TEST-1001", PrefixErr, "test message").WithDetails("extra info"),
			expected: "ERR test message: extra info",
		},
		{
			name:     "wrong type",
			err:      ErrWrongType,
			expected: "WRONGTYPE Operation against a key holding the wrong kind of value",
		},
		{
			name:     "unknown command keeps the name as sent",
			err:      ErrUnknownCommand.WithDetails("FoO"),
			expected: "ERR unknown command: FoO",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestDomainError_Is(t *testing.T) {
	detailed := ErrWrongArity.WithDetailsf("'%s' command", "get")

	assert.True(t, errors.Is(detailed, ErrWrongArity))
	assert.False(t, errors.Is(detailed, ErrUnknownCommand), "same prefix, different code")
	assert.False(t, errors.Is(ErrWrongType, fmt.Errorf("some error")))

	wrapped := fmt.Errorf("apply: %w", ErrWrongType)
	assert.True(t, errors.Is(wrapped, ErrWrongType))
}

func TestDomainError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("underlying cause")
	err := ErrNotInteger.WithCause(cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, cause, errors.Unwrap(err))
}

func TestDomainError_WithDetailsDoesNotMutate(t *testing.T) {
	_ = ErrInvalidArgument.WithDetails("x")
	assert.Empty(t, ErrInvalidArgument.Details)
}

func TestIsDomainError(t *testing.T) {
	assert.True(t, IsDomainError(ErrWrongType, ""))
	assert.True(t, IsDomainError(ErrWrongType, "MU-DATA-4090"))
	assert.False(t, IsDomainError(ErrWrongType, "MU-CMD-4040"))
	assert.False(t, IsDomainError(errors.New("plain"), ""))
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, "MU-CMD-4040", GetErrorCode(fmt.Errorf("x: %w", ErrUnknownCommand)))
	assert.Equal(t, "", GetErrorCode(errors.New("plain")))
}

func TestErrorPrefixes(t *testing.T) {
	commandErrors := []*DomainError{ErrEmptyCommand, ErrWrongArity, ErrInvalidArgument, ErrNotInteger, ErrUnknownCommand, ErrRateLimited}
	for _, err := range commandErrors {
		assert.True(t, strings.HasPrefix(err.Error(), "ERR "), err.Code)
	}
	assert.True(t, strings.HasPrefix(ErrWrongType.Error(), "WRONGTYPE "))
}
