package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorConstructors(t *testing.T) {
	cause := stderrors.New("disk full")

	tests := []struct {
		name            string
		err             *AppError
		expectedType    ErrorType
		expectedCode    string
		messageContains string
	}{
		{
			name:            "validation error",
			err:             NewValidationError("task does not exist", nil),
			expectedType:    ErrorTypeValidation,
			expectedCode:    "VALIDATION_FAILED",
			messageContains: "task does not exist",
		},
		{
			name:            "not found error",
			err:             NewNotFoundError("task", "42"),
			expectedType:    ErrorTypeNotFound,
			expectedCode:    "NOT_FOUND",
			messageContains: "task not found: 42",
		},
		{
			name:            "storage error",
			err:             NewStorageError("encode task registry", cause),
			expectedType:    ErrorTypeStorage,
			expectedCode:    "STORAGE_ERROR",
			messageContains: "encode task registry",
		},
		{
			name:            "invalid input error",
			err:             NewInvalidInputError("page", 0, "must be positive"),
			expectedType:    ErrorTypeInvalidInput,
			expectedCode:    "INVALID_INPUT",
			messageContains: "page",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.err.IsType(tt.expectedType))
			assert.Equal(t, tt.expectedCode, tt.err.Code)
			assert.Contains(t, tt.err.Error(), tt.messageContains)
		})
	}
}

func TestAppErrorUnwrap(t *testing.T) {
	cause := stderrors.New("disk full")
	err := NewStorageError("write entry log", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "disk full")
}

func TestIsErrorType(t *testing.T) {
	notFound := NewNotFoundError("task", "42")

	assert.True(t, IsErrorType(notFound, ErrorTypeNotFound))
	assert.False(t, IsErrorType(notFound, ErrorTypeStorage))
	assert.False(t, IsErrorType(stderrors.New("plain"), ErrorTypeNotFound))

	// Type checks see through wrapping.
	wrapped := fmt.Errorf("selecting task: %w", notFound)
	assert.True(t, IsErrorType(wrapped, ErrorTypeNotFound))
}

func TestGetUserMessage(t *testing.T) {
	assert.Equal(t, "task not found: 42", GetUserMessage(NewNotFoundError("task", "42")))
	assert.Equal(t, "A storage error occurred. Please try again.",
		GetUserMessage(NewStorageError("write", stderrors.New("disk full"))))
	assert.Equal(t, "plain failure", GetUserMessage(stderrors.New("plain failure")))
}

func TestShouldLogError(t *testing.T) {
	assert.False(t, ShouldLogError(NewValidationError("bad input", nil)))
	assert.False(t, ShouldLogError(NewNotFoundError("task", "42")))
	assert.True(t, ShouldLogError(NewStorageError("write", nil)))
	assert.True(t, ShouldLogError(stderrors.New("unexpected")))
}

func TestWithContext(t *testing.T) {
	err := NewValidationError("task does not exist", nil).WithContext("task_id", int64(42))

	require.Contains(t, err.Context, "task_id")
	assert.Equal(t, int64(42), err.Context["task_id"])
}
