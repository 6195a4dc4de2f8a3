package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorType_Constants(t *testing.T) {
	tests := []struct {
		name     string
		errType  ErrorType
		expected string
	}{
		{name: "not found", errType: ErrTypeNotFound, expected: "NOT_FOUND"},
		{name: "read", errType: ErrTypeRead, expected: "READ"},
		{name: "parsing", errType: ErrTypeParsing, expected: "PARSING"},
		{name: "validation", errType: ErrTypeValidation, expected: "VALIDATION"},
		{name: "storage", errType: ErrTypeStorage, expected: "STORAGE"},
		{name: "render", errType: ErrTypeRender, expected: "RENDER"},
		{name: "config", errType: ErrTypeConfig, expected: "CONFIG"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, string(tt.errType))
		})
	}
}

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name        string
		appError    *AppError
		wantMessage string
	}{
		{
			name:        "error without cause",
			appError:    NewRenderError("report could not be written", nil),
			wantMessage: "[RENDER] report could not be written",
		},
		{
			name:        "error with cause",
			appError:    NewReadError("failed to read sales data", fmt.Errorf("unexpected EOF")),
			wantMessage: "[READ] failed to read sales data: unexpected EOF",
		},
		{
			name:        "not found formats resource",
			appError:    NewNotFoundError("sales data file", nil),
			wantMessage: "[NOT_FOUND] sales data file not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantMessage, tt.appError.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	err := NewNotFoundError("sales data file", fs.ErrNotExist)

	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.Equal(t, fs.ErrNotExist, err.Unwrap())
}

func TestAppError_WithContext(t *testing.T) {
	err := &AppError{Type: ErrTypeParsing, Message: "bad row"}
	err.WithContext("line", 4).WithContext("column", "UnitsSold")

	require.NotNil(t, err.Context)
	assert.Equal(t, 4, err.Context["line"])
	assert.Equal(t, "UnitsSold", err.Context["column"])
}

func TestTypeOf(t *testing.T) {
	wrapped := fmt.Errorf("analyze: %w", NewParsingError("bad row", nil))

	assert.Equal(t, ErrTypeParsing, TypeOf(wrapped))
	assert.Equal(t, ErrorType(""), TypeOf(errors.New("plain")))
	assert.Equal(t, ErrorType(""), TypeOf(nil))
}

func TestIsNotFound(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "not found", err: NewNotFoundError("file", nil), want: true},
		{name: "wrapped not found", err: fmt.Errorf("load: %w", NewNotFoundError("file", nil)), want: true},
		{name: "read error", err: NewReadError("boom", nil), want: false},
		{name: "plain error", err: errors.New("boom"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsNotFound(tt.err))
		})
	}
}

func TestIsType(t *testing.T) {
	err := NewStorageError("write failed", nil)

	assert.True(t, IsType(err, ErrTypeStorage))
	assert.False(t, IsType(err, ErrTypeRender))
}
