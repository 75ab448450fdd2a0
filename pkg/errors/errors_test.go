package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStructuredError_Error(t *testing.T) {
	e := New(ErrCodeNotFound, "unknown service")
	assert.Equal(t, "[NOT_FOUND] unknown service", e.Error())

	wrapped := Wrap(ErrCodeInvalidData, "loading labor rates", fmt.Errorf("no such file"))
	assert.Equal(t, "[INVALID_DATA] loading labor rates: no such file", wrapped.Error())
}

func TestStructuredError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("boom")
	e := Wrap(ErrCodeInternal, "wrapper", cause)
	require.ErrorIs(t, e, cause)
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{
			name: "direct structured error",
			err:  New(ErrCodeNotFound, "missing"),
			want: ErrCodeNotFound,
		},
		{
			name: "wrapped structured error",
			err:  fmt.Errorf("outer: %w", New(ErrCodeInvalidData, "bad csv")),
			want: ErrCodeInvalidData,
		},
		{
			name: "plain error",
			err:  stderrors.New("plain"),
			want: ErrCodeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CodeOf(tt.err))
		})
	}
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(New(ErrCodeNotFound, "nope")))
	assert.True(t, IsNotFound(fmt.Errorf("wrap: %w", New(ErrCodeNotFound, "nope"))))
	assert.False(t, IsNotFound(New(ErrCodeInternal, "boom")))
	assert.False(t, IsNotFound(stderrors.New("plain")))
}

func TestNewWithContext(t *testing.T) {
	e := NewWithContext(ErrCodeInvalidRequest, "bad year", map[string]any{"year": -1})
	require.NotNil(t, e.Context)
	assert.Equal(t, -1, e.Context["year"])
}
