package errors

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodePackageNotFound, "Package %s not found", "serde")

	if err.Code != ErrCodePackageNotFound {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodePackageNotFound)
	}

	expected := "Package serde not found"
	if err.Message != expected {
		t.Errorf("Message = %v, want %v", err.Message, expected)
	}
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("could not find `Cargo.toml`")
	err := Wrap(ErrCodeMetadata, cause, "Unable to read cargo metadata")

	if err.Code != ErrCodeMetadata {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeMetadata)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	want := "Unable to read cargo metadata: could not find `Cargo.toml`"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	unwrapped := errors.Unwrap(err)
	if unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{
			name:     "matching code",
			err:      New(ErrCodeOutput, "test"),
			code:     ErrCodeOutput,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeOutput, "test"),
			code:     ErrCodeMetadata,
			expected: false,
		},
		{
			name:     "wrapped error",
			err:      Wrap(ErrCodeMetadata, New(ErrCodeInternal, "inner"), "outer"),
			code:     ErrCodeMetadata,
			expected: true,
		},
		{
			name:     "non-Error type",
			err:      errors.New("plain error"),
			code:     ErrCodeInvalidInput,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			code:     ErrCodeInvalidInput,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Code
	}{
		{
			name:     "Error type",
			err:      New(ErrCodePackageNotFound, "test"),
			expected: ErrCodePackageNotFound,
		},
		{
			name:     "plain error",
			err:      errors.New("plain"),
			expected: "",
		},
		{
			name:     "nil",
			err:      nil,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.expected {
				t.Errorf("GetCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "Error type",
			err:      Wrap(ErrCodeMetadata, errors.New("exit status 101"), "Unable to read cargo metadata"),
			expected: "Unable to read cargo metadata",
		},
		{
			name:     "plain error",
			err:      errors.New("plain error"),
			expected: "plain error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.expected {
				t.Errorf("UserMessage() = %q, want %q", got, tt.expected)
			}
		})
	}
}
