package errors

import (
	"strings"
	"testing"
)

func TestValidateOutlineName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "growth", false},
		{"valid with dash", "growth-strategy", false},
		{"valid with underscore", "growth_strategy", false},
		{"valid with digits", "q3_2026", false},
		{"valid with spaces", "growth strategy", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 300), true},
		{"path traversal ..", "../secrets", true},
		{"path traversal middle", "foo/../bar", true},
		{"path separator", "foo/bar", true},
		{"backslash", "foo\\bar", true},
		{"null byte", "foo\x00bar", true},
		{"control char", "foo\x01bar", true},
		{"newline", "foo\nbar", true},
		{"carriage return", "foo\rbar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutlineName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutlineName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidInput) {
				t.Errorf("ValidateOutlineName(%q) returned wrong error code: %v", tt.input, err)
			}
		})
	}
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "out/growth.svg", false},
		{"valid nested", "renders/2026/q3/growth.png", false},
		{"valid filename only", "growth.svg", false},
		{"valid absolute", "/tmp/mindmaps/growth.svg", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 600), true},
		{"path traversal", "../../../etc/passwd", true},
		{"path traversal middle", "foo/../bar", true},
		{"null byte", "foo\x00bar", true},
		{"control char", "foo\x01bar", true},
		{"newline", "foo\nbar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidPath) {
				t.Errorf("ValidatePath(%q) returned wrong error code: %v", tt.input, err)
			}
		})
	}
}

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"https", "https://api.openai.com/v1", false},
		{"http", "http://localhost:8080/v1", false},

		{"empty", "", true},
		{"ftp", "ftp://example.com", true},
		{"file", "file:///etc/passwd", true},
		{"javascript", "javascript:alert(1)", true},
		{"no scheme", "example.com", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateURL(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateURL(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateColor(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"empty means theme palette", "", false},
		{"hex 3-digit", "#f00", false},
		{"hex 6-digit", "#00d4ff", false},
		{"hex uppercase", "#FF6B6B", false},
		{"named", "tomato", false},
		{"named mixed case", "DarkSlateGray", false},

		{"hex 2-digit", "#ff", true},
		{"hex 4-digit", "#ff00", true},
		{"missing hash", "00d4ff", true},
		{"rgb function", "rgb(0, 212, 255)", true},
		{"with space", "dark red", true},
		{"injection", "red\" onload=\"", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateColor(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateColor(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidColor) {
				t.Errorf("ValidateColor(%q) returned wrong error code: %v", tt.input, err)
			}
		})
	}
}

func TestErrorCodesAreUnique(t *testing.T) {
	codes := []Code{
		ErrCodeMalformedStructure,
		ErrCodeInvalidInput,
		ErrCodeInvalidFormat,
		ErrCodeInvalidView,
		ErrCodeInvalidPath,
		ErrCodeInvalidColor,
		ErrCodeRenderBackend,
		ErrCodeRenderTimeout,
		ErrCodeIOFailure,
		ErrCodeNotFound,
		ErrCodeOutlineNotFound,
		ErrCodeBoardUnavailable,
		ErrCodeCompletionFailed,
		ErrCodeNetwork,
		ErrCodeTimeout,
		ErrCodeInternal,
		ErrCodeUnsupported,
	}

	seen := make(map[Code]bool)
	for _, code := range codes {
		if seen[code] {
			t.Errorf("Duplicate error code: %s", code)
		}
		seen[code] = true
	}
}
