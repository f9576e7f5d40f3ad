package urlnorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		err      error
	}{
		{
			name:     "Bare host and path gets http scheme",
			input:    "example.com/page",
			expected: "http://example.com/page",
		},
		{
			name:     "Bare host gets http scheme",
			input:    "example.com",
			expected: "http://example.com",
		},
		{
			name:     "http URL passes through unchanged",
			input:    "http://example.com/page",
			expected: "http://example.com/page",
		},
		{
			name:     "https URL passes through unchanged",
			input:    "https://example.com/a/b?q=1",
			expected: "https://example.com/a/b?q=1",
		},
		{
			name:     "Surrounding whitespace is trimmed",
			input:    "  https://example.com  ",
			expected: "https://example.com",
		},
		{
			name:  "Empty input",
			input: "",
			err:   ErrEmptyInput,
		},
		{
			name:  "Whitespace-only input",
			input: "   \t ",
			err:   ErrEmptyInput,
		},
		{
			name:  "Garbage with spaces",
			input: "not a url ???",
			err:   ErrInvalidURL,
		},
		{
			name:  "Query marks only",
			input: "???",
			err:   ErrInvalidURL,
		},
		{
			name:  "Non-http scheme",
			input: "ftp://example.com/file",
			err:   ErrInvalidURL,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.input)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"example.com/page",
		"http://example.com",
		"https://example.com/a?b=c",
		"localhost:8080/x",
	}

	for _, input := range inputs {
		once, err := Normalize(input)
		require.NoError(t, err, "first pass for %q", input)

		twice, err := Normalize(once)
		require.NoError(t, err, "second pass for %q", input)
		assert.Equal(t, once, twice, "Normalize should be idempotent for %q", input)
	}
}
