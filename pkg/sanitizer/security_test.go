package sanitizer_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/listingkit/pkg/sanitizer"
)

func TestForDisplay(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "escapes script tag",
			input:    "<script>",
			expected: "&lt;script&gt;",
		},
		{
			name:     "escapes quotes and ampersands",
			input:    `"test" & 'value'`,
			expected: "&#34;test&#34; &amp; &#39;value&#39;",
		},
		{
			name:     "keeps normal text",
			input:    "Great deal!!",
			expected: "Great deal!!",
		},
		{
			name:     "handles empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizer.ForDisplay(tt.input))
		})
	}

	t.Run("round trips to the literal visible text", func(t *testing.T) {
		escaped := sanitizer.ForDisplay("<script>alert(1)</script>")
		assert.NotContains(t, escaped, "<")
		assert.NotContains(t, escaped, ">")
		assert.Equal(t, "<script>alert(1)</script>", htmlUnescape(escaped))
	})
}

func TestForStorage(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected string
	}{
		{
			name:     "removes angle brackets",
			input:    "<b>hi</b>",
			expected: "bhi/b",
		},
		{
			name:     "trims surrounding whitespace",
			input:    "  Great deal!!  ",
			expected: "Great deal!!",
		},
		{
			name:     "coerces numbers",
			input:    250.0,
			expected: "250",
		},
		{
			name:     "coerces integers",
			input:    42,
			expected: "42",
		},
		{
			name:     "nil yields empty",
			input:    nil,
			expected: "",
		},
		{
			name:     "empty string yields empty",
			input:    "",
			expected: "",
		},
		{
			name:     "unconvertible value yields empty",
			input:    struct{ A int }{A: 1},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizer.ForStorage(tt.input))
		})
	}

	t.Run("truncates to max length", func(t *testing.T) {
		input := strings.Repeat("ж", sanitizer.MaxStorageLength+50)
		out := sanitizer.ForStorage(input)
		assert.Equal(t, sanitizer.MaxStorageLength, utf8.RuneCountInString(out))
	})

	t.Run("output never contains angle brackets and never grows", func(t *testing.T) {
		inputs := []string{"<<>>", "a<b>c", " <i> x </i> ", "plain", "<script>alert('x')</script>"}
		for _, in := range inputs {
			out := sanitizer.ForStorage(in)
			assert.NotContains(t, out, "<")
			assert.NotContains(t, out, ">")
			assert.LessOrEqual(t, len(out), len(in))
		}
	})
}

func TestCompose(t *testing.T) {
	clean := sanitizer.Compose(sanitizer.StripAngleBrackets, sanitizer.Trim)
	assert.Equal(t, "a   b", clean("  <a>   b  "))
	assert.Equal(t, "x", sanitizer.Apply("x"))
}

func TestLimitLength(t *testing.T) {
	assert.Equal(t, "", sanitizer.LimitLength("abc", 0))
	assert.Equal(t, "ab", sanitizer.LimitLength("abc", 2))
	assert.Equal(t, "abc", sanitizer.LimitLength("abc", 10))
	assert.Equal(t, "жж", sanitizer.LimitLength("жжж", 2))
}

func htmlUnescape(s string) string {
	r := strings.NewReplacer("&lt;", "<", "&gt;", ">", "&#34;", `"`, "&#39;", "'", "&amp;", "&")
	return r.Replace(s)
}
