package validation_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"outreach-backend/pkg/validation"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeText(t *testing.T) {
	t.Run("Should trim surrounding whitespace", func(t *testing.T) {
		assert.Equal(t, "hello", validation.SanitizeText("  hello  ", 100))
	})

	t.Run("Should truncate to max length", func(t *testing.T) {
		out := validation.SanitizeText(strings.Repeat("a", 300), 254)
		assert.Len(t, out, 254)
	})

	t.Run("Should return empty string for empty input", func(t *testing.T) {
		assert.Equal(t, "", validation.SanitizeText("", 100))
		assert.Equal(t, "", validation.SanitizeText("   \n\t ", 100))
	})

	t.Run("Result never exceeds max and has no edge whitespace", func(t *testing.T) {
		for _, in := range []string{" abc ", "abc\n", "\t a very long piece of text \t", "x"} {
			out := validation.SanitizeText(in, 10)
			assert.LessOrEqual(t, len(out), 10)
			assert.Equal(t, strings.TrimSpace(out), out)
		}
	})

	t.Run("Should re-trim when truncation lands on a space", func(t *testing.T) {
		assert.Equal(t, "ab", validation.SanitizeText("ab cdef", 3))
	})

	t.Run("Should truncate on character boundaries", func(t *testing.T) {
		out := validation.SanitizeText("한국어입니다", 3)
		assert.Equal(t, "한국어", out)
		assert.True(t, utf8.ValidString(out))
	})
}

func TestSanitizeHTML(t *testing.T) {
	t.Run("Should escape the five significant characters", func(t *testing.T) {
		out := validation.SanitizeHTML(`<script>alert("x") & 'y'</script>`)
		assert.Equal(t, "&lt;script&gt;alert(&quot;x&quot;) &amp; &#039;y&#039;&lt;/script&gt;", out)
	})

	t.Run("Should pass plain text through unchanged", func(t *testing.T) {
		assert.Equal(t, "hello world", validation.SanitizeHTML("hello world"))
	})
}

func TestIsValidEmail(t *testing.T) {
	t.Run("Should accept well-formed addresses", func(t *testing.T) {
		assert.True(t, validation.IsValidEmail("a@b.com"))
		assert.True(t, validation.IsValidEmail("first.last+tag@sub.example.co"))
	})

	t.Run("Should reject strings without exactly one @", func(t *testing.T) {
		assert.False(t, validation.IsValidEmail("not-an-email"))
		assert.False(t, validation.IsValidEmail("a@@b.com"))
		assert.False(t, validation.IsValidEmail("a@b@c.com"))
	})

	t.Run("Should reject domains without a dot", func(t *testing.T) {
		assert.False(t, validation.IsValidEmail("user@localhost"))
	})

	t.Run("Should reject whitespace", func(t *testing.T) {
		assert.False(t, validation.IsValidEmail("a b@c.com"))
	})

	t.Run("Should reject addresses over 254 characters", func(t *testing.T) {
		long := strings.Repeat("a", 250) + "@b.com"
		assert.False(t, validation.IsValidEmail(long))
	})
}
