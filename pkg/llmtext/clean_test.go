package llmtext

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripCodeFences(t *testing.T) {
	assert.Equal(t, `{"a":1}`, StripCodeFences("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, StripCodeFences("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, StripCodeFences(`{"a":1}`))
}

func TestExtractJSONObject(t *testing.T) {
	assert.Equal(t, `{"a":{"b":2}}`, ExtractJSONObject(`Here you go: {"a":{"b":2}} hope that helps`))
	assert.Equal(t, "no braces here", ExtractJSONObject("no braces here"))
}

func TestCleanJSON(t *testing.T) {
	out, ok := CleanJSON("```json\nSure! {\"email\": \"a@b.co\"}\n```")
	assert.True(t, ok)
	assert.Equal(t, `{"email": "a@b.co"}`, out)

	_, ok = CleanJSON("I could not find anything")
	assert.False(t, ok)

	out, ok = CleanJSON("{}")
	assert.True(t, ok)
	assert.Equal(t, "{}", out)
}
