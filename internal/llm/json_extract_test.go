package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestExtractJSON_CodeBlock pulls JSON out of tagged and untagged markdown
// code blocks.
func TestExtractJSON_CodeBlock(t *testing.T) {
	tagged := "Here you go:\n```json\n{\"title\": \"hello\"}\n```\nHope that helps."
	got, err := ExtractJSON(tagged)
	require.NoError(t, err)
	assert.JSONEq(t, `{"title": "hello"}`, got)

	untagged := "```\n{\"text\": \"reply\"}\n```"
	got, err = ExtractJSON(untagged)
	require.NoError(t, err)
	assert.JSONEq(t, `{"text": "reply"}`, got)
}

// TestExtractJSON_SkipsNonJSONBlocks ignores code blocks tagged as another
// language and falls through to the raw object.
func TestExtractJSON_SkipsNonJSONBlocks(t *testing.T) {
	response := "```python\nprint('hi')\n```\nThe answer is {\"title\": \"t\", \"body\": \"b\"} as requested."
	got, err := ExtractJSON(response)
	require.NoError(t, err)
	assert.JSONEq(t, `{"title": "t", "body": "b"}`, got)
}

// TestExtractJSON_RawObject finds a brace-balanced object surrounded by
// prose, including nested objects and braces inside strings.
func TestExtractJSON_RawObject(t *testing.T) {
	response := `Sure! {"text": "use {braces} freely", "meta": {"n": 1}} Done.`
	got, err := ExtractJSON(response)
	require.NoError(t, err)
	assert.JSONEq(t, `{"text": "use {braces} freely", "meta": {"n": 1}}`, got)
}

// TestExtractJSON_EscapedQuotes keeps brace matching correct through escaped
// quotes inside strings.
func TestExtractJSON_EscapedQuotes(t *testing.T) {
	response := `{"text": "she said \"hi\" to me"}`
	got, err := ExtractJSON(response)
	require.NoError(t, err)
	assert.JSONEq(t, response, got)
}

// TestExtractJSON_NoJSON errors when the response holds no valid object.
func TestExtractJSON_NoJSON(t *testing.T) {
	for _, response := range []string{
		"I could not produce a result.",
		"{unbalanced",
		"{not: valid json}",
		"",
	} {
		_, err := ExtractJSON(response)
		assert.Error(t, err, "response %q", response)
	}
}
