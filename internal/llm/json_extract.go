package llm

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// codeBlockPattern matches markdown code blocks with an optional language tag.
var codeBlockPattern = regexp.MustCompile(`(?s)` + "```" + `(\w*)\s*\n(.+?)\n` + "```")

// ExtractJSON pulls a JSON object out of raw model output, which models
// routinely wrap in markdown or surround with prose. Priority:
//
//  1. JSON inside a ```json (or untagged) code block
//  2. The first raw {...} object in the response
func ExtractJSON(response string) (string, error) {
	if jsonStr, found := extractFromCodeBlock(response); found {
		return jsonStr, nil
	}
	if jsonStr, found := extractRawJSON(response); found {
		return jsonStr, nil
	}
	return "", fmt.Errorf("no valid JSON object found in response")
}

// extractFromCodeBlock finds valid JSON in markdown code blocks, skipping
// blocks explicitly tagged as another language.
func extractFromCodeBlock(response string) (string, bool) {
	for _, match := range codeBlockPattern.FindAllStringSubmatch(response, -1) {
		if len(match) < 3 {
			continue
		}
		lang := strings.ToLower(match[1])
		if lang != "" && lang != "json" {
			continue
		}
		content := strings.TrimSpace(match[2])
		if strings.HasPrefix(content, "{") && json.Valid([]byte(content)) {
			return content, true
		}
	}
	return "", false
}

// extractRawJSON finds the first brace-balanced object in the response.
func extractRawJSON(response string) (string, bool) {
	start := strings.Index(response, "{")
	if start < 0 {
		return "", false
	}
	candidate := matchBraces(response[start:])
	if candidate != "" && json.Valid([]byte(candidate)) {
		return candidate, true
	}
	return "", false
}

// matchBraces returns the prefix of s up to the brace that balances the
// opening one, respecting strings and escapes. Empty if unbalanced.
func matchBraces(s string) string {
	depth := 0
	inString := false
	escaped := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if escaped {
			escaped = false
			continue
		}
		switch c {
		case '\\':
			if inString {
				escaped = true
			}
		case '"':
			inString = !inString
		case '{':
			if !inString {
				depth++
			}
		case '}':
			if !inString {
				depth--
				if depth == 0 {
					return s[:i+1]
				}
			}
		}
	}
	return ""
}
