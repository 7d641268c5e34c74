package utils

import "strings"

// ExtractJSONObject strips markdown fences and surrounding prose from a model
// reply and returns the first complete JSON object found. If no object can be
// isolated the trimmed input is returned unchanged and the caller's JSON
// validation decides its fate.
func ExtractJSONObject(reply string) string {
	reply = strings.ReplaceAll(reply, "```json", "")
	reply = strings.ReplaceAll(reply, "```JSON", "")
	reply = strings.ReplaceAll(reply, "```", "")
	reply = strings.TrimSpace(reply)

	start := strings.Index(reply, "{")
	if start == -1 {
		return reply
	}
	end := findMatchingBrace(reply, start)
	if end == -1 {
		return reply
	}
	return strings.TrimSpace(reply[start : end+1])
}

// findMatchingBrace walks the string from an opening brace, tracking string
// literals and escapes, and returns the index of the balancing close brace.
func findMatchingBrace(s string, start int) int {
	if start >= len(s) || s[start] != '{' {
		return -1
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		ch := s[i]

		if escaped {
			escaped = false
			continue
		}
		if ch == '\\' && inString {
			escaped = true
			continue
		}
		if ch == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		switch ch {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}

	return -1
}
