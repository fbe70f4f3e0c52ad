package service

import "strings"

// cleanLLMResponse remove BOM e cercas ```json ... ``` que os modelos
// costumam colocar em volta da resposta.
func cleanLLMResponse(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "\uFEFF")

	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
		if idx := strings.IndexAny(s, "\n{["); idx >= 0 && !strings.ContainsAny(s[:idx], "{[") {
			// descarta o identificador de linguagem ("json") após a cerca
			s = s[idx:]
		}
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	return strings.TrimSpace(s)
}

// extractJSONObject devolve o primeiro objeto JSON balanceado do texto,
// ignorando prosa antes e depois. Vazio quando não há objeto completo.
func extractJSONObject(input string) string {
	start := strings.IndexByte(input, '{')
	if start == -1 {
		return ""
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(input); i++ {
		c := input[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return input[start : i+1]
			}
		}
	}
	return ""
}
