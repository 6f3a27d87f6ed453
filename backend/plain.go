package backend

import "strings"

func renderPlain(lines []string) string {
	return strings.Join(lines, "\n")
}

func renderTrimmed(lines []string) string {
	trimmed := make([]string, len(lines))
	for i, line := range lines {
		trimmed[i] = strings.TrimRight(line, " ")
	}
	return strings.Join(trimmed, "\n")
}
