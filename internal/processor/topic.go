package processor

import (
	"regexp"
	"strings"
)

// A transcript may name its target topic on the first non-empty line,
// e.g. "topic: 다이소 꿀템" or "주제: 다이소 꿀템".
var reTopicDirective = regexp.MustCompile(`(?i)^(?:topic|주제)\s*[:：]\s*(.+)$`)

// splitTopic returns the directive topic (if any) and the transcript without it.
func splitTopic(text string) (string, string) {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		m := reTopicDirective.FindStringSubmatch(trimmed)
		if m == nil {
			return "", text
		}
		return strings.TrimSpace(m[1]), strings.TrimSpace(strings.Join(lines[i+1:], "\n"))
	}
	return "", text
}
