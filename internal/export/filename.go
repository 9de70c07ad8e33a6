package export

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var reUnsafe = regexp.MustCompile(`[\\/:*?"<>|\s]+`)

const maxNameRunes = 60

// Filename derives a download name from the topic, keeping Hangul intact.
func Filename(topic, ext string) string {
	name := strings.Trim(reUnsafe.ReplaceAllString(strings.TrimSpace(topic), "_"), "_.")
	if utf8.RuneCountInString(name) > maxNameRunes {
		name = string([]rune(name)[:maxNameRunes])
	}
	if name == "" {
		name = "script"
	}
	return name + "." + strings.TrimPrefix(ext, ".")
}
