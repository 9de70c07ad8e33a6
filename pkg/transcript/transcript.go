// Package transcript holds small text helpers shared by the pipeline stages.
package transcript

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	reSrtIndex = regexp.MustCompile(`^\d+$`)
	reSrtTime  = regexp.MustCompile(`^\d{2}:\d{2}:\d{2}[,.]\d{3}\s*-->`)
	reVttTime  = regexp.MustCompile(`^(\d{2}:)?\d{2}:\d{2}\.\d{3}\s*-->`)
)

// Length counts runes, not bytes, so Korean text is measured the way users see it.
func Length(s string) int {
	return utf8.RuneCountInString(s)
}

// Excerpt returns at most limit runes from the start of s.
// A non-positive limit returns s unchanged.
func Excerpt(s string, limit int) string {
	if limit <= 0 || utf8.RuneCountInString(s) <= limit {
		return s
	}
	n := 0
	for i := range s {
		if n == limit {
			return s[:i]
		}
		n++
	}
	return s
}

// Normalize strips subtitle scaffolding (cue numbers, timestamps, WEBVTT
// headers) and drops immediately repeated lines, leaving only spoken text.
// Plain text passes through with its line structure intact.
func Normalize(raw string) string {
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	if !looksLikeSubtitles(raw) {
		return strings.TrimSpace(raw)
	}

	var out []string
	prev := ""
	for _, line := range strings.Split(raw, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "",
			trimmed == "WEBVTT",
			reSrtIndex.MatchString(trimmed),
			reSrtTime.MatchString(trimmed),
			reVttTime.MatchString(trimmed):
			continue
		}
		if trimmed == prev {
			continue
		}
		prev = trimmed
		out = append(out, trimmed)
	}
	return strings.Join(out, "\n")
}

func looksLikeSubtitles(s string) bool {
	for _, line := range strings.SplitN(s, "\n", 20) {
		trimmed := strings.TrimSpace(line)
		if trimmed == "WEBVTT" || reSrtTime.MatchString(trimmed) || reVttTime.MatchString(trimmed) {
			return true
		}
	}
	return false
}
