package pipeline

import (
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

var (
	disallowedRe = regexp.MustCompile(`[^a-zA-Z0-9\s_-]`)
	whitespaceRe = regexp.MustCompile(`\s+`)
	underscoreRe = regexp.MustCompile(`_+`)
)

const maxBaseNameLen = 80

// SanitizeName converts an arbitrary title to a safe output base name:
// disallowed characters are stripped, whitespace becomes underscores, runs
// of underscores collapse, and the result is trimmed, capped at 80
// characters, and lowercased.
func SanitizeName(name string) string {
	clean := disallowedRe.ReplaceAllString(name, "")
	clean = whitespaceRe.ReplaceAllString(clean, "_")
	clean = underscoreRe.ReplaceAllString(clean, "_")
	clean = strings.Trim(clean, "_")
	if len(clean) > maxBaseNameLen {
		clean = clean[:maxBaseNameLen]
	}
	return strings.ToLower(clean)
}

// BaseName derives the output base name for one run. Precedence: an explicit
// name wins, then the outline title, then the input filename stem with a
// timestamp so repeated runs of an untitled input never collide.
func BaseName(explicit, title, inputPath string, now time.Time) string {
	if name := SanitizeName(explicit); name != "" {
		return name
	}
	if name := SanitizeName(title); name != "" {
		return name
	}

	stem := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	stem = SanitizeName(stem)
	if stem == "" {
		stem = "mindmap"
	}
	return stem + "_" + now.Format("20060102_150405")
}
