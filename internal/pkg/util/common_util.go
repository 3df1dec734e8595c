package util

import (
	"regexp"
	"strings"
)

var slugInvalidChars = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify 将标题转换为 URL slug
func Slugify(title string) string {
	slug := strings.ToLower(strings.TrimSpace(title))
	slug = slugInvalidChars.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}
