package models

import "strings"

// ParseTechnologies converts the admin form's comma-separated technology
// string into an ordered tag list. Entries are trimmed and empty entries are
// dropped, so an empty or whitespace-only input yields an empty list rather
// than a list with one blank tag.
func ParseTechnologies(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}

	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		tag := strings.TrimSpace(part)
		if tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
