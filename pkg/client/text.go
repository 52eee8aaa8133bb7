package client

import "strings"

// Clean replaces non-breaking spaces with regular spaces.
func Clean(s string) string {
	return strings.ReplaceAll(s, "\u00a0", " ")
}

// ExtractAuthors splits a comma separated list of authors. An editor marker
// ("Ed.") is kept attached to the author it follows, so
// "A. Frindell, Ed." stays a single author.
func ExtractAuthors(line string) []string {
	if strings.TrimSpace(line) == "" {
		return []string{}
	}

	parts := strings.Split(line, ",")
	authors := make([]string, 0, len(parts))

	for i, part := range parts {
		part = strings.TrimSpace(part)

		if i > 0 && strings.Contains(part, "Ed.") {
			authors[len(authors)-1] += ", " + part
			continue
		}

		authors = append(authors, part)
	}

	return authors
}
