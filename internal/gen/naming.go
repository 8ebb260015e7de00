package gen

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// camelCase converts "last_added_id" to "lastAddedId".
func camelCase(s string) string {
	parts := strings.Split(s, "_")

	var sb strings.Builder

	for _, p := range parts {
		if p == "" {
			continue
		}

		if sb.Len() == 0 {
			sb.WriteString(lowerFirst(p))
			continue
		}

		sb.WriteString(upperFirst(p))
	}

	return sb.String()
}

// pascalCase converts "rid_export_Model_filtered_todos" to "RidExportModelFilteredTodos".
func pascalCase(s string) string {
	var sb strings.Builder

	for _, p := range strings.Split(s, "_") {
		sb.WriteString(upperFirst(p))
	}

	return sb.String()
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}

	return string(unicode.ToUpper(r)) + s[size:]
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}

	return string(unicode.ToLower(r)) + s[size:]
}
