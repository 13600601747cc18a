package versioned

import (
	"strings"
	"unicode"
)

// underscore converts a CamelCase type name to snake_case ("BlogPost" -> "blog_post").
func underscore(name string) string {
	var b strings.Builder
	b.Grow(len(name) + 4)

	runes := []rune(name)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			if i > 0 && (!unicode.IsUpper(runes[i-1]) || (i+1 < len(runes) && !unicode.IsUpper(runes[i+1]))) {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}

	return b.String()
}

// pluralize applies the small set of english rules needed for table names.
func pluralize(word string) string {
	switch {
	case word == "":
		return word
	case strings.HasSuffix(word, "y") && !hasVowelBeforeSuffix(word, "y"):
		return word[:len(word)-1] + "ies"
	case strings.HasSuffix(word, "s"),
		strings.HasSuffix(word, "x"),
		strings.HasSuffix(word, "z"),
		strings.HasSuffix(word, "ch"),
		strings.HasSuffix(word, "sh"):
		return word + "es"
	default:
		return word + "s"
	}
}

func hasVowelBeforeSuffix(word, suffix string) bool {
	idx := len(word) - len(suffix) - 1
	if idx < 0 {
		return false
	}

	return strings.ContainsRune("aeiou", rune(word[idx]))
}

// tableize derives the storage name for an entity type ("Story" -> "stories").
func tableize(name string) string {
	return pluralize(underscore(name))
}

// versionsTableName derives the storage name for a history type
// ("Story" -> "story_versions").
func versionsTableName(name string) string {
	return underscore(name) + "_versions"
}
