package cldr

import (
	"sort"
	"strings"

	"golang.org/x/text/language"
)

func cultureParentTag(culture string) string {
	if culture == "" {
		return ""
	}

	tag, err := language.Parse(culture)
	if err == nil {
		parent := tag.Parent()
		if parent == language.Und {
			return ""
		}
		value := parent.String()
		if value == "" || value == "und" {
			return ""
		}
		return value
	}

	if idx := strings.LastIndex(culture, "-"); idx > 0 {
		return culture[:idx]
	}

	return ""
}

func cultureParentChain(culture string) []string {
	if culture == "" {
		return nil
	}

	var chain []string
	seen := make(map[string]struct{}, 4)

	if tag, err := language.Parse(culture); err == nil {
		for parent := tag.Parent(); parent != language.Und; parent = parent.Parent() {
			parentValue := parent.String()
			if parentValue == "" || parentValue == "und" {
				break
			}
			if _, exists := seen[parentValue]; exists {
				break
			}
			seen[parentValue] = struct{}{}
			chain = append(chain, parentValue)
		}
	}

	for current := cultureParentTag(culture); current != ""; current = cultureParentTag(current) {
		if _, exists := seen[current]; exists {
			continue
		}
		seen[current] = struct{}{}
		chain = append(chain, current)
	}

	return chain
}

// normalizeCulture normalizes a culture identifier by replacing underscores
// with hyphens and trimming whitespace.
func normalizeCulture(culture string) string {
	return strings.ReplaceAll(strings.TrimSpace(culture), "_", "-")
}

func sortedCultures(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for culture := range set {
		out = append(out, culture)
	}
	sort.Strings(out)
	return out
}

// isEnglishFamily reports whether the culture's base language is English.
// The date parser case-normalizes month and weekday names only for these.
func isEnglishFamily(culture string) bool {
	tag, err := language.Parse(normalizeCulture(culture))
	if err != nil {
		return strings.HasPrefix(strings.ToLower(culture), "en")
	}
	base, _ := tag.Base()
	return base.String() == "en"
}
