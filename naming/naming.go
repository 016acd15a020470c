// Package naming derives an instant human name and URL slug from freeform
// intent text, used to seed an AppSpec's meta section before any LLM
// refinement. Everything here is pure and deterministic.
package naming

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Result holds the derived name and slug. Both fields are always non-empty.
type Result struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Fallback values used when the intent carries no usable text.
const (
	FallbackName = "Untitled App"
	FallbackSlug = "untitled-app"
)

const (
	maxNameLength = 50
	maxSlugLength = 30
)

// requestPrefixes are common leading request phrases, ordered so that the
// longest variant of each phrase matches first. At most one prefix is
// stripped, and only at the very start of the intent.
var requestPrefixes = []string{
	"i need an", "i need a", "i need",
	"i want an", "i want a", "i want",
	"build me an", "build me a", "build me",
	"make me an", "make me a", "make me",
	"create an", "create a", "create",
}

// FromIntent derives a title-cased name and a URL-safe slug from intent.
// Empty, whitespace-only, and punctuation-only input yields the fixed
// fallback pair.
func FromIntent(intent string) Result {
	// Collapse all whitespace runs, including newlines and tabs.
	collapsed := strings.Join(strings.Fields(intent), " ")
	if collapsed == "" {
		return Result{Name: FallbackName, Slug: FallbackSlug}
	}

	remainder := stripRequestPrefix(collapsed)
	if remainder == "" || !containsAlphanumeric(remainder) {
		return Result{Name: FallbackName, Slug: FallbackSlug}
	}

	name := truncateName(titleCase(remainder))

	slug := slugify(remainder)
	if slug == "" {
		slug = FallbackSlug
	}

	return Result{Name: name, Slug: slug}
}

// stripRequestPrefix removes at most one leading request phrase,
// case-insensitively. A phrase occurring mid-string is never stripped.
func stripRequestPrefix(s string) string {
	lower := strings.ToLower(s)
	for _, prefix := range requestPrefixes {
		if lower == prefix {
			return ""
		}
		if strings.HasPrefix(lower, prefix+" ") {
			return strings.TrimSpace(s[len(prefix)+1:])
		}
	}
	return s
}

func containsAlphanumeric(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

// titleCase lowercases each whitespace-delimited token and re-capitalizes
// its first letter. Deliberately no acronym detection: "RESTful API"
// becomes "Restful Api".
func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		runes := []rune(w)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

// truncateName caps the name at maxNameLength runes, cutting at the last
// whitespace boundary when that boundary falls in the final 40% of the
// budget, and appends "..." when truncated.
func truncateName(name string) string {
	runes := []rune(name)
	if len(runes) <= maxNameLength {
		return name
	}

	cut := string(runes[:maxNameLength])
	if idx := strings.LastIndex(cut, " "); idx >= maxNameLength*6/10 {
		cut = cut[:idx]
	}
	return strings.TrimRight(cut, " ") + "..."
}

// slugify lowercases, strips diacritics, drops non-ASCII, converts
// underscores to hyphens, collapses every other non-alphanumeric run to a
// single hyphen, and caps the result at maxSlugLength runes.
func slugify(s string) string {
	s = stripDiacritics(strings.ToLower(s))

	var b strings.Builder
	lastHyphen := false
	for _, r := range s {
		switch {
		case r > unicode.MaxASCII:
			// Dropped entirely (emoji, CJK, leftovers from normalization).
			continue
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			// Underscores and every other separator collapse to one hyphen.
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}

	slug := strings.Trim(b.String(), "-")
	if len(slug) > maxSlugLength {
		slug = strings.TrimRight(slug[:maxSlugLength], "-")
	}
	return slug
}

// stripDiacritics decomposes to NFD and removes combining marks, so that
// "café" slugifies to "cafe".
func stripDiacritics(s string) string {
	decomposed := norm.NFD.String(s)
	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
