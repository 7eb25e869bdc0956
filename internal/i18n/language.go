// Package i18n serves the site's translation tables.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// Supported lists the site languages; the first is the default.
var Supported = []language.Tag{
	language.English,
	language.Romanian,
	language.Polish,
}

const DefaultLanguage = "en"

var matcher = language.NewMatcher(Supported)

// Codes returns the supported language codes in order.
func Codes() []string {
	out := make([]string, len(Supported))
	for i, tag := range Supported {
		out[i] = code(tag)
	}
	return out
}

func code(tag language.Tag) string {
	base, _ := tag.Base()
	return base.String()
}

// IsSupported reports whether s names a supported language, e.g. "ro" or "ro-RO".
func IsSupported(s string) bool {
	_, ok := Normalize(s)
	return ok
}

// Normalize maps a language tag to its supported code.
func Normalize(s string) (string, bool) {
	tag, err := language.Parse(strings.TrimSpace(s))
	if err != nil {
		return "", false
	}
	c := code(tag)
	for _, sup := range Supported {
		if code(sup) == c {
			return c, true
		}
	}
	return "", false
}

// Match picks the best supported language for an Accept-Language header.
// It falls back to the default.
func Match(acceptLanguage string) string {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return DefaultLanguage
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return DefaultLanguage
	}
	return code(Supported[idx])
}
