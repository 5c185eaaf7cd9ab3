// Package i18n maps roll identifiers and result labels to display text.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var swedish = language.Swedish

var supportedTags = []language.Tag{
	language.English,
	swedish,
}

var tagMatcher = language.NewMatcher(supportedTags)

// Match resolves a locale setting ("sv", "en-US", "sv-SE,en;q=0.8") to the
// closest supported tag.
func Match(locale string) language.Tag {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		return language.English
	}
	tags, _, err := language.ParseAcceptLanguage(locale)
	if err != nil || len(tags) == 0 {
		return language.English
	}
	_, idx, conf := tagMatcher.Match(tags...)
	if conf == language.No {
		return language.English
	}
	return supportedTags[idx]
}

// IsSupported reports whether locale matches a supported language at all.
func IsSupported(locale string) bool {
	tags, _, err := language.ParseAcceptLanguage(strings.TrimSpace(locale))
	if err != nil || len(tags) == 0 {
		return false
	}
	_, _, conf := tagMatcher.Match(tags...)
	return conf != language.No
}

// Localizer translates identifiers for one language.
type Localizer struct {
	printer *message.Printer
}

// New returns a localizer for locale.
func New(locale string) *Localizer {
	return &Localizer{printer: message.NewPrinter(Match(locale))}
}

// Localize returns the translation of key, or key itself when the catalog
// has no entry.
func (l *Localizer) Localize(key string) string {
	// the key is also the fallback format string
	return l.printer.Sprintf(message.Key(key, strings.ReplaceAll(key, "%", "%%")))
}
