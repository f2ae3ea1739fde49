// Package i18n holds the message catalog for admin UI text and constructs
// printers that render messages in the viewer's language.
package i18n

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// DefaultLanguage is the fallback for viewers whose language carries no
// translations.
var DefaultLanguage = language.English

var builder = catalog.NewBuilder(catalog.Fallback(DefaultLanguage))

// Translate registers a translation of msg for the given language. The
// translation must preserve the substitution verbs of the original message.
func Translate(tag language.Tag, msg, translation string) error {
	return builder.SetString(tag, msg, translation)
}

// Printer returns a printer rendering messages in the given language,
// falling back to the default language for untranslated messages.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag, message.Catalog(builder))
}

// Match selects the best supported language for an Accept-Language header
// value.
func Match(acceptLanguage string) language.Tag {
	requested, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(requested) == 0 {
		return DefaultLanguage
	}
	// the default language goes first: the matcher returns the first
	// supported tag when nothing matches
	supported := append([]language.Tag{DefaultLanguage}, builder.Languages()...)
	// return the supported tag itself rather than the matched tag, which the
	// matcher may decorate with extensions
	_, idx, _ := language.NewMatcher(supported).Match(requested...)
	return supported[idx]
}

// CapFirst upper-cases the first letter of s, leaving the rest untouched.
func CapFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
