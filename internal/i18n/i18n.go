// Package i18n holds the localized string tables and the supported language set.
package i18n

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type Lang string

const (
	Farsi   Lang = "fa"
	English Lang = "en"
	Arabic  Lang = "ar"
	Russian Lang = "ru"
)

// Fallback is used when a language has no entry for a key.
const Fallback = Farsi

// Supported lists languages in keyboard order.
var Supported = []Lang{Farsi, English, Arabic, Russian}

var matcher = language.NewMatcher([]language.Tag{
	language.Persian,
	language.English,
	language.Arabic,
	language.Russian,
})

func (l Lang) Valid() bool {
	for _, s := range Supported {
		if s == l {
			return true
		}
	}
	return false
}

// Match maps a BCP 47 tag reported by the client ("en-US", "ar") onto the
// supported set. Unknown or empty tags yield Fallback.
func Match(code string) Lang {
	if code == "" {
		return Fallback
	}
	tag, err := language.Parse(code)
	if err != nil {
		return Fallback
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return Fallback
	}
	return Supported[idx]
}

// Localize returns the string for key in lang, formatted with args.
func Localize(key Key, lang Lang, args ...any) string {
	s, ok := catalog[lang][key]
	if !ok {
		s, ok = catalog[Fallback][key]
	}
	if !ok {
		return string(key)
	}
	if len(args) > 0 {
		return fmt.Sprintf(s, args...)
	}
	return s
}

// Normalize folds case and collapses whitespace for command matching.
// A Caser is stateful, so one is built per call.
func Normalize(s string) string {
	return cases.Fold().String(strings.Join(strings.Fields(s), " "))
}
