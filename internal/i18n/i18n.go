// Package i18n provides the translation catalog consulted by the sentence
// composer. It is a thin layer over universal-translator: one translator per
// supported language, with English as the fallback for unknown languages and
// for keys missing from a language's catalog.
package i18n

import (
	"fmt"
	"sync"

	enlocale "github.com/go-playground/locales/en"
	frlocale "github.com/go-playground/locales/fr"
	ut "github.com/go-playground/universal-translator"
)

// FallbackLanguage is used when the requested language has no catalog.
const FallbackLanguage = "en"

// Catalog holds the registered translations for all supported languages.
type Catalog struct {
	uni      *ut.UniversalTranslator
	fallback ut.Translator
}

// NewCatalog builds a catalog with the en and fr translation sets registered.
func NewCatalog() (*Catalog, error) {
	en := enlocale.New()
	uni := ut.New(en, en, frlocale.New())

	fallback := uni.GetFallback()

	for lang, entries := range catalogEntries {
		trans, found := uni.GetTranslator(lang)
		if !found {
			return nil, fmt.Errorf("i18n: locale %q is not registered", lang)
		}
		for key, text := range entries {
			if err := trans.Add(key, text, false); err != nil {
				return nil, fmt.Errorf("i18n: adding %q to %q: %w", key, lang, err)
			}
		}
	}

	return &Catalog{uni: uni, fallback: fallback}, nil
}

var (
	defaultOnce sync.Once
	defaultCat  *Catalog
)

// Default returns the shared catalog. The entry tables are static, so a
// registration failure is a programming error and panics.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := NewCatalog()
		if err != nil {
			panic(err)
		}
		defaultCat = c
	})
	return defaultCat
}

// Locale is a per-language view of the catalog. Lookups try the requested
// language first and fall back to English.
type Locale struct {
	primary  ut.Translator
	fallback ut.Translator
}

// Locale returns the view for lang. Unknown languages resolve to the
// fallback language.
func (c *Catalog) Locale(lang string) Locale {
	trans, _ := c.uni.GetTranslator(lang)
	return Locale{primary: trans, fallback: c.fallback}
}

// T renders the template registered under key with the given positional
// parameters. A key absent from both the requested language and the fallback
// yields an empty string; the composer treats that as "omit the clause".
func (l Locale) T(key string, params ...string) string {
	if s, err := l.primary.T(key, params...); err == nil {
		return s
	}
	if s, err := l.fallback.T(key, params...); err == nil {
		return s
	}
	return ""
}
