// Package i18n translates message keys into user-facing text.
package i18n

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Locale represents a supported language
type Locale string

const (
	LocaleEn Locale = "en"
	LocaleKo Locale = "ko"
)

// Bundle holds the translations of every loaded locale
type Bundle struct {
	mu           sync.RWMutex
	translations map[Locale]map[string]string
	fallback     Locale
}

// NewBundle creates an empty bundle with the given fallback locale
func NewBundle(fallback Locale) *Bundle {
	return &Bundle{
		translations: make(map[Locale]map[string]string),
		fallback:     fallback,
	}
}

// Default returns a bundle preloaded with the built-in messages, falling back to English
func Default() *Bundle {
	b := NewBundle(LocaleEn)
	for locale, msgs := range DefaultMessages() {
		b.LoadMessages(locale, msgs)
	}
	return b
}

// LoadDir merges <locale>.json files from dir over the loaded messages
func (b *Bundle) LoadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read i18n dir: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}

		var msgs map[string]string
		if err := json.Unmarshal(data, &msgs); err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
		b.LoadMessages(Locale(strings.TrimSuffix(entry.Name(), ".json")), msgs)
	}
	return nil
}

// LoadMessages merges messages into the locale's table
func (b *Bundle) LoadMessages(locale Locale, messages map[string]string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	table, ok := b.translations[locale]
	if !ok {
		table = make(map[string]string, len(messages))
		b.translations[locale] = table
	}
	for k, v := range messages {
		table[k] = v
	}
}

// T translates key for locale, then for the fallback locale, and finally
// returns the key itself
func (b *Bundle) T(locale Locale, key string) string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, l := range []Locale{locale, b.fallback} {
		if msg, ok := b.translations[l][key]; ok {
			return msg
		}
	}
	return key
}

// Match returns the first loaded locale named in an Accept-Language header,
// or the fallback locale. Quality values are ignored; tags are taken in order.
func (b *Bundle) Match(header string) Locale {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, part := range strings.Split(header, ",") {
		tag := strings.ToLower(strings.TrimSpace(strings.SplitN(part, ";", 2)[0]))
		lang := Locale(strings.SplitN(tag, "-", 2)[0])
		if _, ok := b.translations[lang]; ok {
			return lang
		}
	}
	return b.fallback
}
