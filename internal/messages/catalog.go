// Package messages resolves message keys to localized text.
package messages

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/language"
)

// Args fills {name} placeholders in a message template.
type Args map[string]string

// Catalog holds message templates for several locales.
type Catalog struct {
	mu            sync.RWMutex
	locales       map[string]map[string]string
	defaultLocale string
	matcher       language.Matcher
	tags          []string // locale names in matcher order
}

// NewCatalog creates an empty catalog that falls back to defaultLocale.
func NewCatalog(defaultLocale string) *Catalog {
	c := &Catalog{
		locales:       make(map[string]map[string]string),
		defaultLocale: defaultLocale,
	}
	c.rebuildMatcher()
	return c
}

// Default returns a catalog with the built-in English and Hebrew tables,
// falling back to English.
func Default() *Catalog {
	c := NewCatalog("en")
	c.AddLocale("en", english)
	c.AddLocale("he", hebrew)
	return c
}

// AddLocale adds or overrides messages for locale.
func (c *Catalog) AddLocale(locale string, msgs map[string]string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	m, ok := c.locales[locale]
	if !ok {
		m = make(map[string]string, len(msgs))
		c.locales[locale] = m
	}
	for k, v := range msgs {
		m[k] = v
	}
	if !ok {
		c.rebuildMatcher()
	}
}

// LoadJSON merges a flat {"KEY": "text"} file into locale.
func (c *Catalog) LoadJSON(locale, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("messages: read %s: %w", path, err)
	}
	var msgs map[string]string
	if err := json.Unmarshal(data, &msgs); err != nil {
		return fmt.Errorf("messages: parse %s: %w", path, err)
	}
	c.AddLocale(locale, msgs)
	return nil
}

// Locales returns the registered locale names, sorted.
func (c *Catalog) Locales() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, 0, len(c.locales))
	for l := range c.locales {
		out = append(out, l)
	}
	sort.Strings(out)
	return out
}

// DefaultLocale returns the fallback locale.
func (c *Catalog) DefaultLocale() string {
	return c.defaultLocale
}

// Text renders key in locale. Lookup falls back from "he-IL" to "he", then
// to the default locale, then to the key itself.
func (c *Catalog) Text(locale, key string, args Args) string {
	c.mu.RLock()
	tmpl, ok := c.lookup(locale, key)
	c.mu.RUnlock()
	if !ok {
		return key
	}
	if len(args) == 0 {
		return tmpl
	}
	pairs := make([]string, 0, len(args)*2)
	for k, v := range args {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}

// RegionName returns the localized name of a region code, or the code.
func (c *Catalog) RegionName(locale, region string) string {
	key := "REGION_" + region
	if name := c.Text(locale, key, nil); name != key {
		return name
	}
	return region
}

// Match picks the best registered locale for an Accept-Language header.
// It returns the default locale when nothing matches.
func (c *Catalog) Match(acceptLanguage string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 || len(c.tags) == 0 {
		return c.defaultLocale
	}
	_, idx, conf := c.matcher.Match(tags...)
	if conf == language.No || idx < 0 || idx >= len(c.tags) {
		return c.defaultLocale
	}
	return c.tags[idx]
}

func (c *Catalog) lookup(locale, key string) (string, bool) {
	for _, l := range c.candidates(locale) {
		if m, ok := c.locales[l]; ok {
			if s, ok := m[key]; ok {
				return s, true
			}
		}
	}
	return "", false
}

func (c *Catalog) candidates(locale string) []string {
	locale = strings.ReplaceAll(strings.TrimSpace(locale), "_", "-")
	out := make([]string, 0, 3)
	if locale != "" {
		out = append(out, locale)
		if base, _, ok := strings.Cut(locale, "-"); ok {
			out = append(out, strings.ToLower(base))
		}
	}
	return append(out, c.defaultLocale)
}

// rebuildMatcher must be called with mu held for writing. The default
// locale goes first so it wins ties.
func (c *Catalog) rebuildMatcher() {
	names := make([]string, 0, len(c.locales))
	if _, ok := c.locales[c.defaultLocale]; ok {
		names = append(names, c.defaultLocale)
	}
	rest := make([]string, 0, len(c.locales))
	for l := range c.locales {
		if l != c.defaultLocale {
			rest = append(rest, l)
		}
	}
	sort.Strings(rest)
	names = append(names, rest...)

	tags := make([]language.Tag, 0, len(names))
	kept := make([]string, 0, len(names))
	for _, n := range names {
		t, err := language.Parse(n)
		if err != nil {
			continue
		}
		tags = append(tags, t)
		kept = append(kept, n)
	}
	c.tags = kept
	c.matcher = language.NewMatcher(tags)
}
