// Package i18n localizes user-facing text with golang.org/x/text.
//
// Messages are keyed by their English source string. English needs no
// catalog entry: a missing translation prints the key itself as the
// format, so numbers still get locale-aware grouping.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var embeddedLocales embed.FS

var supportedTags = []language.Tag{
	language.English,
	language.SimplifiedChinese,
}

var tagMatcher = language.NewMatcher(supportedTags)

var defaultCatalog = mustLoad(embeddedLocales)

type localeFile struct {
	Locale   string            `yaml:"locale"`
	Messages map[string]string `yaml:"messages"`
}

// Supported returns the list of supported language tags.
func Supported() []language.Tag {
	tags := make([]language.Tag, len(supportedTags))
	copy(tags, supportedTags)
	return tags
}

// Default returns the default language tag.
func Default() language.Tag {
	return language.English
}

// Match resolves a user-supplied language name ("zh", "zh-CN", "en-GB")
// to the closest supported tag. Unknown or empty input yields English.
func Match(lang string) language.Tag {
	lang = strings.TrimSpace(lang)
	if lang == "" {
		return Default()
	}
	parsed, err := language.Parse(lang)
	if err != nil {
		return Default()
	}
	_, idx, conf := tagMatcher.Match(parsed)
	if conf == language.No {
		return Default()
	}
	return supportedTags[idx]
}

// Load builds a catalog from locales/*.yaml in fsys.
func Load(fsys fs.FS) (*catalog.Builder, error) {
	paths, err := fs.Glob(fsys, "locales/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob locale catalogs: %w", err)
	}
	sort.Strings(paths)

	b := catalog.NewBuilder(catalog.Fallback(Default()))
	for _, path := range paths {
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", path, err)
		}
		var file localeFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", path, err)
		}
		tag, err := language.Parse(strings.TrimSpace(file.Locale))
		if err != nil {
			return nil, fmt.Errorf("catalog %s: parse locale tag %q: %w", path, file.Locale, err)
		}

		keys := make([]string, 0, len(file.Messages))
		for key := range file.Messages {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			if err := b.SetString(tag, key, file.Messages[key]); err != nil {
				return nil, fmt.Errorf("catalog %s: key %q: %w", path, key, err)
			}
		}
	}
	return b, nil
}

func mustLoad(fsys fs.FS) *catalog.Builder {
	b, err := Load(fsys)
	if err != nil {
		panic(err)
	}
	return b
}

// Localizer formats messages for one language.
// A nil Localizer formats in English.
type Localizer struct {
	tag     language.Tag
	printer *message.Printer
}

// New returns a Localizer for the closest supported match of lang.
func New(lang string) *Localizer {
	tag := Match(lang)
	return &Localizer{
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(defaultCatalog)),
	}
}

// Tag returns the resolved language.
func (l *Localizer) Tag() language.Tag {
	if l == nil {
		return Default()
	}
	return l.tag
}

// Sprintf formats the message stored under key.
func (l *Localizer) Sprintf(key string, args ...any) string {
	if l == nil {
		l = english
	}
	return l.printer.Sprintf(key, args...)
}

var english = New("en")
