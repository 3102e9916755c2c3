// Package i18n serves the bot's display strings from embedded locale files.
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/language"

	"github.com/osse101/NeuroFarm_Go/internal/domain"
)

//go:embed locales/*.json
var localeFS embed.FS

// Bundle maps language code to key to message
type Bundle struct {
	messages map[string]map[string]string
	matcher  language.Matcher
	codes    []string
}

var defaultBundle = mustLoad()

func mustLoad() *Bundle {
	b, err := Load()
	if err != nil {
		panic(err)
	}
	return b
}

// Load parses every embedded locale file. A supported language without a
// file is an error.
func Load() (*Bundle, error) {
	b := &Bundle{messages: make(map[string]map[string]string)}

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("failed to read locales: %w", err)
	}
	for _, e := range entries {
		data, err := localeFS.ReadFile(path.Join("locales", e.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read locale %s: %w", e.Name(), err)
		}
		var msgs map[string]string
		if err := json.Unmarshal(data, &msgs); err != nil {
			return nil, fmt.Errorf("failed to parse locale %s: %w", e.Name(), err)
		}
		b.messages[strings.TrimSuffix(e.Name(), ".json")] = msgs
	}

	// Matcher order follows SupportedLanguages; the first entry is the fallback.
	tags := make([]language.Tag, 0, len(domain.SupportedLanguages))
	for _, code := range domain.SupportedLanguages {
		if _, ok := b.messages[code]; !ok {
			return nil, fmt.Errorf("missing locale file for %s", code)
		}
		tags = append(tags, language.Make(strings.ReplaceAll(code, "_", "-")))
		b.codes = append(b.codes, code)
	}
	b.matcher = language.NewMatcher(tags)
	return b, nil
}

// Text returns the message for key in lang, falling back to English and then
// to the key itself.
func (b *Bundle) Text(lang, key string) string {
	if msg, ok := b.messages[lang][key]; ok {
		return msg
	}
	if msg, ok := b.messages[domain.DefaultLanguage][key]; ok {
		return msg
	}
	return key
}

// Format returns Text with every {name} placeholder replaced by args[name].
// Placeholders without an argument are left as they are.
func (b *Bundle) Format(lang, key string, args map[string]any) string {
	msg := b.Text(lang, key)
	if len(args) == 0 {
		return msg
	}

	names := make([]string, 0, len(args))
	for name := range args {
		names = append(names, name)
	}
	sort.Strings(names)

	pairs := make([]string, 0, 2*len(names))
	for _, name := range names {
		pairs = append(pairs, "{"+name+"}", fmt.Sprint(args[name]))
	}
	return strings.NewReplacer(pairs...).Replace(msg)
}

// Match maps a BCP 47 tag or Discord locale ("en-US", "zh-TW", "zh_CN") to
// the closest supported language code.
func (b *Bundle) Match(tag string) string {
	t, err := language.Parse(strings.ReplaceAll(strings.TrimSpace(tag), "_", "-"))
	if err != nil {
		return domain.DefaultLanguage
	}
	_, idx, conf := b.matcher.Match(t)
	if conf == language.No {
		return domain.DefaultLanguage
	}
	return b.codes[idx]
}

// Keys returns the keys defined for lang in sorted order
func (b *Bundle) Keys(lang string) []string {
	keys := make([]string, 0, len(b.messages[lang]))
	for k := range b.messages[lang] {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Text looks key up in the embedded locales
func Text(lang, key string) string { return defaultBundle.Text(lang, key) }

// Format looks key up in the embedded locales and fills its placeholders
func Format(lang, key string, args map[string]any) string {
	return defaultBundle.Format(lang, key, args)
}

// Match maps a locale tag to a supported language code
func Match(tag string) string { return defaultBundle.Match(tag) }

// Supported returns the supported language codes
func Supported() []string {
	out := make([]string, len(domain.SupportedLanguages))
	copy(out, domain.SupportedLanguages)
	return out
}

// IsSupported reports whether code is a supported language
func IsSupported(code string) bool { return domain.IsSupportedLanguage(code) }

// DisplayName returns the language's own name for code, e.g. "简体中文"
func DisplayName(code string) string {
	switch code {
	case domain.LanguageEnglish:
		return "English"
	case domain.LanguageChineseSimplified:
		return "简体中文"
	case domain.LanguageChineseTraditional:
		return "繁體中文"
	}
	return code
}
