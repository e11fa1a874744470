package i18n

import (
	"context"
	"log/slog"
	"regexp"
	"slices"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultLanguage is used when a request carries no usable preference.
const DefaultLanguage = "ko"

// Translator resolves keys to texts for the supported languages.
// It is immutable after construction and safe for concurrent use.
type Translator struct {
	translations  map[string]map[string]string
	defaultLang   string
	fallbackToKey bool
	logMissing    bool
	logger        *slog.Logger
	langs         []string
	matcher       language.Matcher
}

// Option configures a Translator.
type Option func(*Translator)

func WithDefaultLanguage(lang string) Option {
	return func(t *Translator) {
		if lang != "" {
			t.defaultLang = lang
		}
	}
}

// WithFallbackToKey controls whether missing keys render as the key itself
// (default) or as an empty string.
func WithFallbackToKey(fallback bool) Option {
	return func(t *Translator) {
		t.fallbackToKey = fallback
	}
}

// WithLogger logs missing translations at warn level.
func WithLogger(l *slog.Logger) Option {
	return func(t *Translator) {
		if l != nil {
			t.logger = l
			t.logMissing = true
		}
	}
}

// NewTranslator loads translations through adapter. The default language
// must be among the loaded ones.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, opts ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(t)
	}

	translations, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}
	if _, ok := translations[t.defaultLang]; !ok {
		return nil, &ErrLanguageNotSupported{Lang: t.defaultLang}
	}
	t.translations = translations

	// the default language goes first so the matcher falls back to it
	t.langs = []string{t.defaultLang}
	for lang := range translations {
		if lang != t.defaultLang {
			t.langs = append(t.langs, lang)
		}
	}
	slices.Sort(t.langs[1:])

	tags := make([]language.Tag, 0, len(t.langs))
	for _, l := range t.langs {
		tags = append(tags, language.Make(l))
	}
	t.matcher = language.NewMatcher(tags)

	return t, nil
}

// ErrLanguageNotSupported reports a language without translations.
type ErrLanguageNotSupported struct {
	Lang string
}

func (e *ErrLanguageNotSupported) Error() string {
	return "i18n: language not supported: " + e.Lang
}

// SupportedLanguages returns the loaded languages, default first.
func (t *Translator) SupportedLanguages() []string {
	return slices.Clone(t.langs)
}

func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// Match picks the best supported language for the given preferences, which
// may be Accept-Language headers or plain tags.
func (t *Translator) Match(prefs ...string) string {
	var tags []language.Tag
	for _, p := range prefs {
		parsed, _, err := language.ParseAcceptLanguage(p)
		if err != nil {
			continue
		}
		tags = append(tags, parsed...)
	}
	if len(tags) == 0 {
		return t.defaultLang
	}
	_, idx, conf := t.matcher.Match(tags...)
	if conf == language.No {
		return t.defaultLang
	}
	return t.langs[idx]
}

// Supported returns the loaded language with the same base language as
// pref, e.g. "ko" for "ko-KR".
func (t *Translator) Supported(pref string) (string, bool) {
	tag, err := language.Parse(pref)
	if err != nil {
		return "", false
	}
	base, _ := tag.Base()
	for _, l := range t.langs {
		if lb, _ := language.Make(l).Base(); lb == base {
			return l, true
		}
	}
	return "", false
}

func (t *Translator) HasTranslation(lang, key string) bool {
	_, ok := t.translations[lang][key]
	return ok
}

// T translates key into lang, substituting %{name} placeholders from args
// given as name, value pairs. Missing keys fall back to the default
// language, then to the key.
//
//	t.T("ko", "enroll.partial", "success", "2", "failed", "1")
func (t *Translator) T(lang, key string, args ...string) string {
	text, ok := t.lookup(lang, key)
	if !ok {
		return ""
	}
	return substitute(text, args)
}

// N picks key.zero, key.one or key.other by n and exposes n as %{count}.
func (t *Translator) N(lang, key string, n int, args ...string) string {
	suffix := ".other"
	switch n {
	case 0:
		if t.HasTranslation(lang, key+".zero") || t.HasTranslation(t.defaultLang, key+".zero") {
			suffix = ".zero"
		}
	case 1:
		if t.HasTranslation(lang, key+".one") || t.HasTranslation(t.defaultLang, key+".one") {
			suffix = ".one"
		}
	}
	return t.T(lang, key+suffix, append([]string{"count", Number(lang, n)}, args...)...)
}

// Tc is T with the language taken from ctx.
func (t *Translator) Tc(ctx context.Context, key string, args ...string) string {
	return t.T(LanguageFromContext(ctx, t.defaultLang), key, args...)
}

// Nc is N with the language taken from ctx.
func (t *Translator) Nc(ctx context.Context, key string, n int, args ...string) string {
	return t.N(LanguageFromContext(ctx, t.defaultLang), key, n, args...)
}

func (t *Translator) lookup(lang, key string) (string, bool) {
	if text, ok := t.translations[lang][key]; ok {
		return text, true
	}
	if text, ok := t.translations[t.defaultLang][key]; ok {
		if lang != t.defaultLang && t.logMissing {
			t.logger.Warn("translation missing, using default language",
				slog.String("lang", lang), slog.String("key", key))
		}
		return text, true
	}
	if t.logMissing {
		t.logger.Warn("translation missing", slog.String("lang", lang), slog.String("key", key))
	}
	if t.fallbackToKey {
		return key, true
	}
	return "", false
}

var placeholder = regexp.MustCompile(`%\{([^}]+)\}`)

func substitute(tmpl string, args []string) string {
	if len(args) < 2 {
		return tmpl
	}
	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}
	return placeholder.ReplaceAllStringFunc(tmpl, func(m string) string {
		if v, ok := params[m[2:len(m)-1]]; ok {
			return v
		}
		return m
	})
}

// Number formats n with the grouping rules of lang.
func Number(lang string, n int) string {
	tag, err := language.Parse(lang)
	if err != nil {
		return strconv.Itoa(n)
	}
	return message.NewPrinter(tag).Sprintf("%d", n)
}
