package i18n_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/enroll/pkg/i18n"
)

func newTranslator(t *testing.T, opts ...i18n.Option) *i18n.Translator {
	t.Helper()
	tr, err := i18n.NewTranslator(context.Background(), i18n.NewFSAdapter(nil, os.DirFS("testdata"), "."), opts...)
	require.NoError(t, err)
	return tr
}

func TestNewTranslator(t *testing.T) {
	tr := newTranslator(t)
	assert.Equal(t, []string{"ko", "en"}, tr.SupportedLanguages())
	assert.Equal(t, "ko", tr.DefaultLanguage())

	_, err := i18n.NewTranslator(context.Background(), nil)
	assert.ErrorIs(t, err, i18n.ErrNilAdapter)

	_, err = i18n.NewTranslator(context.Background(), &i18n.MapAdapter{
		Translations: map[string]map[string]string{"en": {"a": "b"}},
	})
	var unsupported *i18n.ErrLanguageNotSupported
	assert.ErrorAs(t, err, &unsupported)
}

func TestTranslator_T(t *testing.T) {
	tr := newTranslator(t)

	tests := []struct {
		name string
		lang string
		key  string
		args []string
		want string
	}{
		{"nested key", "ko", "course.sort.recent", nil, "최근 등록순"},
		{"placeholder", "en", "greeting", []string{"name", "Kim"}, "Hello, Kim"},
		{"missing in en falls back to ko", "en", "course.sort.recent", nil, "최근 등록순"},
		{"unknown language uses default", "fr", "greeting", []string{"name", "홍"}, "안녕하세요, 홍님"},
		{"missing key", "ko", "nope", nil, "nope"},
		{"unknown placeholder kept", "en", "greeting", []string{"other", "x"}, "Hello, %{name}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tr.T(tt.lang, tt.key, tt.args...))
		})
	}

	strict := newTranslator(t, i18n.WithFallbackToKey(false))
	assert.Empty(t, strict.T("ko", "nope"))
}

func TestTranslator_N(t *testing.T) {
	tr := newTranslator(t)

	assert.Equal(t, "No items", tr.N("en", "items", 0))
	assert.Equal(t, "1 item", tr.N("en", "items", 1))
	assert.Equal(t, "1,200 items", tr.N("en", "items", 1200))
	assert.Equal(t, "항목 없음", tr.N("ko", "items", 0))
	assert.Equal(t, "1개 항목", tr.N("ko", "items", 1))

	ctx := i18n.WithLanguage(context.Background(), "en")
	assert.Equal(t, "3 items", tr.Nc(ctx, "items", 3))
	assert.Equal(t, "Hello, A", tr.Tc(ctx, "greeting", "name", "A"))
	assert.Equal(t, "안녕하세요, A님", tr.Tc(context.Background(), "greeting", "name", "A"))
}

func TestTranslator_Match(t *testing.T) {
	tr := newTranslator(t)

	assert.Equal(t, "en", tr.Match("en-US,en;q=0.9"))
	assert.Equal(t, "ko", tr.Match("ko-KR"))
	assert.Equal(t, "ko", tr.Match("fr-FR"))
	assert.Equal(t, "ko", tr.Match(""))
	assert.Equal(t, "en", tr.Match("de;q=0.9,en;q=0.8"))

	lang, ok := tr.Supported("en-GB")
	assert.True(t, ok)
	assert.Equal(t, "en", lang)
	_, ok = tr.Supported("ja")
	assert.False(t, ok)
}

func TestMiddleware(t *testing.T) {
	tr := newTranslator(t)

	var got string
	h := i18n.Middleware(tr)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = i18n.LanguageFromContext(r.Context(), "")
	}))

	t.Run("accept-language", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Accept-Language", "en-US")
		h.ServeHTTP(httptest.NewRecorder(), r)
		assert.Equal(t, "en", got)
	})

	t.Run("query sets cookie", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/?lang=en", nil)
		r.Header.Set("Accept-Language", "ko")
		w := httptest.NewRecorder()
		h.ServeHTTP(w, r)
		assert.Equal(t, "en", got)

		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, "en", cookies[0].Value)
	})

	t.Run("cookie beats header", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Accept-Language", "ko")
		r.AddCookie(&http.Cookie{Name: i18n.LangCookie, Value: "en"})
		h.ServeHTTP(httptest.NewRecorder(), r)
		assert.Equal(t, "en", got)
	})

	t.Run("unsupported query ignored", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/?lang=ja", nil)
		w := httptest.NewRecorder()
		h.ServeHTTP(w, r)
		assert.Equal(t, "ko", got)
		assert.Empty(t, w.Result().Cookies())
	})
}

func TestYAMLParser(t *testing.T) {
	p := i18n.NewYAMLParser()
	assert.True(t, p.SupportsFileExtension(".yml"))
	assert.False(t, p.SupportsFileExtension("json"))

	_, err := p.Parse([]byte("ko: [1, 2]"))
	assert.ErrorIs(t, err, i18n.ErrInvalidStructure)

	_, err = p.Parse([]byte("ko: {a: [1]}"))
	assert.ErrorIs(t, err, i18n.ErrInvalidStructure)

	_, err = p.Parse([]byte("ko: [valid"))
	assert.ErrorIs(t, err, i18n.ErrFailedToParseYAML)

	out, err := p.Parse([]byte("ko:\n  a:\n    b: c\n  n: 3"))
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"a.b": "c", "n": "3"}, out["ko"])
}
