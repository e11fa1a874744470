package locales_test

import (
	"maps"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/enroll/handler"
	"github.com/dmitrymomot/enroll/pkg/i18n"
	"github.com/dmitrymomot/enroll/web/locales"
)

func load(t *testing.T, file, lang string) map[string]string {
	t.Helper()
	data, err := locales.FS.ReadFile(file)
	require.NoError(t, err)
	parsed, err := i18n.NewYAMLParser().Parse(data)
	require.NoError(t, err)
	require.Contains(t, parsed, lang)
	return parsed[lang]
}

func TestLocales_SameKeys(t *testing.T) {
	t.Parallel()

	ko := load(t, "ko.yaml", "ko")
	en := load(t, "en.yaml", "en")

	koKeys := slices.Sorted(maps.Keys(ko))
	enKeys := slices.Sorted(maps.Keys(en))
	assert.Equal(t, koKeys, enKeys)
}

func TestLocales_ErrorKeys(t *testing.T) {
	t.Parallel()

	ko := load(t, "ko.yaml", "ko")
	for _, e := range []handler.HTTPError{
		handler.ErrNotDataStar,
		handler.ErrBadRequest,
		handler.ErrUnauthorized,
		handler.ErrForbidden,
		handler.ErrNotFound,
		handler.ErrMethodNotAllowed,
		handler.ErrConflict,
		handler.ErrUnprocessableEntity,
		handler.ErrInternalServerError,
		handler.ErrBadGateway,
		handler.ErrServiceUnavailable,
	} {
		assert.NotEmpty(t, ko[e.Key], e.Key)
	}
}
