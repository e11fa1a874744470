// Package views renders the pages of the web client as templ components.
// Modules receive them through their Views structs, so nothing outside
// cmd/web imports this package.
package views

import (
	"context"

	"github.com/dmitrymomot/enroll/pkg/i18n"
)

// Element ids shared by the layout and the handlers.
const (
	ToastContainerID = "toast-container"
	ModalID          = "modal"
)

// DatastarScript is the client bundle loaded by every page.
const DatastarScript = "https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0/bundles/datastar.js"

type Views struct {
	t *i18n.Translator
}

// New returns views translated by t. A nil translator renders keys.
func New(t *i18n.Translator) *Views {
	return &Views{t: t}
}

func (v *Views) tr(ctx context.Context, key string, args ...string) string {
	if v.t == nil {
		return key
	}
	return v.t.Tc(ctx, key, args...)
}

func (v *Views) lang(ctx context.Context) string {
	fallback := "ko"
	if v.t != nil {
		fallback = v.t.DefaultLanguage()
	}
	return i18n.LanguageFromContext(ctx, fallback)
}
