package handler

import (
	"net/http"
	"net/url"

	"github.com/starfederation/datastar-go/datastar"
)

type redirectResponse struct {
	url      string
	code     int
	fallback bool
}

func (rr redirectResponse) Render(w http.ResponseWriter, r *http.Request) error {
	target := rr.url
	if rr.fallback {
		if ref := r.Header.Get("Referer"); ref != "" && sameHost(ref, r) {
			target = ref
		}
	}

	if IsDataStar(r) {
		return datastar.NewSSE(w, r).Redirect(target)
	}
	http.Redirect(w, r, target, rr.code)
	return nil
}

// Redirect answers 303 See Other, or tells the datastar client to navigate.
func Redirect(url string) Response {
	return redirectResponse{url: url, code: http.StatusSeeOther}
}

// RedirectBack redirects to the same-host referrer, or to fallback.
func RedirectBack(fallback string) Response {
	return redirectResponse{url: fallback, code: http.StatusSeeOther, fallback: true}
}

func sameHost(raw string, r *http.Request) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return u.Host == "" || u.Host == r.Host
}
