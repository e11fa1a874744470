package handler

import (
	"encoding/json"
	"net/http"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"
)

// Stream writes element and signal patches to one datastar response.
type Stream struct {
	sse *datastar.ServerSentEventGenerator
}

// Patch sends component as an element patch.
func (s *Stream) Patch(component templ.Component, opts ...TemplOption) error {
	return s.sse.PatchElementTempl(component, opts...)
}

// Signal updates a single client signal.
func (s *Stream) Signal(name string, value any) error {
	return s.Signals(map[string]any{name: value})
}

// Signals updates several client signals at once.
func (s *Stream) Signals(signals map[string]any) error {
	data, err := json.Marshal(signals)
	if err != nil {
		return err
	}
	return s.sse.PatchSignals(data)
}

// Redirect navigates the client away once the stream ends.
func (s *Stream) Redirect(url string) error {
	return s.sse.Redirect(url)
}

type streamResponse struct {
	fn func(*Stream) error
}

func (sr streamResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if !IsDataStar(r) {
		return ErrNotDataStar
	}
	return sr.fn(&Stream{sse: datastar.NewSSE(w, r)})
}

// SSE answers a datastar request with whatever fn writes to the stream.
// Regular requests fail with ErrNotDataStar.
//
//	return handler.SSE(func(s *handler.Stream) error {
//		if err := s.Patch(views.FieldError("phone", msg)); err != nil {
//			return err
//		}
//		return s.Signal("phone", formatted)
//	})
func SSE(fn func(*Stream) error) Response {
	return streamResponse{fn: fn}
}
