package handler

import "net/http"

type emptyResponse struct {
	status int
}

func (e emptyResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if IsDataStar(r) {
		// an SSE stream without events leaves the page untouched
		NewSSE(w, r)
		return nil
	}
	w.WriteHeader(e.status)
	return nil
}

// Empty answers 204 No Content, or an empty event stream for datastar.
func Empty() Response {
	return emptyResponse{status: http.StatusNoContent}
}
