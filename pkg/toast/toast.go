package toast

import (
	"errors"
	"fmt"
	"strconv"
	"sync/atomic"
	"time"
)

// Kind selects the toast style.
type Kind string

const (
	Success Kind = "success"
	Error   Kind = "error"
	Warning Kind = "warning"
	Info    Kind = "info"
)

// DefaultDuration is how long a toast stays visible.
const DefaultDuration = 3 * time.Second

// SessionKey is where pending toasts live in the session.
const SessionKey = "toasts"

// MaxPending caps queued toasts; the oldest are dropped first.
const MaxPending = 10

var ErrEmptyMessage = errors.New("toast: empty message")

// Toast is one notification waiting to be shown.
type Toast struct {
	ID       string        `json:"id"`
	Kind     Kind          `json:"kind"`
	Message  string        `json:"message"`
	Duration time.Duration `json:"duration"`
}

var seq atomic.Uint64

// New creates a toast with a process-unique id.
func New(kind Kind, message string) (Toast, error) {
	if message == "" {
		return Toast{}, ErrEmptyMessage
	}
	switch kind {
	case Success, Error, Warning, Info:
	default:
		return Toast{}, fmt.Errorf("toast: unknown kind %q", kind)
	}
	return Toast{
		ID:       "toast-" + strconv.FormatUint(seq.Add(1), 36),
		Kind:     kind,
		Message:  message,
		Duration: DefaultDuration,
	}, nil
}
