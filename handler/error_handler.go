package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sort"
	"strings"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/enroll/pkg/apiclient"
	"github.com/dmitrymomot/enroll/pkg/logger"
	"github.com/dmitrymomot/enroll/pkg/requestid"
	"github.com/dmitrymomot/enroll/pkg/validator"
)

type ErrorPageParams struct {
	Error      string
	StatusCode int
	RequestID  string
	RetryURL   string
}

type ErrorToastParams struct {
	Message   string
	Type      string // error, warning or info
	RequestID string
}

// ErrorHandlerConfig configures NewErrorHandler.
type ErrorHandlerConfig struct {
	// ErrorPage renders the page for regular requests. Without it the
	// message is written as plain text.
	ErrorPage func(ErrorPageParams) templ.Component

	// ErrorToast renders the toast patched in for datastar requests.
	ErrorToast func(ErrorToastParams) templ.Component

	// ToastTarget defaults to "#toast-container".
	ToastTarget string

	// ToastMode defaults to PatchAppend.
	ToastMode datastar.ElementPatchMode

	// Translate resolves HTTPError keys. Keys are shown as is without it.
	Translate func(ctx context.Context, key string) string
}

// ErrorInfo is what an error is shown and logged as.
type ErrorInfo struct {
	StatusCode int
	Message    string
	Type       string
	LogLevel   slog.Level
}

const DefaultToastTarget = "#toast-container"

func classifyError(ctx context.Context, err error, translate func(context.Context, string) string) ErrorInfo {
	info := ErrorInfo{
		StatusCode: ErrInternalServerError.Code,
		Message:    translate(ctx, ErrInternalServerError.Key),
	}

	var (
		httpErr HTTPError
		valErr  ValidationError
		apiErr  *apiclient.APIError
	)
	switch {
	case errors.As(err, &valErr):
		info.StatusCode = http.StatusBadRequest
		info.Message = joinMessages(valErr)
	case validator.IsValidationError(err):
		info.StatusCode = http.StatusBadRequest
		info.Message = joinMessages(ValidationErrorFrom(err))
	case errors.As(err, &apiErr):
		// upstream failures surface as a bad gateway, user errors keep
		// the API status and message
		info.StatusCode = apiErr.Status
		if apiErr.Status >= http.StatusInternalServerError {
			info.StatusCode = http.StatusBadGateway
		}
		info.Message = apiErr.Message
	case errors.Is(err, apiclient.ErrTimeout), errors.Is(err, apiclient.ErrRequestFailed):
		info.StatusCode = ErrServiceUnavailable.Code
		info.Message = translate(ctx, ErrServiceUnavailable.Key)
	case errors.As(err, &httpErr):
		info.StatusCode = httpErr.Code
		info.Message = translate(ctx, httpErr.Key)
	}

	switch {
	case info.StatusCode >= http.StatusInternalServerError:
		info.Type = "error"
		info.LogLevel = slog.LevelError
	case info.StatusCode >= http.StatusBadRequest:
		info.Type = "warning"
		info.LogLevel = slog.LevelWarn
	default:
		info.Type = "info"
		info.LogLevel = slog.LevelInfo
	}
	return info
}

func joinMessages(ve ValidationError) string {
	fields := make([]string, 0, len(ve))
	for field := range ve {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	var msgs []string
	for _, field := range fields {
		msgs = append(msgs, ve[field]...)
	}
	return strings.Join(msgs, " ")
}

// NewErrorHandler logs the error and shows it: a toast for datastar
// requests, an error page otherwise.
func NewErrorHandler(log *slog.Logger, cfg ErrorHandlerConfig) ErrorHandler[Context] {
	if log == nil {
		log = slog.Default()
	}
	log = log.With(logger.Component("error_handler"))
	if cfg.ToastTarget == "" {
		cfg.ToastTarget = DefaultToastTarget
	}
	if cfg.ToastMode == "" {
		cfg.ToastMode = PatchAppend
	}
	if cfg.Translate == nil {
		cfg.Translate = func(_ context.Context, key string) string { return key }
	}

	return func(ctx Context, err error) {
		r := ctx.Request()
		reqID := requestid.FromContext(r.Context())
		info := classifyError(r.Context(), err, cfg.Translate)

		log.LogAttrs(r.Context(), info.LogLevel, "request error",
			logger.Error(err),
			logger.Status(info.StatusCode),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Bool("datastar", IsDataStar(r)),
		)

		if IsDataStar(r) {
			if cfg.ErrorToast == nil {
				return
			}
			toast := cfg.ErrorToast(ErrorToastParams{Message: info.Message, Type: info.Type, RequestID: reqID})
			resp := Templ(toast, WithTarget(cfg.ToastTarget), WithPatchMode(cfg.ToastMode))
			if rerr := resp.Render(ctx.ResponseWriter(), r); rerr != nil {
				log.ErrorContext(r.Context(), "failed to render error toast", logger.Error(rerr))
			}
			return
		}

		if cfg.ErrorPage == nil {
			http.Error(ctx.ResponseWriter(), info.Message, info.StatusCode)
			return
		}
		page := cfg.ErrorPage(ErrorPageParams{
			Error:      info.Message,
			StatusCode: info.StatusCode,
			RequestID:  reqID,
			RetryURL:   r.URL.Path,
		})
		if rerr := TemplStatus(info.StatusCode, page).Render(ctx.ResponseWriter(), r); rerr != nil {
			log.ErrorContext(r.Context(), "failed to render error page", logger.Error(rerr))
		}
	}
}
