package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Environment names accepted by WithEnvironment.
const (
	EnvDevelopment = "development"
	EnvStaging     = "staging"
	EnvProduction  = "production"
)

type preset struct {
	env   string
	level slog.Level
	text  bool
}

// presets maps APP_ENV values, including the short aliases used in deploy
// manifests, to output defaults.
var presets = map[string]preset{
	EnvDevelopment: {env: EnvDevelopment, level: slog.LevelDebug, text: true},
	"dev":          {env: EnvDevelopment, level: slog.LevelDebug, text: true},
	EnvStaging:     {env: EnvStaging, level: slog.LevelInfo},
	"stage":        {env: EnvStaging, level: slog.LevelInfo},
	EnvProduction:  {env: EnvProduction, level: slog.LevelInfo},
	"prod":         {env: EnvProduction, level: slog.LevelInfo},
}

// Option configures New.
type Option func(*options)

type options struct {
	level      slog.Level
	text       bool
	output     io.Writer
	attrs      []slog.Attr
	extractors []ContextExtractor
}

func WithLevel(l slog.Level) Option {
	return func(o *options) { o.level = l }
}

func WithTextFormatter() Option {
	return func(o *options) { o.text = true }
}

func WithJSONFormatter() Option {
	return func(o *options) { o.text = false }
}

// WithOutput sets the destination. Nil writers are ignored.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.output = w
		}
	}
}

// WithAttr adds static attributes to every record.
func WithAttr(attrs ...slog.Attr) Option {
	return func(o *options) { o.attrs = append(o.attrs, attrs...) }
}

// WithContextExtractors registers functions that pull attributes from the
// record's context. Nil extractors are skipped.
func WithContextExtractors(extractors ...ContextExtractor) Option {
	return func(o *options) {
		for _, ex := range extractors {
			if ex != nil {
				o.extractors = append(o.extractors, ex)
			}
		}
	}
}

// WithEnvironment applies the preset for env (APP_ENV) and tags records
// with service and env. Unknown values get the development preset.
func WithEnvironment(env, service string) Option {
	return func(o *options) {
		p, ok := presets[strings.ToLower(strings.TrimSpace(env))]
		if !ok {
			p = presets[EnvDevelopment]
		}
		o.level = p.level
		o.text = p.text
		if service != "" {
			o.attrs = append(o.attrs, slog.String("service", service))
		}
		o.attrs = append(o.attrs, slog.String("env", p.env))
	}
}

func SetAsDefault(l *slog.Logger) {
	slog.SetDefault(l)
}

// New creates a slog.Logger writing JSON at info level to stdout unless
// options say otherwise.
func New(opts ...Option) *slog.Logger {
	o := &options{level: slog.LevelInfo, output: os.Stdout}
	for _, opt := range opts {
		opt(o)
	}

	handlerOpts := &slog.HandlerOptions{Level: o.level}

	var h slog.Handler
	if o.text {
		h = slog.NewTextHandler(o.output, handlerOpts)
	} else {
		h = slog.NewJSONHandler(o.output, handlerOpts)
	}
	if len(o.attrs) > 0 {
		h = h.WithAttrs(o.attrs)
	}
	if len(o.extractors) > 0 {
		h = &contextHandler{next: h, extractors: o.extractors}
	}

	return slog.New(h)
}
