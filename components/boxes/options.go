package boxes

import (
	"net/http"

	"github.com/rs/zerolog"
)

const (
	DefaultRoutePath = "/storage/ajax/get-boxes/"
	DefaultParam     = "warehouse_id"
)

type GuardFunc func(r *http.Request) error

type Options struct {
	RoutePath string
	Param     string
	Guard     GuardFunc
	Labels    LabelFormat
	Logger    zerolog.Logger

	Store Store
}

type OptionFn func(*Options)

func DefaultOptions() Options {
	return Options{
		RoutePath: DefaultRoutePath,
		Param:     DefaultParam,
		Labels:    DefaultLabelFormat(),
		Logger:    zerolog.Nop(),
	}
}

func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	if opts.RoutePath == "" {
		opts.RoutePath = DefaultRoutePath
	}
	if opts.Param == "" {
		opts.Param = DefaultParam
	}
	opts.Labels = opts.Labels.withDefaults()
	return opts
}

func WithRoutePath(path string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.RoutePath = path
	}
}

func WithParam(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Param = name
	}
}

func WithGuard(guard GuardFunc) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Guard = guard
	}
}

func WithLabels(labels LabelFormat) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Labels = labels
	}
}

func WithLogger(logger zerolog.Logger) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Logger = logger
	}
}

func WithStore(store Store) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Store = store
	}
}
