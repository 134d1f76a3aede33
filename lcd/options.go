package lcd

import (
	"github.com/bnema/gamepanel/internal/logger"
	"github.com/bnema/gamepanel/sys"
	"github.com/charmbracelet/log"
)

// Option configures Connect.
type Option func(*options)

type options struct {
	registry *Registry
	opener   func() (*sys.Handle, error)
	load     sys.LoadOptions
	logger   *log.Logger
}

// WithRegistry uses r instead of DefaultRegistry.
func WithRegistry(r *Registry) Option {
	return func(o *options) { o.registry = r }
}

// WithOpener replaces library loading. The returned handle is owned by the
// Session and closed with it.
func WithOpener(fn func() (*sys.Handle, error)) Option {
	return func(o *options) { o.opener = fn }
}

// WithLoadOptions passes o to sys.Load.
func WithLoadOptions(lo sys.LoadOptions) Option {
	return func(o *options) { o.load = lo }
}

// WithLogger sets the logger used by the session and the loader.
func WithLogger(l *log.Logger) Option {
	return func(o *options) { o.logger = l }
}

func newOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.registry == nil {
		o.registry = DefaultRegistry
	}
	if o.logger == nil {
		o.logger = logger.Logger
	}
	if o.opener == nil {
		lo := o.load
		if lo.Logger == nil {
			lo.Logger = o.logger
		}
		o.opener = func() (*sys.Handle, error) { return sys.Load(lo) }
	}
	return o
}
