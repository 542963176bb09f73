package flatten

import (
	"log/slog"

	"github.com/gogpu/collage"
	"github.com/gogpu/collage/text"
)

// Option configures a flattening pass.
type Option func(*options)

type options struct {
	transform   collage.Matrix
	measurer    collage.Measurer
	parallelism int
	logger      *slog.Logger
}

func defaultOptions() options {
	return options{
		transform:   collage.Identity(),
		parallelism: 1,
	}
}

func resolve(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.measurer == nil {
		o.measurer = text.Default()
	}
	if o.logger == nil {
		o.logger = collage.Logger()
	}
	return o
}

// WithTransform sets the root transform applied to every primitive, for
// example a device scale or a y-up flip.
func WithTransform(m collage.Matrix) Option {
	return func(o *options) {
		o.transform = m
	}
}

// WithMeasurer sets the text measurer used to place text. The default is
// text.Default().
func WithMeasurer(m collage.Measurer) Option {
	return func(o *options) {
		o.measurer = m
	}
}

// WithParallelism flattens up to n sibling subtrees concurrently. Values
// of 1 or less flatten sequentially. The result does not depend on n.
func WithParallelism(n int) Option {
	return func(o *options) {
		o.parallelism = max(n, 1)
	}
}

// WithLogger sets the logger for flattening diagnostics. The default is
// collage.Logger().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
