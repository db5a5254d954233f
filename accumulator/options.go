package accumulator

import (
	"github.com/datatrails/go-datatrails-common/logger"
)

type Options struct {
	Log logger.Logger
}

// Option is a generic option type. Implementations type assert to their
// options record and ignore options that do not apply.
type Option func(any)

// WithLogger enables debug traces of the per level hashes computed by Insert.
func WithLogger(log logger.Logger) Option {
	return func(opts any) {
		if o, ok := opts.(*Options); ok {
			o.Log = log
		}
	}
}
