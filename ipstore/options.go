package ipstore

import (
	"go.uber.org/zap"

	"github.com/aglyzov/go-ipstore/addrkey"
)

// Option configures a Store.
type Option func(*options)

type options struct {
	parser     addrkey.Parser
	logger     *zap.Logger
	compressed bool
}

func defaultOptions() options {
	return options{
		parser: addrkey.Strict,
		logger: zap.NewNop(),
	}
}

// WithParser replaces the address parser. A nil parser is ignored.
func WithParser(p addrkey.Parser) Option {
	return func(o *options) {
		if p != nil {
			o.parser = p
		}
	}
}

// WithLogger sets the logger for rejected addresses and bulk loads. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithCompression stores both families in crit-bit trees instead of plain bit tries.
// Node count then depends on the number of entries only, not on the key width.
func WithCompression() Option {
	return func(o *options) {
		o.compressed = true
	}
}
