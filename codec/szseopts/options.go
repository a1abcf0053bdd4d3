// Package szseopts provides functional options for dispatch.Dispatcher,
// following the teacher's internal/options convention (one exported
// Option type, constructed by With* functions, applied by the consumer
// against its own unexported config struct).
package szseopts

import "github.com/yzcpleo/szse-v5-parser/codec"

// Config holds the knobs dispatch.Dispatcher accepts. Consumers build it
// with Apply from a list of Options and then read its fields.
type Config struct {
	Strict bool
	Dedup  *codec.DedupFilter
}

// Option mutates a Config.
type Option func(*Config)

// WithStrict controls how dispatch.Decode treats a frame whose MsgType
// matches no known message variant (spec section 4.7): strict mode
// turns it into errs.ErrUnknownMsgType instead of the default
// dispatch.Unknown{} catch-all value.
func WithStrict(strict bool) Option {
	return func(c *Config) { c.Strict = strict }
}

// WithDedupFilter attaches a codec.DedupFilter that dispatch.Decode
// consults for every decoded message carrying a ChannelNo/ApplSeqNum
// pair (order and transaction snapshot records), rejecting a repeat
// with errs.ErrDuplicateFrame instead of reprocessing it. Intended for
// replaying a ReTransmit resend batch against an already-live channel.
func WithDedupFilter(f *codec.DedupFilter) Option {
	return func(c *Config) { c.Dedup = f }
}

// Apply runs every opt against a zero-value Config and returns it.
func Apply(opts ...Option) Config {
	var c Config
	for _, opt := range opts {
		opt(&c)
	}

	return c
}
