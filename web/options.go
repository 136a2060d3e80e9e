// SPDX-License-Identifier: MIT

// Package web: functional configuration for Web construction.
// Options only record values; New/NewFunc validate them so that a bad
// option surfaces as ErrInvalidArgument instead of a panic.

package web

import (
	"fmt"

	"go.uber.org/zap"
)

// DefaultMaxPerLevel is the level capacity used when WithMaxPerLevel is not given.
const DefaultMaxPerLevel = 6

// Option configures a Web before creation.
type Option func(*options)

type options struct {
	maxPerLevel int
	logger      *zap.Logger
}

// WithMaxPerLevel sets how many nodes a single level may hold.
// The value is fixed for the lifetime of the Web; n must be positive.
func WithMaxPerLevel(n int) Option {
	return func(o *options) { o.maxPerLevel = n }
}

// WithLogger attaches a logger receiving Debug events on structural changes
// (level added, level dropped, clear). Defaults to a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.logger = l }
}

// gatherOptions applies opts over the defaults and validates the result.
func gatherOptions(opts []Option) (options, error) {
	o := options{
		maxPerLevel: DefaultMaxPerLevel,
		logger:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.maxPerLevel <= 0 {
		return o, fmt.Errorf("%w: max per level must be positive, got %d", ErrInvalidArgument, o.maxPerLevel)
	}
	if o.logger == nil {
		return o, fmt.Errorf("%w: nil logger", ErrInvalidArgument)
	}

	return o, nil
}
