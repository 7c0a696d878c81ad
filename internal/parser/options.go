package parser

import (
	"fmt"
	"strings"
)

const DefaultMaxDepth = 1000

// Options control decoding.
//
// SourceType – sourceType of the Program synthesized for a top-level statement array
// MaxDepth   – deepest node nesting accepted; deeper documents are rejected as malformed
type Options struct {
	SourceType string `json:"source_type,omitempty" yaml:"source_type,omitempty" toml:"source_type,omitempty" mapstructure:"source_type,omitempty"`
	MaxDepth   int    `json:"max_depth,omitempty" yaml:"max_depth,omitempty" toml:"max_depth,omitempty" mapstructure:"max_depth,omitempty"`
}

func NewOptions() *Options {
	return &Options{
		SourceType: "module",
		MaxDepth:   DefaultMaxDepth,
	}
}

func (o *Options) Normalize() error {
	o.SourceType = strings.ToLower(strings.TrimSpace(o.SourceType))
	switch o.SourceType {
	case "":
		o.SourceType = "module"
	case "module", "script":
	default:
		return fmt.Errorf("invalid source type %q", o.SourceType)
	}
	if o.MaxDepth <= 0 {
		o.MaxDepth = DefaultMaxDepth
	}
	return nil
}

// functional option pattern ---------------------------------------------------

type Option func(*Options)

func WithSourceType(t string) Option { return func(o *Options) { o.SourceType = t } }
func WithMaxDepth(n int) Option      { return func(o *Options) { o.MaxDepth = n } }
