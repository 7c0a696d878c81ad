package printer

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/cmmoran/cstgen/internal/printer"
)

// Options control loading, printing and output.
//
// InFile         – ESTree JSON document to print
// OutDir         – output directory
// OutFile        – output filename; empty writes to stdout
// Format         – text, json or yaml
// Indent         – one indentation level
// MaxInlineWidth – widest list or declarator group kept on one line
// SourceType     – sourceType of the Program synthesized for a bare statement array
// Verify         – re-parse printed text and fail when it is not valid JavaScript
type Options struct {
	InFile         string `json:"in_file,omitempty" yaml:"in_file,omitempty" toml:"in_file,omitempty" mapstructure:"in_file,omitempty"`
	OutDir         string `json:"out_dir,omitempty" yaml:"out_dir,omitempty" toml:"out_dir,omitempty" mapstructure:"out_dir,omitempty"`
	OutFile        string `json:"out_file,omitempty" yaml:"out_file,omitempty" toml:"out_file,omitempty" mapstructure:"out_file,omitempty"`
	Format         string `json:"format,omitempty" yaml:"format,omitempty" toml:"format,omitempty" mapstructure:"format,omitempty"`
	Indent         string `json:"indent,omitempty" yaml:"indent,omitempty" toml:"indent,omitempty" mapstructure:"indent,omitempty"`
	MaxInlineWidth int    `json:"max_inline_width,omitempty" yaml:"max_inline_width,omitempty" toml:"max_inline_width,omitempty" mapstructure:"max_inline_width,omitempty"`
	SourceType     string `json:"source_type,omitempty" yaml:"source_type,omitempty" toml:"source_type,omitempty" mapstructure:"source_type,omitempty"`
	Verify         bool   `json:"verify,omitempty" yaml:"verify,omitempty" toml:"verify,omitempty" mapstructure:"verify,omitempty"`

	// Regex renders regular expression literals; nil uses the built-in renderer.
	Regex printer.RegexRenderer `json:"-" yaml:"-" toml:"-" mapstructure:"-"`
}

func NewOptions() *Options {
	return &Options{
		InFile:         "",
		OutDir:         ".",
		OutFile:        "",
		Format:         FormatText,
		Indent:         DefaultIndent,
		MaxInlineWidth: DefaultMaxInlineWidth,
		SourceType:     "module",
	}
}

const (
	DefaultIndent         = printer.DefaultIndent
	DefaultMaxInlineWidth = printer.DefaultMaxInlineWidth
)

const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

func (o *Options) Normalize() error {
	o.Format = strings.ToLower(strings.TrimSpace(o.Format))
	switch o.Format {
	case "":
		o.Format = FormatText
	case FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("unknown format %q", o.Format)
	}
	if o.Indent == "" {
		o.Indent = DefaultIndent
	}
	if strings.Trim(o.Indent, " \t") != "" {
		return fmt.Errorf("indent %q must be spaces or tabs", o.Indent)
	}
	if o.MaxInlineWidth <= 0 {
		o.MaxInlineWidth = DefaultMaxInlineWidth
	}
	if o.SourceType == "" {
		o.SourceType = "module"
	}
	if len(o.OutDir) == 0 {
		o.OutDir = "."
	}
	if strings.Contains(o.OutDir, ".") {
		o.OutDir, _ = filepath.Abs(o.OutDir)
	}
	return nil
}

// OutPath is where printed output is written, or "" for stdout.
func (o *Options) OutPath() string {
	if o.OutFile == "" {
		return ""
	}
	if filepath.IsAbs(o.OutFile) {
		return filepath.Clean(o.OutFile)
	}
	return filepath.Clean(filepath.Join(o.OutDir, o.OutFile))
}

func (o *Options) config() printer.Config {
	return printer.Config{
		Indent:         o.Indent,
		MaxInlineWidth: o.MaxInlineWidth,
		Regex:          o.Regex,
	}
}

// functional option pattern ---------------------------------------------------

type Option func(*Options)

func WithInFile(f string) Option       { return func(o *Options) { o.InFile = f } }
func WithOutDir(d string) Option       { return func(o *Options) { o.OutDir = d } }
func WithOutFile(f string) Option      { return func(o *Options) { o.OutFile = f } }
func WithFormat(f string) Option       { return func(o *Options) { o.Format = f } }
func WithIndent(s string) Option       { return func(o *Options) { o.Indent = s } }
func WithMaxInlineWidth(n int) Option  { return func(o *Options) { o.MaxInlineWidth = n } }
func WithSourceType(t string) Option   { return func(o *Options) { o.SourceType = t } }
func WithVerify() Option               { return func(o *Options) { o.Verify = true } }
func WithRegex(r RegexRenderer) Option { return func(o *Options) { o.Regex = r } }
