package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cmmoran/cstgen/pkg/printer"
)

// config is the merged view of config files, environment and flags.
type config struct {
	Print    printer.Options `mapstructure:"print"`
	Snapshot snapshotConfig  `mapstructure:"snapshot"`
	Diff     manifestConfig  `mapstructure:"diff"`
	List     manifestConfig  `mapstructure:"list"`
}

type snapshotConfig struct {
	printer.Options `mapstructure:",squash"`
	Manifest        string `mapstructure:"manifest"`
	Name            string `mapstructure:"name"`
	Version         string `mapstructure:"version"`
}

type manifestConfig struct {
	Manifest string `mapstructure:"manifest"`
}

func loadConfig() (*config, error) {
	c := &config{}
	if err := viper.Unmarshal(c); err != nil {
		return nil, err
	}
	return c, nil
}

// printFlags maps flag names to the Options keys they set.
var printFlags = map[string]string{
	"input":            "in_file",
	"output-directory": "out_dir",
	"output-file":      "out_file",
	"format":           "format",
	"indent":           "indent",
	"max-inline-width": "max_inline_width",
	"source-type":      "source_type",
	"verify":           "verify",
}

// addPrintFlags declares the printing flags on c and binds them below key.
func addPrintFlags(c *cobra.Command, key string) {
	d := printer.NewOptions()
	f := c.Flags()
	f.StringP("input", "i", "", "ESTree JSON document to print, - for stdin")
	f.StringP("output-directory", "o", d.OutDir, "directory to write output")
	f.StringP("output-file", "f", d.OutFile, "output file, stdout when empty")
	f.String("format", d.Format, "output format: text, json or yaml")
	f.String("indent", d.Indent, "one indentation level")
	f.Int("max-inline-width", d.MaxInlineWidth, "widest list kept on one line")
	f.String("source-type", d.SourceType, "sourceType of a bare statement array: module or script")
	f.Bool("verify", false, "re-parse the printed text and fail when it is not valid JavaScript")
	bindFlags(c, key, printFlags)
}

func bindFlags(c *cobra.Command, key string, names map[string]string) {
	for flag, field := range names {
		if err := viper.BindPFlag(key+"."+field, c.Flags().Lookup(flag)); err != nil {
			panic(err)
		}
	}
}
