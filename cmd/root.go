package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// LevelTrace is below slog.LevelDebug.
const LevelTrace = slog.Level(-8)

var (
	configFiles []string
	level       string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:               "cstgen",
	Short:             "print ESTree ASTs as formatted source",
	Long:              "Print ESTree / typescript-estree JSON ASTs as concrete syntax trees and formatted source text",
	SilenceUsage:      true,
	PersistentPreRunE: func(c *cobra.Command, _ []string) error { return initConfig(c) },
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&level, "level", "l", "info", "log level (trace, debug, info, warn, error, debug+1, etc)")
	rootCmd.PersistentFlags().StringSliceVar(&configFiles, "config", []string{}, "config file(s) - multiple config files are merged with last specified file having highest priority")
}

func parseLevel(s string) (slog.Level, error) {
	if strings.EqualFold(s, "trace") {
		return LevelTrace, nil
	}
	var ll slog.Level
	if err := ll.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid log level %q", s)
	}
	return ll, nil
}

func newLogger(w io.Writer, ll slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: ll}))
}

// initConfig installs the logger and loads config files and CSTGEN_* environment variables for c. Logs
// go to c's stderr so they stay out of printed output.
func initConfig(c *cobra.Command) error {
	w := c.ErrOrStderr()
	ll, err := parseLevel(level)
	if err != nil {
		return err
	}
	l := newLogger(w, ll)
	slog.SetDefault(l)

	viper.SetEnvPrefix("cstgen")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if err = readConfig(l); err != nil {
		return err
	}

	// A configured level applies unless --level was given.
	if s := viper.GetString("common.log.level"); s != "" && !c.Flags().Changed("level") {
		if ll, err = parseLevel(s); err != nil {
			return fmt.Errorf("common.log.level: %w", err)
		}
		slog.SetDefault(newLogger(w, ll))
	}
	return nil
}

// readConfig reads the first --config file, or cstgen.yaml from the working directory or /etc/cstgen
// when none was given, and merges the remaining --config files over it.
func readConfig(l *slog.Logger) error {
	if len(configFiles) == 0 {
		viper.AddConfigPath(".")
		viper.AddConfigPath("/etc/cstgen")
		viper.SetConfigType("yaml")
		viper.SetConfigName("cstgen")
		if err := viper.ReadInConfig(); err != nil {
			l.With("error", err).Debug("no config file")
			return nil
		}
		l.With("config", viper.ConfigFileUsed()).Debug("using config file")
		return nil
	}

	viper.SetConfigFile(configFiles[0])
	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("read config %s: %w", configFiles[0], err)
	}
	l.With("config", viper.ConfigFileUsed()).Debug("using config file")
	for _, file := range configFiles[1:] {
		f, err := os.Open(file)
		if err != nil {
			return fmt.Errorf("read config: %w", err)
		}
		err = viper.MergeConfig(f)
		_ = f.Close()
		if err != nil {
			return fmt.Errorf("merge config %s: %w", file, err)
		}
		l.With("file", file).Debug("merged config file")
	}
	return nil
}
