package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(ttt *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "trace", want: LevelTrace},
		{in: "TRACE", want: LevelTrace},
		{in: "debug", want: slog.LevelDebug},
		{in: "warn", want: slog.LevelWarn},
		{in: "debug+1", want: slog.LevelDebug + 1},
		{in: "loud", wantErr: true},
	}
	for _, tt := range tests {
		ttt.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := parseLevel(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func quietCommand() *cobra.Command {
	c := &cobra.Command{Use: "test"}
	c.SetErr(io.Discard)
	return c
}

func TestInitConfig(ttt *testing.T) {
	savedFiles, savedLevel := configFiles, level
	ttt.Cleanup(func() { configFiles, level = savedFiles, savedLevel })

	dir := ttt.TempDir()
	base := filepath.Join(dir, "cstgen.yaml")
	override := filepath.Join(dir, "override.yaml")
	require.NoError(ttt, os.WriteFile(base, []byte("print:\n  max_inline_width: 80\n  source_type: script\n"), 0o644))
	require.NoError(ttt, os.WriteFile(override, []byte("print:\n  max_inline_width: 90\n"), 0o644))
	empty := filepath.Join(dir, "empty.yaml")
	require.NoError(ttt, os.WriteFile(empty, []byte("{}\n"), 0o644))
	ttt.Cleanup(func() {
		configFiles, level = []string{empty}, "info"
		require.NoError(ttt, initConfig(quietCommand()))
	})

	ttt.Run("files and environment", func(t *testing.T) {
		t.Setenv("CSTGEN_PRINT_FORMAT", "yaml")
		configFiles, level = []string{base, override}, "info"
		require.NoError(t, initConfig(quietCommand()))

		cfg, err := loadConfig()
		require.NoError(t, err)
		require.Equal(t, 90, cfg.Print.MaxInlineWidth)
		require.Equal(t, "script", cfg.Print.SourceType)
		require.Equal(t, "yaml", cfg.Print.Format)
	})

	ttt.Run("missing merge file", func(t *testing.T) {
		configFiles, level = []string{base, filepath.Join(dir, "missing.yaml")}, "info"
		require.ErrorIs(t, initConfig(quietCommand()), os.ErrNotExist)
	})

	ttt.Run("configured level", func(t *testing.T) {
		levels := filepath.Join(dir, "levels.yaml")
		require.NoError(t, os.WriteFile(levels, []byte("common:\n  log:\n    level: warn\n"), 0o644))
		configFiles, level = []string{levels}, "info"
		require.NoError(t, initConfig(quietCommand()))
		require.False(t, slog.Default().Enabled(context.Background(), slog.LevelInfo))
		require.True(t, slog.Default().Enabled(context.Background(), slog.LevelWarn))

		require.NoError(t, os.WriteFile(levels, []byte("common:\n  log:\n    level: loud\n"), 0o644))
		require.Error(t, initConfig(quietCommand()))
	})

	ttt.Run("invalid level", func(t *testing.T) {
		configFiles, level = nil, "loud"
		require.Error(t, initConfig(quietCommand()))
	})
}
