package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cmmoran/cstgen/pkg/action/snapshot"
)

func init() {
	rootCmd.AddCommand(NewSnapshotCommand(), NewDiffCommand())
}

func NewSnapshotCommand() *cobra.Command {
	var snapshotCmd = &cobra.Command{
		Use:   "snapshot",
		Short: "print and record a snapshot",
		Long:  "Print an ESTree JSON document into a versioned snapshot file and record it in the manifest",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			s := cfg.Snapshot
			out, err := snapshot.Generate(&s.Options, s.Manifest, s.Name, s.Version)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(c.OutOrStdout(), out)
			return err
		},
	}
	addPrintFlags(snapshotCmd, "snapshot")
	snapshotCmd.Flags().StringP("manifest", "m", "cstgen.manifest.yaml", "manifest recording the snapshots")
	snapshotCmd.Flags().StringP("name", "n", "", "snapshot name")
	snapshotCmd.Flags().StringP("version", "v", "", "snapshot version")
	bindFlags(snapshotCmd, "snapshot", map[string]string{"manifest": "manifest", "name": "name", "version": "version"})
	snapshotCmd.AddCommand(NewListCommand())

	return snapshotCmd
}

func NewDiffCommand() *cobra.Command {
	var diffCmd = &cobra.Command{
		Use:   "diff",
		Short: "diff the current snapshot with the previous one",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			diff, err := snapshot.DiffCurrentWithPrevious(cfg.Diff.Manifest)
			if errors.Is(err, snapshot.ErrNoPrevious) {
				_, err = fmt.Fprintln(c.OutOrStdout(), "nothing to compare:", err)
				return err
			}
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(c.OutOrStdout(), diff)
			return err
		},
	}
	diffCmd.Flags().StringP("manifest", "m", "cstgen.manifest.yaml", "manifest recording the snapshots")
	bindFlags(diffCmd, "diff", map[string]string{"manifest": "manifest"})

	return diffCmd
}

func NewListCommand() *cobra.Command {
	var listCmd = &cobra.Command{
		Use:   "list",
		Short: "list the recorded snapshots",
		Long:  "List the snapshots recorded in the manifest, marking the current (*) and previous (-) versions",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			m, err := snapshot.List(cfg.List.Manifest)
			if err != nil {
				return err
			}
			for _, s := range m.Snapshots {
				mark := " "
				switch s.Version {
				case m.CurrentVersion:
					mark = "*"
				case m.PreviousVersion:
					mark = "-"
				}
				if _, err = fmt.Fprintf(c.OutOrStdout(), "%s %s %s %s\n", mark, s.Name, s.Version, s.File); err != nil {
					return err
				}
			}
			return nil
		},
	}
	listCmd.Flags().StringP("manifest", "m", "cstgen.manifest.yaml", "manifest recording the snapshots")
	bindFlags(listCmd, "list", map[string]string{"manifest": "manifest"})

	return listCmd
}
