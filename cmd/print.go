package cmd

import (
	"github.com/spf13/cobra"

	"github.com/cmmoran/cstgen/pkg/action/print"
)

func init() {
	rootCmd.AddCommand(NewPrintCommand())
}

func NewPrintCommand() *cobra.Command {
	// printCmd represents the cstgen print command
	var printCmd = &cobra.Command{
		Use:   "print",
		Short: "print an ESTree document",
		Long:  "Print an ESTree JSON document as formatted source text, or as its concrete syntax tree in JSON or YAML",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			_, err = print.Generate(&cfg.Print, c.InOrStdin(), c.OutOrStdout())
			return err
		},
	}
	addPrintFlags(printCmd, "print")

	return printCmd
}
