package cmd

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/proj-sh/proj/core/parser"
)

// listCmd prints the directives defined in the file.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all directives in the file.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		blocks, err := loadScript(afero.NewOsFs())
		if err != nil {
			return err
		}

		for _, name := range parser.ListDirectives(blocks) {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
