package cmd

import (
	"errors"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/proj-sh/proj/core/host"
	"github.com/proj-sh/proj/core/interp"
)

// runCmd executes one directive from the file.
var runCmd = &cobra.Command{
	Use:   "run [DIRECTIVE]",
	Short: "Run a directive.",
	Long: `Run the named directive, default "main". Dependencies between
directives are checked for cycles and missing targets before anything
executes.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		directive := "main"
		if len(args) == 1 {
			directive = args[0]
		}

		fsys := afero.NewOsFs()
		blocks, err := loadScript(fsys)
		if err != nil {
			return err
		}
		cfg, err := loadConfig(fsys)
		if err != nil {
			return err
		}

		engine := interp.New(blocks, host.NewLocal(cfg.Shell))
		engine.MaxCallDepth = cfg.MaxCallDepth

		err = engine.Run(directive)

		// An explicit `exit` in the script terminates the process with
		// the requested status, bypassing any pending work.
		var exitErr *interp.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		return err
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
