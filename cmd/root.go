package cmd

import (
	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/proj-sh/proj/core/config"
	"github.com/proj-sh/proj/core/parser"
)

var (
	scriptPath string
	cfgPath    string

	errColor = color.New(color.FgRed, color.Bold)
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "proj",
	Short: "Run directives from a .proj file",
	Long: `proj executes named blocks of commands ("directives") from a small
stack-based scripting file, a typed alternative to ad-hoc shell scripts.`,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		errColor.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
	}
	return err
}

// loadScript reads and parses the directive file named by --file.
func loadScript(fsys afero.Fs) (map[string]*parser.Block, error) {
	source, err := afero.ReadFile(fsys, scriptPath)
	if err != nil {
		return nil, err
	}
	return parser.Parse(string(source))
}

func loadConfig(fsys afero.Fs) (*config.Config, error) {
	return config.Load(fsys, cfgPath)
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&scriptPath, "file", "f", ".proj", "path to the directive file")
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", config.ConfigName, "path to the runner configuration")
}
