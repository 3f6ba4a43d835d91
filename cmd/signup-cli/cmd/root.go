package cmd

import (
	"os"

	"github.com/nfrund/signup/internal/logging"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// appFs is the filesystem form files are read from. Tests swap in a MemMapFs.
var appFs = afero.NewOsFs()

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "signup-cli",
		Short: "Signup CLI tool",
		Long: `Signup CLI drives the registration form workflow from a terminal.

Available commands:
  register    Submit a registration to the registration API
  validate    Check form values against the registration rules
  version     Print the version number

Use "signup-cli [command] --help" for more information about a specific command.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.New()
		},
	}
	root.AddCommand(newRegisterCmd(), newValidateCmd(), newVersionCmd())
	return root
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
