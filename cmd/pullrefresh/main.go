// Command pullrefresh demonstrates the pull-to-refresh container in a
// terminal and renders pulls to PNG.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/go-drift/pullrefresh/cmd/pullrefresh/internal/config"
	rerrors "github.com/go-drift/pullrefresh/pkg/errors"
)

type rootFlags struct {
	configPath string
	verbose    bool
	trace      bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "[pullrefresh error] %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	root := &cobra.Command{
		Use:           "pullrefresh",
		Short:         "Pull-to-refresh container demo",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			rerrors.SetHandler(&rerrors.LogHandler{Verbose: flags.verbose, Out: cmd.ErrOrStderr()})
			rerrors.SetTrace(flags.trace)
		},
	}
	root.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "config file (default ./"+config.FileName+")")
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "report errors with kind and stack")
	root.PersistentFlags().BoolVar(&flags.trace, "trace", false, "log container measure and gesture tracing")

	root.AddCommand(newRunCmd(flags))
	root.AddCommand(newSnapshotCmd(flags))
	root.AddCommand(newConfigCmd(flags))
	root.AddCommand(newVersionCmd())
	return root
}
