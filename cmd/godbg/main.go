// godbg is a source-level native debugger and spectrum-based fault
// localizer for traced ELF/DWARF binaries on linux/amd64. Its two
// subcommands mirror the two ways the underlying engine is driven:
// `debug` opens an interactive REPL, `localize` runs a test suite and
// reports suspicious lines (spec.md §6 "EXTERNAL INTERFACES").
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/godbg/godbg/config"
	"github.com/godbg/godbg/fault"
	"github.com/godbg/godbg/logflags"
	"github.com/godbg/godbg/terminal"
	"github.com/godbg/godbg/version"
)

var (
	logEnabled bool
	logOutput  string
)

func main() {
	root := &cobra.Command{
		Use:   "godbg",
		Short: "godbg is a native debugger and fault localizer.",
	}
	root.PersistentFlags().BoolVar(&logEnabled, "log", false, "Enable debug logging.")
	root.PersistentFlags().StringVar(&logOutput, "log-output", "", "Comma separated list of subsystems to log: proc,dbginfo,stepengine,fault.")

	root.AddCommand(versionCommand(), debugCommand(), localizeCommand())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print godbg's version.",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version.GodbgVersion.String())
		},
	}
}

// debugCommand implements `godbg debug <path> [args...]`: launch path
// under trace and drive it from an interactive REPL.
func debugCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "debug <path> [args...]",
		Short: "Launch a binary under trace and debug it interactively.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := logflags.Setup(logEnabled, logOutput); err != nil {
				return err
			}
			cfg := config.LoadConfig()

			binaryPath := args[0]
			session, err := terminal.NewSession(binaryPath, append([]string{binaryPath}, args[1:]...), ".")
			if err != nil {
				return err
			}
			defer session.Proc.Kill()

			return terminal.New(session, cfg).Run()
		},
	}
}

// localizeCommand implements `godbg localize <path> <vectors-file>`:
// spec.md §6's fault-localization entry point, `program <debuggee-path>
// <vectors-file>`, renamed to a cobra subcommand rather than a bare
// positional-argument binary.
func localizeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "localize <path> <vectors-file>",
		Short: "Run a test-vector suite and report suspicious source lines.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := logflags.Setup(logEnabled, logOutput); err != nil {
				return err
			}
			cfg := config.LoadConfig()

			binaryPath, vectorsPath := args[0], args[1]
			vectors, err := fault.ParseVectorsFile(vectorsPath)
			if err != nil {
				return err
			}

			l := fault.New(binaryPath, cfg.OracleOutputPath)
			_, err = l.Run(vectors)
			return err
		},
	}
}
