// Package cmd implements the rinha command tree.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "rinha [file]",
	Short: "Rinha interpreter",
	Long: `go-rinha is a Go implementation of the Rinha functional language.

Rinha programs arrive pre-parsed: the argument is a JSON document
holding the program's abstract syntax tree. The interpreter echoes a
readable rendering of the program, then evaluates it. Program output
(the print effect) goes to standard output.`,
	Version: Version,
	Args:    cobra.ExactArgs(1),
	RunE:    runProgram,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
