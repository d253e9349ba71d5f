package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/go-rinha/internal/interp"
	"github.com/cwbudde/go-rinha/internal/loader"
)

var (
	noHeader bool
	maxDepth int
)

func init() {
	rootCmd.Flags().BoolVar(&noHeader, "no-header", false, "do not echo the program rendering before evaluation")
	rootCmd.Flags().IntVar(&maxDepth, "max-depth", interp.DefaultMaxDepth, "maximum evaluation nesting depth")
}

func runProgram(_ *cobra.Command, args []string) error {
	file, err := loader.LoadFile(args[0])
	if err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Loaded AST for %s\n", file.Name)
	}

	if !noHeader {
		fmt.Println(file.Expression.String())
		fmt.Println()
	}

	interpreter := interp.New(os.Stdout)
	interpreter.SetMaxDepth(maxDepth)

	if _, err := interpreter.RunFile(file); err != nil {
		return err
	}
	return nil
}
