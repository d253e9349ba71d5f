package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cwbudde/go-rinha/internal/loader"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [file]",
	Short: "Render a program in surface syntax",
	Long: `Decode an AST document and print the program's surface-syntax
rendering, without evaluating it. Parentheses are inserted only where
operator precedence requires them.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		file, err := loader.LoadFile(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), file.Expression.String())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(fmtCmd)
}
