package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tidwall/pretty"

	"github.com/cwbudde/go-rinha/internal/loader"
)

var astCmd = &cobra.Command{
	Use:   "ast [file]",
	Short: "Validate and pretty-print an AST document",
	Long: `Decode an AST document through the loader, then write an indented
JSON rendering of it to standard output. Useful for inspecting what a
parser produced without evaluating anything.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		if _, err := loader.Load(data); err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(pretty.Pretty(data))
		return err
	},
}

func init() {
	rootCmd.AddCommand(astCmd)
}
