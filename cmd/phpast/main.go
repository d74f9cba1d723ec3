package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/shinyvision/phpast/ast"
	"github.com/shinyvision/phpast/convert"
	"github.com/shinyvision/phpast/parser"
)

var (
	astVersion int
	asJSON     bool
	dropBroken bool
	strict     bool
	verbosity  int
)

var rootCmd = &cobra.Command{
	Use:          "phpast [file ...]",
	Short:        "Dump the canonical syntax tree of PHP source files",
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().IntVar(&astVersion, "ast-version", int(convert.V2), "output schema version")
	rootCmd.Flags().BoolVar(&asJSON, "json", false, "emit JSON instead of the text dump")
	rootCmd.Flags().BoolVar(&dropBroken, "drop-incomplete", false, "drop incomplete constructs instead of substituting placeholders")
	rootCmd.Flags().BoolVar(&strict, "strict", false, "fail on unrecognized constructs")
	rootCmd.Flags().CountVarP(&verbosity, "verbose", "v", "increase log verbosity")
}

func run(cmd *cobra.Command, args []string) error {
	commonlog.Configure(verbosity, nil)

	store, err := parser.NewStore(0)
	if err != nil {
		return err
	}
	defer store.Purge()

	header := color.New(color.FgCyan, color.Bold)
	warn := color.New(color.FgYellow)

	for _, path := range args {
		doc, err := store.Get(cmd.Context(), path)
		if err != nil {
			return err
		}

		var parseErrs []parser.ParseError
		opts := convert.Options{
			Version: convert.Version(astVersion),
			Strict:  strict,
			Errors:  &parseErrs,
		}
		if dropBroken {
			opts.Policy = convert.PolicyDrop
		}
		conv, err := convert.New(opts)
		if err != nil {
			return err
		}
		root, err := conv.ConvertTree(doc.Root(), doc.Source)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		for _, pe := range parseErrs {
			warn.Fprintf(os.Stderr, "%s: %s\n", path, pe.Error())
		}

		if len(args) > 1 {
			header.Fprintf(os.Stdout, "%s\n", path)
		}
		if asJSON {
			out, err := json.MarshalIndent(root, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
		} else {
			fmt.Print(ast.Dump(root))
		}
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
