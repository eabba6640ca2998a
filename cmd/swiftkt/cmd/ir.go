package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/funvibe/swiftkt/internal/diagnostics"
	"github.com/funvibe/swiftkt/internal/driver"
)

var irCmd = &cobra.Command{
	Use:   "ir [dump]",
	Short: "Decode a dump and print the translated IR",
	Long: `Run the decoder and translator stages only (spec.md §4.6's
irFromSwiftAst), skipping IR passes and emission, and print a textual
dump of the resulting statement list for debugging.`,
	Args: cobra.ExactArgs(1),
	RunE: runIR,
}

func init() {
	rootCmd.AddCommand(irCmd)
}

func runIR(_ *cobra.Command, args []string) error {
	path := args[0]
	text, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	d := driver.New()
	sink := diagnostics.NewSink()
	root, err := d.SwiftAstFromDump(string(text), sink)
	if err != nil {
		printDiagnostics(sink)
		return fmt.Errorf("decode failed: %w", err)
	}

	source := d.ResolveSourceFile(path, string(text))
	stmts := d.IRFromSwiftAst(root, source, sink)
	for _, s := range stmts {
		fmt.Println(s.Kind())
	}
	printDiagnostics(sink)
	return nil
}
