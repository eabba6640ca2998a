package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/funvibe/swiftkt/internal/driver"
)

var kotlinOutput string

var kotlinCmd = &cobra.Command{
	Use:   "kotlin [dump]",
	Short: "Translate a dump to Kotlin source",
	Long: `Run the full decode -> translate -> passes -> emit pipeline
(spec.md §4.6) and print (or write) the resulting Kotlin source.`,
	Args: cobra.ExactArgs(1),
	RunE: runKotlin,
}

func init() {
	rootCmd.AddCommand(kotlinCmd)
	kotlinCmd.Flags().StringVarP(&kotlinOutput, "output", "o", "", "write Kotlin to this file instead of stdout")
}

func runKotlin(_ *cobra.Command, args []string) error {
	path := args[0]
	text, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	d := driver.New()
	source := d.ResolveSourceFile(path, string(text))
	kotlin, sink := d.TranslateFile(path, string(text), source)
	printDiagnostics(sink)

	if kotlinOutput == "" {
		fmt.Println(kotlin)
		return nil
	}
	return os.WriteFile(kotlinOutput, []byte(kotlin), 0o644)
}
