package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/funvibe/swiftkt/internal/driver"
)

var compileTimeout time.Duration

var compileCmd = &cobra.Command{
	Use:   "compile [dump]",
	Short: "Translate a dump to Kotlin and invoke kotlinc on it",
	Long: `Translate a dump to Kotlin (as "kotlin" does), write it beside the
dump with a .kt extension, then delegate to the Shell collaborator to
invoke kotlinc (spec.md §4.6's compile(kotlinPaths)), reporting "none"
on timeout rather than failing.`,
	Args: cobra.ExactArgs(1),
	RunE: runCompile,
}

func init() {
	rootCmd.AddCommand(compileCmd)
	compileCmd.Flags().DurationVar(&compileTimeout, "timeout", 30*time.Second, "shell command timeout")
}

func runCompile(_ *cobra.Command, args []string) error {
	path := args[0]
	text, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	d := driver.New()
	source := d.ResolveSourceFile(path, string(text))
	kotlin, sink := d.TranslateFile(path, string(text), source)
	printDiagnostics(sink)

	ktPath := d.FileIO.ChangeExtension(path, ".kt")
	if err := d.FileIO.WriteFile(ktPath, kotlin); err != nil {
		return fmt.Errorf("writing %s: %w", ktPath, err)
	}

	out, err := d.Compile([]string{ktPath}, compileTimeout)
	if err != nil {
		return fmt.Errorf("kotlinc: %w", err)
	}
	if out == nil {
		fmt.Fprintln(os.Stderr, "kotlinc timed out")
		return nil
	}
	fmt.Print(out.Stdout)
	fmt.Fprint(os.Stderr, out.Stderr)
	if out.Status != 0 {
		return fmt.Errorf("kotlinc exited with status %d", out.Status)
	}
	return nil
}
