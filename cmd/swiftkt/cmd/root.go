package cmd

import (
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "swiftkt",
	Short: "Translate Swift AST dumps into Kotlin source",
	Long: `swiftkt decodes a textual Swift-compiler-frontend AST dump into a
typed intermediate representation and emits equivalent Kotlin source.

It never invokes the Swift frontend itself: the dump is produced
upstream (e.g. "swiftc -dump-ast") and staged to a file this tool reads.`,
}

func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
