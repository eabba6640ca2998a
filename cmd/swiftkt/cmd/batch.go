package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/funvibe/swiftkt/internal/cache"
	"github.com/funvibe/swiftkt/internal/driver"
)

var batchCachePath string

var batchCmd = &cobra.Command{
	Use:   "batch [dump...]",
	Short: "Translate many dumps in one run, reusing the translation cache",
	Long: `Sequence a worklist of dump files through one Driver
(SPEC_FULL.md's supplemented TranslateBatch), optionally backed by a
persistent SQLite translation cache so unchanged dumps skip re-emission
on the next invocation, and print a combined summary line.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)
	batchCmd.Flags().StringVar(&batchCachePath, "cache", "", "persistent SQLite cache file (skips unchanged dumps across runs)")
}

func runBatch(_ *cobra.Command, args []string) error {
	d := driver.New()

	memory, err := cache.NewMemory(256)
	if err != nil {
		return fmt.Errorf("cache: %w", err)
	}
	var persistent *cache.Persistent
	if batchCachePath != "" {
		persistent, err = cache.OpenPersistent(batchCachePath)
		if err != nil {
			return fmt.Errorf("opening cache %s: %w", batchCachePath, err)
		}
		defer persistent.Close()
	}
	d.Cache = cache.New(memory, persistent)

	report := d.TranslateBatch(args)
	for _, f := range report.Files {
		printDiagnostics(f.Sink)
	}
	fmt.Println(report.Summary())
	return nil
}
