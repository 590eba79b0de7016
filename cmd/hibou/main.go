// Command hibou wires the term algebra, canonicalizer, explorer and
// multi-trace analyzer onto a small set of cobra subcommands, the way
// cmd/example wired the miniKanren primitives onto a sequence of
// standalone demonstrations.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	scenarioFlag string
	configFlag   string
	verboseFlag  bool
)

func newLogger() zerolog.Logger {
	level := zerolog.InfoLevel
	if verboseFlag {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
		Level(level).
		With().Timestamp().Logger()
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "hibou",
		Short: "Term algebra, canonicalization, exploration and conformance analysis",
	}
	root.PersistentFlags().StringVar(&scenarioFlag, "scenario", "s1", "named demo scenario (s1..s6)")
	root.PersistentFlags().StringVar(&configFlag, "config", "", "path to a YAML options file (optional)")
	root.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newCanonizeCommand())
	root.AddCommand(newExploreCommand())
	root.AddCommand(newAnalyzeCommand())
	return root
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
