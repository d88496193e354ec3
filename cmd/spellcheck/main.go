package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	spellchecker "github.com/LivewareIssue/spell-checker"
)

var (
	verbose bool

	// set by run; turned into the process exit code in main
	misspelt bool
)

var rootCmd = &cobra.Command{
	Use:   "spellcheck <document> [dictionary]",
	Short: "Check a document for spelling mistakes",
	Long: "spellcheck reads a document and reports every line containing words\n" +
		"not found in the dictionary (" + spellchecker.DefaultDictionary + " unless\n" +
		"another word list is given).",
	Args:          cobra.RangeArgs(1, 2),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log dictionary statistics and timings")
}

func run(cmd *cobra.Command, args []string) error {
	logger := zap.NewNop()
	if verbose {
		var err error
		if logger, err = zap.NewDevelopment(); err != nil {
			return err
		}
	}
	defer logger.Sync()

	dictPath := spellchecker.DefaultDictionary
	if len(args) == 2 {
		dictPath = args[1]
	}

	start := time.Now()
	checker, err := spellchecker.Load(dictPath)
	if err != nil {
		return err
	}

	dict := checker.Dictionary()
	logger.Info("dictionary loaded",
		zap.String("path", dictPath),
		zap.Int("words", dict.NumWords()),
		zap.Int("nodes", dict.NumNodes()),
		zap.Int("edges", dict.NumEdges()),
		zap.Duration("elapsed", time.Since(start)))

	mistakes, err := checker.CheckFile(args[0])
	if err != nil {
		return err
	}

	for _, m := range mistakes {
		fmt.Printf("%d %s\n\n", m.Line, m.Text)
		fmt.Printf("%s\n\n", strings.Join(m.Words, " "))
	}

	misspelt = len(mistakes) > 0
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(2)
	}
	if misspelt {
		os.Exit(1)
	}
}
