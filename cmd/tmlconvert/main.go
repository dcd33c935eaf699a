// Command tmlconvert is a small CLI over package tml and its xmltml/loader
// satellite packages: convert between TML and XML, pretty-print or flatten
// a document, evaluate a wildcard pattern against one, or serve a watched
// file's flattened tree over HTTP while it changes on disk. Grounded on
// tools/tml-convert/tml-convert.c (the convert/fmt/match behavior) and
// soyweb/soyweb.go (the serve behavior), rebuilt as a cobra subcommand tree
// instead of a single flag-parsed main.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfgPath string

	root := &cobra.Command{
		Use:   "tmlconvert",
		Short: "Convert, format, and inspect TML documents",
		Long: `tmlconvert converts between TML and XML, pretty-prints or flattens
TML documents, evaluates wildcard patterns against them, and serves a
watched document's flattened tree over HTTP for live preview.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&cfgPath, "config", "", "path to a .tmlconvert.yaml config file")
	root.PersistentFlags().Bool("verbose", false, "enable debug-level logging")

	root.AddCommand(newConvertCmd())
	root.AddCommand(newFmtCmd())
	root.AddCommand(newMatchCmd())
	root.AddCommand(newServeCmd())

	cobra.OnInitialize(func() {
		if err := loadConfig(cfgPath); err != nil {
			fmt.Fprintln(os.Stderr, "tmlconvert: config:", err)
		}
	})

	return root
}
