package main

import (
	"fmt"
	"os"

	"github.com/judnich/tml"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newFmtCmd() *cobra.Command {
	var flatten bool
	var write bool

	cmd := &cobra.Command{
		Use:   "fmt <file.tml>",
		Short: "Pretty-print or flatten a TML document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, flushLog := newLogger(cmd)
			defer flushLog()

			path := args[0]
			doc, err := tml.ParseFile(path)
			if err != nil {
				return err
			}
			if err := doc.Err(); err != nil {
				return fmt.Errorf("tmlconvert: %s: %w", path, err)
			}

			opts := tml.PrintOpts{Bracketed: !flatten}
			var buf []byte
			needed, fit := doc.Root().Print(buf, opts)
			if !fit {
				buf = make([]byte, needed+1)
				_, fit = doc.Root().Print(buf, opts)
			}
			if !fit {
				return fmt.Errorf("tmlconvert: failed to print %s", path)
			}
			out := buf[:needed]
			logger.Debug("formatted document", zap.String("path", path), zap.Int("bytes", needed))

			if write {
				return os.WriteFile(path, out, 0644)
			}
			_, err = os.Stdout.Write(out)
			if err == nil {
				fmt.Println()
			}
			return err
		},
	}
	cmd.Flags().BoolVar(&flatten, "flatten", false, "drop all brackets, including the root's, printing leaves as a space-separated sequence")
	cmd.Flags().BoolVar(&write, "write", false, "write the formatted output back to the file instead of stdout")
	return cmd
}
