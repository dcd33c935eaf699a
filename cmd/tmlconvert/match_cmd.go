package main

import (
	"fmt"
	"os"

	"github.com/judnich/tml"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// errNoMatch is returned (never wrapped with extra text) so main's top
// level error print stays a plain "no match" rather than a Go error dump.
var errNoMatch = fmt.Errorf("no match")

func newMatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "match <file.tml> <pattern>",
		Short: "Test whether a document's root matches a wildcard pattern",
		Long: `match evaluates PATTERN, itself a TML fragment that may contain the
\? (match exactly one sibling) and \* (match the remainder) wildcard
escapes, against the root of file.tml, CLI-exposing the same matcher
tml_find_first_child/tml_compare_nodes use internally.`,
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, flush := newLogger(cmd)
			defer flush()

			path, patternSrc := args[0], args[1]
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			doc := tml.ParseInPlace(data)
			if err := doc.Err(); err != nil {
				return fmt.Errorf("tmlconvert: %s: %w", path, err)
			}

			pattern := tml.ParseText(patternSrc)
			if err := pattern.Err(); err != nil {
				return fmt.Errorf("tmlconvert: pattern: %w", err)
			}

			matched := doc.Root().Matches(pattern.Root())
			logger.Debug("evaluated pattern", zap.String("path", path), zap.Bool("matched", matched))

			if !matched {
				fmt.Println("no match")
				return errNoMatch
			}
			fmt.Println("match")
			return nil
		},
	}
	return cmd
}
