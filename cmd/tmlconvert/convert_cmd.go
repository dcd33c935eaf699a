package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/judnich/tml"
	"github.com/judnich/tml/xmltml"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type fileKind int

const (
	fileUnknown fileKind = iota
	fileXML
	fileTML
)

// classify sniffs a filename's extension the way tml-convert.c's file_type
// does: a case-insensitive ".xml" or ".tml" suffix, nothing more elaborate
// (no content sniffing).
func classify(name string) fileKind {
	lower := strings.ToLower(name)
	switch {
	case strings.HasSuffix(lower, ".xml"):
		return fileXML
	case strings.HasSuffix(lower, ".tml"):
		return fileTML
	default:
		return fileUnknown
	}
}

func newConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <source> <destination>",
		Short: "Convert between TML and XML by file extension, like tml-convert",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, flush := newLogger(cmd)
			defer flush()
			return runConvert(logger, args[0], args[1])
		},
	}
	return cmd
}

func runConvert(logger *zap.Logger, src, dst string) error {
	srcKind, dstKind := classify(src), classify(dst)
	logger.Debug("dispatching conversion", zap.String("src", src), zap.String("dst", dst))

	switch {
	case srcKind == fileXML && dstKind == fileTML:
		return convertXMLToTML(logger, src, dst)
	case srcKind == fileTML && dstKind == fileXML:
		return convertTMLToXML(logger, src, dst)
	case srcKind == fileUnknown || dstKind == fileUnknown:
		return fmt.Errorf("tmlconvert: %s and %s must end in .xml or .tml", src, dst)
	default:
		return fmt.Errorf("tmlconvert: %s and %s are the same file type, nothing to convert", src, dst)
	}
}

func convertXMLToTML(logger *zap.Logger, src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	doc, err := xmltml.FromXML(in)
	if err != nil {
		return err
	}

	var buf []byte
	needed, fit := doc.Root().Print(buf, tml.PrintOpts{Bracketed: true})
	if !fit {
		buf = make([]byte, needed+1)
		_, fit = doc.Root().Print(buf, tml.PrintOpts{Bracketed: true})
	}
	if !fit {
		return fmt.Errorf("tmlconvert: failed to flatten converted document")
	}

	logger.Info("converted XML to TML", zap.String("src", src), zap.String("dst", dst), zap.Int("bytes", needed))
	return os.WriteFile(dst, buf[:needed], 0644)
}

func convertTMLToXML(logger *zap.Logger, src, dst string) error {
	doc, err := tml.ParseFile(src)
	if err != nil {
		return err
	}
	if err := doc.Err(); err != nil {
		return fmt.Errorf("tmlconvert: %s: %w", src, err)
	}

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if err := xmltml.ToXML(doc, out); err != nil {
		return err
	}
	logger.Info("converted TML to XML", zap.String("src", src), zap.String("dst", dst))
	return nil
}
