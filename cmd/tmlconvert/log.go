package main

import (
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// newLogger builds a command-scoped zap logger tagged with a fresh run ID,
// grounded on the teacher pack's foxcpp-maddy (zap.NewProduction/
// NewDevelopment plus uuid.NewRandom for per-request/per-run identifiers,
// there used per SMTP message rather than per CLI invocation).
func newLogger(cmd *cobra.Command) (*zap.Logger, func()) {
	verbose, _ := cmd.Flags().GetBool("verbose")

	var base *zap.Logger
	var err error
	if verbose {
		base, err = zap.NewDevelopment()
	} else {
		base, err = zap.NewProduction()
	}
	if err != nil {
		base = zap.NewNop()
	}

	runID := uuid.New().String()
	logger := base.With(zap.String("run_id", runID), zap.String("cmd", cmd.Name()))
	return logger, func() { _ = base.Sync() }
}
