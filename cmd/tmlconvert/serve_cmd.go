package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/judnich/tml"
	"github.com/judnich/tml/loader"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newServeCmd() *cobra.Command {
	var addr string
	var metricsAddr string
	var flatten bool

	cmd := &cobra.Command{
		Use:   "serve <file.tml>",
		Short: "Serve a watched document's flattened tree, reloading it as the file changes",
		Long: `serve is a live-reloading preview server directly adapted from
soyweb/soyweb.go: instead of rendering a Soy template on every request, it
reparses file.tml whenever it changes on disk (via loader's fsnotify
watch) and serves the current flattened tree as the response body.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, flush := newLogger(cmd)
			defer flush()

			if addr == "" {
				addr = activeConfig.ServeAddr
			}
			if addr == "" {
				addr = ":9812"
			}
			if metricsAddr == "" {
				metricsAddr = activeConfig.MetricsAddr
			}

			return runServe(logger, args[0], addr, metricsAddr, flatten)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "address to listen on (default :9812)")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "if set, serve Prometheus metrics on this address")
	cmd.Flags().BoolVar(&flatten, "flatten", false, "serve the flattened (non-bracketed) tree instead of the bracketed one")
	return cmd
}

func runServe(logger *zap.Logger, path, addr, metricsAddr string, flatten bool) error {
	bundle := loader.NewBundle().WatchFiles(true).AddFile(path)
	reg, err := bundle.Compile()
	if err != nil {
		logger.Warn("document failed to parse at startup, serving will reflect fixes as they're saved", zap.Error(err))
	}
	defer bundle.Close()

	if metricsAddr != "" {
		startMetricsServer(logger, metricsAddr)
	}

	opts := tml.PrintOpts{Bracketed: !flatten}
	handler := newServeHandler(logger, reg, path, opts)

	logger.Info("listening", zap.String("addr", addr), zap.String("file", path))
	return http.ListenAndServe(addr, handler)
}

// newServeHandler mirrors soyweb.go's handler: look up the compiled
// artifact (there, tofu.Template; here, reg.Document) fresh on every
// request so edits saved mid-session are picked up without a restart.
func newServeHandler(logger *zap.Logger, reg *loader.Registry, path string, opts tml.PrintOpts) http.HandlerFunc {
	return func(res http.ResponseWriter, req *http.Request) {
		parseCounter.Inc()
		start := time.Now()
		defer func() { parseDuration.Observe(time.Since(start).Seconds()) }()

		doc, ok := reg.Document(path)
		if !ok {
			http.Error(res, fmt.Sprintf("%s is not loaded", path), http.StatusInternalServerError)
			return
		}
		if err := doc.Err(); err != nil {
			recompileFailures.Inc()
			logger.Warn("watched document has a parse error, responding with it", zap.Error(err))
			http.Error(res, err.Error(), http.StatusInternalServerError)
			return
		}

		var buf []byte
		needed, fit := doc.Root().Print(buf, opts)
		if !fit {
			buf = make([]byte, needed+1)
			_, fit = doc.Root().Print(buf, opts)
		}
		if !fit {
			http.Error(res, "failed to flatten document", http.StatusInternalServerError)
			return
		}

		res.Header().Set("Content-Type", "text/plain; charset=utf-8")
		res.Write(buf[:needed])
	}
}
