package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"finhistory/internal/config"
	"finhistory/internal/httpapi"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	var addr, corsOrigins, corsMethods, corsHeaders string
	var corsEnabled bool
	cmd := &cobra.Command{
		Use:     "serve",
		Short:   "Serve the module over HTTP for out-of-process hosts",
		Example: "  finhistory serve --addr :8080\n  finhistory serve --cors --cors-origins https://example.org",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, p, err := opts.setup(cmd)
			if err != nil {
				return err
			}
			if addr != "" { cfg.Addr = addr }
			if cmd.Flags().Changed("cors") { cfg.CORSEnabled = corsEnabled }
			if v := splitCSV(corsOrigins); len(v) > 0 { cfg.CORSAllowedOrigins = v }
			if v := splitCSV(corsMethods); len(v) > 0 { cfg.CORSAllowedMethods = v }
			if v := splitCSV(corsHeaders); len(v) > 0 { cfg.CORSAllowedHeaders = v }

			httpapi.SetLogger(log)
			httpapi.SetDefaultLogLevel(cfg.LogLevel)
			httpapi.SetCORSOptions(cfg.CORSEnabled, cfg.CORSAllowedOrigins, cfg.CORSAllowedMethods, cfg.CORSAllowedHeaders)

			// Graceful shutdown (Ctrl+C / SIGTERM)
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg, httpapi.NewMux(p), log)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", envStr("FINHISTORY_ADDR", ""), "HTTP listen address, e.g. :8080")
	cmd.Flags().BoolVar(&corsEnabled, "cors", false, "Enable CORS")
	cmd.Flags().StringVar(&corsOrigins, "cors-origins", "", "Comma separated allowed origins")
	cmd.Flags().StringVar(&corsMethods, "cors-methods", "", "Comma separated allowed methods")
	cmd.Flags().StringVar(&corsHeaders, "cors-headers", "", "Comma separated allowed headers")
	return cmd
}

// serve runs the HTTP server until ctx is done, then shuts it down within
// cfg.ShutdownTimeoutSec.
func serve(ctx context.Context, cfg config.Config, h http.Handler, log zerolog.Logger) error {
	ln, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return err
	}
	srv := &http.Server{Handler: h, ReadHeaderTimeout: 10 * time.Second}

	errc := make(chan error, 1)
	go func() {
		log.Info().Str("addr", ln.Addr().String()).Str("variant", cfg.Variant).Msg("finhistory listening")
		errc <- srv.Serve(ln)
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	sctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ShutdownTimeoutSec)*time.Second)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown error")
		return err
	}
	log.Info().Msg("finhistory stopped")
	return nil
}
