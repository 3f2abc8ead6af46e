package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/gosuda/littleknowledge/internal/config"
	"github.com/gosuda/littleknowledge/internal/content"
	"github.com/gosuda/littleknowledge/internal/export"
	"github.com/gosuda/littleknowledge/internal/render"
	"github.com/gosuda/littleknowledge/internal/server"
	"github.com/gosuda/littleknowledge/web"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal().Err(err).Msg("command failed")
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "littleknowledge",
		Short: "Little Knowledge - small English reference pages",
		Long: `littleknowledge builds and serves a static site of English reference
tables: pronouns and consonant clusters.

Use "export" to write the site for GitHub Pages and "serve" to preview it.`,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			setupLogging(verbose)
			return nil
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	root.AddCommand(newServeCmd(), newExportCmd())

	return root
}

// setupLogging initializes structured logging from LK_LOG_LEVEL and
// LK_LOG_FORMAT. --verbose forces debug level.
func setupLogging(verbose bool) {
	level, err := zerolog.ParseLevel(os.Getenv("LK_LOG_LEVEL"))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	if verbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	if os.Getenv("LK_LOG_FORMAT") == "text" {
		log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	} else {
		log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
	}
}

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the site and the content API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}
			return runServe(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides LK_SERVER_ADDR)")
	return cmd
}

func runServe(ctx context.Context, cfg *config.Config) error {
	catalog := content.NewCatalog()
	renderer, err := render.New(catalog, render.Options{
		BasePath:    cfg.Site.BasePath,
		AssetPrefix: cfg.Site.AssetPrefix,
		Lang:        cfg.Site.Lang,
	})
	if err != nil {
		return err
	}

	// Graceful shutdown on SIGINT / SIGTERM.
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	srv := server.New(ctx, cfg, catalog, renderer, web.Static())

	// Start server in background goroutine.
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.Server.Addr).Str("base_path", cfg.Site.BasePath).Msg("starting server")
		errCh <- srv.Start(ctx)
	}()

	// Block until shutdown signal or a listen failure.
	select {
	case <-ctx.Done():
	case startErr := <-errCh:
		if startErr != nil {
			return startErr
		}
	}
	log.Info().Msg("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if shutdownErr := srv.Shutdown(shutdownCtx); shutdownErr != nil {
		return shutdownErr
	}

	log.Info().Msg("stopped")
	return nil
}

func newExportCmd() *cobra.Command {
	var (
		dir      string
		clean    bool
		strict   bool
		basePath string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the static site to a directory",
		Long: `export renders every page plus 404.html, copies the static assets and
writes build-manifest.json. On GitHub Actions links default to /<repo>.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if dir != "" {
				cfg.Export.Dir = dir
			}
			if cmd.Flags().Changed("clean") {
				cfg.Export.Clean = clean
			}
			if cmd.Flags().Changed("strict") {
				cfg.Export.Strict = strict
			}
			if cmd.Flags().Changed("base-path") {
				cfg.Site.BasePath = config.NormalizeBasePath(basePath)
				cfg.Site.AssetPrefix = config.NormalizeAssetPrefix(cfg.Site.BasePath)
			}

			manifest, err := runExport(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "exported %d files to %s (build %s)\n",
				len(manifest.Files), cfg.Export.Dir, manifest.BuildID)
			return err
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "o", "", "Output directory (overrides LK_EXPORT_DIR)")
	cmd.Flags().BoolVar(&clean, "clean", false, "Empty the output directory first (overrides LK_EXPORT_CLEAN)")
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail when the scroll-to-top wasm assets are missing (overrides LK_EXPORT_STRICT)")
	cmd.Flags().StringVar(&basePath, "base-path", "", "URL path prefix for links and assets (overrides LK_BASE_PATH)")
	return cmd
}

func runExport(ctx context.Context, cfg *config.Config) (*export.Manifest, error) {
	renderer, err := render.New(content.NewCatalog(), render.Options{
		BasePath:    cfg.Site.BasePath,
		AssetPrefix: cfg.Site.AssetPrefix,
		Lang:        cfg.Site.Lang,
	})
	if err != nil {
		return nil, err
	}

	exporter := export.New(renderer, web.Static(), export.Options{
		BasePath:       cfg.Site.BasePath,
		Clean:          cfg.Export.Clean,
		RequiredAssets: render.ScrollTopAssets(),
		Strict:         cfg.Export.Strict,
	})
	return exporter.Export(ctx, cfg.Export.Dir)
}
