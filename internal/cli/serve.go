package cli

import (
	"context"
	"errors"
	"net/http"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/yanderlabs/mindweave/internal/server"
	"github.com/yanderlabs/mindweave/pkg/cache"
)

// serveCommand creates the serve command for the local preview server.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr     string
		dir      string
		redisURL string
		theme    string
		noCache  bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a directory of outlines as a browsable mindmap gallery",
		Long: `Serve a directory of outline files over HTTP.

The server lists the outlines in the directory and renders each one to SVG
or PNG on demand at /mindmaps/{name}.svg. Rendered artifacts are cached by
outline content hash, so edits show up on the next request while unchanged
outlines are served from cache.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = ":8080"
			}
			if dir == "" {
				dir = "."
			}
			return c.runServe(cmd.Context(), addr, dir, redisURL, theme, noCache)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", c.Config.Serve.Addr, "listen address (default :8080)")
	cmd.Flags().StringVarP(&dir, "dir", "d", c.Config.Serve.Dir, "outline directory (default .)")
	cmd.Flags().StringVar(&redisURL, "redis", c.Config.Serve.RedisURL, "Redis URL for a shared artifact cache (default: file cache)")
	cmd.Flags().StringVarP(&theme, "theme", "t", c.Config.Theme, "theme for rendered mindmaps")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the artifact cache")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, addr, dir, redisURL, theme string, noCache bool) error {
	artifactCache, err := c.newServerCache(ctx, redisURL, noCache)
	if err != nil {
		return err
	}
	defer artifactCache.Close()

	srv := server.New(server.Options{
		Dir:    dir,
		Theme:  theme,
		Cache:  artifactCache,
		Logger: c.Logger,
	})

	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = httpSrv.Shutdown(shutdownCtx)
	}()

	printInfo("Serving %s on http://localhost%s", dir, addr)
	c.Logger.Info("server starting", "addr", addr, "dir", dir)

	if err := httpSrv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// newServerCache picks the artifact cache backend: Redis when configured,
// otherwise a file cache under the XDG cache dir, or no cache at all.
func (c *CLI) newServerCache(ctx context.Context, redisURL string, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	if redisURL != "" {
		return cache.NewRedisCache(ctx, redisURL)
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(filepath.Join(dir, "server"))
}
