package command

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vcplatform/marketplace/internal/api"
	mongodb "github.com/vcplatform/marketplace/internal/infrastructure/db/mongo"
	"github.com/vcplatform/marketplace/internal/infrastructure/httpserver"
)

func serveCommand() *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the marketplace HTTP API",
		Long: "Connects to MongoDB and Redis, ensures collection indexes and serves the\n" +
			"HTTP API until interrupted.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) (runErr error) {
			cfg, log, err := loadConfig(cmd.Context())
			if err != nil {
				return err
			}
			if port != "" {
				cfg.Port = port
				if err := cfg.Validate(); err != nil {
					return err
				}
			}

			conns, err := connect(cmd.Context(), cfg, true)
			if err != nil {
				return err
			}
			defer func() {
				if err := conns.Close(cmd.Context()); err != nil {
					runErr = errors.Join(runErr, err)
				}
			}()

			if err := mongodb.EnsureIndexes(cmd.Context(), conns.db); err != nil {
				return fmt.Errorf("ensure indexes: %w", err)
			}

			grp, ctx := errgroup.WithContext(cmd.Context())

			listener, err := httpserver.Listen(ctx, cfg.Addr())
			if err != nil {
				return err
			}

			router := api.NewRouter(conns.db, conns.redis, cfg, log)
			srv := &http.Server{Handler: router} //nolint:gosec // Serve() sets timeouts

			log.Info().
				Str("address", listener.Addr().String()).
				Str("env", cfg.Env).
				Msg("starting HTTP server...")
			httpserver.Serve(ctx, grp, srv, listener, httpserver.ShutdownTimeout)

			if err := grp.Wait(); err != nil {
				return err
			}
			log.Info().Msg("server stopped")
			return nil
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "", "listen port; overrides PORT")
	return cmd
}
