package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alexedwards/scs"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/fedoraconnector/internal/client"
	"github.com/sidereusnuntius/fedoraconnector/internal/config"
	db "github.com/sidereusnuntius/fedoraconnector/internal/db/impl"
	"github.com/sidereusnuntius/fedoraconnector/internal/importer"
	"github.com/sidereusnuntius/fedoraconnector/internal/initialization"
	"github.com/sidereusnuntius/fedoraconnector/internal/metrics"
	"github.com/sidereusnuntius/fedoraconnector/internal/queue"
	service "github.com/sidereusnuntius/fedoraconnector/internal/service/impl"
	"github.com/sidereusnuntius/fedoraconnector/internal/state"
	"github.com/sidereusnuntius/fedoraconnector/internal/web"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var configPath string
	root := &cobra.Command{
		Use:           "fedoraconnector",
		Short:         "Links items to datastreams stored in Fedora Commons repositories",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "configuration file")

	load := func() (config.Configuration, error) {
		cfg, err := config.ReadConfig(config.New(configPath))
		if err != nil {
			log.Error().Err(err).Msg("failed to read configuration")
			return cfg, err
		}
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		if cfg.Debug {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		}
		return cfg, nil
	}

	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Start the web server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg)
		},
	})
	root.AddCommand(&cobra.Command{
		Use:   "migrate",
		Short: "Create the database and apply pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			d, err := initialization.OpenDB(cfg.DbUrl)
			if err != nil {
				return err
			}
			defer d.Close()
			return initialization.SetupDB(d, cfg.MigrationsFolder, cfg.DbUrl)
		},
	})
	return root
}

func serve(ctx context.Context, cfg config.Configuration) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	d, err := initialization.OpenDB(cfg.DbUrl)
	if err != nil {
		return err
	}
	defer d.Close()
	log.Info().Msg("database connection established")

	observer, err := metrics.NewPrometheusObserver(prometheus.DefaultRegisterer)
	if err != nil {
		return err
	}

	dd := db.New(cfg, d)
	fedora := client.New(&http.Client{Timeout: cfg.FetchTimeout}, observer)

	var q queue.Queue
	blClient, err := initialization.InitQueue(&cfg)
	if err != nil {
		log.Error().Err(err).Msg("unable to connect with backlite database")
		return err
	}
	if blClient != nil {
		q = queue.New(ctx, dd, fedora, blClient)
	}

	st := state.State{
		DB:     dd,
		Config: cfg,
	}
	svc := service.New(&st, fedora, importer.Default(), q, observer)

	var manager *scs.Manager
	if cfg.SessionKey != "" {
		manager = scs.NewCookieManager(cfg.SessionKey)
	} else {
		log.Warn().Msg("no session key configured, flash messages are disabled")
	}

	handler := web.New(&cfg, svc, manager, promhttp.Handler())
	router := chi.NewRouter()
	handler.Mount(router)

	s := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: router,
	}
	go func() {
		<-ctx.Done()
		shutdown, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.Shutdown(shutdown); err != nil {
			log.Error().Err(err).Msg("failed to shut down server")
		}
	}()

	log.Info().Uint16("port", cfg.Port).Str("url", cfg.Url.String()).Msg("started server")
	if err = s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	log.Info().Msg("server stopped")
	return nil
}
