package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/cobra"

	"github.com/wildgrove/encounter-api/internal/clients/collection"
	"github.com/wildgrove/encounter-api/internal/clients/inventory"
	"github.com/wildgrove/encounter-api/internal/content"
	v1alpha1 "github.com/wildgrove/encounter-api/internal/handlers/api/v1alpha1"
	"github.com/wildgrove/encounter-api/internal/orchestrators/battle"
	"github.com/wildgrove/encounter-api/internal/orchestrators/encounter"
	"github.com/wildgrove/encounter-api/internal/pkg/clock"
	"github.com/wildgrove/encounter-api/internal/pkg/idgen"
	"github.com/wildgrove/encounter-api/internal/pkg/rng"
	"github.com/wildgrove/encounter-api/internal/redis"
	encountersession "github.com/wildgrove/encounter-api/internal/repositories/encounter_session"
	mapprogress "github.com/wildgrove/encounter-api/internal/repositories/map_progress"
	trainerbattle "github.com/wildgrove/encounter-api/internal/repositories/trainer_battle"
)

// serverConfig is populated from the environment; the --port flag wins
// over PORT when both are set
type serverConfig struct {
	Port       int           `env:"PORT" envDefault:"8080"`
	RedisAddr  string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	ContentDir string        `env:"CONTENT_DIR" envDefault:"content"`
	SessionTTL time.Duration `env:"SESSION_TTL"`
}

var portFlag int

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP server",
	Long:  `Start the encounter API HTTP server with all configured services.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&portFlag, "port", 0, "HTTP server port (overrides PORT)")
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := env.ParseAs[serverConfig]()
	if err != nil {
		return fmt.Errorf("failed to parse environment: %w", err)
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = portFlag
	}

	handler, err := buildHandler(&cfg)
	if err != nil {
		return err
	}

	mux := http.NewServeMux()
	handler.Register(mux)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errChan := make(chan error, 1)
	go func() {
		slog.Info("HTTP server starting", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("received shutdown signal, stopping")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("graceful shutdown failed, forcing close", "error", err)
			return srv.Close()
		}
		slog.Info("server stopped gracefully")
		return nil
	case err := <-errChan:
		return err
	}
}

func buildHandler(cfg *serverConfig) (*v1alpha1.Handler, error) {
	redisClient, err := redis.NewClient(cfg.RedisAddr, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create redis client: %w", err)
	}

	store, err := content.NewFileStore(&content.Config{Dir: cfg.ContentDir})
	if err != nil {
		return nil, fmt.Errorf("failed to load content: %w", err)
	}

	clk := clock.New()

	sessionRepo, err := encountersession.NewRedisRepository(&encountersession.Config{
		Client: redisClient,
		Clock:  clk,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create session repository: %w", err)
	}

	progressRepo, err := mapprogress.NewRedisRepository(&mapprogress.Config{Client: redisClient})
	if err != nil {
		return nil, fmt.Errorf("failed to create progress repository: %w", err)
	}

	battleRepo, err := trainerbattle.NewRedisRepository(&trainerbattle.Config{
		Client: redisClient,
		Clock:  clk,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create battle repository: %w", err)
	}

	collectionClient, err := collection.NewRedisClient(&collection.Config{
		Client:      redisClient,
		Content:     store,
		Clock:       clk,
		IDGenerator: idgen.NewUUID("crt"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create collection client: %w", err)
	}

	inventoryClient, err := inventory.NewRedisClient(&inventory.Config{Client: redisClient})
	if err != nil {
		return nil, fmt.Errorf("failed to create inventory client: %w", err)
	}

	encounterSvc, err := encounter.NewOrchestrator(&encounter.Config{
		SessionRepo:  sessionRepo,
		ProgressRepo: progressRepo,
		Content:      store,
		Collection:   collectionClient,
		Inventory:    inventoryClient,
		IDGenerator:  idgen.NewUUID("enc"),
		Random:       rng.Default(),
		SessionTTL:   cfg.SessionTTL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create encounter service: %w", err)
	}

	battleSvc, err := battle.NewOrchestrator(&battle.Config{
		BattleRepo:  battleRepo,
		Content:     store,
		Collection:  collectionClient,
		IDGenerator: idgen.NewUUID("btl"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create battle service: %w", err)
	}

	handler, err := v1alpha1.NewHandler(&v1alpha1.Config{
		EncounterService: encounterSvc,
		BattleService:    battleSvc,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create API handler: %w", err)
	}

	return handler, nil
}
