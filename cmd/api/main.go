package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/oakfieldhealth/reception/backend/internal/config"
	"github.com/oakfieldhealth/reception/backend/internal/handler"
	intakeservice "github.com/oakfieldhealth/reception/backend/internal/service/intake"
	"github.com/oakfieldhealth/reception/backend/internal/sink"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	var storage *sink.Supabase
	if cfg.Supabase.Enabled() {
		storage = sink.NewSupabase(cfg.Supabase.URL, cfg.Supabase.Key, cfg.Supabase.Table, cfg.Supabase.Timeout)
		log.Println("supabase record store configured")
	} else {
		log.Println("warning: SUPABASE_URL/SUPABASE_KEY not set, completed intakes cannot be persisted")
	}

	var notifier *sink.Webhook
	if cfg.Webhook.Enabled() {
		notifier = sink.NewWebhook(cfg.Webhook.URL, cfg.Webhook.Timeout)
		log.Println("ward webhook notifier configured")
	} else {
		log.Println("WEBHOOK_URL not set, ward notifications will be skipped")
	}

	store := intakeservice.NewStore()
	intakeSvc := intakeservice.NewService(store, sink.New(storage, notifier))

	router := handler.NewRouter(intakeSvc)

	startServer(ctx, cfg.Server, router)
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	addr := serverCfg.Addr
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("Oakfield reception backend listening on %s", addr)
	if err := runServer(ctx, srv); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
