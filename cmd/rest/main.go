package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"ai-study-tutor-be/internal/bootstrap"
	"ai-study-tutor-be/internal/config"
	"ai-study-tutor-be/internal/pkg/logger"
	"ai-study-tutor-be/internal/server"
	"ai-study-tutor-be/internal/tracer"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())
	defer sysLogger.Sync()

	// 2. Initialize Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer(cfg.Tracing, sysLogger)
	defer shutdownTracer(context.Background())

	// 3. Bootstrap Dependencies (Container)
	container, err := bootstrap.NewContainer(cfg, sysLogger)
	if err != nil {
		log.Panicf("Unable to bootstrap application: %v", err)
	}
	defer container.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 4. Start Background Services
	if err := container.ConsumerService.Consume(ctx); err != nil {
		sysLogger.Error("MAIN", "Activity consumer failed to start", map[string]interface{}{"error": err})
	}

	// 5. Initialize Server
	srv := server.New(cfg, container)
	go func() {
		<-ctx.Done()
		_ = srv.Shutdown()
	}()

	// 6. Run Server
	if err := srv.Run(); err != nil {
		sysLogger.Error("MAIN", "Server stopped", map[string]interface{}{"error": err})
	}
}
