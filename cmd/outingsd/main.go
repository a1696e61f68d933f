package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	outingsv1 "github.com/tabmate/outings-tracker/gen/proto/outings/v1"
	"github.com/tabmate/outings-tracker/internal/auth"
	"github.com/tabmate/outings-tracker/internal/cache"
	"github.com/tabmate/outings-tracker/internal/common"
	"github.com/tabmate/outings-tracker/internal/export"
	"github.com/tabmate/outings-tracker/internal/genai"
	"github.com/tabmate/outings-tracker/internal/receipt"
	"github.com/tabmate/outings-tracker/internal/repository"
	"github.com/tabmate/outings-tracker/internal/server"
	"github.com/tabmate/outings-tracker/internal/storage"
	"github.com/tabmate/outings-tracker/internal/vision"
)

func main() {
	// Lifecycle logs go through zap; components take slog.
	zlog, _ := zap.NewProduction()
	defer zlog.Sync()
	log := zlog.Sugar()

	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := server.ConnectDB(ctx, cfg.Database.DSN, logger)
	if err != nil {
		log.Fatalf("connecting to database: %v", err)
	}
	defer server.CloseDB(entc, pool, logger)

	if err := server.PingDB(ctx, pool, logger, cfg.Database.DialTimeout); err != nil {
		log.Fatalf("database health check: %v", err)
	}
	log.Infow("database health OK")

	visionStore, err := cache.NewFSStore(cfg.Vision.CacheDir, ".json")
	if err != nil {
		log.Fatalf("vision cache: %v", err)
	}
	llmStore, err := cache.NewFSStore(cfg.LLM.CacheDir, ".json")
	if err != nil {
		log.Fatalf("extraction cache: %v", err)
	}

	visionClient, err := vision.New(ctx, visionStore, logger)
	if err != nil {
		log.Fatalf("vision client: %v", err)
	}
	defer visionClient.Close()

	genaiClient := genai.NewClient(genai.Config{
		APIKey:  cfg.LLM.APIKey,
		BaseURL: cfg.LLM.BaseURL,
		Model:   cfg.LLM.Model,
		Timeout: cfg.LLM.Timeout,
	}, llmStore, logger)

	s3, err := storage.NewS3Storage(ctx, cfg.Storage, logger)
	if err != nil {
		log.Fatalf("object storage: %v", err)
	}

	extractor := receipt.NewExtractor(
		visionClient,
		genaiClient,
		s3,
		cfg.Storage.Bucket,
		cfg.Vision.LineThreshold,
		logger,
	)

	outingsRepo := repository.NewOutingRepository(entc, logger)
	receiptsRepo := repository.NewReceiptRepository(entc, logger)
	exporter := export.NewService(receiptsRepo, logger)

	authManager, err := auth.NewManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	if err != nil {
		log.Fatalf("auth: %v", err)
	}

	grpcServer := grpc.NewServer(grpc.UnaryInterceptor(authManager.UnaryInterceptor()))

	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	svc := server.NewOutingsService(outingsRepo, receiptsRepo, extractor, s3, exporter, cfg.Storage.PresignTTL, logger)
	outingsv1.RegisterOutingsServiceServer(grpcServer, svc)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		log.Fatalf("listen: %v", err)
	}
	log.Infof("gRPC serving on %s", cfg.Server.GRPCAddr)

	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			log.Fatalf("grpc serve: %v", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down...")

	done := make(chan struct{})
	go func() {
		grpcServer.GracefulStop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(10 * time.Second):
		grpcServer.Stop()
	}
	log.Info("stopped")
}
