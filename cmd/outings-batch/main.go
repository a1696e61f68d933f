package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/joho/godotenv"

	"github.com/tabmate/outings-tracker/constants"
	"github.com/tabmate/outings-tracker/internal/cache"
	"github.com/tabmate/outings-tracker/internal/common"
	"github.com/tabmate/outings-tracker/internal/export"
	"github.com/tabmate/outings-tracker/internal/genai"
	"github.com/tabmate/outings-tracker/internal/receipt"
	"github.com/tabmate/outings-tracker/internal/repository"
	"github.com/tabmate/outings-tracker/internal/storage"
	"github.com/tabmate/outings-tracker/internal/vision"
)

func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		dir  = flag.String("dir", "", "directory of receipt images to process (required)")
		out  = flag.String("out", "", "output XLSX file path (defaults to <dir>/../outing.xlsx)")
		name = flag.String("name", "", "outing name (defaults to the directory name)")
	)
	flag.Parse()

	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}
	if *out == "" {
		*out = filepath.Join(filepath.Dir(*dir), "outing.xlsx")
	}
	if *name == "" {
		*name = filepath.Base(*dir)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	_ = godotenv.Load()
	cfg := common.LoadConfig()
	if cfg.LLM.APIKey == "" {
		printError("Error: OPENAI_API_KEY is required\n")
		os.Exit(1)
	}

	ctx := context.Background()

	// Local run: in-memory SQLite, schema created on the fly.
	entc, err := repository.OpenSQLite("", logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer entc.Close()
	if err := entc.Schema.Create(ctx); err != nil {
		logger.Error("failed to create schema", "error", err)
		os.Exit(1)
	}

	visionStore, err := cache.NewFSStore(cfg.Vision.CacheDir, ".json")
	if err != nil {
		logger.Error("failed to create vision cache", "error", err)
		os.Exit(1)
	}
	llmStore, err := cache.NewFSStore(cfg.LLM.CacheDir, ".json")
	if err != nil {
		logger.Error("failed to create extraction cache", "error", err)
		os.Exit(1)
	}

	visionClient, err := vision.New(ctx, visionStore, logger)
	if err != nil {
		logger.Error("failed to create vision client", "error", err)
		os.Exit(1)
	}
	defer visionClient.Close()

	genaiClient := genai.NewClient(genai.Config{
		APIKey:  cfg.LLM.APIKey,
		BaseURL: cfg.LLM.BaseURL,
		Model:   cfg.LLM.Model,
		Timeout: cfg.LLM.Timeout,
	}, llmStore, logger)

	// Objects land next to the caches unless an object store is configured.
	var store storage.Storage
	if cfg.Storage.Endpoint != "" {
		store, err = storage.NewS3Storage(ctx, cfg.Storage, logger)
	} else {
		store, err = storage.NewFSStorage("cache/objects", logger)
	}
	if err != nil {
		logger.Error("failed to create object storage", "error", err)
		os.Exit(1)
	}

	extractor := receipt.NewExtractor(
		visionClient,
		genaiClient,
		store,
		cfg.Storage.Bucket,
		cfg.Vision.LineThreshold,
		logger,
	)

	outingsRepo := repository.NewOutingRepository(entc, logger)
	receiptsRepo := repository.NewReceiptRepository(entc, logger)

	outing, err := outingsRepo.Create(ctx, *name)
	if err != nil {
		logger.Error("failed to create outing", "error", err)
		os.Exit(1)
	}
	logger.Info("using outing", "id", outing.ID, "name", outing.Name)

	entries, err := os.ReadDir(*dir)
	if err != nil {
		logger.Error("failed to read directory", "dir", *dir, "error", err)
		os.Exit(1)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		if constants.IsAllowedExt(filepath.Ext(e.Name())) {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)
	logger.Info("starting batch extraction", "dir", *dir, "files", len(files))

	processed := 0
	deduplicated := 0
	failures := 0
	for _, fname := range files {
		path := filepath.Join(*dir, fname)
		data, err := os.ReadFile(path)
		if err != nil {
			logger.Error("failed to read file", "path", path, "error", err)
			failures++
			continue
		}

		hash := receipt.HashImageBytes(data)
		if existing, err := receiptsRepo.GetByImageHash(ctx, hash); err != nil {
			logger.Error("dedup lookup failed", "path", path, "error", err)
			failures++
			continue
		} else if existing != nil {
			logger.Info("skipping duplicate image", "path", path, "receipt_id", existing.ID)
			deduplicated++
			continue
		}

		res, err := extractor.Run(ctx, data, fname)
		if err != nil {
			logger.Error("extraction failed", "path", path, "error", err)
			failures++
			continue
		}
		if _, err := receiptsRepo.SaveExtraction(ctx, outing.ID, fname, res); err != nil {
			logger.Error("failed to persist receipt", "path", path, "error", err)
			failures++
			continue
		}
		processed++
	}

	exporter := export.NewService(receiptsRepo, logger)
	xlsxBytes, err := exporter.ExportOutingXLSX(ctx, outing.ID)
	if err != nil {
		logger.Error("failed to export outing", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, xlsxBytes, 0o644); err != nil {
		logger.Error("failed to write output file", "path", *out, "error", err)
		os.Exit(1)
	}

	logger.Info("batch extraction complete",
		"processed", processed,
		"deduplicated", deduplicated,
		"failures", failures,
		"output_file", *out)

	fmt.Printf("Batch extraction complete!\n")
	fmt.Printf("- Receipts processed: %d\n", processed)
	fmt.Printf("- Duplicates skipped: %d\n", deduplicated)
	fmt.Printf("- Failures: %d\n", failures)
	fmt.Printf("- Output: %s\n", *out)
}
