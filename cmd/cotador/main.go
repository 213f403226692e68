package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"cotador/internal/catalog"
	"cotador/internal/config"
	"cotador/internal/oracle"
	"cotador/internal/pipeline"
	"cotador/internal/storage"
	serverhttp "cotador/server/http"
)

func main() {
	cfg, err := config.Load()
	must(err)

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	logger := config.SetupLogger(cfg)

	db, err := storage.Open(cfg.DBPath)
	must(err)
	defer db.Close()

	store := catalog.NewStore()
	importer := catalog.NewImportService(store, db, logger)
	loaded, err := importer.LoadSnapshot()
	must(err)
	if loaded > 0 {
		logger.Info().Int("items", loaded).Msg("catalog snapshot loaded")
	}

	cmd := os.Args[1]
	switch cmd {
	case "catalog:import":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		file := fs.String("file", "", "catalog xlsx path")
		_ = fs.Parse(os.Args[2:])
		if strings.TrimSpace(*file) == "" {
			must(fmt.Errorf("--file is required"))
		}
		count, err := importer.ImportFile(*file)
		must(err)
		fmt.Printf("catalog import complete: %d items\n", count)
	case "catalog:reset":
		must(importer.Reset())
		fmt.Println("catalog cleared")
	case "quote":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		input := fs.String("input", "", "text file with one request per line, or raw text")
		out := fs.String("out", "", "optional output xlsx path")
		_ = fs.Parse(os.Args[2:])
		if strings.TrimSpace(*input) == "" {
			must(fmt.Errorf("--input is required"))
		}
		must(cfg.Require("ORACLE_API_KEY", cfg.OracleAPIKey))

		text := *input
		if blob, err := os.ReadFile(*input); err == nil {
			text = string(blob)
		}

		items, _ := store.Snapshot()
		if len(items) == 0 {
			must(fmt.Errorf("catalog is empty, run catalog:import first"))
		}

		resolver := pipeline.NewResolver(cfg, oracle.NewGeminiMatcher(cfg), logger)
		processor := pipeline.NewBatchProcessor(cfg, resolver)
		result := processor.Process(context.Background(), text, items)

		printBatch(result)
		if strings.TrimSpace(*out) != "" {
			must(pipeline.ExportBatchToXLSX(result, *out))
			fmt.Printf("exported %d rows to %s\n", len(result.Requests), *out)
		}
	case "serve":
		resolver := pipeline.NewResolver(cfg, oracle.NewGeminiMatcher(cfg), logger)
		processor := pipeline.NewBatchProcessor(cfg, resolver)
		router := serverhttp.NewRouter(cfg, store, importer, processor, logger)

		srv := &http.Server{Addr: cfg.Addr(), Handler: router}
		logger.Info().Str("addr", cfg.Addr()).Msg("server starting")

		go func() {
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Fatal().Err(err).Msg("listen")
			}
		}()

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		logger.Info().Msg("server shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	default:
		usage()
		os.Exit(1)
	}
}

func printBatch(result pipeline.BatchResult) {
	for _, req := range result.Requests {
		if req.Item == nil {
			fmt.Printf("NOT FOUND  %s\n", req.OriginalText)
			continue
		}
		stock := ""
		if !req.Item.InStock {
			stock = " (sem estoque)"
		}
		fmt.Printf("R$ %.2f    %s -> %s%s\n", *req.FinalPrice, req.OriginalText, req.Item.Description, stock)
	}
	fmt.Printf("total (in stock): R$ %.2f\n", result.Total)
}

func usage() {
	fmt.Println("usage: cotador <command>")
	fmt.Println("commands:")
	fmt.Println("  catalog:import --file=./catalogo.xlsx")
	fmt.Println("  catalog:reset")
	fmt.Println("  quote --input=\"flex a11 vermelho\" [--out=./out/result.xlsx]")
	fmt.Println("  serve")
}

func must(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
