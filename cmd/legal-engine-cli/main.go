// Package main provides the legal engine CLI entrypoint.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/nyaya-ai/legal-engine/internal/config"
	"github.com/nyaya-ai/legal-engine/internal/embedding"
	"github.com/nyaya-ai/legal-engine/internal/knowledge"
	"github.com/nyaya-ai/legal-engine/internal/match"
	"github.com/nyaya-ai/legal-engine/internal/observability"
	"github.com/nyaya-ai/legal-engine/internal/rag"
	"github.com/nyaya-ai/legal-engine/internal/scrape"
)

const version = "1.0.0"

// defaultSources are the official pages the scrape command ingests when no
// URLs are given.
var defaultSources = []string{
	"https://www.indiacode.nic.in/",
	"https://nalsa.gov.in/services/legal-aid/legal-services",
	"https://consumerhelpline.gov.in/faq.php",
	"https://vikaspedia.in/social-welfare/social-awareness/legal-awareness",
}

var (
	cfgFile    string
	outputJSON bool

	cfg    *config.Config
	logger *observability.Logger
	ui     *UI
)

var rootCmd = &cobra.Command{
	Use:   "legal-engine-cli",
	Short: "Legal information assistant for Indian law",
	Long: `legal-engine-cli answers questions about Indian law from a curated
knowledge base: FIR procedure, divorce, property, inheritance, consumer
complaints, and more.

Use this tool to:
- Chat interactively or ask one-shot questions
- Scrape official legal sources into the document store
- Inspect knowledge base statistics

All commands support --json for automation.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()

		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		logFormat := "console"
		if outputJSON {
			logFormat = "json"
		}
		logger = observability.NewLogger(observability.LogConfig{
			Level:       cfg.Observability.LogLevel,
			Format:      logFormat,
			ServiceName: "legal-engine-cli",
		})
		ui = NewUI(outputJSON)
		return nil
	},
}

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Interactive question and answer session",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine := newEngine()
		ui.Header("Nyaya AI Legal Assistant")
		ui.Info("Ask a question, or type \"exit\" to quit.")

		scanner := bufio.NewScanner(os.Stdin)
		for {
			fmt.Print("\n> ")
			if !scanner.Scan() {
				return scanner.Err()
			}
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			if line == "exit" || line == "quit" {
				return nil
			}
			printAnswer(engine.Answer(cmd.Context(), line))
		}
	},
}

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Answer a single question",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine := newEngine()
		printAnswer(engine.Answer(cmd.Context(), strings.Join(args, " ")))
		return nil
	},
}

var scrapeCmd = &cobra.Command{
	Use:   "scrape [urls...]",
	Short: "Scrape legal sources into the document store",
	RunE: func(cmd *cobra.Command, args []string) error {
		urls := args
		if len(urls) == 0 {
			urls = defaultSources
		}

		store, err := rag.OpenStore(cfg.StoreDriver(), cfg.StoreDSN())
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer store.Close()
		if err := store.Migrate(cmd.Context()); err != nil {
			return err
		}

		scraper := scrape.New(scrape.Config{
			UserAgent:      cfg.Scraper.UserAgent,
			RequestTimeout: cfg.Scraper.RequestTimeout,
			RatePerSecond:  cfg.Scraper.RatePerSecond,
			MaxConcurrent:  cfg.Scraper.MaxConcurrent,
		}, logger)

		ui.Info("Scraping %d sources", len(urls))
		bar := progressbar.NewOptions(len(urls),
			progressbar.OptionSetDescription("scraping"),
			progressbar.OptionSetVisibility(!outputJSON),
		)

		var docs []scrape.Document
		for _, u := range urls {
			doc, err := scraper.Scrape(cmd.Context(), u)
			_ = bar.Add(1)
			if err != nil {
				ui.Error("skipped %s: %v", u, err)
				continue
			}
			docs = append(docs, *doc)
		}

		retriever := rag.NewRetriever(store, rag.NewChunker(0, 0), newEmbedder(), logger)
		if err := retriever.Ingest(cmd.Context(), docs); err != nil {
			return err
		}

		ui.Success("Ingested %d of %d pages", len(docs), len(urls))
		if outputJSON {
			return printJSON(map[string]int{"scraped": len(docs), "requested": len(urls)})
		}
		return nil
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show knowledge base statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		base := knowledge.Default()
		stats := base.Stats()

		if outputJSON {
			return printJSON(stats)
		}

		ui.Header("Knowledge Base")
		ui.Info("Entries:  %d", stats.TotalEntries)
		ui.Info("Keywords: %d", stats.TotalKeywords)
		ui.Header("Categories")
		for _, name := range base.CategoryNames() {
			ui.Info("%s (%d)", name, stats.Categories[name])
		}
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("legal-engine-cli %s\n", version)
	},
}

func newEngine() *match.Engine {
	engine := match.NewEngine(knowledge.Default(), cfg.Engine.Weights, logger)
	if cfg.Embedding.Enabled {
		engine.WithSemantic(embedding.NewService(func() (embedding.Embedder, error) {
			return embedding.NewClient(embedding.Config{
				APIKey:    cfg.Embedding.APIKey,
				Model:     cfg.Embedding.Model,
				BaseURL:   cfg.Embedding.BaseURL,
				Dimension: cfg.Embedding.Dimension,
				Timeout:   cfg.Embedding.Timeout,
			})
		}, cfg.Embedding.Timeout, logger))
	}
	return engine
}

// newEmbedder returns the real client when configured and the deterministic
// mock otherwise, so offline scraping still builds a usable index.
func newEmbedder() embedding.Embedder {
	if cfg.Embedding.Enabled {
		client, err := embedding.NewClient(embedding.Config{
			APIKey:    cfg.Embedding.APIKey,
			Model:     cfg.Embedding.Model,
			BaseURL:   cfg.Embedding.BaseURL,
			Dimension: cfg.Embedding.Dimension,
			Timeout:   cfg.Embedding.Timeout,
		})
		if err == nil {
			return client
		}
		ui.Error("embedding client unavailable, using offline embedder: %v", err)
	}
	return embedding.NewMockClient(cfg.Embedding.Dimension)
}

func printAnswer(res match.Result) {
	if outputJSON {
		_ = printJSON(map[string]any{
			"response":   res.Response,
			"category":   res.Category,
			"citations":  res.Citations,
			"confidence": res.Confidence,
		})
		return
	}
	ui.Answer(res.Category, res.Response)
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func main() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path (default: uses env vars)")
	rootCmd.PersistentFlags().BoolVar(&outputJSON, "json", false, "output in JSON format")

	rootCmd.AddCommand(chatCmd, askCmd, scrapeCmd, statsCmd, versionCmd)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
