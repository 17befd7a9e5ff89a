// Package main is the Tantei CLI entry point.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/hyperjump/tantei/internal/cli"
	"github.com/hyperjump/tantei/internal/config"
	"github.com/hyperjump/tantei/internal/models"
	"github.com/hyperjump/tantei/internal/resolve"
	"github.com/hyperjump/tantei/internal/server"
	"github.com/hyperjump/tantei/internal/sparql"
	"github.com/hyperjump/tantei/internal/wikisearch"
	"github.com/hyperjump/tantei/pkg/utils"
	"go.uber.org/zap"
)

var version = "dev"

const defaultConfigPath = "/usr/local/etc/tantei/config.yaml"

// loadConfig loads config from path. When path is the default, it first looks
// for config.yaml in the current directory (for development); if that exists
// it is used. Returns the config and the path that was actually loaded.
func loadConfig(path string) (*config.Config, string, error) {
	if path == defaultConfigPath {
		if cwd, cwdErr := os.Getwd(); cwdErr == nil {
			fallback := filepath.Join(cwd, "config.yaml")
			if _, statErr := os.Stat(fallback); statErr == nil {
				cfg, loadErr := config.Load(fallback)
				if loadErr != nil {
					return nil, "", loadErr
				}
				return cfg, fallback, nil
			}
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

// components holds the wired clients and resolvers shared by all commands.
type components struct {
	Searcher *wikisearch.Client
	Resolver *resolve.Resolver
	Details  *resolve.Details
}

func initializeComponents(cfg *config.Config, logger *zap.Logger) *components {
	builder := sparql.NewBuilder(cfg.Wikidata.Language, cfg.Wikidata.WikiSite)
	querier := sparql.NewClient(
		cfg.Wikidata.QueryEndpoint,
		cfg.Wikidata.Timeout(),
		cfg.Wikidata.RequestsPerSecond,
		cfg.Wikidata.UserAgent,
		logger,
	)
	searcher := wikisearch.NewClient(
		cfg.Wikidata.SearchEndpoint,
		cfg.Wikidata.Language,
		cfg.Wikidata.Timeout(),
		cfg.Wikidata.UserAgent,
		logger,
	)
	return &components{
		Searcher: searcher,
		Resolver: resolve.NewResolver(querier, builder, logger),
		Details:  resolve.NewDetails(querier, builder),
	}
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}
	command := os.Args[1]
	switch command {
	case "server":
		runServer()
	case "init":
		runInit()
	case "search":
		runSearch()
	case "person":
		runPerson()
	case "version", "--version", "-v":
		fmt.Printf("tantei version %s\n", version)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func runServer() {
	fs := flag.NewFlagSet("server", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	debug := fs.Bool("debug", false, "enable debug logging")
	_ = fs.Parse(os.Args[2:])

	cfg, resolvedConfigPath, err := loadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	debugMode := cfg.Debug || *debug
	logger, err := utils.NewLogger(debugMode)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("config loaded",
		zap.String("config_path", resolvedConfigPath),
		zap.Bool("debug", debugMode),
	)

	c := initializeComponents(cfg, logger)
	srv := server.NewServer(
		c.Searcher,
		c.Resolver,
		c.Details,
		&cfg.Server,
		cfg.Resolve.SearchLimit,
		logger,
	)
	go func() {
		if err := srv.Start(); err != nil {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Stop(ctx)
}

func runSearch() {
	fs := flag.NewFlagSet("search", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	jsonOut := fs.Bool("json", false, "output JSON instead of text")
	limit := fs.Int("limit", 0, "max search hits to aggregate (default from config)")
	fs.Usage = func() { printSearchUsage(fs) }
	_ = fs.Parse(os.Args[2:])

	query := strings.TrimSpace(strings.Join(fs.Args(), " "))
	if query == "" {
		printSearchUsage(fs)
		os.Exit(1)
	}

	cfg, _, err := loadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger, err := utils.NewLogger(cfg.Debug)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	searchLimit := cfg.Resolve.SearchLimit
	if *limit > 0 {
		searchLimit = *limit
	}

	c := initializeComponents(cfg, logger)
	ctx := context.Background()
	start := time.Now()

	response := models.ResolveResponse{Query: query, Candidates: []models.Candidate{}}
	hits, err := c.Searcher.Search(ctx, query, searchLimit)
	if err != nil {
		logger.Warn("entity search failed", zap.Error(err))
	} else if candidates, committed := c.Resolver.Resolve(ctx, hits); committed && candidates != nil {
		response.Candidates = candidates
	}
	response.Total = len(response.Candidates)
	response.QueryTime = time.Since(start).Milliseconds()

	format := cli.OutputText
	if *jsonOut {
		format = cli.OutputJSON
	}
	if err := cli.WriteCandidates(os.Stdout, &response, format); err != nil {
		fmt.Printf("Failed to write results: %v\n", err)
		os.Exit(1)
	}
}

func runPerson() {
	fs := flag.NewFlagSet("person", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	jsonOut := fs.Bool("json", false, "output JSON instead of text")
	_ = fs.Parse(os.Args[2:])

	if fs.NArg() != 1 {
		fmt.Println("Usage: tantei person [flags] <entity-id>")
		os.Exit(1)
	}
	id := fs.Arg(0)

	cfg, _, err := loadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger, err := utils.NewLogger(cfg.Debug)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	c := initializeComponents(cfg, logger)
	detail := c.Details.Lookup(context.Background(), id)

	format := cli.OutputText
	if *jsonOut {
		format = cli.OutputJSON
	}
	if err := cli.WritePersonDetail(os.Stdout, &detail, format); err != nil {
		fmt.Printf("Failed to write detail: %v\n", err)
		os.Exit(1)
	}
}

func runInit() {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	configPath := fs.String("config", "config.yaml", "where to write the default config file")
	_ = fs.Parse(os.Args[2:])

	if _, err := os.Stat(*configPath); err == nil {
		fmt.Printf("Config already exists: %s\n", *configPath)
		os.Exit(1)
	}
	var cfg config.Config
	config.ApplyDefaults(&cfg)
	if err := config.Save(*configPath, &cfg); err != nil {
		fmt.Printf("Failed to write config: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote default config to %s\n", *configPath)
}

func printSearchUsage(fs *flag.FlagSet) {
	fmt.Fprintf(fs.Output(), "Usage: tantei search [flags] <query>\n\n")
	fmt.Fprintf(fs.Output(), "Query is all remaining arguments joined by spaces.\n\n")
	fs.PrintDefaults()
	fmt.Fprintf(fs.Output(), `
Direct person matches are listed first, then people found by expanding group
hits (bands, casts) into their members.

Examples:
  tantei search freddie mercury
  tantei search "queen"
  tantei search --json --limit 5 beatles
`)
}

func printUsage() {
	fmt.Println(`tantei - person search against Wikidata

Usage:
  tantei server  [--config path] [--debug]     Run the HTTP API server
  tantei init    [--config path]               Write a default config file
  tantei search  [flags] <query>               Resolve a free-text search to people
  tantei person  [flags] <entity-id>           Show details for one person
  tantei version                               Print version
  tantei help                                  Show this help`)
}
