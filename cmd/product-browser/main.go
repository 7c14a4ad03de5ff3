package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"

	"github.com/rydeebs/product-browser/pkg/annotate"
	"github.com/rydeebs/product-browser/pkg/config"
	"github.com/rydeebs/product-browser/pkg/content"
	"github.com/rydeebs/product-browser/pkg/detect"
	"github.com/rydeebs/product-browser/pkg/lexical"
	"github.com/rydeebs/product-browser/pkg/repository"
	"github.com/rydeebs/product-browser/pkg/scheduler"
	"github.com/rydeebs/product-browser/pkg/source"
	"github.com/rydeebs/product-browser/pkg/trends"
	"github.com/rydeebs/product-browser/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"c" long:"config" env:"CONFIG" default:"config.yml" description:"config file path"`
	DB     string `long:"db" env:"DB" description:"database DSN, overrides the config value"`
	Listen string `short:"l" long:"listen" env:"LISTEN" description:"listen address, overrides the config value"`
	NoAPI  bool   `long:"no-api" env:"NO_API" description:"run the pipeline without the HTTP API"`
	Verify bool   `long:"verify" description:"load and validate the config, print the effective values"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	if opts.NoColor {
		color.NoColor = true
	}

	if opts.Verify {
		_ = godotenv.Load()
		cfg, err := config.Load(opts.Config)
		if err != nil {
			log.Printf("[ERROR] failed to load config: %v", err)
			os.Exit(1)
		}
		fmt.Printf("config %s is valid\n%+v\n", opts.Config, *cfg)
		os.Exit(0)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	if err := run(ctx, opts); err != nil {
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}

	log.Print("[INFO] shutdown complete")
}

// run wires the whole pipeline from configuration: repositories, sources,
// annotator, detector, scheduler and the REST server. It blocks until ctx
// is cancelled or the server fails.
func run(ctx context.Context, opts Opts) error {
	// credentials referenced from the config file may live in a local .env
	_ = godotenv.Load()

	cfg, err := config.Load(opts.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if opts.DB != "" {
		cfg.Database.DSN = opts.DB
	}
	if opts.Listen != "" {
		cfg.Server.Listen = opts.Listen
	}

	SetupLog(opts.Debug, secrets(cfg)...)
	lgr.Printf("[INFO] starting product-browser %s", revision)

	repos, err := repository.NewRepositories(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to init database: %w", err)
	}
	defer func() {
		if cerr := repos.Close(); cerr != nil {
			lgr.Printf("[WARN] close database: %v", cerr)
		}
	}()

	var volume detect.VolumeProvider
	if cfg.Trends.Endpoint != "" {
		volume = trends.NewClient(cfg.Trends)
	}
	detector := detect.NewDetector(cfg.Detect, repos.Post, repos.Opportunity, repos.Run, volume)

	var extractor scheduler.Extractor
	if cfg.Extraction.Enabled {
		extractor = content.NewHTTPExtractor(cfg.Extraction)
	}

	sched := scheduler.NewScheduler(scheduler.Params{
		Sources:     makeSources(cfg),
		Posts:       repos.Post,
		Annotations: repos.Annotation,
		States:      repos.Run,
		Annotator:   annotate.NewAnnotator(cfg.LLM),
		Extractor:   extractor,
		Detector:    detector,

		ScrapeInterval:    cfg.Schedule.ScrapeInterval,
		AnnotateInterval:  cfg.Schedule.AnnotateInterval,
		DetectInterval:    cfg.Schedule.DetectInterval,
		SourceConcurrency: cfg.Schedule.SourceConcurrency,
		AnnotateBatch:     cfg.LLM.BatchSize,
	})
	sched.Start(ctx)
	defer sched.Stop()

	if opts.NoAPI {
		lgr.Printf("[INFO] api disabled, running pipeline only")
		<-ctx.Done()
		return nil
	}

	srv := server.New(server.Config{
		Listen:  cfg.Server.Listen,
		BaseURL: cfg.Server.BaseURL,
		Timeout: cfg.Server.Timeout,
		Version: revision,
		Debug:   opts.Debug,
	}, server.NewRepositoryAdapter(repos), sched)

	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// makeSources assembles the enabled platform sources. All of them share one
// lexical extractor for keyword fallback on posts without platform tags.
func makeSources(cfg *config.Config) []scheduler.Source {
	lex := lexical.New(cfg.Detect.Lexicon.Stopwords)

	var sources []scheduler.Source
	if cfg.Sources.Reddit.Enabled {
		sources = append(sources, source.NewReddit(cfg.Sources, lex))
	}
	if cfg.Sources.Feeds.Enabled {
		sources = append(sources, source.NewFeed(cfg.Sources, lex))
	}
	if cfg.Sources.Twitter.Enabled {
		sources = append(sources, source.NewTwitter(cfg.Sources, lex))
	}

	names := make([]string, len(sources))
	for i, src := range sources {
		names[i] = src.Name()
	}
	lgr.Printf("[INFO] enabled sources: %v", names)
	return sources
}

// secrets collects configured credential values so the logger can mask them
func secrets(cfg *config.Config) []string {
	var secs []string
	if cfg.LLM.APIKey != "" {
		secs = append(secs, cfg.LLM.APIKey)
	}
	if cfg.Sources.Twitter.BearerToken != "" {
		secs = append(secs, cfg.Sources.Twitter.BearerToken)
	}
	return secs
}

// SetupLog sets up the global logger. Debug mode adds caller info, values
// in secs are masked in all output.
func SetupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
